package interfaces

import (
	"context"
	"errors"
)

// Sentinel errors every identity-provider implementation must map its
// own failure modes onto, so usecases never sniff provider messages.
var (
	ErrIdentityInvalidCredentials     = errors.New("identity provider rejected credentials")
	ErrIdentityEmailAlreadyRegistered = errors.New("email already registered")
)

// IdentitySession is an established provider session.

type IdentitySession struct {
	AccessToken string
	ExpiresIn   int
}

// IdentityUser is the provider's view of the authenticated user.

type IdentityUser struct {
	ID       string
	Email    string
	FullName string
}

// IIdentityGateway wraps the external identity provider. Sessions live
// in the provider and the cookie; this service never stores credentials.

type IIdentityGateway interface {
	SignIn(ctx context.Context, email, password string) (IdentitySession, error)
	SignUp(ctx context.Context, email, password, fullName string) error
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (IdentityUser, error)
}
