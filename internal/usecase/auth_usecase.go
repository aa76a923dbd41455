package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"giro_backoffice/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrSignUpFailed           = errors.New("sign up failed")
)

// ViewRoot is the layout-level view invalidated when the session changes.
const ViewRoot = "/"

// IAuthUseCase wraps sign-in/sign-up/sign-out against the external
// identity provider. No credential ever touches our own store.

type IAuthUseCase interface {
	SignIn(ctx context.Context, email, password string) (interfaces.IdentitySession, error)
	SignUp(ctx context.Context, email, password, fullName string) error
	SignOut(ctx context.Context, accessToken string)
	Me(ctx context.Context, accessToken string) (interfaces.IdentityUser, error)
}

type AuthUseCase struct {
	identity interfaces.IIdentityGateway
	views    interfaces.IViewInvalidator
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(identity interfaces.IIdentityGateway, views interfaces.IViewInvalidator) *AuthUseCase {
	return &AuthUseCase{identity: identity, views: views}
}

// SignIn performs the password grant. Every provider failure collapses
// into ErrInvalidCredentials so the response never reveals whether the
// email exists.
func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (interfaces.IdentitySession, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return interfaces.IdentitySession{}, ErrInvalidCredentials
	}

	session, err := u.identity.SignIn(ctx, email, password)
	if err != nil {
		if !errors.Is(err, interfaces.ErrIdentityInvalidCredentials) {
			log.Printf("[auth][usecase] sign-in provider failure err=%v", err)
		}
		return interfaces.IdentitySession{}, ErrInvalidCredentials
	}

	u.views.Invalidate(ViewRoot)
	return session, nil
}

// SignUp registers the account with the provider. Success means a
// confirmation email was dispatched; no session is established here.
func (u *AuthUseCase) SignUp(ctx context.Context, email, password, fullName string) error {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)
	if email == "" || password == "" || fullName == "" {
		return ErrSignUpFailed
	}

	if err := u.identity.SignUp(ctx, email, password, fullName); err != nil {
		if errors.Is(err, interfaces.ErrIdentityEmailAlreadyRegistered) {
			return ErrEmailAlreadyRegistered
		}
		log.Printf("[auth][usecase] sign-up provider failure err=%v", err)
		return ErrSignUpFailed
	}
	return nil
}

// SignOut revokes the provider session. Revocation failures are logged
// only; the cookie is cleared regardless, so the caller always ends up
// signed out.
func (u *AuthUseCase) SignOut(ctx context.Context, accessToken string) {
	if strings.TrimSpace(accessToken) == "" {
		return
	}
	if err := u.identity.SignOut(ctx, accessToken); err != nil {
		log.Printf("[auth][usecase] sign-out provider failure err=%v", err)
	}
	u.views.Invalidate(ViewRoot)
}

// Me resolves the provider's view of the current user.
func (u *AuthUseCase) Me(ctx context.Context, accessToken string) (interfaces.IdentityUser, error) {
	if strings.TrimSpace(accessToken) == "" {
		return interfaces.IdentityUser{}, ErrNotAuthenticated
	}
	user, err := u.identity.GetUser(ctx, accessToken)
	if err != nil {
		return interfaces.IdentityUser{}, ErrNotAuthenticated
	}
	return user, nil
}
