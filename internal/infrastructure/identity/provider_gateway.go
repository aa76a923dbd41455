package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"giro_backoffice/internal/usecase/interfaces"
)

// ProviderGateway talks to the external identity provider's REST
// surface (GoTrue-style: password grant, signup, logout, user lookup).
// Sessions are provider-issued JWTs; this service only carries them in
// the session cookie and verifies them locally.

type ProviderGateway struct {
	client  *http.Client
	baseURL string
	anonKey string
	siteURL string
}

var _ interfaces.IIdentityGateway = (*ProviderGateway)(nil)

func NewProviderGateway(baseURL, anonKey, siteURL string) *ProviderGateway {
	return &ProviderGateway{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type userResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

func (g *ProviderGateway) SignIn(ctx context.Context, email, password string) (interfaces.IdentitySession, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := g.post(ctx, "/auth/v1/token?grant_type=password", "", body)
	if err != nil {
		return interfaces.IdentitySession{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return interfaces.IdentitySession{}, interfaces.ErrIdentityInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return interfaces.IdentitySession{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return interfaces.IdentitySession{}, err
	}
	return interfaces.IdentitySession{AccessToken: token.AccessToken, ExpiresIn: token.ExpiresIn}, nil
}

func (g *ProviderGateway) SignUp(ctx context.Context, email, password, fullName string) error {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}
	// The confirmation email links back to our auth callback.
	path := "/auth/v1/signup?redirect_to=" + url.QueryEscape(g.siteURL+"/auth/callback")
	resp, err := g.post(ctx, path, "", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	errorBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnprocessableEntity || strings.Contains(strings.ToLower(string(errorBody)), "already registered") {
		return interfaces.ErrIdentityEmailAlreadyRegistered
	}
	log.Printf("[identity][gateway] signup failed status=%d body=%s", resp.StatusCode, string(errorBody))
	return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
}

func (g *ProviderGateway) SignOut(ctx context.Context, accessToken string) error {
	resp, err := g.post(ctx, "/auth/v1/logout", accessToken, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
}

func (g *ProviderGateway) GetUser(ctx context.Context, accessToken string) (interfaces.IdentityUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return interfaces.IdentityUser{}, err
	}
	g.setHeaders(req, accessToken)

	resp, err := g.client.Do(req)
	if err != nil {
		return interfaces.IdentityUser{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interfaces.IdentityUser{}, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return interfaces.IdentityUser{}, err
	}
	return interfaces.IdentityUser{ID: user.ID, Email: user.Email, FullName: user.UserMetadata.FullName}, nil
}

func (g *ProviderGateway) post(ctx context.Context, path, accessToken string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	g.setHeaders(req, accessToken)
	return g.client.Do(req)
}

func (g *ProviderGateway) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("Content-Type", "application/json")
	if g.anonKey != "" {
		req.Header.Set("apikey", g.anonKey)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
}
