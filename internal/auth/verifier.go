// Package auth verifies externally issued identity tokens. The verifier is
// an explicit dependency of the middleware and the owner sync flow so the
// core stays testable without a live identity provider.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
)

// Claims are the verified identity claims the service cares about.
type Claims struct {
	UID   string
	Email string
	Name  string
}

// TokenVerifier validates an opaque bearer token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// CasdoorConfig carries the identity provider settings.
type CasdoorConfig struct {
	Endpoint     string
	ClientID     string
	ClientSecret string
	Certificate  string
	Organization string
	Application  string
}

// CasdoorVerifier verifies tokens issued by a Casdoor deployment.
type CasdoorVerifier struct {
	client *casdoorsdk.Client
}

func NewCasdoorVerifier(cfg CasdoorConfig) *CasdoorVerifier {
	client := casdoorsdk.NewClient(
		cfg.Endpoint,
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.Certificate,
		cfg.Organization,
		cfg.Application,
	)
	return &CasdoorVerifier{client: client}
}

func (v *CasdoorVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	parsed, err := v.client.ParseJwtToken(token)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	name := parsed.User.DisplayName
	if name == "" {
		name = parsed.User.Name
	}

	return &Claims{
		UID:   parsed.User.Id,
		Email: parsed.User.Email,
		Name:  name,
	}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
