// Package identity maps raw OAuth provider attributes to a canonical local
// identity. The provider set is closed: adding a provider means adding an
// implementation here, not widening a string comparison somewhere else.
package identity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolved means the provider returned neither an email nor a
	// usable handle. Fatal to the reconciliation; nothing is persisted.
	ErrUnresolved = errors.New("provider returned no identifiable email")

	// ErrUnknownProvider rejects provider ids outside the supported set.
	ErrUnknownProvider = errors.New("unknown identity provider")
)

// GenericName is used when a provider returns no display name at all.
const GenericName = "Dev Sem Nome"

// Identity is the canonical attribute set the reconciler works with.
// GithubUsername is nil for providers without a public handle.
type Identity struct {
	Provider       string
	Email          string
	Name           string
	AvatarURL      string
	GithubUsername *string
}

// Provider extracts a canonical Identity from a flat attribute map as
// delivered by the OAuth handshake layer.
type Provider interface {
	ID() string
	Resolve(attrs map[string]string) (Identity, error)
}

// ProviderFor dispatches over the closed provider set.
func ProviderFor(id string) (Provider, error) {
	switch strings.ToLower(id) {
	case "google":
		return googleProvider{}, nil
	case "github":
		return githubProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
	}
}

// googleProvider implements the primary-email schema (OpenID Connect):
// email, name and picture are always keyed under those names.
type googleProvider struct{}

func (googleProvider) ID() string { return "google" }

func (googleProvider) Resolve(attrs map[string]string) (Identity, error) {
	email := strings.TrimSpace(attrs["email"])
	if email == "" {
		return Identity{}, ErrUnresolved
	}
	name := strings.TrimSpace(attrs["name"])
	if name == "" {
		name = GenericName
	}
	return Identity{
		Provider:  "google",
		Email:     email,
		Name:      name,
		AvatarURL: attrs["picture"],
	}, nil
}

// githubProvider implements the login-handle schema. GitHub does not always
// expose a public email; when it is absent a deterministic placeholder is
// synthesized from the login so the unique-email invariant still holds.
type githubProvider struct{}

func (githubProvider) ID() string { return "github" }

func (githubProvider) Resolve(attrs map[string]string) (Identity, error) {
	login := strings.TrimSpace(attrs["login"])
	email := strings.TrimSpace(attrs["email"])

	if email == "" {
		if login == "" {
			return Identity{}, ErrUnresolved
		}
		email = login + "@no-email.github.com"
	}

	name := strings.TrimSpace(attrs["name"])
	if name == "" {
		name = login
	}
	if name == "" {
		name = GenericName
	}

	id := Identity{
		Provider:  "github",
		Email:     email,
		Name:      name,
		AvatarURL: attrs["avatar_url"],
	}
	if login != "" {
		id.GithubUsername = &login
	}
	return id, nil
}
