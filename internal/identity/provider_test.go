package identity

import (
	"errors"
	"testing"
)

func TestProviderFor(t *testing.T) {
	for _, id := range []string{"google", "github", "GitHub"} {
		if _, err := ProviderFor(id); err != nil {
			t.Errorf("ProviderFor(%q): unexpected error %v", id, err)
		}
	}
	if _, err := ProviderFor("gitlab"); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestGoogle_Resolve(t *testing.T) {
	p, _ := ProviderFor("google")

	id, err := p.Resolve(map[string]string{
		"email":   "alice@example.com",
		"name":    "Alice",
		"picture": "https://lh3.example.com/a.png",
	})
	if err != nil {
		t.Fatal(err)
	}
	if id.Email != "alice@example.com" || id.Name != "Alice" || id.AvatarURL != "https://lh3.example.com/a.png" {
		t.Errorf("unexpected identity: %+v", id)
	}
	if id.GithubUsername != nil {
		t.Error("google identity must not carry a github username")
	}

	// Google without email is unresolvable.
	if _, err := p.Resolve(map[string]string{"name": "Alice"}); !errors.Is(err, ErrUnresolved) {
		t.Errorf("expected ErrUnresolved, got %v", err)
	}

	// Blank name falls back to the generic placeholder.
	id, err = p.Resolve(map[string]string{"email": "b@example.com", "name": "  "})
	if err != nil {
		t.Fatal(err)
	}
	if id.Name != GenericName {
		t.Errorf("expected %q, got %q", GenericName, id.Name)
	}
}

func TestGithub_Resolve(t *testing.T) {
	p, _ := ProviderFor("github")

	// Public email present.
	id, err := p.Resolve(map[string]string{
		"login":      "alice",
		"email":      "alice@example.com",
		"name":       "Alice",
		"avatar_url": "https://avatars.example.com/a.png",
	})
	if err != nil {
		t.Fatal(err)
	}
	if id.Email != "alice@example.com" {
		t.Errorf("unexpected email %q", id.Email)
	}
	if id.GithubUsername == nil || *id.GithubUsername != "alice" {
		t.Error("expected github username to be attached")
	}
}

func TestGithub_SynthesizesPlaceholderEmail(t *testing.T) {
	p, _ := ProviderFor("github")

	id, err := p.Resolve(map[string]string{"login": "alice"})
	if err != nil {
		t.Fatalf("handle-only identity must resolve, got %v", err)
	}
	if id.Email != "alice@no-email.github.com" {
		t.Errorf("expected placeholder email, got %q", id.Email)
	}
	if id.Name != "alice" {
		t.Errorf("expected name fallback to login, got %q", id.Name)
	}
}

func TestGithub_NoEmailNoLoginFails(t *testing.T) {
	p, _ := ProviderFor("github")
	if _, err := p.Resolve(map[string]string{"name": "Ghost"}); !errors.Is(err, ErrUnresolved) {
		t.Errorf("expected ErrUnresolved, got %v", err)
	}
}
