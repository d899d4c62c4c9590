package services

import (
	"testing"

	"github.com/devforge/devforge-backend/internal/identity"
	"github.com/devforge/devforge-backend/internal/models"
)

func strptr(s string) *string { return &s }

func TestMergeReturning_ConservativeGapFill(t *testing.T) {
	// A populated avatar survives a repeat login with a different one.
	user := models.User{
		Name:      "Alice",
		Email:     "alice@example.com",
		AvatarURL: "https://avatars.example.com/original.png",
	}
	changed := mergeReturning(&user, identity.Identity{
		Provider:  "google",
		Email:     "alice@example.com",
		Name:      "Alice Updated",
		AvatarURL: "https://avatars.example.com/new.png",
	})
	if changed {
		t.Error("nothing should change when all fields are already populated")
	}
	if user.AvatarURL != "https://avatars.example.com/original.png" {
		t.Errorf("avatar was overwritten: %q", user.AvatarURL)
	}
	if user.Name != "Alice" {
		t.Errorf("name must never be refreshed on repeat login, got %q", user.Name)
	}
}

func TestMergeReturning_FillsBlankAvatar(t *testing.T) {
	user := models.User{Email: "bob@example.com"}
	changed := mergeReturning(&user, identity.Identity{
		Email:     "bob@example.com",
		AvatarURL: "https://avatars.example.com/bob.png",
	})
	if !changed || user.AvatarURL != "https://avatars.example.com/bob.png" {
		t.Errorf("blank avatar should be filled, got %q (changed=%v)", user.AvatarURL, changed)
	}
}

func TestMergeReturning_AttachesGithubHandleOnce(t *testing.T) {
	user := models.User{Email: "carol@example.com"}

	changed := mergeReturning(&user, identity.Identity{
		Email:          "carol@example.com",
		GithubUsername: strptr("carol-dev"),
	})
	if !changed || user.GithubUsername == nil || *user.GithubUsername != "carol-dev" {
		t.Fatal("a first github login should attach the handle")
	}

	// A later login must not replace an attached handle.
	changed = mergeReturning(&user, identity.Identity{
		Email:          "carol@example.com",
		GithubUsername: strptr("someone-else"),
	})
	if changed || *user.GithubUsername != "carol-dev" {
		t.Error("an existing handle must never be replaced")
	}
}

func TestMergeReturning_NeverTouchesProgression(t *testing.T) {
	user := models.User{
		Email:          "dev@example.com",
		XPTotal:        1200,
		Level:          "PLENO I",
		OnboardingDone: true,
	}
	mergeReturning(&user, identity.Identity{
		Email:     "dev@example.com",
		AvatarURL: "https://avatars.example.com/x.png",
	})
	if user.XPTotal != 1200 || user.Level != "PLENO I" || !user.OnboardingDone {
		t.Error("reconciliation must not alter XP, level or onboarding state")
	}
}
