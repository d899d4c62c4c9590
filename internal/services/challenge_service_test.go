package services

import (
	"strings"
	"testing"

	"github.com/devforge/devforge-backend/internal/models"
	"github.com/devforge/devforge-backend/internal/moderation"
)

func TestChallengeText_CoversAllUserAuthoredFields(t *testing.T) {
	ch := models.Challenge{
		Title:                  "Encurtador de URLs",
		Context:                "Uma startup de marketing precisa encurtar links.",
		FunctionalRequirements: "Criar e redirecionar links.",
		TechnicalRequirements:  "API REST com testes.",
	}
	text := challengeText(&ch)
	for _, field := range []string{ch.Title, ch.Context, ch.FunctionalRequirements, ch.TechnicalRequirements} {
		if !strings.Contains(text, field) {
			t.Errorf("moderation sweep misses field content %q", field)
		}
	}
}

func TestModerationVerdictDrivesStatus(t *testing.T) {
	filter := moderation.New([]string{"spam"})

	unsafe := models.Challenge{
		Title:   "Ganhe dinheiro",
		Context: "this is not SPAM-free, but a long enough story",
	}
	if v := filter.Check(challengeText(&unsafe)); v.Safe {
		t.Fatal("expected unsafe verdict for blocklisted content")
	}

	safe := models.Challenge{
		Title:   "API de pagamentos",
		Context: "Um marketplace precisa liquidar repasses com segurança.",
	}
	if v := filter.Check(challengeText(&safe)); !v.Safe {
		t.Fatalf("expected safe verdict, matched %q", v.Term)
	}
}
