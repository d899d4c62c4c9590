package moderation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheck_CaseInsensitiveSubstring(t *testing.T) {
	f := New([]string{"spam"})

	v := f.Check("this is not SPAM-free")
	if v.Safe {
		t.Fatal("expected unsafe verdict")
	}
	if v.Term != "spam" {
		t.Errorf("expected offending term %q, got %q", "spam", v.Term)
	}

	if v := f.Check("a perfectly clean challenge brief"); !v.Safe {
		t.Errorf("expected safe verdict, got unsafe on %q", v.Term)
	}
}

func TestCheck_EmptyFilterApprovesEverything(t *testing.T) {
	f := New(nil)
	if v := f.Check("spam scam anything at all"); !v.Safe {
		t.Fatal("empty blocklist must fail open")
	}
}

func TestCheck_FirstMatchWins(t *testing.T) {
	f := New([]string{"scam", "spam"})
	v := f.Check("spam and scam in one line")
	if v.Safe || v.Term != "scam" {
		t.Errorf("expected first term in load order to win, got %+v", v)
	}
}

func TestNew_NormalizesTerms(t *testing.T) {
	f := New([]string{"  SPAM  ", "", "   ", "Golpe"})
	if f.TermCount() != 2 {
		t.Fatalf("expected 2 terms after normalization, got %d", f.TermCount())
	}
	if v := f.Check("um golpe qualquer"); v.Safe {
		t.Error("expected lowercased term to match")
	}
}

func TestLoad_FileAndFallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blocklist.txt")
	content := "spam\n\nScam\n   \npirâmide financeira\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f := Load(path)
	if f.TermCount() != 3 {
		t.Fatalf("expected 3 terms, got %d", f.TermCount())
	}
	if v := f.Check("invista na PIRÂMIDE FINANCEIRA"); v.Safe {
		t.Error("expected multi-word term to match")
	}

	// Missing file is not an error, just an inactive filter.
	missing := Load(filepath.Join(dir, "nope.txt"))
	if missing.TermCount() != 0 {
		t.Fatalf("expected empty filter for missing file, got %d terms", missing.TermCount())
	}
	if v := missing.Check("spam"); !v.Safe {
		t.Error("missing blocklist must fail open")
	}
}
