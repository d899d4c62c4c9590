// Package moderation screens user-submitted text against a blocklist of
// disallowed terms. It is the first line of defense against spam and abuse;
// anything it holds back still goes through human review.
package moderation

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
)

// Verdict is the outcome of a moderation check. Term is the first blocklist
// entry that matched; it is meant for logging, not for callers to act on.
type Verdict struct {
	Safe bool
	Term string
}

// Filter holds the normalized term list. It is built once at startup and
// never mutated afterward, so concurrent reads need no locking.
type Filter struct {
	terms []string
}

// New builds a filter from raw terms: trimmed, lowercased, blanks dropped.
func New(terms []string) *Filter {
	f := &Filter{terms: make([]string, 0, len(terms))}
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			f.terms = append(f.terms, t)
		}
	}
	return f
}

// Load reads a line-oriented blocklist file, one term per line. A missing or
// unreadable file yields an empty filter: moderation absence must never block
// legitimate submissions (fail-open).
func Load(path string) *Filter {
	file, err := os.Open(path)
	if err != nil {
		slog.Warn("blocklist not loaded, moderation inactive", "path", path, "error", err)
		return New(nil)
	}
	defer file.Close()

	var terms []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		terms = append(terms, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("blocklist read failed, moderation inactive", "path", path, "error", err)
		return New(nil)
	}

	f := New(terms)
	slog.Info("blocklist loaded", "terms", len(f.terms))
	return f
}

// TermCount reports how many terms are active.
func (f *Filter) TermCount() int { return len(f.terms) }

// Check tests the text for case-insensitive substring containment of each
// term in load order and returns unsafe on the first match. An empty filter
// approves everything.
func (f *Filter) Check(text string) Verdict {
	if len(f.terms) == 0 {
		return Verdict{Safe: true}
	}
	lowered := strings.ToLower(text)
	for _, term := range f.terms {
		if strings.Contains(lowered, term) {
			return Verdict{Safe: false, Term: term}
		}
	}
	return Verdict{Safe: true}
}
