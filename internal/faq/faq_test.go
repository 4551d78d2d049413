package faq

import (
	"strings"
	"testing"
)

func TestBestAnswerKeywordHit(t *testing.T) {
	p := NewKeyword(DefaultEntries())

	answer, ok := p.BestAnswer("what are your opening hours?")
	if !ok {
		t.Fatal("expected an answer for hours question")
	}
	if !strings.Contains(answer, "Monday") {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

func TestBestAnswerPriorityBeatsOverlap(t *testing.T) {
	p := NewKeyword(DefaultEntries())

	answer, ok := p.BestAnswer("can I return a part for a refund")
	if !ok || !strings.Contains(answer, "30 days") {
		t.Fatalf("expected return policy, got %q (%v)", answer, ok)
	}
}

func TestBestAnswerNoMatch(t *testing.T) {
	p := NewKeyword(DefaultEntries())

	if answer, ok := p.BestAnswer("xyzzy frobnicate"); ok {
		t.Fatalf("expected no answer, got %q", answer)
	}
}
