package mem

import (
	"testing"
	"time"
)

func TestConsumeReturnsBoundEmail(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok-1", "ana@cargocal.test", time.Minute)

	if got := s.Consume("tok-1"); got != "ana@cargocal.test" {
		t.Fatalf("Consume = %q", got)
	}
}

func TestConsumeIsSingleUse(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok-1", "ana@cargocal.test", time.Minute)

	s.Consume("tok-1")
	if got := s.Consume("tok-1"); got != "" {
		t.Fatalf("second consume must miss, got %q", got)
	}
}

func TestConsumeUnknownToken(t *testing.T) {
	s := NewResetTokens()
	if got := s.Consume("nope"); got != "" {
		t.Fatalf("unknown token must miss, got %q", got)
	}
}

func TestConsumeExpiredToken(t *testing.T) {
	s := NewResetTokens()
	s.Set("tok-1", "ana@cargocal.test", -time.Second)

	if got := s.Consume("tok-1"); got != "" {
		t.Fatalf("expired token must miss, got %q", got)
	}
}
