package mem

import (
	"sync"
	"time"
)

type ResetTokenStore interface {
	Set(token string, accountEmail string, ttl time.Duration)

	// Consume returns the email bound to token if not expired, and
	// removes the token (single-use). Returns "" if missing/expired.
	Consume(token string) string
}

type tokenEntry struct {
	email     string
	expiresAt time.Time
}

type ResetTokens struct {
	mu   sync.Mutex
	data map[string]tokenEntry
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{
		data: make(map[string]tokenEntry),
	}
}

func (s *ResetTokens) Set(token string, accountEmail string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = tokenEntry{
		email:     accountEmail,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ResetTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	delete(s.data, token)
	if !ok || time.Now().After(e.expiresAt) {
		return ""
	}
	return e.email
}
