// Package server exposes Rogo's question-generation engine over HTTP
// (spec §6.1).
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vocab-tuister/core/accido"
	"golang.org/x/sync/singleflight"
)

const sessionCookieName = "vocab-tuister-session"

// clientState is the per-client held state (spec §5 "Ordering": at most one
// pending VocabList per client identity, writers never observed half-parsed).
type clientState struct {
	mu    sync.RWMutex
	words []accido.Word
	text  string
}

// Store holds one VocabList per client connection identity, keyed by an
// opaque cookie token (spec §9 "Global mutable state... pass the handle
// through request context rather than via ambient globals"). A
// singleflight.Group deduplicates concurrent /session draws for the same
// token, since the per-process RNG must serialize draws deterministically
// under a fixed seed (spec §5 "Shared resources" (a)).
type Store struct {
	mu      sync.RWMutex
	clients map[string]*clientState
	draws   singleflight.Group
}

// NewStore builds an empty client store.
func NewStore() *Store {
	return &Store{clients: make(map[string]*clientState)}
}

// ClientToken extracts the session token from the request, minting and
// setting one via Set-Cookie if absent.
func ClientToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	token := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return token
}

func (s *Store) state(token string) *clientState {
	s.mu.RLock()
	st, ok := s.clients[token]
	s.mu.RUnlock()
	if ok {
		return st
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.clients[token]; ok {
		return st
	}
	st = &clientState{}
	s.clients[token] = st
	return st
}

// SetVocabList commits a newly parsed vocab list atomically under a
// single-writer lock (spec §5: "concurrent /send-vocab from the same client
// overwrite under a single-writer lock").
func (s *Store) SetVocabList(token string, words []accido.Word, text string) {
	st := s.state(token)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.words = words
	st.text = text
}

// VocabList returns the held words for token, or ok=false if none has been
// committed yet (spec §6.1 "Vocab list has not been provided.").
func (s *Store) VocabList(token string) (words []accido.Word, ok bool) {
	st := s.state(token)
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.words == nil {
		return nil, false
	}
	return st.words, true
}

// Draw runs fn at most once per token for any set of concurrent callers
// racing to sample the same session, so the shared RNG's draw sequence
// under a fixed seed stays deterministic per §8 P6 even under concurrent
// `/session` calls from the same client.
func (s *Store) Draw(token string, fn func() (any, error)) (any, error) {
	v, err, _ := s.draws.Do(token, fn)
	return v, err
}
