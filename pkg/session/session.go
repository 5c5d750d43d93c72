// Package session provides server-side HTTP sessions keyed by a signed
// opaque cookie token.
//
// The cookie value is "<id>.<hmac>" where the HMAC is computed over the
// random session ID with SESSION_SECRET. A tampered cookie fails
// verification and is treated as no session at all; all state lives in the
// Store, never in the cookie.
//
// Usage (middleware):
//
//	r.Use(session.Middleware(store, session.DefaultOptions()))
//
// Usage (handler):
//
//	sess := session.FromCtx(r)
//	sess.Set("admin_logged_in", true)
//	sess.Save(w)
package session

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/config"
)

// Options configures session behaviour.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns the storefront defaults. The cookie is same-site
// only; set SESSION_SECURE=true behind TLS.
func DefaultOptions() Options {
	return Options{
		CookieName: "stark_session",
		TTL:        2 * time.Hour,
		HTTPOnly:   true,
		Secure:     config.Get("SESSION_SECURE", "false") == "true",
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

type ctxKey struct{}

// Session is an in-request session handle.
type Session struct {
	id      string
	data    map[string]interface{}
	store   Store
	opts    Options
	changed bool
}

// newID generates a cryptographically random 32-byte hex session ID.
func newID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// sign computes the cookie HMAC for a session ID.
func sign(id string) string {
	mac := hmac.New(sha256.New, []byte(config.SessionSecret()))
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}

// verifyToken splits and checks a cookie value, returning the session ID.
func verifyToken(token string) (string, bool) {
	id, sig, ok := strings.Cut(token, ".")
	if !ok || id == "" {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(sig), []byte(sign(id))) != 1 {
		return "", false
	}
	return id, true
}

// Set stores a value under key in the session.
func (s *Session) Set(key string, value interface{}) {
	s.data[key] = value
	s.changed = true
}

// Get retrieves a value from the session.
func (s *Session) Get(key string) (interface{}, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetBool retrieves a boolean flag; absent or non-bool values read as false.
func (s *Session) GetBool(key string) bool {
	v, ok := s.data[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Delete removes a key from the session.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.changed = true
}

// Invalidate destroys the session state (logout).
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.changed = true
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Save persists the session to the store and writes the signed cookie.
func (s *Session) Save(w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	if err := s.store.Save(s.id, s.data, s.opts.TTL); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    s.id + "." + sign(s.id),
		Path:     s.opts.Path,
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	s.changed = false
	return nil
}

// Middleware loads (or creates) the session for every request and injects it
// into the request context. Handlers call session.FromCtx(r) to access it.
func Middleware(store Store, opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{store: store, opts: opts}

			if cookie, err := r.Cookie(opts.CookieName); err == nil {
				if id, ok := verifyToken(cookie.Value); ok {
					sess.id = id
					if data, found := store.Load(id); found {
						sess.data = data
					}
				}
			}
			if sess.id == "" {
				id, err := newID()
				if err != nil {
					next.ServeHTTP(w, r)
					return
				}
				sess.id = id
			}
			if sess.data == nil {
				sess.data = map[string]interface{}{}
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromCtx retrieves the session from the request context.
// Returns an empty throwaway session if none is present.
func FromCtx(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	id, _ := newID()
	return &Session{id: id, data: map[string]interface{}{}, store: NewMemoryStore(), opts: DefaultOptions()}
}
