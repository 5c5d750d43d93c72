package session_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/config"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/session"
)

func newServer(store session.Store) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		sess.Set("user_logged_in", true)
		if err := sess.Save(w); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/whoami", func(w http.ResponseWriter, r *http.Request) {
		if session.FromCtx(r).GetBool("user_logged_in") {
			w.Write([]byte("in"))
			return
		}
		w.Write([]byte("out"))
	})
	return session.Middleware(store, session.DefaultOptions())(mux)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "stark_session" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestLoginRoundTrip(t *testing.T) {
	config.Set("SESSION_SECRET", "test-secret")
	h := newServer(session.NewMemoryStore())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Body.String() != "in" {
		t.Errorf("expected logged-in session, got %q", rec.Body.String())
	}
}

func TestCookieValueShape(t *testing.T) {
	config.Set("SESSION_SECRET", "test-secret")
	h := newServer(session.NewMemoryStore())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookie := sessionCookie(t, rec)

	id, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok || len(id) != 64 || len(sig) != 64 {
		t.Errorf("cookie should be <64-hex-id>.<64-hex-hmac>, got %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Error("cookie must be SameSite=Lax")
	}
}

func TestTamperedCookieRejected(t *testing.T) {
	config.Set("SESSION_SECRET", "test-secret")
	h := newServer(session.NewMemoryStore())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookie := sessionCookie(t, rec)

	// Flip the signature; the session ID no longer verifies.
	forged := &http.Cookie{Name: cookie.Name, Value: cookie.Value[:len(cookie.Value)-1] + "0"}
	if forged.Value == cookie.Value {
		forged.Value = cookie.Value[:len(cookie.Value)-1] + "1"
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(forged)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Body.String() != "out" {
		t.Error("tampered cookie must not resolve to a session")
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	store := session.NewMemoryStore()
	if err := store.Save("sid", map[string]interface{}{"k": "v"}, 10*time.Millisecond); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, ok := store.Load("sid"); !ok {
		t.Fatal("fresh session should load")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Load("sid"); ok {
		t.Error("expired session should not load")
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	store := session.NewMemoryStore()
	data := map[string]interface{}{"k": "v"}
	if err := store.Save("sid", data, time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, _ := store.Load("sid")
	loaded["k"] = "mutated"

	again, _ := store.Load("sid")
	if again["k"] != "v" {
		t.Error("store must hand out defensive copies")
	}
}
