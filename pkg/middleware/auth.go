package middleware

import (
	"net/http"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/response"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/session"
)

// SessionFlagRequired gates a route on a boolean session flag. The check runs
// before any data access and has no side effects on failure: a missing or
// false flag short-circuits with 401 {"error":"Unauthorized"}.
//
// Admin and user flags are independent; holding one never satisfies a route
// gated on the other.
func SessionFlagRequired(flag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.FromCtx(r).GetBool(flag) {
				response.Unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
