package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash redirects requests with a trailing slash to the path without it.
// The root path "/" is preserved and leading slashes collapse to one, so the
// target always stays on the current host. Only GET and HEAD are redirected so form
// submissions are never rewritten.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") && isSafe(r.Method) {
				redirect(w, r, strings.TrimRight(r.URL.Path, "/"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	target = "/" + strings.TrimLeft(target, "/")
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func isSafe(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}
