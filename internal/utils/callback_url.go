package utils

import (
	"net/url"
	"strings"
)

// SafeCallbackPath returns callback if it is a local absolute path, and "/"
// otherwise. Only same-origin targets are allowed after sign-in.
func SafeCallbackPath(callback string) string {
	if callback == "" || !strings.HasPrefix(callback, "/") || strings.HasPrefix(callback, "//") || strings.HasPrefix(callback, "/\\") {
		return "/"
	}
	u, err := url.Parse(callback)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return callback
}

// WithLoginStatus appends the post-login status parameters to a callback path.
func WithLoginStatus(callback, provider string) string {
	u, err := url.Parse(SafeCallbackPath(callback))
	if err != nil {
		return "/"
	}
	q := u.Query()
	q.Set("status", "login_success")
	q.Set("provider", provider)
	u.RawQuery = q.Encode()
	return u.String()
}
