package api

import (
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/auth"
)

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"
)

func authCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

func setAuthCookies(w http.ResponseWriter, tokens *auth.TokenPair) {
	http.SetCookie(w, authCookie(accessCookieName, tokens.Access, 0))
	http.SetCookie(w, authCookie(refreshCookieName, tokens.Refresh, 0))
}

func getAccessCookie(r *http.Request) (string, error) {
	accessCookie, err := r.Cookie(accessCookieName)
	if err != nil {
		return "", err
	}
	return accessCookie.Value, nil
}

func getRefreshFromCookie(r *http.Request) (string, error) {
	refreshCookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		return "", err
	}
	return refreshCookie.Value, nil
}

func clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, authCookie(accessCookieName, "", -1))
	http.SetCookie(w, authCookie(refreshCookieName, "", -1))
}
