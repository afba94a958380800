package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/oauth"

	"github.com/gubvirtualgamingclub/vgs-backend/httpx"
)

// Admin builds a middleware that checks for a valid bearer token
// carrying the 'admin' role.
func Admin(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return chi.Chain(oauth.Authorize(secret, nil), admin).Handler(next)
	}
}

func admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := r.Context().Value(oauth.ClaimsContext).(map[string]string)

		isAdmin := false
		if rolesClaim, ok := claims["roles"]; ok {
			roles := strings.Split(rolesClaim, ",")
			for _, role := range roles {
				if role == "admin" {
					isAdmin = true
					break
				}
			}
		}

		if !isAdmin {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// session holds the tokens a successful refresh grant hands back.
type session struct {
	accessToken  string
	refreshToken string
	expiresIn    int
}

// refreshSession exchanges a refresh token at the bearer server's
// token endpoint, in-process. The second return is the HTTP status of
// the exchange.
func refreshSession(bearerServer *oauth.BearerServer, token string) (session, int) {
	req, err := httpx.GrantRequest(httpx.RefreshGrant(token))
	if err != nil {
		return session{}, http.StatusInternalServerError
	}

	resp := httpx.NewResponseBuffer()
	bearerServer.UserCredentials(resp, req)
	if resp.Status() != http.StatusOK {
		return session{}, resp.Status()
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return session{}, http.StatusInternalServerError
	}
	access, _ := body["access_token"].(string)
	refresh, _ := body["refresh_token"].(string)
	expires, _ := body["expires_in"].(float64)
	if access == "" || refresh == "" {
		return session{}, http.StatusInternalServerError
	}
	return session{accessToken: access, refreshToken: refresh, expiresIn: int(expires)}, http.StatusOK
}

func sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Path:     "/",
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		SameSite: http.SameSiteNoneMode,
	}
}

// CookieAuth bridges the admin dashboard's cookie session onto the
// bearer server: a GET with a valid access_token cookie passes
// through, an expired one is refreshed transparently, and anything
// else redirects to the login page.
func CookieAuth(bearerServer *oauth.BearerServer) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != "GET" {
				h.ServeHTTP(w, r)
				return
			}

			token, err := r.Cookie("access_token")
			if err != nil && !errors.Is(err, http.ErrNoCookie) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if err == nil {
				r.Header.Set("authorization", "Bearer "+token.Value)
				buf := httpx.NewResponseBuffer()
				h.ServeHTTP(buf, r)
				if buf.Status() != http.StatusUnauthorized {
					buf.Flush(w)
					return
				}
			}

			loginLocation := "/login?goto=" + url.QueryEscape(r.RequestURI)

			// access token was empty or unauthorized
			refreshToken, err := r.Cookie("refresh_token")
			if err != nil {
				if !errors.Is(err, http.ErrNoCookie) {
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				// no refresh token either: back to the login page
				w.Header().Set("location", loginLocation)
				w.WriteHeader(http.StatusTemporaryRedirect)
				return
			}

			s, status := refreshSession(bearerServer, refreshToken.Value)
			if status == http.StatusUnauthorized {
				// stale refresh token: drop it and go to the login page
				http.SetCookie(w, sessionCookie("refresh_token", "", -1))
				w.Header().Set("location", loginLocation)
				w.WriteHeader(http.StatusTemporaryRedirect)
				return
			}
			if status != http.StatusOK {
				http.Error(w, http.StatusText(status), status)
				return
			}

			http.SetCookie(w, sessionCookie("access_token", s.accessToken, s.expiresIn))
			http.SetCookie(w, sessionCookie("refresh_token", s.refreshToken, 60*60*24*365))

			r.Header.Set("authorization", "Bearer "+s.accessToken)
			h.ServeHTTP(w, r)
		})
	}
}
