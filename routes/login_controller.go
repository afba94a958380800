package routes

import (
	"net/http"
	"regexp"

	"github.com/gubvirtualgamingclub/vgs-backend/app"
	"github.com/gubvirtualgamingclub/vgs-backend/httpx"
	"github.com/gubvirtualgamingclub/vgs-backend/log"
)

// Login bridges HTTP basic auth onto the bearer server's password
// grant. Lockout is enforced inside the credentials verifier, so a
// locked account surfaces here as a plain 401.
func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok {
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "login.basic_auth")
			return
		}

		httpx.SetGrantBody(r, httpx.PasswordGrant(user, pass))
		app.UserCredentials(w, r)
	}
}

var reRefreshAuth = regexp.MustCompile(`(?i)^refresh\s+(.*)`)

func Refresh(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match := reRefreshAuth.FindStringSubmatch(r.Header.Get("authorization"))
		if len(match) == 0 {
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "refresh.token")
			return
		}

		req, err := httpx.GrantRequest(httpx.RefreshGrant(match[1]))
		if err != nil {
			httpx.LogStatus(w, http.StatusInternalServerError, log.DebugLevel, "refresh.new_request")
			return
		}

		resp := httpx.NewResponseBuffer()
		app.UserCredentials(resp, req)
		resp.Flush(w)
	}
}
