package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gubvirtualgamingclub/vgs-backend/app"
	"github.com/gubvirtualgamingclub/vgs-backend/httpx"
	"github.com/gubvirtualgamingclub/vgs-backend/log"
)

// RegisterPage serves the server-rendered registration page for a
// game. Missing and inactive forms both get the fixed offline page.
func RegisterPage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		frm, found, err := fetchFormWhere(r.Context(), app.DB, "s.game_slug = $1", slug)
		if err != nil {
			httpx.LogInternalError(w, "db.get_form", err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if offline(frm, found) {
			log.Debugf("register_page.offline: %s", slug)
			w.WriteHeader(http.StatusNotFound)
			if err := app.Renderer.OfflinePage(w); err != nil {
				log.Errorf("render.offline_page: %s", err)
			}
			return
		}

		methods, err := fetchPaymentMethods(r.Context(), app.DB, true)
		if err != nil {
			httpx.LogInternalError(w, "db.get_payment_methods", err)
			return
		}

		if err := app.Renderer.RegisterPage(w, frm, methods); err != nil {
			log.Errorf("render.register_page: %s", err)
		}
	}
}
