package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gubvirtualgamingclub/vgs-backend/app"
	"github.com/gubvirtualgamingclub/vgs-backend/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	admin := middlewares.Admin(app.TokenSecret)

	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app, admin))
	root.Get("/register/{slug}", RegisterPage(app))

	root.
		With(middlewares.CookieAuth(app.BearerServer), admin).
		Mount("/admin", servePrivateFiles("/admin"))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App, admin func(http.Handler) http.Handler) http.Handler {
	api := chi.NewRouter()

	// registration flow
	api.Get("/forms/{slug}", PublicGetFormBySlug(app))
	api.Post("/forms/{slug}/submissions", PublicSubmitRegistration(app))
	api.Get("/payment-methods", PublicListPaymentMethods(app))

	// public site content
	api.Get("/activities", PublicListActivities(app))
	api.Get("/games", PublicListGames(app))
	api.Get("/committee", PublicListCommittee(app))
	api.Get("/sponsors", PublicListSponsors(app))
	api.Post("/contact", PublicCreateContactMessage(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(admin)

		// CRUD registration forms (fields committed with the form)
		r.Post("/forms", CreateForm(app))
		r.Get("/forms", ListForms(app))
		r.Get(`/forms/{id:^\d+$}`, GetFormById(app))
		r.Put(`/forms/{id:^\d+$}`, UpdateForm(app))
		r.Delete(`/forms/{id:^\d+$}`, DeleteForm(app))

		r.Get(`/forms/{id:^\d+$}/submissions`, GetFormSubmissions(app))
		r.Get(`/forms/{id:^\d+$}/submissions/count`, CountFormSubmissions(app))

		// payment methods
		r.Post("/payment-methods", CreatePaymentMethod(app))
		r.Get("/payment-methods", ListPaymentMethods(app))
		r.Put(`/payment-methods/{id:^\d+$}`, UpdatePaymentMethod(app))
		r.Put(`/payment-methods/{id:^\d+$}/active`, TogglePaymentMethod(app))
		r.Delete(`/payment-methods/{id:^\d+$}`, DeletePaymentMethod(app))

		// site content
		r.Post("/activities", CreateActivity(app))
		r.Put(`/activities/{id:^\d+$}`, UpdateActivity(app))
		r.Delete(`/activities/{id:^\d+$}`, DeleteActivity(app))

		r.Post("/games", CreateGame(app))
		r.Put(`/games/{id:^\d+$}`, UpdateGame(app))
		r.Delete(`/games/{id:^\d+$}`, DeleteGame(app))

		r.Post("/committee", CreateCommitteeMember(app))
		r.Put(`/committee/{id:^\d+$}`, UpdateCommitteeMember(app))
		r.Delete(`/committee/{id:^\d+$}`, DeleteCommitteeMember(app))

		r.Post("/sponsors", CreateSponsor(app))
		r.Put(`/sponsors/{id:^\d+$}`, UpdateSponsor(app))
		r.Delete(`/sponsors/{id:^\d+$}`, DeleteSponsor(app))

		r.Get("/contact-messages", ListContactMessages(app))
		r.Delete(`/contact-messages/{id:^\d+$}`, DeleteContactMessage(app))
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}

func servePrivateFiles(path string) http.Handler {
	return http.StripPrefix(path, http.FileServer(http.Dir("private")))
}
