package app

import (
	"database/sql"

	"github.com/go-chi/oauth"
	"github.com/go-playground/validator/v10"

	"github.com/gubvirtualgamingclub/vgs-backend/config"
	"github.com/gubvirtualgamingclub/vgs-backend/form"
	"github.com/gubvirtualgamingclub/vgs-backend/relay"
)

// App bundles everything a request handler needs. Handlers take it by
// value; all members are safe for concurrent use.
type App struct {
	*sql.DB
	*oauth.BearerServer
	config.Config

	Renderer *form.Renderer
	Relay    *relay.Client
	Validate *validator.Validate
}

func New(db *sql.DB, bearer *oauth.BearerServer, cfg config.Config) App {
	return App{
		DB:           db,
		BearerServer: bearer,
		Config:       cfg,
		Renderer:     form.NewRenderer(),
		Relay:        relay.NewClient(),
		Validate:     validator.New(),
	}
}
