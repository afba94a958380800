package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/oauth"

	"github.com/gubvirtualgamingclub/vgs-backend/app"
	"github.com/gubvirtualgamingclub/vgs-backend/config"
	"github.com/gubvirtualgamingclub/vgs-backend/database"
	"github.com/gubvirtualgamingclub/vgs-backend/httpx"
	"github.com/gubvirtualgamingclub/vgs-backend/log"
	"github.com/gubvirtualgamingclub/vgs-backend/routes"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	err = database.EnsureAdmin(db, cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		log.Fatal("main.db.admin:", err)
	}

	verifier := httpx.CredentialsVerifier(db, httpx.LockoutPolicy{
		MaxAttempts: cfg.LoginAttempts,
		Window:      cfg.LoginLockout,
	})
	bearerServer := oauth.NewBearerServer(cfg.TokenSecret, cfg.TokenTTL, verifier, nil)

	handler := routes.Wire(app.New(db, bearerServer, cfg))

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
