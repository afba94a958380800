package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/gubvirtualgamingclub/vgs-backend/config"
)

func Open(cfg config.Config) (db *sql.DB, err error) {
	db, err = sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	// db tuning options
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
