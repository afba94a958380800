package database

import (
	"database/sql"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates the bootstrap admin account if no user with that
// name exists yet. An already-provisioned account is left untouched, so
// rotating the flag later has no effect.
func EnsureAdmin(db *sql.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var exists bool
	err := db.QueryRow(`SELECT TRUE FROM admin_user WHERE username = $1`, username).Scan(&exists)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return errors.Wrap(err, "lookup admin user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}

	_, err = db.Exec(
		`INSERT INTO admin_user (username, password_hash) VALUES ($1, $2)`,
		username, string(hash),
	)
	return errors.Wrap(err, "insert admin user")
}
