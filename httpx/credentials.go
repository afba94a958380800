package httpx

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/oauth"
	"golang.org/x/crypto/bcrypt"
)

// ErrLockedOut is returned while a username is under lockout; the
// bearer server reports it as a plain unauthorized response.
var ErrLockedOut = errors.New("too many failed attempts, try again later")

// LockoutPolicy caps consecutive failed logins: MaxAttempts failures
// within Window lock the username out for Window.
type LockoutPolicy struct {
	MaxAttempts int
	Window      time.Duration
}

type credentialsVerifier struct {
	db    *sql.DB
	guard *loginGuard
}

func CredentialsVerifier(db *sql.DB, policy LockoutPolicy) oauth.CredentialsVerifier {
	return &credentialsVerifier{db: db, guard: newLoginGuard(policy)}
}

func (cs *credentialsVerifier) ValidateUser(username string, password string, scope string, r *http.Request) error {
	if cs.guard.locked(username) {
		return ErrLockedOut
	}

	var hash []byte
	err := cs.db.
		QueryRow("SELECT password_hash FROM admin_user WHERE username = $1", username).
		Scan(&hash)
	if err != nil {
		cs.guard.fail(username)
		return err
	}

	err = bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err != nil {
		cs.guard.fail(username)
		return err
	}

	cs.guard.reset(username)
	return nil
}

func (cs *credentialsVerifier) StoreTokenID(tokenType oauth.TokenType, credential string, tokenID string, refreshTokenID string) error {
	_, err := cs.db.Exec(
		"INSERT INTO token (username, token_id, refresh_token_id, expiration) VALUES ($1, $2, $3, $4)",
		credential,
		tokenID,
		refreshTokenID,
		time.Now().Add(8760*time.Hour),
	)
	return err
}

func (cs *credentialsVerifier) ValidateTokenID(tokenType oauth.TokenType, credential string, tokenID string, refreshTokenID string) error {
	var expiration time.Time
	var ok bool

	cs.db.
		QueryRow(`
			DELETE FROM token
			WHERE username = $1
				AND token_id = $2
				AND refresh_token_id = $3
			RETURNING expiration, TRUE`,
			credential,
			tokenID,
			refreshTokenID,
		).
		Scan(&expiration, &ok)
	if !ok {
		return errors.New("could not refresh")
	}

	if expiration.Before(time.Now()) {
		return errors.New("could not refresh")
	}
	return nil
}

func (*credentialsVerifier) AddClaims(tokenType oauth.TokenType, credential string, tokenID string, scope string, r *http.Request) (map[string]string, error) {
	return map[string]string{"roles": "admin"}, nil
}

func (*credentialsVerifier) AddProperties(tokenType oauth.TokenType, credential string, tokenID string, scope string, r *http.Request) (map[string]string, error) {
	return map[string]string{}, nil
}

func (*credentialsVerifier) ValidateClient(clientID string, clientSecret string, scope string, r *http.Request) error {
	return errors.New("not supported")
}
