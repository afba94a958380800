package httpx

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// PasswordGrant builds the form body for the bearer server's password
// grant.
func PasswordGrant(username, password string) url.Values {
	return url.Values{
		"grant_type": {"password"},
		"username":   {username},
		"password":   {password},
	}
}

// RefreshGrant builds the form body for the refresh_token grant.
func RefreshGrant(token string) url.Values {
	return url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {token},
	}
}

// GrantRequest wraps a grant body in the POST the token endpoint is
// invoked with in-process.
func GrantRequest(grant url.Values) (*http.Request, error) {
	enc := grant.Encode()
	req, err := http.NewRequest("POST", "/", strings.NewReader(enc))
	if err != nil {
		return nil, err
	}
	setFormHeaders(req.Header, enc)
	return req, nil
}

// SetGrantBody swaps an incoming request's body for a grant, keeping
// the request and its context otherwise intact.
func SetGrantBody(r *http.Request, grant url.Values) {
	enc := grant.Encode()
	r.Body = io.NopCloser(strings.NewReader(enc))
	setFormHeaders(r.Header, enc)
}

func setFormHeaders(h http.Header, enc string) {
	h.Set("content-type", "application/x-www-form-urlencoded")
	h.Set("content-length", strconv.Itoa(len(enc)))
}
