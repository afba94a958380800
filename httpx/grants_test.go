package httpx

import (
	"net/http/httptest"
	"testing"
)

func TestGrantRequestEncoding(t *testing.T) {
	req, err := GrantRequest(RefreshGrant("tok-1"))
	if err != nil {
		t.Fatal(err)
	}

	if req.Method != "POST" {
		t.Errorf("method: %s", req.Method)
	}
	if ct := req.Header.Get("content-type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("content type: %q", ct)
	}
	if err := req.ParseForm(); err != nil {
		t.Fatal(err)
	}
	if req.PostForm.Get("grant_type") != "refresh_token" {
		t.Errorf("grant_type: %q", req.PostForm.Get("grant_type"))
	}
	if req.PostForm.Get("refresh_token") != "tok-1" {
		t.Errorf("refresh_token: %q", req.PostForm.Get("refresh_token"))
	}
}

func TestSetGrantBodySwapsAnIncomingRequest(t *testing.T) {
	r := httptest.NewRequest("POST", "/login", nil)
	SetGrantBody(r, PasswordGrant("admin", "hunter2"))

	if err := r.ParseForm(); err != nil {
		t.Fatal(err)
	}
	if r.PostForm.Get("grant_type") != "password" {
		t.Errorf("grant_type: %q", r.PostForm.Get("grant_type"))
	}
	if r.PostForm.Get("username") != "admin" || r.PostForm.Get("password") != "hunter2" {
		t.Errorf("credentials not carried: %v", r.PostForm)
	}
}
