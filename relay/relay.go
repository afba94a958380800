// Package relay forwards a flattened copy of each submission to the
// form's spreadsheet webhook. The forward is best-effort by contract:
// Send has no return value, so callers cannot branch on its outcome.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gubvirtualgamingclub/vgs-backend/form"
	"github.com/gubvirtualgamingclub/vgs-backend/log"
	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

type Client struct {
	http *http.Client
}

// NewClient uses the default transport with no client-side timeout,
// matching the original fire-and-forget POST.
func NewClient() *Client {
	return &Client{http: &http.Client{}}
}

// Flatten rewrites an answer map from field-id keys to human-readable
// label keys and appends the two synthetic payment entries. Checkbox
// answers are joined into one cell.
func Flatten(frm model.RegistrationForm, answers map[string]any, methodName, transactionID string) map[string]string {
	flat := make(map[string]string, len(frm.Fields)+2)
	for _, f := range frm.Fields {
		flat[f.Label] = form.Text(answers[f.ID])
	}
	flat["Payment Method"] = methodName
	flat["Transaction ID"] = transactionID
	return flat
}

// Send posts the payload as JSON to the webhook. Every failure mode —
// bad URL, network error, non-2xx status — is logged and swallowed;
// nothing is reported back. An empty URL means the form has no relay
// configured and is a silent no-op.
func (c *Client) Send(ctx context.Context, url string, payload map[string]string) {
	if url == "" {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Warnf("relay.marshal: %s", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Warnf("relay.request: %s", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warnf("relay.send: %s", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debugf("relay.send: webhook answered %d", resp.StatusCode)
	}
}
