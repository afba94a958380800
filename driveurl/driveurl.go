// Package driveurl rewrites Google Drive share links into direct
// download links, so images uploaded to Drive render inline on the
// public pages.
package driveurl

import (
	"net/url"
	"regexp"
	"strings"
)

var reFileID = regexp.MustCompile(`/file/d/([^/?#]+)`)

const directPrefix = "https://drive.google.com/uc?export=download&id="

// Direct converts a Drive share link to its direct-download form.
// Anything that is not recognizably a Drive link passes through
// unchanged.
func Direct(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !strings.HasSuffix(u.Hostname(), "drive.google.com") {
		return raw
	}

	if m := reFileID.FindStringSubmatch(u.Path); m != nil {
		return directPrefix + m[1]
	}
	if id := u.Query().Get("id"); id != "" {
		return directPrefix + id
	}
	return raw
}
