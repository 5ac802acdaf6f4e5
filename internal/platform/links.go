package platform

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNotALink is returned for payloads that cannot be opened externally
var ErrNotALink = errors.New("not an openable link")

// openableSchemes are handed to the OS as-is
var openableSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"tel":    true,
	"mailto": true,
}

// ParseLink validates payload as an openable link
func ParseLink(payload string) (*url.URL, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, ErrNotALink
	}

	u, err := url.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotALink, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if !openableSchemes[scheme] {
		return nil, fmt.Errorf("%w: scheme %q", ErrNotALink, u.Scheme)
	}
	if (scheme == "http" || scheme == "https") && u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrNotALink)
	}
	if (scheme == "tel" || scheme == "mailto") && u.Opaque == "" && u.Path == "" {
		return nil, fmt.Errorf("%w: missing target", ErrNotALink)
	}

	return u, nil
}

// IsOpenable reports whether ParseLink accepts payload
func IsOpenable(payload string) bool {
	_, err := ParseLink(payload)
	return err == nil
}
