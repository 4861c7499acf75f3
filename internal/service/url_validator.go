package service

import (
	"net/url"
	"strings"
)

// WebhookURLValidator implements ports.URLValidator.
// Only absolute https URLs with a host are deliverable; plain http is accepted
// when allowInsecure is set.
type WebhookURLValidator struct {
	allowInsecure bool
}

// NewWebhookURLValidator creates a URL validator.
func NewWebhookURLValidator(allowInsecure bool) *WebhookURLValidator {
	return &WebhookURLValidator{allowInsecure: allowInsecure}
}

// Valid reports whether rawURL may receive deliveries.
func (v *WebhookURLValidator) Valid(rawURL string) bool {
	if rawURL == "" || strings.TrimSpace(rawURL) != rawURL {
		return false
	}
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "https":
	case "http":
		if !v.allowInsecure {
			return false
		}
	default:
		return false
	}
	// Credentials embedded in the URL would leak into logs and proxies.
	if u.User != nil {
		return false
	}
	return u.Hostname() != ""
}
