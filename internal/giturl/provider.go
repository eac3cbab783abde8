package giturl

import (
	"net/url"
	"strings"
)

// Provider identifies a known hosting provider, recognized by domain.
type Provider string

const (
	GitHub    Provider = "github"
	GitLab    Provider = "gitlab"
	Bitbucket Provider = "bitbucket"
	Generic   Provider = "generic"
)

// DetectProvider classifies a URL by its host. Anything unrecognized falls
// back to Generic, which still supports token-in-authority embedding.
func DetectProvider(u *url.URL) Provider {
	host := strings.ToLower(u.Hostname())

	switch {
	case strings.Contains(host, "github"):
		return GitHub
	case strings.Contains(host, "gitlab"):
		return GitLab
	case strings.Contains(host, "bitbucket"):
		return Bitbucket
	default:
		return Generic
	}
}

// WithToken returns a copy of the URL with the access token embedded in the
// authority component, using the provider's convention. ssh and scp-like
// URLs are returned unchanged; those authenticate with keys, not tokens.
func WithToken(u *url.URL, token string) *url.URL {
	if token == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return u
	}

	out := *u

	switch DetectProvider(u) {
	case GitLab:
		out.User = url.UserPassword("oauth2", token)
	case Bitbucket:
		out.User = url.UserPassword("x-token-auth", token)
	default:
		// GitHub and generic hosts accept the token as the username
		out.User = url.User(token)
	}

	return &out
}

// Redact replaces any userinfo in the URL with "***" for safe display.
func Redact(u *url.URL) string {
	if u.User == nil {
		return u.String()
	}

	out := *u
	out.User = url.User("***")

	return out.String()
}
