package access

import "strings"

// DomainContext classifies the hostname a request arrived on. Production
// serves the marketing site on the apex domain and the chat application on
// the chat subdomain; local development collapses both onto one origin,
// optionally emulating the subdomain through chat.localhost.
type DomainContext struct {
	ChatSubdomain bool
	LocalDev      bool
}

// Marketing reports whether the request reached the public apex domain.
func (d DomainContext) Marketing() bool {
	return !d.ChatSubdomain && !d.LocalDev
}

// ClassifyHostname derives the domain context from the request hostname.
func ClassifyHostname(hostname string) DomainContext {
	return DomainContext{
		ChatSubdomain: strings.HasPrefix(hostname, "chat."),
		LocalDev:      strings.Contains(hostname, "localhost") || strings.Contains(hostname, "127.0.0.1"),
	}
}
