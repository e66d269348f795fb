package access

import "strings"

// RouteClass categorizes a request path for access-control purposes.
type RouteClass int

const (
	RouteOther RouteClass = iota
	RouteRoot
	RouteProtectedChat
	RouteLoginOrRegister
)

// Paths that require a valid session when reached through a context that
// enforces authentication.
var protectedChatPrefixes = []string{
	"/chat",
	"/api/chat",
	"/api/history",
	"/api/document",
	"/api/files",
	"/api/suggestions",
	"/api/vote",
}

// ClassifyRoute derives the route class from the request path.
func ClassifyRoute(path string) RouteClass {
	if path == "/" {
		return RouteRoot
	}
	if path == "/login" || path == "/register" {
		return RouteLoginOrRegister
	}
	for _, prefix := range protectedChatPrefixes {
		if strings.HasPrefix(path, prefix) {
			return RouteProtectedChat
		}
	}
	return RouteOther
}
