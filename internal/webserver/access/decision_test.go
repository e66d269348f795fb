package access_test

import (
	"net/http"
	"testing"

	"github.com/cortheos/cortheos/internal/webserver/access"
)

func TestClassifyHostname(t *testing.T) {
	var cases = []struct {
		name     string
		hostname string
		expected access.DomainContext
	}{
		{"Apex domain", "cortheos.com", access.DomainContext{}},
		{"Chat subdomain", "chat.cortheos.com", access.DomainContext{ChatSubdomain: true}},
		{"Localhost", "localhost:3000", access.DomainContext{LocalDev: true}},
		{"Loopback address", "127.0.0.1:3000", access.DomainContext{LocalDev: true}},
		{"Chat subdomain emulation on localhost", "chat.localhost:3000", access.DomainContext{ChatSubdomain: true, LocalDev: true}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if result := access.ClassifyHostname(tcase.hostname); result != tcase.expected {
				t.Errorf("Expected %+v, got %+v", tcase.expected, result)
			}
		})
	}
}

func TestClassifyRoute(t *testing.T) {
	var cases = []struct {
		name     string
		path     string
		expected access.RouteClass
	}{
		{"Root", "/", access.RouteRoot},
		{"Login", "/login", access.RouteLoginOrRegister},
		{"Register", "/register", access.RouteLoginOrRegister},
		{"Chat root", "/chat", access.RouteProtectedChat},
		{"Chat conversation", "/chat/42", access.RouteProtectedChat},
		{"Chat API", "/api/chat", access.RouteProtectedChat},
		{"History API", "/api/history", access.RouteProtectedChat},
		{"Documents API", "/api/document/7", access.RouteProtectedChat},
		{"Files API", "/api/files/upload", access.RouteProtectedChat},
		{"Suggestions API", "/api/suggestions", access.RouteProtectedChat},
		{"Votes API", "/api/vote", access.RouteProtectedChat},
		{"About page", "/about", access.RouteOther},
		{"Signup API", "/api/auth/signup", access.RouteOther},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if result := access.ClassifyRoute(tcase.path); result != tcase.expected {
				t.Errorf("Expected %d, got %d", tcase.expected, result)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	var (
		production = access.DomainContext{}
		chat       = access.DomainContext{ChatSubdomain: true}
		chatLocal  = access.DomainContext{ChatSubdomain: true, LocalDev: true}
		local      = access.DomainContext{LocalDev: true}
	)

	var cases = []struct {
		name     string
		request  access.Request
		expected access.Action
	}{
		{
			"Health check bypasses everything",
			access.Request{Domain: chat, Route: access.RouteOther, Path: "/ping"},
			access.Action{Kind: access.ActionText, Status: http.StatusOK, Body: "pong"},
		},
		{
			"Chat subdomain root without session redirects to login",
			access.Request{Domain: chat, Route: access.RouteRoot, Path: "/"},
			access.Action{Kind: access.ActionRedirect, Target: "/login", Status: http.StatusFound},
		},
		{
			"Chat subdomain root with session passes",
			access.Request{Domain: chat, Route: access.RouteRoot, HasSession: true, Path: "/"},
			access.Action{Kind: access.ActionPass},
		},
		{
			"Chat subdomain protected route carries the return target",
			access.Request{Domain: chat, Route: access.RouteProtectedChat, Path: "/chat/42"},
			access.Action{Kind: access.ActionRedirect, Target: "/login?returnTo=%2Fchat%2F42", Status: http.StatusFound},
		},
		{
			"Chat subdomain login with session redirects to the application root",
			access.Request{Domain: chat, Route: access.RouteLoginOrRegister, HasSession: true, Path: "/login"},
			access.Action{Kind: access.ActionRedirect, Target: "/", Status: http.StatusFound},
		},
		{
			"Chat subdomain emulation login with session redirects to the chat root",
			access.Request{Domain: chatLocal, Route: access.RouteLoginOrRegister, HasSession: true, Path: "/login"},
			access.Action{Kind: access.ActionRedirect, Target: "/chat", Status: http.StatusFound},
		},
		{
			"Chat subdomain public route passes",
			access.Request{Domain: chat, Route: access.RouteOther, Path: "/about"},
			access.Action{Kind: access.ActionPass},
		},
		{
			"Marketing root passes without a session",
			access.Request{Domain: production, Route: access.RouteRoot, Path: "/"},
			access.Action{Kind: access.ActionPass},
		},
		{
			"Marketing root passes with a session",
			access.Request{Domain: production, Route: access.RouteRoot, HasSession: true, Path: "/"},
			access.Action{Kind: access.ActionPass},
		},
		{
			"Marketing chat route redirects to the chat subdomain",
			access.Request{Domain: production, Route: access.RouteProtectedChat, Path: "/chat", Scheme: "https", Hostname: "cortheos.com"},
			access.Action{Kind: access.ActionRedirect, Target: "https://chat.cortheos.com/chat", Status: http.StatusFound},
		},
		{
			"Marketing chat route redirect preserves the query string",
			access.Request{Domain: production, Route: access.RouteProtectedChat, Path: "/api/history", Query: "limit=10", Scheme: "https", Hostname: "cortheos.com"},
			access.Action{Kind: access.ActionRedirect, Target: "https://chat.cortheos.com/api/history?limit=10", Status: http.StatusFound},
		},
		{
			"Marketing login page passes",
			access.Request{Domain: production, Route: access.RouteLoginOrRegister, Path: "/login"},
			access.Action{Kind: access.ActionPass},
		},
		{
			"Local development root passes without a session",
			access.Request{Domain: local, Route: access.RouteRoot, Path: "/"},
			access.Action{Kind: access.ActionPass},
		},
		{
			"Local development protected route redirects to login",
			access.Request{Domain: local, Route: access.RouteProtectedChat, Path: "/api/vote"},
			access.Action{Kind: access.ActionRedirect, Target: "/login?returnTo=%2Fapi%2Fvote", Status: http.StatusFound},
		},
		{
			"Local development protected route with session passes",
			access.Request{Domain: local, Route: access.RouteProtectedChat, HasSession: true, Path: "/chat"},
			access.Action{Kind: access.ActionPass},
		},
		{
			"Local development register with session redirects to chat",
			access.Request{Domain: local, Route: access.RouteLoginOrRegister, HasSession: true, Path: "/register"},
			access.Action{Kind: access.ActionRedirect, Target: "/chat", Status: http.StatusFound},
		},
		{
			"Local development public route passes",
			access.Request{Domain: local, Route: access.RouteOther, Path: "/about"},
			access.Action{Kind: access.ActionPass},
		},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if result := access.Decide(tcase.request); result != tcase.expected {
				t.Errorf("Expected %+v, got %+v", tcase.expected, result)
			}
		})
	}
}
