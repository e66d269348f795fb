package access

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// HealthPath always answers with a fixed reply so automated harnesses can
// confirm liveness before anything else is wired up.
const HealthPath = "/ping"

type ActionKind int

const (
	ActionPass ActionKind = iota
	ActionRedirect
	ActionText
)

// Action is the engine's verdict for one request: let it through, redirect
// it, or answer it outright.
type Action struct {
	Kind   ActionKind
	Target string
	Status int
	Body   string
}

// Request carries the classifier outputs for one inbound request, derived
// fresh per request and never shared.
type Request struct {
	Domain     DomainContext
	Route      RouteClass
	HasSession bool
	Path       string
	Query      string
	Scheme     string
	Hostname   string
}

func pass() Action {
	return Action{Kind: ActionPass}
}

func redirect(target string) Action {
	return Action{Kind: ActionRedirect, Target: target, Status: http.StatusFound}
}

func toLogin(path string) Action {
	return redirect("/login?returnTo=" + url.QueryEscape(path))
}

// Decide picks the response action for a request. Rules are evaluated in
// priority order and the first match wins; the default is to pass the
// request through untouched.
func Decide(r Request) Action {
	if strings.HasPrefix(r.Path, HealthPath) {
		return Action{Kind: ActionText, Status: http.StatusOK, Body: "pong"}
	}

	// The chat subdomain is the private application entry point, in
	// production and in local subdomain emulation alike.
	if r.Domain.ChatSubdomain {
		if r.Route == RouteRoot && !r.HasSession {
			return redirect("/login")
		}
		if r.Route == RouteProtectedChat && !r.HasSession {
			return toLogin(r.Path)
		}
		if r.Route == RouteLoginOrRegister && r.HasSession {
			if r.Domain.LocalDev {
				return redirect("/chat")
			}
			return redirect("/")
		}
		return pass()
	}

	// The apex domain is always public facing; chat routes bounce over to
	// the chat subdomain with path and query preserved.
	if r.Domain.Marketing() {
		if r.Route == RouteProtectedChat {
			target := fmt.Sprintf("%s://chat.%s%s", r.Scheme, r.Hostname, r.Path)
			if r.Query != "" {
				target += "?" + r.Query
			}
			return redirect(target)
		}
		return pass()
	}

	// Plain localhost keeps the production gates on chat routes but leaves
	// the root open to simplify manual testing.
	if r.Route == RouteProtectedChat && !r.HasSession {
		return toLogin(r.Path)
	}
	if r.Route == RouteLoginOrRegister && r.HasSession {
		return redirect("/chat")
	}
	return pass()
}
