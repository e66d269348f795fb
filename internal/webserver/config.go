package webserver

import "time"

type Config struct {
	// Domain is the apex domain the marketing site is served from; the chat
	// application lives on its chat. subdomain.
	Domain            string
	JwtSecret         []byte
	SessionTimeout    time.Duration
	MinPasswordLength int
}
