package main

import "time"

type Config struct {
	Port              string        `env:"PORT" env-default:"3000"`
	Domain            string        `env:"DOMAIN" env-default:"localhost"`
	DatabasePath      string        `env:"DB_PATH" env-default:""`
	JwtSecret         string        `env:"JWT_SECRET" env-required:"true"`
	SessionTimeout    time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	MinPasswordLength int           `env:"MIN_PASSWORD_LENGTH" env-default:"8"`
}
