package auth

import (
	"time"

	"github.com/cortheos/cortheos/internal/webserver/model"
)

type authRepository interface {
	FindByEmail(email string) (*model.User, error)
}

type Config struct {
	Secret         []byte
	SessionTimeout time.Duration
}

type Controller struct {
	repository authRepository
	config     Config
}

// NewController returns a new instance of the auth controller
func NewController(repository authRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
