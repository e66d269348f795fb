package account

import (
	"time"

	"github.com/cortheos/cortheos/internal/webserver/model"
)

type provisioner interface {
	SignUp(email, password, inviteCode string) (*model.User, error)
}

type Config struct {
	Secret         []byte
	SessionTimeout time.Duration
}

type Controller struct {
	provisioner provisioner
	config      Config
}

// NewController returns a new instance of the account controller
func NewController(provisioner provisioner, cfg Config) *Controller {
	return &Controller{
		provisioner: provisioner,
		config:      cfg,
	}
}
