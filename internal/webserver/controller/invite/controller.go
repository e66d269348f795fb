package invite

import (
	"github.com/cortheos/cortheos/internal/webserver/model"
)

type invitesRepository interface {
	Create(inviteCode *model.InviteCode) error
	IsRedeemable(code string) (bool, error)
}

type Controller struct {
	repository invitesRepository
}

// NewController returns a new instance of the invite codes controller
func NewController(repository invitesRepository) *Controller {
	return &Controller{
		repository: repository,
	}
}
