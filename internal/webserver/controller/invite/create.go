package invite

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cortheos/cortheos/internal/webserver/model"
)

type createRequest struct {
	Role      string     `json:"role"`
	MaxUses   int        `json:"maxUses"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// Create mints a new invite code. The caller's privilege has already been
// checked by the route middleware; the role grant is validated here against
// the closed role set so a request body can never smuggle in an arbitrary
// one.
func (i *Controller) Create(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.Session)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	req := createRequest{Role: model.RoleUser, MaxUses: 1}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Malformed request body"})
		}
	}

	if !model.ValidRole(req.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role must be one of user, admin or owner"})
	}
	if req.MaxUses < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "maxUses must be at least 1"})
	}

	code, err := model.NewCode()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	inviteCode := &model.InviteCode{
		Code:      code,
		Role:      req.Role,
		MaxUses:   req.MaxUses,
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
		CreatedBy: session.Uuid,
	}
	if err := i.repository.Create(inviteCode); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"inviteCode": inviteCode})
}
