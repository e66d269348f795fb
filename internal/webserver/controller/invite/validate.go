package invite

import (
	"github.com/gofiber/fiber/v2"
)

type validateRequest struct {
	Code string `json:"code"`
}

// Validate reports whether a code is currently redeemable. Exhausted,
// expired, inactive and unknown codes all read the same from outside, so a
// probing client learns nothing about quotas or expiry.
func (i *Controller) Validate(c *fiber.Ctx) error {
	var req validateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"valid": false, "message": "Malformed request body"})
		}
	}

	if req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"valid": false, "message": "Invite code is required"})
	}

	valid, err := i.repository.IsRedeemable(req.Code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"valid": false, "message": "Error validating invite code"})
	}

	return c.JSON(fiber.Map{"valid": valid})
}
