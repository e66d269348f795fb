package account

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cortheos/cortheos/internal/webserver/controller/auth"
	"github.com/cortheos/cortheos/internal/webserver/model"
)

type signUpRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	InviteCode string `json:"inviteCode"`
}

// SignUp creates an account from an invite-code signup and signs the new
// user in.
func (a *Controller) SignUp(c *fiber.Ctx) error {
	var req signUpRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": model.ErrMissingFields.Error()})
		}
	}

	user, err := a.provisioner.SignUp(req.Email, req.Password, req.InviteCode)
	if err != nil {
		return reject(c, err)
	}

	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := auth.GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	c.Cookie(auth.SessionCookie(signedToken, expiration))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Account created successfully",
	})
}

func reject(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrMissingFields),
		errors.Is(err, model.ErrWeakPassword),
		errors.Is(err, model.ErrInvalidInvite):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, model.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("error signing up: %s\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An unexpected error occurred"})
	}
}
