package webserver

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"gorm.io/gorm"

	"github.com/cortheos/cortheos/internal/webserver/controller/account"
	"github.com/cortheos/cortheos/internal/webserver/controller/auth"
	"github.com/cortheos/cortheos/internal/webserver/controller/invite"
	"github.com/cortheos/cortheos/internal/webserver/controller/page"
	"github.com/cortheos/cortheos/internal/webserver/model"
)

type Controllers struct {
	Auth                        *auth.Controller
	Account                     *account.Controller
	Invites                     *invite.Controller
	Pages                       *page.Controller
	ReadSessionMiddleware       func(c *fiber.Ctx) error
	AccessControlMiddleware     func(c *fiber.Ctx) error
	RequirePrivilegedMiddleware func(c *fiber.Ctx) error
	ErrorHandler                func(c *fiber.Ctx, err error) error
}

func SetupControllers(cfg Config, db *gorm.DB) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	invitesRepository := &model.InviteCodeRepository{DB: db}
	provisioner := &model.Provisioner{DB: db, MinPasswordLength: cfg.MinPasswordLength}

	authController := auth.NewController(usersRepository, auth.Config{
		Secret:         cfg.JwtSecret,
		SessionTimeout: cfg.SessionTimeout,
	})

	accountController := account.NewController(provisioner, account.Config{
		Secret:         cfg.JwtSecret,
		SessionTimeout: cfg.SessionTimeout,
	})

	return Controllers{
		Auth:                        authController,
		Account:                     accountController,
		Invites:                     invite.NewController(invitesRepository),
		Pages:                       page.NewController(),
		ReadSessionMiddleware:       ReadSession(cfg.JwtSecret),
		AccessControlMiddleware:     AccessControl(),
		RequirePrivilegedMiddleware: RequirePrivileged,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			if code == fiber.StatusInternalServerError {
				log.Println(err)
			}

			// Internal detail never crosses the boundary, only the status text
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(code).JSON(fiber.Map{"error": utils.StatusMessage(code)})
			}
			return c.Status(code).SendString(utils.StatusMessage(code))
		},
	}
}
