package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/slava-del/RTAF/internal/auth"
	"github.com/slava-del/RTAF/internal/config"
	"github.com/slava-del/RTAF/internal/http/middleware"
	"github.com/slava-del/RTAF/internal/service"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Company  string `json:"company"`
}

// setSessionCookie attaches the session token to the response. HttpOnly
// always; Secure only when configured, so local development over plain HTTP
// still works.
func setSessionCookie(c *fiber.Ctx, cfg config.SessionConfig, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func clearSessionCookie(c *fiber.Ctx, cfg config.SessionConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// Register creates a new user account and logs it in immediately.
func Register(svc service.AuthService, sessions *auth.Manager, cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		user, err := svc.Register(c.UserContext(), service.RegisterInput{
			Username: req.Username,
			Password: req.Password,
			FullName: req.FullName,
			Company:  req.Company,
		})
		if err != nil {
			return writeServiceError(c, err)
		}

		sess, err := sessions.Issue(c.UserContext(), user.ID)
		if err != nil {
			return writeServiceError(c, err)
		}
		setSessionCookie(c, cfg, sess.Token, sess.ExpiresAt)

		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// Login authenticates a user and issues a fresh session.
func Login(svc service.AuthService, sessions *auth.Manager, cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		user, err := svc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			return writeServiceError(c, err)
		}

		sess, err := sessions.Issue(c.UserContext(), user.ID)
		if err != nil {
			return writeServiceError(c, err)
		}
		setSessionCookie(c, cfg, sess.Token, sess.ExpiresAt)

		return c.JSON(user)
	}
}

// Logout revokes the current session. Logging out without one is fine.
func Logout(svc service.AuthService, sessions *auth.Manager, cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(cfg.CookieName); token != "" {
			if err := sessions.Revoke(c.UserContext(), token); err != nil {
				return writeServiceError(c, err)
			}
		}
		if userID, ok := middleware.UserID(c); ok {
			svc.RecordLogout(c.UserContext(), userID)
		}
		clearSessionCookie(c, cfg)

		return c.SendStatus(fiber.StatusOK)
	}
}

// CurrentUser returns the profile behind the active session.
func CurrentUser(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		user, err := svc.GetUser(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}
