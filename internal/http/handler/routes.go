package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/slava-del/RTAF/internal/auth"
	"github.com/slava-del/RTAF/internal/config"
	"github.com/slava-del/RTAF/internal/http/middleware"
	"github.com/slava-del/RTAF/internal/service"
)

// Deps bundles everything the route tree needs. DB is nil when the app runs
// on the in-memory store; the health endpoint then skips the ping.
type Deps struct {
	DB            *sql.DB
	Sessions      *auth.Manager
	SessionCfg    config.SessionConfig
	Auth          service.AuthService
	Documents     service.DocumentService
	Orders        service.OrderService
	Residents     service.ResidentService
	Notifications service.NotificationService
	Activities    service.ActivityService
	Metrics       prometheus.Gatherer
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	// Serve the OpenAPI spec and a dependency-free Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks DB connectivity when a DB is configured
	app.Get("/health", HealthCheck(d.DB))

	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/register", Register(d.Auth, d.Sessions, d.SessionCfg))
	api.Post("/login", Login(d.Auth, d.Sessions, d.SessionCfg))
	api.Post("/logout", Logout(d.Auth, d.Sessions, d.SessionCfg))

	// Everything below requires an authenticated session
	authed := api.Group("", middleware.RequireAuth())

	authed.Get("/user", CurrentUser(d.Auth))

	authed.Post("/documents/upload", UploadDocument(d.Documents))
	authed.Get("/documents", ListDocuments(d.Documents))
	authed.Get("/documents/:id/download", DownloadDocument(d.Documents))
	authed.Delete("/documents/:id", DeleteDocument(d.Documents))

	authed.Post("/orders", CreateOrder(d.Orders))
	authed.Get("/orders", ListOrders(d.Orders))
	authed.Get("/orders/:id", GetOrder(d.Orders))
	authed.Patch("/orders/:id/status", UpdateOrderStatus(d.Orders))

	authed.Get("/residents", ListResidents(d.Residents))
	authed.Get("/residents/:id", GetResident(d.Residents))

	authed.Get("/notifications", ListNotifications(d.Notifications))
	authed.Patch("/notifications/:id/read", MarkNotificationRead(d.Notifications))
	authed.Patch("/notifications/read-all", MarkAllNotificationsRead(d.Notifications))

	authed.Get("/activities", ListActivities(d.Activities))
}
