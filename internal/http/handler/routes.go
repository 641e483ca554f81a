package handler

import (
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "loremserver/docs"
	"loremserver/internal/http/middleware"
	"loremserver/internal/service"
)

// RegisterRoutes attaches the public benchmark routes to app.
// "/" is registered first so the root never falls through to the id route.
func RegisterRoutes(app *fiber.App, svc service.PageService) {
	app.Get("/", Hello(svc))
	app.Get("/:id", Lorem(svc))
}

// RegisterAdminRoutes attaches probes, metrics and API docs. They live on a
// separate listener: on the public one every single segment belongs to Lorem.
// A nil gatherer leaves /metrics unregistered.
func RegisterAdminRoutes(app *fiber.App, ready *atomic.Bool, gatherer prometheus.Gatherer) {
	app.Get("/healthz", LivenessProbe())
	app.Get("/health", Health(ready))

	if gatherer != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(
			promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		))
	}

	// The generated doc leaves host and schemes empty, so Swagger UI targets
	// whatever host and scheme served it. The shared SwaggerInfo is never written.
	app.Get("/swagger/*", swagger.HandlerDefault)
}

// Hello serves the static root page.
//
//	@Summary	Static hello page
//	@Produce	plain
//	@Success	200	{string}	string	"hello world"
//	@Router		/ [get]
func Hello(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("txt", "utf-8")
		return c.SendString(svc.Hello(c.UserContext()))
	}
}

// Lorem echoes the path segment followed by the filler text.
//
//	@Summary	Echo id followed by filler text
//	@Produce	plain
//	@Param		id	path		string	true	"any single path segment"
//	@Success	200	{string}	string	"id followed by filler text"
//	@Router		/{id} [get]
func Lorem(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := decodeSegment(c.Params("id"))
		if !ok {
			return fiber.ErrNotFound
		}
		c.Type("txt", "utf-8")
		return c.SendString(svc.Lorem(c.UserContext(), id))
	}
}

// decodeSegment turns a raw path segment into the id a WSGI application sees
// in PATH_INFO. Only %XX escapes are decoded; '+' stays literal. A malformed
// escape leaves the segment as sent, and invalid UTF-8 becomes U+FFFD so the
// body matches its charset. ok is false when the segment decodes to more than
// one path segment (%2F), which routes nowhere.
//
// The result never aliases raw: Params points into the request buffer and the
// id outlives the request in span attributes.
func decodeSegment(raw string) (id string, ok bool) {
	id, err := url.PathUnescape(raw)
	if err != nil {
		id = raw
	}
	if strings.Contains(id, "/") {
		return "", false
	}
	return utils.CopyString(strings.ToValidUTF8(id, "\uFFFD")), true
}

// Health reports readiness; it turns unavailable once shutdown has begun.
func Health(ready *atomic.Bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ready == nil || !ready.Load() {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "server is not ready")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 while the process can serve at all.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
