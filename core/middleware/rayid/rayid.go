// Package rayid assigns a unique request ID to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray ID back to the caller.
const Header = "X-Ray-Id"

// New returns a middleware that stores a fresh ray ID in c.Locals("ray_id")
// and echoes it in the response header. An incoming X-Ray-Id is reused so
// upstream callers can correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
