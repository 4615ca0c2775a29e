package middleware

import "github.com/gofiber/fiber/v2"

// Role allows the request through only when the authenticated role is
// in the allow-list. Must run after Auth.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false, "message": "الدور غير صالح",
			})
		}

		for _, role := range allowedRoles {
			if role == userRole {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false, "message": "ليس لديك صلاحية للوصول",
		})
	}
}
