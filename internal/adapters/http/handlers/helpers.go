package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// paramID reads a positive integer route parameter
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
