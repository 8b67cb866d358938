package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"volonterka-backend/models"
	apimodels "volonterka-backend/models/api"
)

func AdminRole() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		token, ok := ctx.Locals("user").(*jwt.Token)
		if !ok {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операція недоступна"))
		}
		claims := token.Claims.(jwt.MapClaims)
		role, _ := claims["role"].(string)
		if role != string(models.UserRoleAdmin) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операція недоступна"))
		}
		return ctx.Next()
	}
}
