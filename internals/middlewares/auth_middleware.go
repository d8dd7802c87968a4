package middlewares

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"absensiku_backend/internals/configs"
)

// AuthMiddleware memverifikasi Bearer token yang diterbitkan layanan login
// (di luar service ini) dan menaruh identitas pegawai ke Locals.
// Claim yang dipakai: "nip" dan "user_id".
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().Unix() > int64(exp) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
			}
		}

		nip, _ := claims["nip"].(string)
		if nip == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - NIP tidak ada di token")
		}
		c.Locals("nip", nip)
		if userID, ok := claims["user_id"].(string); ok {
			c.Locals("user_id", userID)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}

		return c.Next()
	}
}

// AdminOnly membatasi route pengaturan jadwal untuk role admin.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Khusus admin")
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		if cookie := c.Cookies("access_token"); cookie != "" {
			return cookie, nil
		}
		return "", errors.New("Unauthorized - No token provided")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("Unauthorized - Invalid token format")
	}
	return strings.TrimSpace(parts[1]), nil
}
