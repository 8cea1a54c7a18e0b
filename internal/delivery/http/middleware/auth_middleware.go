// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"net/http"
	"slices"
	"strings"

	"canteen/config"
	"canteen/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyAccountID = "accountID"
	contextKeyRole      = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Tokens are issued by the identity collaborator; this service only verifies
// the signature and extracts the subject and role claims.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(m.cfg.SecretKey.Access), nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		// Extract account ID
		accountIDStr, ok := claims["sub"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Account ID missing from token"})
		}
		accountID, err := uuid.Parse(accountIDStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid account ID format in token"})
		}

		// Extract role
		roleStr, ok := claims["role"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Role missing from token"})
		}

		// Set account info on the context for handlers to use
		c.Set(contextKeyAccountID, accountID)
		c.Set(contextKeyRole, entity.Role(roleStr))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller holds one of
// the given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(allowed, role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + rolesString(allowed) + "' role"})
			}

			return next(c)
		}
	}
}

// GetAccountID extracts the authenticated account ID from the context.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(contextKeyAccountID).(uuid.UUID)

	return accountID, ok
}

// GetRole extracts the authenticated role from the context.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(contextKeyRole).(entity.Role)

	return role, ok
}

func rolesString(roles []entity.Role) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, string(r))
	}

	return strings.Join(parts, "' or '")
}
