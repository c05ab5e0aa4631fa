package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/apperror"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/contextutil"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token (or access_token cookie) and
// exposes the caller's email and role to downstream handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := apperror.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = apperror.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid token claims", nil)
			c.Abort()
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Email not found in token", nil)
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		name, _ := claims["name"].(string)

		c.Set("email", email)
		c.Set("role", role)
		c.Set("name", name)

		// So the service/repo layers can read the caller without knowing gin.
		ctx := contextutil.WithEmail(c.Request.Context(), email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware allows the request through only when the token role is one
// of the allowed roles.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
		c.Abort()
	}
}
