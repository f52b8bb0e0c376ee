package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gobnb-backend/internal/core/auth"
	resp "gobnb-backend/internal/transport/http/response"
)

const (
	KeyUserID    = "userId"
	KeyClaims    = "claims"
	KeyStaff     = "staff"
	KeySuperuser = "superuser"
)

// AuthJWT 校验 Bearer access token；requireStaff 时额外要求 staff 位
func AuthJWT(j *auth.JWTer, requireStaff bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Err(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "), auth.TokenAccess)
		if err != nil {
			resp.Err(c, http.StatusUnauthorized, "invalid token")
			return
		}
		if requireStaff && !claims.Staff {
			resp.Err(c, http.StatusForbidden, "")
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyStaff, claims.Staff)
		c.Set(KeySuperuser, claims.Superuser)
		c.Set(KeyClaims, claims)
		c.Next()
	}
}
