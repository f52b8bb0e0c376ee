package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gobnb-backend/internal/core/auth"
	"gobnb-backend/internal/transport/http/handler"
	mdw "gobnb-backend/internal/transport/http/middleware"
)

// NewAdminEngine 后台端，/admin/v1 统一要求 staff 角色位
func NewAdminEngine(l *zap.Logger, adminH *handler.AdminHandler, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(100, 200),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, true))

	admin.GET("/users", adminH.ListUsers)
	admin.DELETE("/users/:id", adminH.DeleteUser)
	admin.GET("/properties", adminH.ListProperties)

	return r
}
