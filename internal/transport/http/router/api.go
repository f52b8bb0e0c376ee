package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gobnb-backend/internal/core/auth"
	"gobnb-backend/internal/transport/http/handler"
	mdw "gobnb-backend/internal/transport/http/middleware"
)

type APIOptions struct {
	CORSOrigins []string
	ServeMedia  bool // local 驱动时由本进程直接提供 /media 静态文件
	MediaRoot   string
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, propH *handler.PropertyHandler, authH *handler.AuthHandler, opt APIOptions) *gin.Engine {
	r := gin.New()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = opt.CORSOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.New(corsCfg),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if opt.ServeMedia {
		r.Static("/media", opt.MediaRoot)
	}

	api := r.Group("/api")

	// 房源：列表公开，创建需登录
	api.GET("/properties/", propH.List)
	api.POST("/properties/", mdw.AuthJWT(jwter, false), propH.Create)

	// 账号
	authGrp := api.Group("/auth")
	authGrp.POST("/register/", authH.Register)
	authGrp.POST("/login/", authH.Login)
	authGrp.POST("/token/refresh/", authH.Refresh)

	authd := authGrp.Group("", mdw.AuthJWT(jwter, false))
	authd.GET("/me/", authH.Me)
	authd.POST("/avatar/", authH.Avatar)

	return r
}
