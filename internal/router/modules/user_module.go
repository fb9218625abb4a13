package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/container"
	handlers "github.com/chrisspenceratx/myFlix-server-5b/internal/interface/http"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/interface/middleware"
	"github.com/chrisspenceratx/myFlix-server-5b/pkg/helpers"
)

// UserModule wires user HTTP handlers and JWT middleware into routes.
// Public: POST /users (signup), POST /login
// Protected: every other user route.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits; limiters fail open
	// without Redis.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/users", signupLimiter, m.Handler.Signup)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUsername()))
	{
		auth.GET("/users", m.Handler.List)
		auth.GET("/users/:Username", m.Handler.Get)
		auth.PUT("/users/:Username", m.Handler.Update)
		auth.DELETE("/users/:Username", m.Handler.Delete)
		auth.POST("/users/:Username/movies/:MovieID", m.Handler.AddFavorite)
		auth.DELETE("/users/:Username/movies/:MovieID", m.Handler.RemoveFavorite)
	}
}
