package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chrisspenceratx/myFlix-server-5b/internal/container"
	handlers "github.com/chrisspenceratx/myFlix-server-5b/internal/interface/http"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/interface/middleware"
	"github.com/chrisspenceratx/myFlix-server-5b/pkg/helpers"
)

// MovieModule registers the read-only movie routes; all of them require a
// valid bearer token.
type MovieModule struct {
	Handler *handlers.MovieHandler
	JWT     *helpers.JWTManager
}

func NewMovieModule(h *handlers.MovieHandler, jwt *helpers.JWTManager) *MovieModule {
	return &MovieModule{Handler: h, JWT: jwt}
}

func (m *MovieModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()))
	{
		auth.GET("/movies", m.Handler.List)
		auth.GET("/movies/search", m.Handler.Search)
		auth.GET("/movies/:Title", m.Handler.GetByTitle)
		auth.GET("/movies/director/:Name", m.Handler.GetDirector)
		auth.GET("/movies/genre/:Name", m.Handler.GetGenre)
	}
}
