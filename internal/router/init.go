package router

import (
	"github.com/chrisspenceratx/myFlix-server-5b/internal/application"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/container"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/infrastructure/mongodb"
	handlers "github.com/chrisspenceratx/myFlix-server-5b/internal/interface/http"
	"github.com/chrisspenceratx/myFlix-server-5b/internal/router/modules"
)

// InitModules builds the repositories, services, and handlers from the
// container singletons and registers all feature modules.
// Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := mongodb.NewUserRepository(container.GetMongo())
	movieRepo := mongodb.NewMovieRepository(container.GetMongo())

	userSvc := application.NewUserService(userRepo, container.GetJWT(), logger)
	movieSvc := application.NewMovieService(
		movieRepo,
		container.GetRedis(),
		container.GetES(),
		cfg.ESMoviesIndex,
		cfg.MovieCacheTTL,
		logger,
	)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewMovieModule(handlers.NewMovieHandler(movieSvc, logger), container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
