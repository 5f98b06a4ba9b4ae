package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"image_study_backend/internal/config"
	"image_study_backend/internal/controller"
	"image_study_backend/internal/repository"
	"image_study_backend/internal/service"
	"image_study_backend/pkg/logger"
	"image_study_backend/pkg/monitoring"
	"image_study_backend/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	services *services
}

type stores struct {
	session *repository.SessionStore
	results *repository.ResultsRepository
}

type services struct {
	catalog *service.CatalogService
	session *service.SessionService
	export  *service.ExportService
	image   *service.ImageService
}

type controllers struct {
	session *controller.SessionController
	image   *controller.ImageController
	health  *controller.HealthController
}

func (a *App) initStores() *stores {
	return &stores{
		session: repository.NewSessionStore(),
		results: repository.NewResultsRepository(),
	}
}

func (a *App) initServices(st *stores, cfg *config.Config) *services {
	s := &services{}
	s.catalog = service.NewCatalogService(cfg.Study.AllowedImages)
	s.session = service.NewSessionService(st.session, s.catalog, cfg.Study.RootDir)
	s.export = service.NewExportService(st.results)
	s.image = service.NewImageService()
	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		session: controller.NewSessionController(s.session, s.export),
		image:   controller.NewImageController(s.session, s.image),
		health:  controller.NewHealthController(s.session),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig re-points the running app at a freshly loaded config. Used by
// the config watcher; open sessions keep the catalog they started with.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	a.services.catalog.SetAllowedImages(cfg.Study.AllowedImages)
	a.services.session.SetRoot(cfg.Study.RootDir)
	logger.Log.Info("Config reloaded",
		zap.String("rootDir", cfg.Study.RootDir),
		zap.Int("allowedImages", len(cfg.Study.AllowedImages)))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	st := app.initStores()
	services := app.initServices(st, cfg)
	app.services = services
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
