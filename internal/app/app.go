package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talkify_backend/internal/config"
	"talkify_backend/internal/controller"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/service"
	"talkify_backend/pkg/database"
	"talkify_backend/pkg/logger"
	"talkify_backend/pkg/monitoring"
	"talkify_backend/pkg/security"
	"talkify_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user        *repository.UserRepository
	word        *repository.WordRepository
	grammar     *repository.GrammarRepository
	quiz        *repository.QuizRepository
	testResult  *repository.TestResultRepository
	progress    *repository.ProgressRepository
	session     *repository.SessionRepository
	chat        *repository.ChatRepository
	achievement *repository.AchievementRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	word         *service.WordService
	grammar      *service.GrammarService
	quiz         *service.QuizService
	progress     *service.ProgressService
	gamification *service.GamificationService
	chat         *service.ChatService
	admin        *service.AdminService
}

type controllers struct {
	auth         *controller.AuthController
	word         *controller.WordController
	grammar      *controller.GrammarController
	quiz         *controller.QuizController
	progress     *controller.ProgressController
	gamification *controller.GamificationController
	chat         *controller.ChatController
	admin        *controller.AdminController
	health       *controller.HealthController
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		word:        repository.NewWordRepository(db),
		grammar:     repository.NewGrammarRepository(db),
		quiz:        repository.NewQuizRepository(db),
		testResult:  repository.NewTestResultRepository(db),
		progress:    repository.NewProgressRepository(db),
		session:     repository.NewSessionRepository(db),
		chat:        repository.NewChatRepository(db),
		achievement: repository.NewAchievementRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	gamification := service.NewGamificationService(db, repos.user, repos.achievement, repos.progress, repos.testResult)

	return &services{
		auth:         service.NewAuthService(repos.user, cfg),
		user:         service.NewUserService(repos.user, storage),
		word:         service.NewWordService(repos.word, rdb),
		grammar:      service.NewGrammarService(repos.grammar),
		quiz:         service.NewQuizService(repos.quiz, repos.testResult, gamification),
		progress:     service.NewProgressService(repos.progress, repos.word, repos.session, repos.testResult, gamification),
		gamification: gamification,
		chat:         service.NewChatService(repos.chat),
		admin: service.NewAdminService(db, repos.user, repos.word, repos.quiz,
			repos.grammar, repos.testResult, repos.progress, repos.achievement),
	}, nil
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.user),
		word:         controller.NewWordController(s.word, s.progress),
		grammar:      controller.NewGrammarController(s.grammar),
		quiz:         controller.NewQuizController(s.quiz),
		progress:     controller.NewProgressController(s.progress),
		gamification: controller.NewGamificationController(s.gamification),
		chat:         controller.NewChatController(s.chat),
		admin:        controller.NewAdminController(s.admin, s.word, s.quiz, s.grammar),
		health:       controller.NewHealthController(db),
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
		maxRequests = 100
	}
	router.Use(security.RateLimiter(a.Redis, maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
	}

	if cfg.ForceMigrate || cfg.MigrateOnly || cfg.Server.Mode == "debug" {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := initRepositories(db)
	svcs, err := initServices(repos, cfg, db, rdb)
	if err != nil {
		return nil, err
	}
	ctrls := initControllers(svcs, db)

	monitoring.Init()

	gin.SetMode(func() string {
		if cfg.Server.Mode == "release" {
			return gin.ReleaseMode
		}
		return gin.DebugMode
	}())

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("talkify-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, err
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, ctrls, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app, nil
}

// Run sunucuyu başlatır ve SIGINT/SIGTERM ile düzgün kapanır
func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Tracer shutdown failed", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
