package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kushalkambar5/nitkknot/internal/config"
	pgrepo "github.com/kushalkambar5/nitkknot/internal/repo/postgres"
	redrepo "github.com/kushalkambar5/nitkknot/internal/repo/redis"
	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	feedsvc "github.com/kushalkambar5/nitkknot/internal/services/feed"
	historysvc "github.com/kushalkambar5/nitkknot/internal/services/history"
	likessvc "github.com/kushalkambar5/nitkknot/internal/services/likes"
	matchessvc "github.com/kushalkambar5/nitkknot/internal/services/matches"
	quotasvc "github.com/kushalkambar5/nitkknot/internal/services/quota"
	swipesvc "github.com/kushalkambar5/nitkknot/internal/services/swipes"
	userssvc "github.com/kushalkambar5/nitkknot/internal/services/users"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	counterRepo := redrepo.NewCounterRepo(redisClient)
	interestRepo := pgrepo.NewInterestRepo(pool)
	rejectionRepo := pgrepo.NewRejectionRepo(pool)
	matchRepo := pgrepo.NewMatchRepo(pool)
	reportRepo := pgrepo.NewReportRepo(pool)
	profileRepo := pgrepo.NewProfileRepo(pool)
	candidateRepo := pgrepo.NewCandidateRepo(pool)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	quotaPolicy := quotasvc.NewPolicy(interestRepo, quotasvc.Config{
		StandardLifetimeCap: cfg.Quota.StandardLifetimeCap,
		ElevatedWindowCap:   cfg.Quota.ElevatedWindowCap,
		ElevatedWindow:      cfg.Quota.ElevatedWindow,
	})
	swipeService := swipesvc.NewService(swipesvc.Dependencies{
		Pool:       pool,
		Interests:  interestRepo,
		Rejections: rejectionRepo,
		Matches:    matchRepo,
		Reports:    reportRepo,
		Profiles:   profileRepo,
		Quota:      quotaPolicy,
		Counters:   counterRepo,
		Logger:     log,
	})
	feedService := feedsvc.NewService(candidateRepo, profileRepo, feedsvc.Config{
		DefaultBatchSize: cfg.Feed.DefaultBatchSize,
		MaxBatchSize:     cfg.Feed.MaxBatchSize,
	})
	historyService := historysvc.NewService(rejectionRepo, interestRepo, matchRepo)
	likeService := likessvc.NewService(interestRepo, counterRepo, likessvc.Config{
		CountCacheTTL: cfg.Likes.CountCacheTTL,
	}, log)
	matchesService := matchessvc.NewService(matchRepo)
	userService := userssvc.NewService(profileRepo)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		JWTManager:     jwtManager,
		SwipeService:   swipeService,
		FeedService:    feedService,
		HistoryService: historyService,
		LikeService:    likeService,
		MatchService:   matchesService,
		UserService:    userService,
		Logger:         log,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
