package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	feedsvc "github.com/kushalkambar5/nitkknot/internal/services/feed"
	historysvc "github.com/kushalkambar5/nitkknot/internal/services/history"
	likessvc "github.com/kushalkambar5/nitkknot/internal/services/likes"
	matchessvc "github.com/kushalkambar5/nitkknot/internal/services/matches"
	swipesvc "github.com/kushalkambar5/nitkknot/internal/services/swipes"
	userssvc "github.com/kushalkambar5/nitkknot/internal/services/users"
	"github.com/kushalkambar5/nitkknot/internal/transport/http/handlers"
)

type Dependencies struct {
	JWTManager     *authsvc.JWTManager
	SwipeService   *swipesvc.Service
	FeedService    *feedsvc.Service
	HistoryService *historysvc.Service
	LikeService    *likessvc.Service
	MatchService   *matchessvc.Service
	UserService    *userssvc.Service
	Logger         *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	swipeHandler := handlers.NewSwipeHandler(deps.SwipeService)
	reportHandler := handlers.NewReportHandler(deps.SwipeService)
	feedHandler := handlers.NewFeedHandler(deps.FeedService)
	historyHandler := handlers.NewHistoryHandler(deps.HistoryService)
	likesHandler := handlers.NewLikesHandler(deps.LikeService)
	matchesHandler := handlers.NewMatchesHandler(deps.MatchService)
	tierHandler := handlers.NewTierHandler(deps.UserService)

	authMW := AuthMiddleware(deps.JWTManager, deps.Logger)

	r.Get("/healthz", healthHandler.Get)
	r.Route("/v1", func(r chi.Router) {
		r.Use(authMW)
		r.Post("/swipe", swipeHandler.Handle)
		r.Post("/report", reportHandler.Handle)
		r.Get("/feed", feedHandler.Handle)
		r.Get("/history", historyHandler.Handle)
		r.Get("/matches", matchesHandler.Handle)
		r.Get("/likes/incoming", likesHandler.HandleIncoming)
		r.Post("/tier/upgrade", tierHandler.HandleUpgrade)
	})
}
