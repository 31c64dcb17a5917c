package server

import (
	"context"
	"net/http"
	"time"

	"gymadmin/internal/auth"
	"gymadmin/internal/config"
	"gymadmin/internal/dashboard"
	"gymadmin/internal/email"
	"gymadmin/internal/equipment"
	"gymadmin/internal/member"
	"gymadmin/internal/payment"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) (*Server, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.LoadHTMLGlob("web/templates/*.html")

	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo, time.Now)
	memberHandler := member.NewHandler(memberService, time.Now)

	paymentRepo := payment.NewRepository(db)
	paymentService := payment.NewService(paymentRepo, memberRepo, time.Now)
	paymentHandler := payment.NewHandler(paymentService, emailService)

	equipmentHandler := equipment.NewHandler(equipment.NewService(equipment.NewRepository(db)))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboard.NewRepository(db), time.Now), time.Now)

	adminAuth, err := NewAdminAuth(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	publicLimit := RateLimitMiddleware(2, 5)

	router.GET("/", Home)
	router.GET("/about", About)
	router.GET("/plans", PlansPage)
	router.GET("/contact", ContactPage)
	router.POST("/contact", publicLimit, ContactSubmit(emailService))
	router.GET("/join", memberHandler.JoinForm)
	router.POST("/join", publicLimit, memberHandler.JoinSubmit)
	router.GET("/success", Success)
	router.GET("/payment/:memberId", paymentHandler.Page)
	router.POST("/payment/process", publicLimit, paymentHandler.Process)

	router.GET("/admin/login", adminAuth.LoginForm)
	router.POST("/admin/login", adminAuth.Login)
	router.POST("/admin/logout", adminAuth.Logout)

	admin := router.Group("/admin")
	admin.Use(auth.RequireAdmin(cfg.JWTSecret))
	{
		admin.GET("/dashboard", dashboardHandler.Show)
		admin.GET("/members", memberHandler.List)
		admin.GET("/members/edit/:id", memberHandler.EditForm)
		admin.POST("/members/update", memberHandler.Update)
		admin.POST("/members/delete/:id", memberHandler.Delete)
		admin.POST("/members/toggle-status/:id", memberHandler.ToggleStatus)
		admin.POST("/members/renew/:id", memberHandler.Renew)
		admin.GET("/equipment", equipmentHandler.List)
		admin.POST("/equipment/add", equipmentHandler.Add)
		admin.POST("/equipment/update/:id", equipmentHandler.Update)
		admin.POST("/equipment/delete/:id", equipmentHandler.Delete)
	}

	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}, nil
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
