package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/adverra/backend/internal/config"
	"github.com/adverra/backend/internal/events"
	"github.com/adverra/backend/internal/handler"
	appMiddleware "github.com/adverra/backend/internal/middleware"
	"github.com/adverra/backend/internal/repository"
	"github.com/adverra/backend/internal/service"
	"github.com/adverra/backend/pkg/crypto"
	"github.com/adverra/backend/pkg/payment"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env file if present (for local development)
	loadDotEnv()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	ctx := context.Background()

	// Initialize database
	db, err := repository.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database error: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := repository.RunMigrations(ctx, db); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}
	log.Println("✅ Database connected & migrated")

	// Initialize Redis (cart storage)
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Redis config error: %v", err)
	}
	cache := redis.NewClient(redisOpts)
	defer cache.Close()
	if err := cache.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Redis error: %v", err)
	}
	log.Println("✅ Redis connected")

	// Initialize encryptor
	enc, err := crypto.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("❌ Encryption error: %v", err)
	}

	// Event publisher (Kafka is optional)
	var publisher service.EventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
		log.Printf("✅ Kafka publisher enabled (topic %s)", cfg.KafkaTopic)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	domainRepo := repository.NewDomainRepository(db)
	hostingRepo := repository.NewHostingRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	contentRepo := repository.NewContentRepository(db)
	cartStore := repository.NewRedisCartStore(cache)

	// Services
	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPassword, userRepo)

	// Seed admin user on first startup
	if err := authSvc.SeedAdmin(ctx); err != nil {
		log.Fatalf("❌ Admin seed error: %v", err)
	}

	roleSvc := service.NewRoleService(roleRepo)
	cartSvc := service.NewCartService(cartStore)
	txSvc := service.NewTransactionService(txRepo, publisher, enc)
	checkoutSvc := service.NewCheckoutService(cartStore, txRepo, publisher, enc)
	purchaseSvc := service.NewPurchaseService(txRepo, domainRepo, hostingRepo, serviceRepo)
	catalogSvc := service.NewCatalogService(domainRepo, hostingRepo, serviceRepo)
	contentSvc := service.NewContentService(contentRepo)

	// Payment gateway (mock; real provider plugs in behind the same interface)
	gateway := payment.NewMockGateway(cfg.PaymentWebhookSecret)

	// Background domain expiry sweeper
	sweeper := service.NewExpirySweeper(domainRepo)
	sweeper.Start(ctx)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(authSvc)
	roleHandler := handler.NewRoleHandler(roleSvc)
	cartHandler := handler.NewCartHandler(cartSvc)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc)
	purchasesHandler := handler.NewPurchasesHandler(purchaseSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	contentHandler := handler.NewContentHandler(contentSvc)
	txHandler := handler.NewTransactionHandler(txSvc)
	paymentHandler := handler.NewPaymentHandler(txSvc, gateway)
	adminHandler := handler.NewAdminHandler(db)
	healthHandler := handler.NewHealthHandler(db, cache)

	// Build router
	r := chi.NewRouter()

	// Global middleware
	r.Use(appMiddleware.Recovery)
	r.Use(appMiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Cart-Session"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Global rate limiter (20 req/sec per IP, burst of 40)
	globalRL := appMiddleware.NewRateLimiter(20, 40)
	r.Use(globalRL.Middleware())

	// Health check and public routes (no auth)
	r.Get("/health", healthHandler.Check)

	// Catalog (public reads)
	r.Get("/api/domains/check", catalogHandler.CheckDomain)
	r.Get("/api/domains", catalogHandler.ListDomains)
	r.Get("/api/domains/{id}", catalogHandler.GetDomain)
	r.Get("/api/hosting", catalogHandler.ListHosting)
	r.Get("/api/hosting/{id}", catalogHandler.GetHosting)
	r.Get("/api/services", catalogHandler.ListServices)
	r.Get("/api/services/{id}", catalogHandler.GetService)

	// Site content (public reads)
	r.Get("/api/announcements", contentHandler.ListAnnouncements)
	r.Get("/api/blogs", contentHandler.ListBlogs)
	r.Get("/api/blogs/{id}", contentHandler.GetBlog)
	r.Get("/api/testimonials", contentHandler.ListTestimonials)
	r.Get("/api/careers", contentHandler.ListCareers)
	r.Get("/api/event-news", contentHandler.ListEventNews)
	r.Post("/api/subscribers", contentHandler.Subscribe)

	// Cart (session header, works before login)
	r.Get("/api/cart", cartHandler.Get)
	r.Post("/api/cart/items", cartHandler.Add)
	r.Post("/api/cart/toggle", cartHandler.Toggle)
	r.Get("/api/cart/contains", cartHandler.Contains)
	r.Delete("/api/cart/items/{id}", cartHandler.Remove)
	r.Delete("/api/cart", cartHandler.Clear)

	// Payment provider webhook (signature-verified, public)
	r.Post("/api/payment/webhook", paymentHandler.Webhook)

	// Auth routes
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.StrictRateLimiter())
		r.Post("/api/auth/login", authHandler.Login)
	})

	// Protected API routes
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.Auth(authSvc))

		// Auth
		r.Post("/api/auth/logout", authHandler.Logout)
		r.Get("/api/auth/me", authHandler.Me)

		// Checkout
		r.Post("/api/checkout", checkoutHandler.Submit)

		// Purchases (ownership derived from completed transactions)
		r.Get("/api/me/domains", purchasesHandler.Domains)
		r.Get("/api/me/hosting", purchasesHandler.Hosting)
		r.Get("/api/me/services", purchasesHandler.Services)

		// Domains owned by a user (self or admin)
		r.Get("/api/domains/user/{userId}", catalogHandler.ListUserDomains)

		// Transactions
		r.Post("/api/transactions", txHandler.Create)
		r.Get("/api/transactions/user/{userId}", txHandler.ListByUser)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.AdminOnly)

			r.Get("/api/admin/stats", adminHandler.GetStats)

			// Users & roles
			r.Get("/api/users", userHandler.List)
			r.Post("/api/users", userHandler.Create)
			r.Delete("/api/users/{id}", userHandler.Delete)
			r.Get("/api/roles", roleHandler.List)
			r.Post("/api/roles", roleHandler.Create)
			r.Put("/api/roles/{id}", roleHandler.Update)
			r.Delete("/api/roles/{id}", roleHandler.Delete)

			// Transactions
			r.Get("/api/transactions", txHandler.List)
			r.Patch("/api/transactions/{id}/status", txHandler.UpdateStatus)
			r.Delete("/api/transactions/{id}", txHandler.Delete)
			r.Post("/api/payment/simulate/{id}", paymentHandler.Simulate)

			// Catalog management
			r.Post("/api/domains", catalogHandler.CreateDomain)
			r.Put("/api/domains/{id}", catalogHandler.UpdateDomain)
			r.Delete("/api/domains/{id}", catalogHandler.DeleteDomain)
			r.Post("/api/hosting", catalogHandler.CreateHosting)
			r.Put("/api/hosting/{id}", catalogHandler.UpdateHosting)
			r.Delete("/api/hosting/{id}", catalogHandler.DeleteHosting)
			r.Post("/api/services", catalogHandler.CreateService)
			r.Put("/api/services/{id}", catalogHandler.UpdateService)
			r.Delete("/api/services/{id}", catalogHandler.DeleteService)

			// Content management
			r.Post("/api/announcements", contentHandler.CreateAnnouncement)
			r.Delete("/api/announcements/{id}", contentHandler.DeleteAnnouncement)
			r.Post("/api/blogs", contentHandler.CreateBlog)
			r.Delete("/api/blogs/{id}", contentHandler.DeleteBlog)
			r.Post("/api/testimonials", contentHandler.CreateTestimonial)
			r.Delete("/api/testimonials/{id}", contentHandler.DeleteTestimonial)
			r.Post("/api/careers", contentHandler.CreateCareer)
			r.Delete("/api/careers/{id}", contentHandler.DeleteCareer)
			r.Post("/api/event-news", contentHandler.CreateEventNews)
			r.Delete("/api/event-news/{id}", contentHandler.DeleteEventNews)
			r.Get("/api/subscribers", contentHandler.ListSubscribers)
			r.Delete("/api/subscribers/{id}", contentHandler.DeleteSubscriber)
		})
	})

	// Start server
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("🛑 Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("🚀 Adverra Backend (Go) listening at http://%s", addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("❌ Server error: %v", err)
	}
}

// loadDotEnv reads KEY=VALUE pairs from a .env file if one exists.
// Existing environment variables are never overwritten.
func loadDotEnv() {
	f, err := os.Open(".env")
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
