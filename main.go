package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brookside/auth"
	"brookside/config"
	"brookside/db"
	"brookside/middleware"
	"brookside/models"
	"brookside/orders"
	"brookside/ratelim"
	"brookside/rdx"
	"brookside/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// lookupUser backs the auth middleware with the users collection.
func lookupUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func setupRouter(cfg config.Config, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	gate := middleware.NewGate(cfg.JWTSecret, lookupUser)
	authHandler := auth.NewHandler(cfg.JWTSecret)
	orderHandler := orders.NewHandler(cfg.JWTSecret)

	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router, authHandler, gate, rateLimiter)
	routes.AddProductRoutes(router, gate, rateLimiter)
	routes.AddOrderRoutes(router, orderHandler, gate)
	routes.AddTourRoutes(router, gate, rateLimiter)
	routes.AddContactRoutes(router, gate, rateLimiter)
	routes.AddNewsletterRoutes(router, gate, rateLimiter)
	routes.AddDashboardRoutes(router, gate)
	routes.AddStaticRoutes(router)

	// everything outside /api falls through to the built frontend
	router.NotFound = http.FileServer(http.Dir(cfg.StaticDir))

	return router
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := config.Load()

	if err := db.Connect(cfg); err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}

	if err := rdx.Init(cfg.RedisAddr); err != nil {
		log.Printf("Redis unavailable, caching disabled: %v", err)
	}

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(cfg, rateLimiter)

	// CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := db.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect: %v", err)
	}

	log.Println("Server stopped cleanly")
}
