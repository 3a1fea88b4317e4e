package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"covid-triage-bot/internal/channel"
	"covid-triage-bot/internal/places"
	"covid-triage-bot/internal/report"
	"covid-triage-bot/internal/session"
	"covid-triage-bot/internal/stats"
	"covid-triage-bot/internal/triage"
	"covid-triage-bot/internal/webhook"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// A broken flow or card table must never serve a patient.
	if err := triage.ValidateTables(); err != nil {
		log.Fatalf("Static table validation failed: %v", err)
	}

	// 1. Statistics warehouse (optional: stats degrade to an apology)
	dbConnStr := os.Getenv("DATABASE_URL")
	var db *sql.DB
	if dbConnStr != "" {
		var err error
		for i := 0; i < 10; i++ {
			db, err = sql.Open("postgres", dbConnStr)
			if err == nil {
				err = db.Ping()
			}
			if err == nil {
				break
			}
			fmt.Printf("Waiting for DB... (%d/10)\n", i+1)
			time.Sleep(time.Second)
		}
		if err != nil {
			log.Printf("Could not connect to DB: %v. Continuing without statistics.\n", err)
			db = nil
		} else {
			log.Println("Connected to Database.")
			m, err := migrate.New("file://migrations", dbConnStr)
			if err != nil {
				log.Printf("Migration init failed: %v", err)
			} else if err := m.Up(); err != nil && err != migrate.ErrNoChange {
				log.Printf("Migration up failed: %v", err)
			} else {
				log.Println("Migrations applied successfully!")
			}
		}
	} else {
		log.Println("DATABASE_URL is not set. Statistics queries will apologize.")
	}

	// 2. Session state store (Redis, or in-memory when not configured)
	var store triage.StateStore
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatalf("Could not connect to Redis at %s: %v", redisAddr, err)
		}
		log.Println("Connected to Redis.")
		store = session.NewRedisStore(rdb)
	} else {
		log.Println("REDIS_ADDR is not set. Using in-memory session store.")
		store = session.NewMemoryStore()
	}

	// 3. Services
	triageSvc := triage.NewService(store)
	statsSvc := stats.NewService(stats.NewRepository(db))
	placesClient := places.NewClient(os.Getenv("GOOGLE_MAPS_API_KEY"))
	placesSvc := places.NewService(placesClient)
	reportSvc := report.NewService()

	dispatcher := webhook.NewDispatcher(triageSvc, statsSvc, placesSvc)
	handler := webhook.NewHandler(dispatcher, reportSvc)

	var allowedOrigins []string
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	wsHandler := channel.NewWSHandler(dispatcher, allowedOrigins)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		webhook.RegisterRoutes(r, handler)
	})
	r.Handle("/ws", wsHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
