package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"jirao/internal/api"
	"jirao/internal/auth"
	"jirao/internal/memstore"
	"jirao/internal/repository"
	"jirao/internal/service"
)

type stores struct {
	auth      repository.AuthRepository
	spaces    repository.SpaceRepository
	interests repository.InterestRepository
	reports   repository.ReportRepository
	admin     repository.AdminRepository
}

func main() {
	godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-change-in-production"
		log.Println("WARNING: JWT_SECRET not set, using development secret")
	}

	st := openStores()

	notifier := service.NewNotifyService()
	authSvc := service.NewAuthService(st.auth, jwtSecret, 24*time.Hour)
	spaceSvc := service.NewSpaceService(st.spaces)
	interestSvc := service.NewInterestService(st.interests, st.spaces, st.auth, notifier)
	reportSvc := service.NewReportService(st.reports, st.auth, st.spaces)
	adminSvc := service.NewAdminService(st.admin, notifier)

	r := api.NewRouter(jwtSecret,
		api.NewAuthHandler(authSvc),
		api.NewSpaceHandler(spaceSvc),
		api.NewInterestHandler(interestSvc),
		api.NewReportHandler(reportSvc),
		api.NewAdminHandler(adminSvc, reportSvc),
	)

	startJanitor(st.admin)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	handler := handlers.LoggingHandler(os.Stdout, corsHandler(auth.RateLimit(rateLimitRPS(), 20)(r)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// openStores picks the backend: Postgres when DATABASE_URL is set, otherwise
// the in-memory store. Both satisfy the same repository contracts.
func openStores() stores {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Println("DATABASE_URL not set, running with in-memory store")
		mem := memstore.New()
		return stores{
			auth:      mem.Auth(),
			spaces:    mem.Spaces(),
			interests: mem.Interests(),
			reports:   mem.Reports(),
			admin:     mem.Admin(),
		}
	}

	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	return stores{
		auth:      repository.NewAuthRepo(database),
		spaces:    repository.NewSpaceRepo(database),
		interests: repository.NewInterestRepo(database),
		reports:   repository.NewReportRepo(database),
		admin:     repository.NewAdminRepo(database),
	}
}

// startJanitor schedules the daily purge of host applications nobody resolved.
func startJanitor(admin repository.AdminRepository) {
	maxAgeDays := 30
	if v := os.Getenv("PENDING_HOST_MAX_AGE_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxAgeDays = parsed
		}
	}
	janitor := service.NewJanitorService(admin, time.Duration(maxAgeDays)*24*time.Hour)

	c := cron.New()
	if _, err := c.AddFunc("@daily", func() {
		if err := janitor.PurgeStalePendingHosts(); err != nil {
			log.Printf("Janitor run failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule janitor: %v", err)
	}
	c.Start()
}

func rateLimitRPS() float64 {
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 50
}
