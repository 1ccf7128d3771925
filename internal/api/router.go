package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jirao/internal/auth"
	"jirao/internal/db"
	"jirao/internal/observability/metrics"
)

// NewRouter wires every gateway operation. Public routes need no token;
// everything under the authenticated subrouter runs with a verified
// (userID, role) in the request context; /api/admin additionally requires the
// admin role.
func NewRouter(jwtSecret string, authH *AuthHandler, spaceH *SpaceHandler, interestH *InterestHandler, reportH *ReportHandler, adminH *AdminHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(metrics.HTTPMetricsMiddleware)

	r.HandleFunc("/health", Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public endpoints
	r.HandleFunc("/api/auth/login", authH.Login).Methods("POST")
	r.HandleFunc("/api/auth/register", authH.Register).Methods("POST")
	r.HandleFunc("/api/auth/admin-login", authH.AdminLogin).Methods("POST")
	r.HandleFunc("/api/spaces", spaceH.ListSpaces).Methods("GET")
	r.HandleFunc("/api/spaces/{id:[0-9]+}", spaceH.GetSpace).Methods("GET")

	// Authenticated endpoints
	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(auth.Middleware(jwtSecret))
	authed.HandleFunc("/spaces", spaceH.CreateSpace).Methods("POST")
	authed.HandleFunc("/spaces/{id:[0-9]+}", spaceH.UpdateSpace).Methods("PUT")
	authed.HandleFunc("/spaces/{id:[0-9]+}/availability", spaceH.UpdateAvailability).Methods("PUT")
	authed.HandleFunc("/spaces/host/{ownerId:[0-9]+}", spaceH.ListHostSpaces).Methods("GET")
	authed.HandleFunc("/interests", interestH.ExpressInterest).Methods("POST")
	authed.HandleFunc("/interests/user/{userId:[0-9]+}", interestH.ListUserInterests).Methods("GET")
	authed.HandleFunc("/interests/space/{spaceId:[0-9]+}", interestH.ListSpaceInterests).Methods("GET")
	authed.HandleFunc("/interests/check/{spaceId:[0-9]+}/{userId:[0-9]+}", interestH.CheckInterest).Methods("GET")
	authed.HandleFunc("/interests/{id:[0-9]+}/respond", interestH.RespondToInterest).Methods("PUT")
	authed.HandleFunc("/interests/{id:[0-9]+}", interestH.CancelInterest).Methods("DELETE")
	authed.HandleFunc("/reports", reportH.CreateReport).Methods("POST")
	authed.HandleFunc("/users/for-reporting/{currentUserId:[0-9]+}/{targetRole}", reportH.UsersForReporting).Methods("GET")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(auth.Middleware(jwtSecret), auth.RequireRole(db.RoleAdmin))
	admin.HandleFunc("/users", adminH.ListUsers).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}/ban", adminH.BanUser).Methods("PUT")
	admin.HandleFunc("/users/{id:[0-9]+}/unban", adminH.UnbanUser).Methods("PUT")
	admin.HandleFunc("/users/{id:[0-9]+}", adminH.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/reports", adminH.ListReports).Methods("GET")
	admin.HandleFunc("/pending-hosts", adminH.ListPendingHosts).Methods("GET")
	admin.HandleFunc("/approve-host/{id:[0-9]+}", adminH.ApproveHost).Methods("POST")
	admin.HandleFunc("/reject-host/{id:[0-9]+}", adminH.RejectHost).Methods("DELETE")

	return r
}
