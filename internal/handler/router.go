package handler

import (
	"net/http"

	"github.com/dmikh/job-tracker/internal/middleware"
	"github.com/dmikh/job-tracker/internal/service"
	"github.com/gorilla/mux"
)

// NewRouter wires all routes. Everything under /api/v1 except register and
// login goes through the auth middleware.
func NewRouter(h *Handler, svc *service.Service) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", h.Register).Methods("POST")
	api.HandleFunc("/auth/login", h.Login).Methods("POST")

	// Protected routes
	authed := api.PathPrefix("/").Subrouter()
	authed.Use(middleware.AuthMiddleware(svc))
	authed.HandleFunc("/auth/me", h.Me).Methods("GET")
	authed.HandleFunc("/auth/me", h.UpdateMe).Methods("PUT")

	authed.HandleFunc("/jobs", h.CreateJob).Methods("POST")
	authed.HandleFunc("/jobs", h.ListJobs).Methods("GET")
	authed.HandleFunc("/jobs/stats", h.JobStats).Methods("GET")
	authed.HandleFunc("/jobs/recent", h.RecentJobs).Methods("GET")
	authed.HandleFunc("/jobs/export", h.ExportJobs).Methods("GET")
	authed.HandleFunc("/jobs/{id:[0-9]+}", h.GetJob).Methods("GET")
	authed.HandleFunc("/jobs/{id:[0-9]+}", h.UpdateJob).Methods("PUT")
	authed.HandleFunc("/jobs/{id:[0-9]+}", h.DeleteJob).Methods("DELETE")

	authed.HandleFunc("/jobs/{id:[0-9]+}/documents", h.UploadDocument).Methods("POST")
	authed.HandleFunc("/jobs/{id:[0-9]+}/documents", h.ListDocuments).Methods("GET")
	authed.HandleFunc("/documents/{id:[0-9]+}/download", h.DownloadDocument).Methods("GET")
	authed.HandleFunc("/documents/{id:[0-9]+}", h.DeleteDocument).Methods("DELETE")

	// Admin routes
	admin := authed.PathPrefix("/users").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("", h.ListUsers).Methods("GET")

	return r
}
