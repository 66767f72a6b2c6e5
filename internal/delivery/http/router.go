package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"thestream/internal/delivery/http/controllers"
	"thestream/internal/delivery/http/middleware"
	"thestream/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Every /v1/calls route runs behind RequireAuth.
func NewRouter(callController *controllers.CallController, sessionController *controllers.SessionController, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Sessions
	mux.HandleFunc("POST /v1/users", sessionController.Login)

	// Calls
	mux.HandleFunc("POST /v1/calls", auth(callController.StartCall))
	mux.HandleFunc("GET /v1/calls", auth(callController.ListCalls))
	mux.HandleFunc("DELETE /v1/calls/{id}", auth(callController.EndCall))

	mux.HandleFunc("GET /healthz", controllers.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
