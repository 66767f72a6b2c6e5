package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"thestream/internal/delivery/http/helpers"
	"thestream/internal/domain"
)

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// LoginRequest is the request body for POST /v1/users.
type LoginRequest struct {
	User string `json:"user"`
}

// Validate implements helpers.Validator.
func (r *LoginRequest) Validate() []string {
	if strings.TrimSpace(r.User) == "" {
		return []string{"user is required"}
	}
	return nil
}

// Login godoc
// @Summary Log in
// @Description Issues a bearer token for the given user name. The token authenticates every /v1/calls request.
// @Tags users
// @Accept json
// @Produce json
// @Param body body controllers.LoginRequest true "User name"
// @Success 200 {object} domain.Session
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /v1/users [post]
func (c *SessionController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	sess, err := c.Service.Login(r.Context(), req.User)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "login failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, sess)
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /healthz [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
