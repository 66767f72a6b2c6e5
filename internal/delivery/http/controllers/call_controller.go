package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"thestream/internal/delivery/http/helpers"
	"thestream/internal/delivery/http/middleware"
	"thestream/internal/domain"
)

type CallController struct {
	Logger  *slog.Logger
	Service domain.CallService
}

func NewCallController(logger *slog.Logger, svc domain.CallService) *CallController {
	return &CallController{
		Logger:  logger,
		Service: svc,
	}
}

// StartCallRequest is the request body for POST /v1/calls.
// The caller is taken from the bearer token; a "from" field is rejected.
type StartCallRequest struct {
	ID string `json:"id"`
	To string `json:"to"`
}

// Validate implements helpers.Validator.
func (r *StartCallRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.ID) == "" {
		errs = append(errs, "id is required")
	}
	if strings.TrimSpace(r.To) == "" {
		errs = append(errs, "to is required")
	}
	return errs
}

// StartCall godoc
// @Summary Start a call
// @Description Records an invitation from the authenticated user to the user in "to". Invitations with an id already in use are accepted and coexist.
// @Tags calls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.StartCallRequest true "Invitation id and target user"
// @Success 200 {object} domain.CallInvitation
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /v1/calls [post]
func (c *CallController) StartCall(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req StartCallRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	inv, err := c.Service.StartCall(r.Context(), req.ID, caller, req.To)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, inv)
}

// ListCalls godoc
// @Summary List incoming calls
// @Description Returns the invitations addressed to the authenticated user, oldest first. Calls the user started are not included.
// @Tags calls
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.CallInvitation
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /v1/calls [get]
func (c *CallController) ListCalls(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	invs, err := c.Service.IncomingCalls(r.Context(), caller)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	if invs == nil {
		invs = []*domain.CallInvitation{}
	}
	helpers.WriteJSON(w, http.StatusOK, invs)
}

// EndCall godoc
// @Summary End a call
// @Description Removes every invitation with the given id. Succeeds whether or not such an invitation exists.
// @Tags calls
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invitation id"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 401 {object} helpers.ErrorResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /v1/calls/{id} [delete]
func (c *CallController) EndCall(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}

	if err := c.Service.EndCall(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.SuccessResponse{Success: true})
}

func (c *CallController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
}
