package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"thestream/internal/delivery/http/helpers"
	"thestream/internal/delivery/http/middleware"
	"thestream/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCallService struct {
	startID, startFrom, startTo string
	startCalled                 bool
	listUser                    string
	listResult                  []*domain.CallInvitation
	endedID                     string
	err                         error
}

func (m *mockCallService) StartCall(ctx context.Context, id, from, to string) (*domain.CallInvitation, error) {
	m.startCalled = true
	m.startID, m.startFrom, m.startTo = id, from, to
	if m.err != nil {
		return nil, m.err
	}
	return domain.NewCallInvitation(id, from, to), nil
}

func (m *mockCallService) IncomingCalls(ctx context.Context, user string) ([]*domain.CallInvitation, error) {
	m.listUser = user
	if m.err != nil {
		return nil, m.err
	}
	return m.listResult, nil
}

func (m *mockCallService) EndCall(ctx context.Context, id string) error {
	m.endedID = id
	return m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func withCaller(req *http.Request, user string) *http.Request {
	return req.WithContext(middleware.SetUser(req.Context(), user))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) *helpers.APIError {
	t.Helper()
	var resp helpers.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestCallController_StartCall(t *testing.T) {
	tests := []struct {
		name        string
		caller      string
		body        string
		svcErr      error
		wantStatus  int
		wantCode    string
		wantSvcCall bool
	}{
		{name: "success", caller: "alice", body: `{"id":"c1","to":"bob"}`, wantStatus: http.StatusOK, wantSvcCall: true},
		{name: "unauthenticated", caller: "", body: `{"id":"c1","to":"bob"}`, wantStatus: http.StatusUnauthorized, wantCode: helpers.ErrCodeUnauthorized},
		{name: "missing id", caller: "alice", body: `{"to":"bob"}`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "missing to", caller: "alice", body: `{"id":"c1"}`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "client supplied from is rejected", caller: "alice", body: `{"id":"c1","from":"mallory","to":"bob"}`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "malformed json", caller: "alice", body: `{`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "service validation error", caller: "alice", body: `{"id":"c1","to":"bob"}`, svcErr: domain.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest, wantSvcCall: true},
		{name: "service failure", caller: "alice", body: `{"id":"c1","to":"bob"}`, svcErr: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError, wantSvcCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCallService{err: tt.svcErr}
			ctrl := NewCallController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/v1/calls", strings.NewReader(tt.body))
			if tt.caller != "" {
				req = withCaller(req, tt.caller)
			}
			rr := httptest.NewRecorder()
			ctrl.StartCall(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantSvcCall, svc.startCalled)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
				return
			}
			var inv domain.CallInvitation
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &inv))
			assert.Equal(t, domain.CallInvitation{ID: "c1", From: "alice", To: "bob"}, inv)
			assert.Equal(t, "alice", svc.startFrom, "caller comes from the context")
		})
	}
}

func TestCallController_StartCall_wire_format(t *testing.T) {
	ctrl := NewCallController(testLogger(), &mockCallService{})
	req := withCaller(httptest.NewRequest(http.MethodPost, "/v1/calls", strings.NewReader(`{"id":"c1","to":"bob"}`)), "alice")
	rr := httptest.NewRecorder()
	ctrl.StartCall(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"c1","from":"alice","to":"bob"}`, rr.Body.String())
}

func TestCallController_ListCalls(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := NewCallController(testLogger(), &mockCallService{})
		rr := httptest.NewRecorder()
		ctrl.ListCalls(rr, httptest.NewRequest(http.MethodGet, "/v1/calls", nil))
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("success uses caller as filter", func(t *testing.T) {
		svc := &mockCallService{listResult: []*domain.CallInvitation{
			{ID: "c1", From: "alice", To: "bob"},
			{ID: "c2", From: "carol", To: "bob"},
		}}
		ctrl := NewCallController(testLogger(), svc)
		rr := httptest.NewRecorder()
		ctrl.ListCalls(rr, withCaller(httptest.NewRequest(http.MethodGet, "/v1/calls", nil), "bob"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "bob", svc.listUser)
		assert.JSONEq(t, `[{"id":"c1","from":"alice","to":"bob"},{"id":"c2","from":"carol","to":"bob"}]`, rr.Body.String())
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		ctrl := NewCallController(testLogger(), &mockCallService{})
		rr := httptest.NewRecorder()
		ctrl.ListCalls(rr, withCaller(httptest.NewRequest(http.MethodGet, "/v1/calls", nil), "alice"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("service failure", func(t *testing.T) {
		ctrl := NewCallController(testLogger(), &mockCallService{err: errors.New("db down")})
		rr := httptest.NewRecorder()
		ctrl.ListCalls(rr, withCaller(httptest.NewRequest(http.MethodGet, "/v1/calls", nil), "bob"))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, helpers.ErrCodeInternalError, decodeError(t, rr).Code)
	})
}

func TestCallController_EndCall(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockCallService{}
		ctrl := NewCallController(testLogger(), svc)
		req := withCaller(httptest.NewRequest(http.MethodDelete, "/v1/calls/c1", nil), "bob")
		req.SetPathValue("id", "c1")
		rr := httptest.NewRecorder()
		ctrl.EndCall(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "c1", svc.endedID)
		assert.JSONEq(t, `{"success":true}`, rr.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := &mockCallService{}
		ctrl := NewCallController(testLogger(), svc)
		req := httptest.NewRequest(http.MethodDelete, "/v1/calls/c1", nil)
		req.SetPathValue("id", "c1")
		rr := httptest.NewRecorder()
		ctrl.EndCall(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, svc.endedID)
	})

	t.Run("missing id", func(t *testing.T) {
		ctrl := NewCallController(testLogger(), &mockCallService{})
		rr := httptest.NewRecorder()
		ctrl.EndCall(rr, withCaller(httptest.NewRequest(http.MethodDelete, "/v1/calls/", nil), "bob"))

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		ctrl := NewCallController(testLogger(), &mockCallService{err: errors.New("db down")})
		req := withCaller(httptest.NewRequest(http.MethodDelete, "/v1/calls/c1", nil), "bob")
		req.SetPathValue("id", "c1")
		rr := httptest.NewRecorder()
		ctrl.EndCall(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
