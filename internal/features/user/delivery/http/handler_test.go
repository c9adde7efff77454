package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-admin-backend/internal/features/user/models"
	"interview-admin-backend/internal/features/user/query"
	"interview-admin-backend/internal/features/user/service"
)

type fakeUserService struct {
	listOut   []models.Overview
	listErr   error
	lastState query.State
	listCalls int

	statsOut *models.Stats
	statsErr error

	banOut   *models.Overview
	banErr   error
	banID    string
	banValue bool

	deleteOut *models.DeleteReport
	deleteErr error
	deletedID string

	exportName string
	exportData []byte
	exportErr  error
}

func (f *fakeUserService) ListUsers(ctx context.Context, state query.State) ([]models.Overview, error) {
	f.listCalls++
	f.lastState = state
	return f.listOut, f.listErr
}

func (f *fakeUserService) GetStats(ctx context.Context) (*models.Stats, error) {
	return f.statsOut, f.statsErr
}

func (f *fakeUserService) SetBanned(ctx context.Context, id string, banned bool) (*models.Overview, error) {
	f.banID = id
	f.banValue = banned
	return f.banOut, f.banErr
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id string) (*models.DeleteReport, error) {
	f.deletedID = id
	return f.deleteOut, f.deleteErr
}

func (f *fakeUserService) ExportUsers(ctx context.Context, state query.State) (string, []byte, error) {
	f.lastState = state
	return f.exportName, f.exportData, f.exportErr
}

func performRequest(t *testing.T, svc service.UserService, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	NewUserHandler(svc).RegisterRoutes(v1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func sampleOverview() models.Overview {
	return models.Overview{
		User: models.User{
			ID:        "ua",
			Name:      "Alice Carter",
			Email:     "alice@example.com",
			CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
			Credits:   5,
		},
		InterviewCount: 2,
		CandidateCount: 1,
		Status:         models.StatusActive,
	}
}

func TestListUsers_OK(t *testing.T) {
	svc := &fakeUserService{listOut: []models.Overview{sampleOverview()}}

	w := performRequest(t, svc, http.MethodGet, "/api/v1/admin/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "ua", resp.Items[0].ID)
	assert.Equal(t, models.StatusActive, resp.Items[0].Status)

	// default state: newest first, banned hidden
	assert.Equal(t, query.SortCreatedAt, svc.lastState.Sort)
	assert.True(t, svc.lastState.Desc)
	assert.False(t, svc.lastState.IncludeBanned)
}

func TestListUsers_QueryStatePassedThrough(t *testing.T) {
	svc := &fakeUserService{}

	w := performRequest(t, svc, http.MethodGet, "/api/v1/admin/users?search=ali&sort=name&order=asc&include_banned=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "ali", svc.lastState.Search)
	assert.Equal(t, query.SortName, svc.lastState.Sort)
	assert.False(t, svc.lastState.Desc)
	assert.True(t, svc.lastState.IncludeBanned)
}

func TestListUsers_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown sort key", "/api/v1/admin/users?sort=credits"},
		{"unknown order", "/api/v1/admin/users?order=sideways"},
		{"malformed include_banned", "/api/v1/admin/users?include_banned=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeUserService{}
			w := performRequest(t, svc, http.MethodGet, tt.target, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, 0, svc.listCalls, "invalid input must not reach the service")
		})
	}
}

func TestListUsers_BackendError(t *testing.T) {
	svc := &fakeUserService{listErr: errors.New("backend down")}

	w := performRequest(t, svc, http.MethodGet, "/api/v1/admin/users", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Failed to load users"}`, w.Body.String())
}

func TestExportUsers_AttachmentHeaders(t *testing.T) {
	csv := "Name,Email,Created,Interviews,Candidates,Credits,Status\nAlice Carter,alice@example.com,2026-01-15,2,1,5,Active\n"
	svc := &fakeUserService{exportName: "users-2026-08-23.csv", exportData: []byte(csv)}

	w := performRequest(t, svc, http.MethodGet, "/api/v1/admin/users/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, `attachment; filename="users-2026-08-23.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, csv, w.Body.String())
}

func TestExportUsers_InvalidParams(t *testing.T) {
	w := performRequest(t, &fakeUserService{}, http.MethodGet, "/api/v1/admin/users/export?sort=credits", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats_OK(t *testing.T) {
	svc := &fakeUserService{statsOut: &models.Stats{TotalUsers: 4, ActiveUsers: 2, BannedUsers: 1}}

	w := performRequest(t, svc, http.MethodGet, "/api/v1/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.TotalUsers)
	assert.Equal(t, 1, stats.BannedUsers)
}

func TestUpdateBan_OK(t *testing.T) {
	view := sampleOverview()
	view.Banned = true
	view.Status = models.StatusBanned
	svc := &fakeUserService{banOut: &view}

	w := performRequest(t, svc, http.MethodPut, "/api/v1/admin/users/ua/ban", bytes.NewBufferString(`{"banned":true}`))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "ua", svc.banID)
	assert.True(t, svc.banValue)

	var got models.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.StatusBanned, got.Status)
}

func TestUpdateBan_BadBody(t *testing.T) {
	w := performRequest(t, &fakeUserService{}, http.MethodPut, "/api/v1/admin/users/ua/ban", bytes.NewBufferString(`not json`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBan_NotFound(t *testing.T) {
	svc := &fakeUserService{banErr: service.ErrUserNotFound}

	w := performRequest(t, svc, http.MethodPut, "/api/v1/admin/users/ghost/ban", bytes.NewBufferString(`{"banned":true}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

func TestDeleteUser_OK(t *testing.T) {
	svc := &fakeUserService{deleteOut: &models.DeleteReport{
		UserID:      "ua",
		RootDeleted: true,
		Steps: []models.DeleteStep{
			{Name: "interviews", Removed: 2},
			{Name: "candidates", Removed: 1},
			{Name: "user", Removed: 1},
		},
	}}

	w := performRequest(t, svc, http.MethodDelete, "/api/v1/admin/users/ua", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ua", svc.deletedID)

	var report models.DeleteReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.RootDeleted)
	assert.Len(t, report.Steps, 3)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc := &fakeUserService{deleteErr: service.ErrUserNotFound}

	w := performRequest(t, svc, http.MethodDelete, "/api/v1/admin/users/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser_BackendFailureIncludesReport(t *testing.T) {
	svc := &fakeUserService{
		deleteOut: &models.DeleteReport{
			UserID: "ua",
			Steps: []models.DeleteStep{
				{Name: "interviews", Removed: 2},
				{Name: "candidates", Removed: 1},
				{Name: "user", Error: "delete refused"},
			},
		},
		deleteErr: errors.New("delete refused"),
	}

	w := performRequest(t, svc, http.MethodDelete, "/api/v1/admin/users/ua", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	var body struct {
		Error  string               `json:"error"`
		Report *models.DeleteReport `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to delete user", body.Error)
	require.NotNil(t, body.Report)
	assert.False(t, body.Report.RootDeleted)
	assert.Equal(t, "delete refused", body.Report.Steps[2].Error)
}
