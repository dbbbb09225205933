package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/jwt"
	"github.com/rifkydyatama/si-eligible/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	currentResult *dto.UserResponse
	currentErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _, _ string) (*dto.UserResponse, error) {
	return m.currentResult, m.currentErr
}

// ── Mock ScoreService ──

type mockScoreService struct {
	listResult   []dto.ScoreResponse
	listErr      error
	verifyResult *dto.ScoreResponse
	verifyErr    error
}

func (m *mockScoreService) ListMine(_ context.Context, _ string) ([]dto.ScoreResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockScoreService) ListByStudent(_ context.Context, _ string) ([]dto.ScoreResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockScoreService) VerifyOwn(_ context.Context, _, _ string) (*dto.ScoreResponse, error) {
	return m.verifyResult, m.verifyErr
}
func (m *mockScoreService) VerifyAny(_ context.Context, _ string) (*dto.ScoreResponse, error) {
	return m.verifyResult, m.verifyErr
}

// ── Mock DisputeService ──

type mockDisputeService struct {
	submitResult  *dto.DisputeResponse
	submitErr     error
	listResult    []dto.DisputeResponse
	listErr       error
	resolveResult *dto.DisputeResponse
	resolveErr    error
}

func (m *mockDisputeService) Submit(_ context.Context, _ string, _ *dto.SubmitDisputeRequest, _ string) (*dto.DisputeResponse, error) {
	return m.submitResult, m.submitErr
}
func (m *mockDisputeService) ListMine(_ context.Context, _ string) ([]dto.DisputeResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockDisputeService) ListByStatus(_ context.Context, _ string) ([]dto.DisputeResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockDisputeService) Resolve(_ context.Context, _, _ string, _ *dto.ResolveDisputeRequest) (*dto.DisputeResponse, error) {
	return m.resolveResult, m.resolveErr
}

// ── Mock ImportService ──

type mockImportService struct {
	result *dto.ImportResultResponse
	err    error
}

func (m *mockImportService) ImportScores(_ context.Context, _ string, _ io.Reader) (*dto.ImportResultResponse, error) {
	return m.result, m.err
}
func (m *mockImportService) ImportStudents(_ context.Context, _ string, _ io.Reader) (*dto.ImportResultResponse, error) {
	return m.result, m.err
}

// ── Mock StatsService ──

type mockStatsService struct {
	result *dto.StatsResponse
	err    error
}

func (m *mockStatsService) Summary(_ context.Context) (*dto.StatsResponse, error) {
	return m.result, m.err
}

// ── helpers ──

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func newMultipartFile(t *testing.T, body *bytes.Buffer, field, filename string, content []byte) string {
	t.Helper()
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return mw.FormDataContentType()
}

func authInjector(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

// ── AuthHandler ──

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
			User:         dto.UserResponse{ID: "stu-001", Name: "Ani", Role: "student"},
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "0012345678",
		Password: "Si345678",
		Role:     "student",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "0012345678",
		Password: "wrong!",
		Role:     "student",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 10010 {
		t.Errorf("expected error code 10010, got %d", resp.Code)
	}
}

// ── ScoreHandler ──

func TestScoreHandler_VerifyOwn_Forbidden(t *testing.T) {
	h := NewScoreHandler(&mockScoreService{verifyErr: service.ErrNotScoreOwner})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/scores/score-001/verify", nil)

	r := gin.New()
	r.POST("/scores/:id/verify", authInjector("stu-002", "student"), h.VerifyOwn)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestScoreHandler_VerifyOwn_Success(t *testing.T) {
	h := NewScoreHandler(&mockScoreService{
		verifyResult: &dto.ScoreResponse{ID: "score-001", Semester: 1, Subject: "Matematika", Value: 80, Verified: true},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/scores/score-001/verify", nil)

	r := gin.New()
	r.POST("/scores/:id/verify", authInjector("stu-001", "student"), h.VerifyOwn)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ── DisputeHandler ──

func TestDisputeHandler_Resolve_NoteRequired(t *testing.T) {
	h := NewDisputeHandler(&mockDisputeService{resolveErr: service.ErrReviewNoteRequired}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/disputes/disp-001/resolve", jsonBody(dto.ResolveDisputeRequest{
		Decision: "rejected",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/admin/disputes/:id/resolve", authInjector("staff-001", "staff"), h.Resolve)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 31006 {
		t.Errorf("expected error code 31006, got %d", resp.Code)
	}
}

func TestDisputeHandler_Resolve_AlreadyResolved(t *testing.T) {
	h := NewDisputeHandler(&mockDisputeService{resolveErr: service.ErrDisputeAlreadyResolved}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/disputes/disp-001/resolve", jsonBody(dto.ResolveDisputeRequest{
		Decision: "approved",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/admin/disputes/:id/resolve", authInjector("staff-001", "staff"), h.Resolve)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 31005 {
		t.Errorf("expected error code 31005, got %d", resp.Code)
	}
}

// ── ImportHandler ──

func TestImportHandler_ImportScores_ValidationErrors(t *testing.T) {
	h := NewImportHandler(&mockImportService{
		err: &service.ImportValidationError{Errors: []string{"row 2: semester must be between 1 and 5"}},
	})

	var body bytes.Buffer
	mw := newMultipartFile(t, &body, "file", "scores.xlsx", []byte("stub"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/imports/scores", &body)
	req.Header.Set("Content-Type", mw)

	r := gin.New()
	r.POST("/admin/imports/scores", authInjector("staff-001", "staff"), h.ImportScores)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if len(resp.Errors) != 1 {
		t.Errorf("expected row errors in the response, got %v", resp.Errors)
	}
}

func TestImportHandler_ImportScores_StoreErrorIsInternal(t *testing.T) {
	h := NewImportHandler(&mockImportService{
		err: errors.New("connection refused"),
	})

	var body bytes.Buffer
	mw := newMultipartFile(t, &body, "file", "scores.xlsx", []byte("stub"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/imports/scores", &body)
	req.Header.Set("Content-Type", mw)

	r := gin.New()
	r.POST("/admin/imports/scores", authInjector("staff-001", "staff"), h.ImportScores)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 50000 {
		t.Errorf("expected error code 50000, got %d", resp.Code)
	}
}

func TestImportHandler_ImportScores_MissingFile(t *testing.T) {
	h := NewImportHandler(&mockImportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/imports/scores", nil)

	r := gin.New()
	r.POST("/admin/imports/scores", authInjector("staff-001", "staff"), h.ImportScores)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ── StatsHandler ──

func TestStatsHandler_Summary(t *testing.T) {
	h := NewStatsHandler(&mockStatsService{
		result: &dto.StatsResponse{TotalStudents: 120, StudentsWithVerified: 85, PendingDisputes: 4, AcceptedGraduations: 60},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/stats", nil)

	r := gin.New()
	r.GET("/admin/stats", authInjector("staff-001", "staff"), h.Summary)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}
