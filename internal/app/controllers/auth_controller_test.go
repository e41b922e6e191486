package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mams/backend/internal/pkg/apperrors"
)

type mockAuthService struct {
	registerErr error
	loginToken  string
	loginErr    error
	lastEmail   string
}

func (m *mockAuthService) Register(_ context.Context, email, _ string) error {
	m.lastEmail = email
	return m.registerErr
}

func (m *mockAuthService) Login(_ context.Context, email, _ string) (string, error) {
	m.lastEmail = email
	return m.loginToken, m.loginErr
}

func setupAuthRouter(service *mockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(service)
	router.POST("/api/auth/register", controller.Register)
	router.POST("/api/auth/login", controller.Login)
	return router
}

func TestRegisterEndpoint(t *testing.T) {
	service := &mockAuthService{}
	router := setupAuthRouter(service)

	body := `{"email":"admin@college.edu","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d; body %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if service.lastEmail != "admin@college.edu" {
		t.Errorf("service received email %q", service.lastEmail)
	}
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{registerErr: apperrors.ErrUserAlreadyExists})

	body := `{"email":"admin@college.edu","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRegisterEndpointMalformedBody(t *testing.T) {
	service := &mockAuthService{}
	router := setupAuthRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if service.lastEmail != "" {
		t.Error("service must not be called for a malformed body")
	}
}

func TestLoginEndpoint(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{loginToken: "signed.jwt.token"})

	body := `{"email":"admin@college.edu","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Errorf("token = %q", resp.Token)
	}
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{loginErr: apperrors.ErrInvalidCredentials})

	body := `{"email":"admin@college.edu","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
