package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mams/backend/internal/app/models"
	"github.com/mams/backend/internal/app/models/dto"
	"github.com/mams/backend/internal/pkg/apperrors"
)

type mockStudentService struct {
	addErr     error
	added      *models.Student
	all        []dto.StudentGrNo
	placeable  []dto.AvailableStudent
	documented []dto.AvailableStudent
}

func (m *mockStudentService) AddStudent(_ context.Context, student *models.Student) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = student
	return nil
}

func (m *mockStudentService) ListAllStudents(_ context.Context) ([]dto.StudentGrNo, error) {
	return m.all, nil
}

func (m *mockStudentService) ListAvailableForPlacement(_ context.Context) ([]dto.AvailableStudent, error) {
	return m.placeable, nil
}

func (m *mockStudentService) ListAvailableForDocuments(_ context.Context) ([]dto.AvailableStudent, error) {
	return m.documented, nil
}

func setupStudentRouter(service *mockStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewStudentController(service)
	router.POST("/api/students", controller.AddStudent)
	router.GET("/api/students", controller.GetAvailableForPlacement)
	router.GET("/api/students/all", controller.GetAllStudents)
	router.GET("/api/students/available-for-documents", controller.GetAvailableForDocuments)
	return router
}

func TestAddStudentEndpoint(t *testing.T) {
	service := &mockStudentService{}
	router := setupStudentRouter(service)

	body := `{"gr_no":"GR001","name":"Asha Patel","enroll_no":"EN2024001","academic_year":"2024-25"}`
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if service.added == nil || service.added.GrNo != "GR001" || service.added.AcademicYear != "2024-25" {
		t.Errorf("service received %+v", service.added)
	}
}

func TestAddStudentEndpointConflict(t *testing.T) {
	router := setupStudentRouter(&mockStudentService{addErr: apperrors.ErrStudentAlreadyExists})

	body := `{"gr_no":"GR001","name":"Asha Patel","enroll_no":"EN2024001","academic_year":"2024-25"}`
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAddStudentEndpointMissingField(t *testing.T) {
	service := &mockStudentService{}
	router := setupStudentRouter(service)

	body := `{"gr_no":"GR001","name":"Asha Patel"}`
	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if service.added != nil {
		t.Error("service must not be called for an incomplete body")
	}
}

func TestGetAllStudentsEndpoint(t *testing.T) {
	router := setupStudentRouter(&mockStudentService{all: []dto.StudentGrNo{{GrNo: "GR001"}, {GrNo: "GR002"}}})

	req := httptest.NewRequest(http.MethodGet, "/api/students/all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	// The endpoint returns a bare array, not a wrapped object.
	var list []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("response is not a JSON array: %v; body %s", err, w.Body.String())
	}
	if len(list) != 2 || list[0]["gr_no"] != "GR001" {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestGetAvailableForPlacementEndpoint(t *testing.T) {
	router := setupStudentRouter(&mockStudentService{placeable: []dto.AvailableStudent{{GrNo: "GR002", Name: "Ravi Shah"}}})

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var list []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(list) != 1 || list[0]["name"] != "Ravi Shah" {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestGetAvailableForDocumentsEndpointEmpty(t *testing.T) {
	router := setupStudentRouter(&mockStudentService{documented: []dto.AvailableStudent{}})

	req := httptest.NewRequest(http.MethodGet, "/api/students/available-for-documents", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}
