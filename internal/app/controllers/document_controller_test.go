package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mams/backend/internal/app/services"
	"github.com/mams/backend/internal/pkg/apperrors"
)

type mockDocumentService struct {
	urls     map[string]string
	err      error
	gotGrNo  string
	gotFiles []services.DocumentFile
	called   bool
}

func (m *mockDocumentService) UploadDocuments(_ context.Context, grNo string, files []services.DocumentFile) (map[string]string, error) {
	m.called = true
	m.gotGrNo = grNo
	m.gotFiles = files
	for i := range files {
		// Drain so the multipart reader is consumed like in production.
		if files[i].Reader != nil {
			_, _ = io.Copy(io.Discard, files[i].Reader)
		}
	}
	return m.urls, m.err
}

func setupDocumentRouter(service *mockDocumentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewDocumentController(service)
	router.POST("/api/documents/upload", controller.UploadDocuments)
	return router
}

func allDocumentParts() map[string][2]string {
	parts := make(map[string][2]string, len(services.RequiredDocumentFields))
	for _, field := range services.RequiredDocumentFields {
		parts[field] = [2]string{field + ".pdf", field + "-bytes"}
	}
	return parts
}

func TestUploadDocumentsEndpoint(t *testing.T) {
	service := &mockDocumentService{urls: map[string]string{
		"registration_form_url": "https://storage.test/r.pdf",
		"marks10_url":           "https://storage.test/m10.pdf",
		"marks12_url":           "https://storage.test/m12.pdf",
		"gujcet_url":            "https://storage.test/g.pdf",
	}}
	router := setupDocumentRouter(service)

	body, contentType := multipartBody(t, map[string]string{"gr_no": "GR001"}, allDocumentParts())
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if service.gotGrNo != "GR001" {
		t.Errorf("service received grNo %q", service.gotGrNo)
	}
	if len(service.gotFiles) != 4 {
		t.Errorf("service received %d files, want 4", len(service.gotFiles))
	}

	var resp struct {
		Message string            `json:"message"`
		URLs    map[string]string `json:"urls"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.URLs["gujcet_url"] != "https://storage.test/g.pdf" {
		t.Errorf("unexpected urls %v", resp.URLs)
	}
}

func TestUploadDocumentsEndpointMissingGrNo(t *testing.T) {
	service := &mockDocumentService{}
	router := setupDocumentRouter(service)

	body, contentType := multipartBody(t, nil, allDocumentParts())
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if service.called {
		t.Error("service must not be called without a GR number")
	}
}

func TestUploadDocumentsEndpointMissingFilePassedThrough(t *testing.T) {
	// Absent form files are not an HTTP-level error; the service decides,
	// so an unknown student outranks a missing file.
	service := &mockDocumentService{err: apperrors.ErrStudentNotFound}
	router := setupDocumentRouter(service)

	parts := allDocumentParts()
	delete(parts, "gujcet")
	body, contentType := multipartBody(t, map[string]string{"gr_no": "GR404"}, parts)
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !service.called {
		t.Fatal("service must be called despite the missing file")
	}
	if len(service.gotFiles) != 3 {
		t.Errorf("service received %d files, want 3", len(service.gotFiles))
	}
}

func TestUploadDocumentsEndpointConflict(t *testing.T) {
	router := setupDocumentRouter(&mockDocumentService{err: apperrors.ErrDocumentsAlreadyExist})

	body, contentType := multipartBody(t, map[string]string{"gr_no": "GR001"}, allDocumentParts())
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
