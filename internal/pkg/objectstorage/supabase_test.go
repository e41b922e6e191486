package objectstorage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUploadSendsExpectedRequest(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotContentType, gotCacheControl, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotCacheControl = r.Header.Get("Cache-Control")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	storage, err := NewSupabaseStorage(server.URL, "service-key", "documents")
	if err != nil {
		t.Fatalf("NewSupabaseStorage returned error: %v", err)
	}

	err = storage.Upload(context.Background(), "placement_proofs/G1_placed_x.pdf", "application/pdf",
		strings.NewReader("file-bytes"), UploadOptions{CacheControl: "max-age=3600"})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("expected PUT, got %s", gotMethod)
	}
	if gotPath != "/storage/v1/object/documents/placement_proofs/G1_placed_x.pdf" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if gotAuth != "Bearer service-key" {
		t.Errorf("unexpected authorization header %q", gotAuth)
	}
	if gotContentType != "application/pdf" {
		t.Errorf("unexpected content type %q", gotContentType)
	}
	if gotCacheControl != "max-age=3600" {
		t.Errorf("unexpected cache control %q", gotCacheControl)
	}
	if gotBody != "file-bytes" {
		t.Errorf("unexpected body %q", gotBody)
	}
}

func TestUploadPropagatesRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Duplicate"}`))
	}))
	defer server.Close()

	storage, _ := NewSupabaseStorage(server.URL, "service-key", "documents")

	err := storage.Upload(context.Background(), "k.pdf", "application/pdf", strings.NewReader("x"), UploadOptions{})
	if err == nil {
		t.Fatal("expected error for rejected upload")
	}
	if !strings.Contains(err.Error(), "409") || !strings.Contains(err.Error(), "Duplicate") {
		t.Errorf("expected status and body in error, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	var gotMethod, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	storage, _ := NewSupabaseStorage(server.URL, "service-key", "documents")

	if err := storage.Remove(context.Background(), "placement_proofs/old.pdf"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("expected DELETE, got %s", gotMethod)
	}
	if gotPath != "/storage/v1/object/documents/placement_proofs/old.pdf" {
		t.Errorf("unexpected path %s", gotPath)
	}
}

func TestUploadEscapesKeySegments(t *testing.T) {
	var gotEscapedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEscapedPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	storage, _ := NewSupabaseStorage(server.URL, "service-key", "documents")

	// GR numbers and statuses are caller input and may carry spaces or
	// percent signs; they must not reach the request path raw.
	err := storage.Upload(context.Background(), "placement_proofs/GR 01_higher studies_x.pdf",
		"application/pdf", strings.NewReader("x"), UploadOptions{})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	want := "/storage/v1/object/documents/placement_proofs/GR%2001_higher%20studies_x.pdf"
	if gotEscapedPath != want {
		t.Errorf("escaped path = %q, want %q", gotEscapedPath, want)
	}
}

func TestPublicURLEscapesKeySegments(t *testing.T) {
	storage, _ := NewSupabaseStorage("https://proj.supabase.co", "service-key", "documents")

	got := storage.PublicURL("enrollment/GR 01/marks10/x_file.pdf")
	want := "https://proj.supabase.co/storage/v1/object/public/documents/enrollment/GR%2001/marks10/x_file.pdf"
	if got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}

func TestPublicURL(t *testing.T) {
	storage, _ := NewSupabaseStorage("https://proj.supabase.co/", "service-key", "documents")

	got := storage.PublicURL("enrollment/G1/marks10/x_file.pdf")
	want := "https://proj.supabase.co/storage/v1/object/public/documents/enrollment/G1/marks10/x_file.pdf"
	if got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}

func TestNewSupabaseStorageRequiresConfig(t *testing.T) {
	if _, err := NewSupabaseStorage("", "key", "documents"); err == nil {
		t.Error("expected error for missing project URL")
	}
	if _, err := NewSupabaseStorage("https://proj.supabase.co", "key", ""); err == nil {
		t.Error("expected error for missing bucket")
	}
}
