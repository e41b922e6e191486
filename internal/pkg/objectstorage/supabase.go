package objectstorage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mams/backend/internal/pkg/logger"
)

// SupabaseStorage talks to the Supabase storage REST API for a single bucket.
type SupabaseStorage struct {
	projectURL string // e.g. https://xyz.supabase.co
	serviceKey string
	bucket     string
	client     *http.Client
}

// NewSupabaseStorage creates a storage client for the given bucket.
func NewSupabaseStorage(projectURL, serviceKey, bucket string) (*SupabaseStorage, error) {
	if projectURL == "" || serviceKey == "" {
		return nil, fmt.Errorf("storage project URL and service key are required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	return &SupabaseStorage{
		projectURL: strings.TrimRight(projectURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		client:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// objectURL is the authenticated endpoint for a key.
func (s *SupabaseStorage) objectURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", s.projectURL, s.bucket, escapeKey(key))
}

// escapeKey escapes each path segment of a key, keeping the separators.
// Key segments embed caller-supplied values, so characters like spaces or
// percent signs must not reach the URL raw.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// Upload writes the object under key with the given content type.
func (s *SupabaseStorage) Upload(ctx context.Context, key, contentType string, r io.Reader, opts UploadOptions) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.objectURL(key), r)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if opts.CacheControl != "" {
		req.Header.Set("Cache-Control", opts.CacheControl)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		logger.Error().Int("status", resp.StatusCode).Str("key", key).Msg("Storage upload rejected")
		return fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	logger.Debug().Str("key", key).Str("contentType", contentType).Msg("Object uploaded")
	return nil
}

// Remove deletes the object under key.
func (s *SupabaseStorage) Remove(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(key), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send delete request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	logger.Debug().Str("key", key).Msg("Object deleted")
	return nil
}

// PublicURL derives the unauthenticated URL for key without a round trip.
func (s *SupabaseStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.projectURL, s.bucket, escapeKey(key))
}
