package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// PlacementUploadResponse is returned after a placement proof is stored
type PlacementUploadResponse struct {
	Message string `json:"message"`
	FileURL string `json:"file_url"`
}

// DocumentsUploadResponse returns the public URL of every uploaded document,
// keyed as "{field}_url" (the gujcet URL under "gujcet_url").
type DocumentsUploadResponse struct {
	Message string            `json:"message"`
	URLs    map[string]string `json:"urls"`
}
