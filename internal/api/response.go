// internal/api/response.go
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"creative-brief/internal/models"
)

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type readyResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp string            `json:"timestamp"`
}

type previewMetadata struct {
	TotalSections int    `json:"total_sections"`
	SampleData    bool   `json:"sample_data"`
	Structure     string `json:"structure"`
}

type previewResponse struct {
	Success   bool             `json:"success"`
	Preview   bool             `json:"preview"`
	Timestamp string           `json:"timestamp"`
	Sections  []models.Section `json:"sections"`
	Metadata  previewMetadata  `json:"metadata"`
}

type briefMetadata struct {
	ResearchTime  float64  `json:"research_time"`
	AgentsUsed    []string `json:"agents_used"`
	TotalSections int      `json:"total_sections"`
	BriefID       string   `json:"brief_id"`
	PDFPath       string   `json:"pdf_path,omitempty"`
}

type briefResponse struct {
	Success   bool             `json:"success"`
	Timestamp string           `json:"timestamp"`
	Sections  []models.Section `json:"sections"`
	Metadata  briefMetadata    `json:"metadata"`
}

type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message, Timestamp: timestamp()})
}
