package handle

import (
	"encoding/json"
	"net/http"

	"github.com/Akshayaa139/PlantAnalysisTool/internal/report"
	"github.com/Akshayaa139/PlantAnalysisTool/internal/vision"
)

type Handle struct {
	eng       vision.Engine
	reports   *report.Generator
	uploadDir string
}

func New(eng vision.Engine, reports *report.Generator, uploadDir string) *Handle {
	return &Handle{
		eng:       eng,
		reports:   reports,
		uploadDir: uploadDir,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeFailure is the 5xx body shape shared by analysis and render failures.
func writeFailure(w http.ResponseWriter, code int, msg, details string) {
	writeJSON(w, code, map[string]any{
		"success": false,
		"error":   msg,
		"details": details,
	})
}
