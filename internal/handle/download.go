package handle

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Akshayaa139/PlantAnalysisTool/internal/plant"
)

// Download renders a plant record into a PDF and streams it back as an
// attachment. The body is re-defaulted through plant.FromMap, so a record
// that never went through Analyze still renders.
func (h *Handle) Download(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Error().Err(err).Msg("decode report payload")
		writeFailure(w, http.StatusInternalServerError, "invalid report payload", err.Error())
		return
	}
	rec := plant.FromMap(body)

	path, err := h.reports.Render(rec)
	if err != nil {
		log.Error().Err(err).Msg("render report")
		writeFailure(w, http.StatusInternalServerError, "failed to generate report", err.Error())
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("remove report")
		}
	}()

	filename := fmt.Sprintf("PlantReport_%d.pdf", time.Now().UnixMilli())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	http.ServeFile(w, r, path)
}
