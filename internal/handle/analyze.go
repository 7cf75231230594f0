package handle

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Akshayaa139/PlantAnalysisTool/internal/plant"
	"github.com/Akshayaa139/PlantAnalysisTool/internal/util"
)

const (
	maxUploadSize  = 10 << 20 // 10 MB
	analyzeTimeout = 120 * time.Second
)

type analyzeResponse struct {
	Success bool `json:"success"`
	plant.Record
}

// Analyze runs one image-analysis round trip: save the upload, send it inline
// to the model, normalize the reply, return the record plus the original
// image as a data URI.
func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad multipart form: " + err.Error()})
		return
	}
	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no image file uploaded"})
		return
	}
	if len(files) > 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exactly one image file is expected"})
		return
	}
	fh := files[0]

	path, err := h.saveUpload(fh)
	if err != nil {
		log.Error().Err(err).Msg("save upload")
		writeFailure(w, http.StatusInternalServerError, "failed to store uploaded image", err.Error())
		return
	}
	// The upload is removed on every exit path, including model-call and
	// parse failures. Removal failure is logged, never surfaced.
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("remove upload")
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("read upload")
		writeFailure(w, http.StatusInternalServerError, "failed to read uploaded image", err.Error())
		return
	}
	mime := util.PickMIME(fh.Header.Get("Content-Type"), "", data)

	ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
	defer cancel()

	raw, err := h.eng.Analyze(ctx, data, mime)
	if err != nil {
		log.Error().Err(err).Str("engine", h.eng.Name()).Msg("analyze")
		writeFailure(w, http.StatusInternalServerError, "failed to analyze image", err.Error())
		return
	}

	rec, err := plant.Normalize(raw)
	if err != nil {
		log.Error().Err(err).Msg("normalize model reply")
		writeFailure(w, http.StatusInternalServerError, "failed to parse analysis result", err.Error())
		return
	}
	rec.Image = util.MakeDataURL(mime, base64.StdEncoding.EncodeToString(data))

	writeJSON(w, http.StatusOK, analyzeResponse{Success: true, Record: rec})
}

// saveUpload persists the multipart file under a collision-free name and
// returns its path.
func (h *Handle) saveUpload(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], filepath.Ext(fh.Filename))
	path := filepath.Join(h.uploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return path, nil
}
