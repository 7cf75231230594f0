// Package report renders a normalized plant record into a paginated PDF.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/Akshayaa139/PlantAnalysisTool/internal/plant"
	"github.com/Akshayaa139/PlantAnalysisTool/internal/util"
)

// Placeholders for empty list sections.
const (
	noIssues    = "No issues detected"
	noCare      = "No care recommendations provided"
	noTreatment = "No treatment needed"
)

// Bounds for the embedded plant image, in mm on an A4 page.
const (
	imageMaxW = 150.0
	imageMaxH = 180.0
)

// Generator writes reports into a dedicated directory with collision-free
// names, one file per request.
type Generator struct {
	dir string
}

func NewGenerator(dir string) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create dir: %w", err)
	}
	return &Generator{dir: dir}, nil
}

// Render lays out the record into a PDF and returns the path of the finished
// file. The document is built fully in memory; the file exists only once the
// write completed, so there is never a partial file to serve. The caller owns
// deletion of the returned file.
func (g *Generator) Render(rec plant.Record) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Plant Analysis Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 14, "Plant Analysis Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, time.Now().Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	sectionTitle(pdf, "Species Identification")
	labeledLine(pdf, "Name", rec.Species.Name)
	labeledLine(pdf, "Family", rec.Species.Family)
	labeledLine(pdf, "Origin", rec.Species.Origin)
	paragraph(pdf, rec.Species.Characteristics)

	sectionTitle(pdf, "Health Assessment")
	labeledLine(pdf, "Status", rec.Health.Status)
	bulletList(pdf, rec.Health.Issues, noIssues)
	paragraph(pdf, rec.Health.Assessment)

	sectionTitle(pdf, "Care Recommendations")
	bulletList(pdf, rec.Recommendations.Care, noCare)
	subTitle(pdf, "Treatment")
	bulletList(pdf, rec.Recommendations.Treatment, noTreatment)
	paragraph(pdf, rec.Recommendations.Notes)

	sectionTitle(pdf, "Interesting Facts")
	paragraph(pdf, rec.InterestingFacts)

	if rec.Image != "" {
		if err := appendImagePage(pdf, rec.Image); err != nil {
			return "", err
		}
	}
	if pdf.Err() {
		return "", fmt.Errorf("report: layout: %w", pdf.Error())
	}

	name := fmt.Sprintf("PlantReport_%d_%s.pdf", time.Now().UnixMilli(), uuid.NewString()[:8])
	path := filepath.Join(g.dir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("report: write: %w", err)
	}
	return path, nil
}

func appendImagePage(pdf *gofpdf.Fpdf, dataURI string) error {
	img, hint, err := util.DecodeBase64MaybeDataURL(dataURI)
	if err != nil {
		return fmt.Errorf("report: bad image data: %w", err)
	}
	imgType, err := imageType(util.PickMIME("", hint, img))
	if err != nil {
		return err
	}

	pdf.AddPage()
	sectionTitle(pdf, "Plant Image")

	opts := gofpdf.ImageOptions{ImageType: imgType}
	info := pdf.RegisterImageOptionsReader("plant", opts, bytes.NewReader(img))
	if pdf.Err() {
		return fmt.Errorf("report: embed image: %w", pdf.Error())
	}

	// Scale to fit the bounded area, never upscale past page width.
	w, h := info.Extent()
	scale := imageMaxW / w
	if s := imageMaxH / h; s < scale {
		scale = s
	}
	w, h = w*scale, h*scale
	x := (210 - w) / 2
	pdf.ImageOptions("plant", x, pdf.GetY()+4, w, h, false, opts, 0, "")
	return nil
}

func imageType(mime string) (string, error) {
	switch strings.ToLower(mime) {
	case "image/jpeg", "image/jpg":
		return "JPG", nil
	case "image/png":
		return "PNG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("report: unsupported image type %q", mime)
	}
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func subTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func labeledLine(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(28, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, value, "", "L", false)
}

func paragraph(pdf *gofpdf.Fpdf, text string) {
	if text == "" {
		return
	}
	pdf.MultiCell(0, 6, text, "", "L", false)
	pdf.Ln(2)
}

func bulletList(pdf *gofpdf.Fpdf, items []string, placeholder string) {
	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, placeholder, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Ln(1)
		return
	}
	for _, it := range items {
		pdf.CellFormat(6, 6, "-", "", 0, "R", false, 0, "")
		pdf.MultiCell(0, 6, it, "", "L", false)
	}
	pdf.Ln(1)
}
