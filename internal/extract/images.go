package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

// DefaultFallbackTimeout bounds the external image-extraction subprocess.
const DefaultFallbackTimeout = 30 * time.Second

// ImageExtractor enumerates embedded raster images. The primary path reads
// image XObjects directly; when that yields nothing for a non-empty
// document, an external command-line tool is tried as a best-effort
// fallback.
type ImageExtractor struct {
	// Tool is the poppler pdfimages binary looked up on PATH.
	Tool    string
	Timeout time.Duration
}

// NewImageExtractor returns an extractor with the default fallback tool.
func NewImageExtractor() *ImageExtractor {
	return &ImageExtractor{
		Tool:    "pdfimages",
		Timeout: DefaultFallbackTimeout,
	}
}

// Extract returns every embedded raster image in the plaintext document
// at path. Names follow image_<page>_<objNr>.<ext> with a 0-based page
// index, which keeps archive entry names unique absent cross-reference
// collisions. If the primary pass finds no images and the document has at
// least one page, the fallback tool is invoked; its results all carry
// page 0 because the tool does not report page attribution. A missing or
// failing tool degrades to an empty list, never an error.
func (e *ImageExtractor) Extract(ctx context.Context, path string, pageCount int) ([]models.ImageAsset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed

	pageImages, err := api.ExtractImagesRaw(f, nil, cfg)
	if err != nil {
		return nil, fmt.Errorf("extract embedded images: %w", err)
	}

	var assets []models.ImageAsset
	for _, byObjNr := range pageImages {
		// Map order is random; sort by object number for a stable result.
		objNrs := make([]int, 0, len(byObjNr))
		for objNr := range byObjNr {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := byObjNr[objNr]
			data, err := io.ReadAll(img)
			if err != nil {
				return nil, fmt.Errorf("read image object %d: %w", objNr, err)
			}
			assets = append(assets, models.ImageAsset{
				Name:  fmt.Sprintf("image_%d_%d.%s", img.PageNr-1, objNr, img.FileType),
				Bytes: data,
				Page:  img.PageNr - 1,
			})
		}
	}

	if len(assets) == 0 && pageCount > 0 {
		return e.fallback(ctx, path), nil
	}
	return assets, nil
}

// fallback shells out to the external tool and collects whatever it wrote
// to a scratch directory. Failures are swallowed: a document without
// recoverable images is still convertible.
func (e *ImageExtractor) fallback(ctx context.Context, path string) []models.ImageAsset {
	slog.Info("no embedded images found, trying command-line fallback", "tool", e.Tool)

	scratch, err := os.MkdirTemp("", "pdf-images-*")
	if err != nil {
		slog.Warn("fallback image extraction skipped", "error", err)
		return nil
	}
	defer os.RemoveAll(scratch)

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultFallbackTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, e.Tool, "-all", path, filepath.Join(scratch, "img"))
	if err := cmd.Run(); err != nil {
		slog.Warn("fallback image extraction failed; is the tool installed and on PATH?", "tool", e.Tool, "error", err)
		return nil
	}

	entries, err := os.ReadDir(scratch)
	if err != nil {
		slog.Warn("failed to read fallback scratch directory", "error", err)
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var assets []models.ImageAsset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(scratch, entry.Name()))
		if err != nil {
			slog.Warn("failed to read fallback image", "name", entry.Name(), "error", err)
			continue
		}
		// Page attribution is lost on this path; everything lands on page 0.
		assets = append(assets, models.ImageAsset{
			Name:  entry.Name(),
			Bytes: data,
			Page:  0,
		})
	}
	slog.Info("fallback image extraction complete", "images", len(assets))
	return assets
}
