package services

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

// Stylesheet is the shared style.css entry written to every archive.
const Stylesheet = "body { font-family: sans-serif; color: #333; margin: 2em; }"

// DefaultPageParallelism bounds concurrent per-page synthesis. Each page
// blocks on two model calls, so a small limit keeps request fan-out sane.
const DefaultPageParallelism = 4

// Assembler drives the per-page pipeline across the whole document and
// packages the results into a zip archive.
type Assembler struct {
	markdown    *MarkdownSynthesizer
	html        *HTMLSynthesizer
	parallelism int
}

// NewAssembler wires the two synthesis stages together.
func NewAssembler(markdown *MarkdownSynthesizer, html *HTMLSynthesizer) *Assembler {
	return &Assembler{
		markdown:    markdown,
		html:        html,
		parallelism: DefaultPageParallelism,
	}
}

// Build synthesizes every page and returns the finished archive: page-1.html
// through page-N.html, style.css, and every extracted image under images/.
// Pages are synthesized concurrently; entries are written under their
// deterministic names regardless of completion order.
func (a *Assembler) Build(ctx context.Context, doc models.Document) ([]byte, error) {
	pages := make([]string, doc.PageCount)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.parallelism)
	for i := 0; i < doc.PageCount; i++ {
		page := i
		eg.Go(func() error {
			markdown, err := a.markdown.Synthesize(gctx, doc.Pages[page])
			if err != nil {
				return err
			}
			html, err := a.html.Synthesize(gctx, markdown, page+1, doc.PageCount)
			if err != nil {
				return err
			}
			pages[page] = html
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("page synthesis: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, html := range pages {
		if err := writeEntry(zw, fmt.Sprintf("page-%d.html", i+1), []byte(html)); err != nil {
			return nil, err
		}
	}
	if err := writeEntry(zw, "style.css", []byte(Stylesheet)); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(doc.Images))
	for _, img := range doc.Images {
		if seen[img.Name] {
			slog.Warn("duplicate image name skipped", "name", img.Name)
			continue
		}
		seen[img.Name] = true
		if err := writeEntry(zw, "images/"+img.Name, img.Bytes); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create archive entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write archive entry %s: %w", name, err)
	}
	return nil
}
