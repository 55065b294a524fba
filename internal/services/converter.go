package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/extract"
	"github.com/Goutam-aswani/pdf-to-html-converter/internal/llm"
)

// Converter runs one full PDF-to-archive conversion: open, extract,
// join, synthesize, package. One instance serves all requests.
type Converter struct {
	images    *extract.ImageExtractor
	assembler *Assembler
}

// NewConverter wires the pipeline around the pre-configured model client.
func NewConverter(client *llm.Client) *Converter {
	return &Converter{
		images: extract.NewImageExtractor(),
		assembler: NewAssembler(
			NewMarkdownSynthesizer(client.MarkdownModel()),
			NewHTMLSynthesizer(client.HTMLModel()),
		),
	}
}

// Convert processes the PDF at srcPath and returns the finished zip
// archive. workDir is a caller-owned scratch directory; intermediate
// files land there and are cleaned up with it. Domain errors (invalid
// document, password protection) propagate typed for the HTTP boundary.
func (cv *Converter) Convert(ctx context.Context, srcPath, workDir, password string) ([]byte, error) {
	// Encryption is handled once, up front: every subsequent pass reads
	// the plaintext copy and never sees a password.
	plainPath, err := extract.Decrypt(srcPath, filepath.Join(workDir, "decrypted.pdf"), password)
	if err != nil {
		return nil, err
	}

	handle, err := extract.Open(plainPath)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	meta := handle.Metadata()
	meta.Encrypted = plainPath != srcPath
	logCtx := slog.With("pages", meta.PageCount, "title", meta.Title, "encrypted", meta.Encrypted)
	logCtx.Info("document opened")

	optimizedPath := filepath.Join(workDir, "optimized.pdf")
	if err := extract.Preflight(plainPath, optimizedPath); err != nil {
		return nil, err
	}

	// Both whole-document extraction passes must finish before any page
	// synthesis: the joins are keyed by page index.
	texts, err := extract.ExtractText(handle)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	images, err := cv.images.Extract(ctx, handle.Path(), handle.PageCount())
	if err != nil {
		return nil, fmt.Errorf("extract images: %w", err)
	}
	tables, err := extract.ExtractTables(optimizedPath)
	if err != nil {
		return nil, fmt.Errorf("extract tables: %w", err)
	}
	logCtx.Info("extraction complete", "images", len(images), "pagesWithTables", len(tables))

	doc := NewDocumentIndex(handle.PageCount(), texts, images, tables).Document()

	archive, err := cv.assembler.Build(ctx, doc)
	if err != nil {
		return nil, err
	}
	logCtx.Info("conversion complete", "archiveBytes", len(archive))
	return archive, nil
}
