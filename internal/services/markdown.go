package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/llm"
	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

// MaxDescriptionChars caps the rendered page description sent to the
// model. Anything larger skips the model call entirely; content beyond the
// cap is never truncated and sent.
const MaxDescriptionChars = 15000

const (
	fallbackHeading = "# Page Content Too Large for Detailed Analysis"
	fallbackNotice  = "The following is a raw text dump of the page content. Formatting has been simplified to avoid exceeding AI processing limits."
)

// MarkdownSynthesizer converts one page's joined data into a Markdown
// document via a single deterministic model call.
type MarkdownSynthesizer struct {
	model llms.Model
}

// NewMarkdownSynthesizer creates a synthesizer around the given model.
func NewMarkdownSynthesizer(model llms.Model) *MarkdownSynthesizer {
	return &MarkdownSynthesizer{model: model}
}

// Synthesize renders the page description and, if it fits the character
// budget, asks the model for a cohesive Markdown document. Over-budget
// pages fall back to a raw dump of the page text in original order. Model
// output is trusted verbatim.
func (s *MarkdownSynthesizer) Synthesize(ctx context.Context, bundle models.PageBundle) (string, error) {
	description := DescribePage(bundle)

	if len(description) > MaxDescriptionChars {
		slog.Warn("page description exceeds model budget, using raw text dump",
			"page", bundle.PageNumber, "chars", len(description))
		return fallbackMarkdown(bundle), nil
	}

	markdown, err := llm.Complete(ctx, s.model, llm.MarkdownSystemPrompt, llm.MarkdownUserPrefix+description)
	if err != nil {
		return "", fmt.Errorf("markdown synthesis for page %d: %w", bundle.PageNumber, err)
	}
	return markdown, nil
}

// DescribePage renders a page bundle into the deterministic plain-text
// description consumed by the model: text elements with rounded bounding
// boxes and sizes, image filenames, and pre-extracted tables as
// pipe-joined rows labeled as authoritative.
func DescribePage(bundle models.PageBundle) string {
	lines := []string{"**Text Elements:**"}
	for _, block := range bundle.TextBlocks {
		lines = append(lines, fmt.Sprintf(
			"- Text: \"%s\" | Position (x1,y1,x2,y2): [%d, %d, %d, %d] | Size: %d",
			block.Text,
			roundCoord(block.BBox, 0), roundCoord(block.BBox, 1),
			roundCoord(block.BBox, 2), roundCoord(block.BBox, 3),
			block.Size,
		))
	}

	if len(bundle.Images) > 0 {
		lines = append(lines, "\n**Image Elements:**")
		for _, img := range bundle.Images {
			lines = append(lines, fmt.Sprintf("- Image Filename: \"%s\"", img.Name))
		}
	}

	if len(bundle.Tables) > 0 {
		lines = append(lines, "\n**PRE-EXTRACTED TABLES (MUST be formatted as Markdown tables):**")
		for i, table := range bundle.Tables {
			lines = append(lines, fmt.Sprintf("\n--- Table %d ---", i+1))
			rows := make([]string, 0, len(table))
			for _, row := range table {
				rows = append(rows, strings.Join(row, " | "))
			}
			lines = append(lines, strings.Join(rows, "\n"))
		}
	}

	return strings.Join(lines, "\n")
}

func roundCoord(bbox []float64, i int) int {
	if i >= len(bbox) {
		return 0
	}
	return int(math.Round(bbox[i]))
}

// fallbackMarkdown is the over-budget escape hatch: a warning heading
// followed by the page's text spans in original order.
func fallbackMarkdown(bundle models.PageBundle) string {
	parts := []string{fallbackHeading, fallbackNotice, "\n---\n"}
	for _, block := range bundle.TextBlocks {
		parts = append(parts, block.Text)
	}
	return strings.Join(parts, "\n\n")
}
