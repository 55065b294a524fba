package extract

import (
	"fmt"
	"math"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

// ExtractText walks every page's content and flattens it to one entry per
// uniformly-styled text run, preserving draw order. The result is dense:
// pages without text still yield an entry with an empty block list, so the
// page index set is always 0..PageCount-1.
func ExtractText(h *Handle) ([]models.PageText, error) {
	pages := make([]models.PageText, 0, h.pageCount)
	for num := 1; num <= h.pageCount; num++ {
		blocks, err := extractPageSpans(h, num)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", num, err)
		}
		pages = append(pages, models.PageText{
			PageNumber: num - 1,
			Blocks:     blocks,
		})
	}
	return pages, nil
}

// extractPageSpans reads one page's glyph runs and merges adjacent runs of
// identical style on the same baseline into spans. Malformed content
// streams make the parser panic, so the page is isolated behind a recover.
func extractPageSpans(h *Handle, num int) (spans []models.TextSpan, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("content stream parse failed: %v", r)
		}
	}()

	page := h.reader.Page(num)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	var cur *spanBuilder
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		if cur != nil && cur.accepts(t.Font, t.FontSize, t.Y, t.X) {
			cur.append(t.X, t.W, t.S)
			continue
		}
		if cur != nil {
			spans = append(spans, cur.span())
		}
		cur = newSpanBuilder(t.Font, t.FontSize, t.X, t.Y, t.W, t.S)
	}
	if cur != nil {
		spans = append(spans, cur.span())
	}
	return spans, nil
}

// spanBuilder accumulates consecutive glyph runs into one styled span.
type spanBuilder struct {
	font     string
	fontSize float64
	x0, y0   float64
	x1       float64
	text     []byte
}

func newSpanBuilder(font string, size, x, y, w float64, s string) *spanBuilder {
	return &spanBuilder{
		font:     font,
		fontSize: size,
		x0:       x,
		y0:       y,
		x1:       x + w,
		text:     []byte(s),
	}
}

// accepts reports whether a run continues the current span: same font and
// size, same baseline, and positioned at or shortly after the span's end.
func (b *spanBuilder) accepts(font string, size, y, x float64) bool {
	if font != b.font || size != b.fontSize {
		return false
	}
	if math.Abs(y-b.y0) > 0.5 {
		return false
	}
	gap := x - b.x1
	return gap > -0.5 && gap < size
}

func (b *spanBuilder) append(x, w float64, s string) {
	// A gap wider than a quarter of the font size is a word break the
	// content stream encoded as positioning rather than a space glyph.
	if x-b.x1 > b.fontSize*0.25 && len(b.text) > 0 && b.text[len(b.text)-1] != ' ' {
		b.text = append(b.text, ' ')
	}
	b.text = append(b.text, s...)
	if end := x + w; end > b.x1 {
		b.x1 = end
	}
}

func (b *spanBuilder) span() models.TextSpan {
	return models.TextSpan{
		Text: string(b.text),
		BBox: []float64{b.x0, b.y0, b.x1, b.y0 + b.fontSize},
		Font: b.font,
		// Rounded for downstream grouping stability.
		Size: int(math.Round(b.fontSize)),
		// The content-stream reader does not surface fill color; spans
		// default to black.
		Color: 0,
	}
}
