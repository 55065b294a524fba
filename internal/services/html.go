package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/llm"
)

// HTMLSynthesizer converts one page's Markdown into a complete, styled
// HTML document with page-relative navigation.
type HTMLSynthesizer struct {
	model llms.Model
}

// NewHTMLSynthesizer creates a synthesizer around the given model.
func NewHTMLSynthesizer(model llms.Model) *HTMLSynthesizer {
	return &HTMLSynthesizer{model: model}
}

// Synthesize asks the model for a full HTML5 document rendering the
// page's Markdown. currentPage is 1-based. Output is trusted verbatim;
// structural integrity is the model's responsibility.
func (s *HTMLSynthesizer) Synthesize(ctx context.Context, markdown string, currentPage, totalPages int) (string, error) {
	navInstruction := ""
	if nav := NavigationMarkup(currentPage, totalPages); nav != "" {
		navInstruction = fmt.Sprintf("At the end of the `<body>`, before the closing tag, you MUST include this exact navigation HTML: %s", nav)
	}
	system := fmt.Sprintf(llm.HTMLSystemPromptTemplate, navInstruction)

	html, err := llm.Complete(ctx, s.model, system, llm.HTMLUserPrefix+markdown)
	if err != nil {
		return "", fmt.Errorf("html synthesis for page %d: %w", currentPage, err)
	}
	return html, nil
}

// NavigationMarkup builds the literal footer the model must reproduce:
// a Previous link unless on the first page, a Next link unless on the
// last, and a page indicator. Single-page documents get no footer at all.
func NavigationMarkup(currentPage, totalPages int) string {
	if totalPages <= 1 {
		return ""
	}
	var links []string
	if currentPage > 1 {
		links = append(links, fmt.Sprintf(`<a href="page-%d.html">Previous</a>`, currentPage-1))
	}
	if currentPage < totalPages {
		links = append(links, fmt.Sprintf(`<a href="page-%d.html">Next</a>`, currentPage+1))
	}
	return fmt.Sprintf("<footer><nav>%s</nav><p>Page %d of %d</p></footer>",
		strings.Join(links, " | "), currentPage, totalPages)
}
