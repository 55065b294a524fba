package services

import (
	"context"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

// fakeModel records calls and returns a canned response.
type fakeModel struct {
	calls    int
	response string
	messages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	f.messages = messages
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	f.calls++
	return f.response, nil
}

func span(text string) models.TextSpan {
	return models.TextSpan{
		Text: text,
		BBox: []float64{10.2, 20.7, 110.4, 32.7},
		Font: "Helvetica",
		Size: 12,
	}
}

func TestDescribePageSections(t *testing.T) {
	bundle := models.PageBundle{
		PageNumber: 0,
		TextBlocks: []models.TextSpan{span("Quarterly Report")},
		Images:     []models.ImageAsset{{Name: "image_0_7.png", Page: 0}},
		Tables: []models.Table{
			{{"Region", "Revenue"}, {"EMEA", "120"}},
		},
	}

	desc := DescribePage(bundle)

	for _, want := range []string{
		"**Text Elements:**",
		`- Text: "Quarterly Report" | Position (x1,y1,x2,y2): [10, 21, 110, 33] | Size: 12`,
		"**Image Elements:**",
		`- Image Filename: "image_0_7.png"`,
		"**PRE-EXTRACTED TABLES (MUST be formatted as Markdown tables):**",
		"--- Table 1 ---",
		"Region | Revenue",
		"EMEA | 120",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("description missing %q\n%s", want, desc)
		}
	}
}

func TestDescribePageOmitsEmptySections(t *testing.T) {
	desc := DescribePage(models.PageBundle{
		TextBlocks: []models.TextSpan{span("plain prose")},
	})
	if strings.Contains(desc, "Image Elements") {
		t.Error("image section rendered for a page without images")
	}
	if strings.Contains(desc, "PRE-EXTRACTED TABLES") {
		t.Error("table section rendered for a page without tables")
	}
}

func TestSynthesizeWithinBudgetCallsModelOnce(t *testing.T) {
	fake := &fakeModel{response: "# Page\n\nsome markdown"}
	s := NewMarkdownSynthesizer(fake)

	md, err := s.Synthesize(context.Background(), models.PageBundle{
		TextBlocks: []models.TextSpan{span("hello world")},
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if fake.calls != 1 {
		t.Errorf("model calls = %d, want 1", fake.calls)
	}
	if md != fake.response {
		t.Errorf("markdown = %q, want model output verbatim", md)
	}
}

func TestSynthesizeOverBudgetSkipsModel(t *testing.T) {
	big := span(strings.Repeat("x", MaxDescriptionChars+1))
	fake := &fakeModel{response: "should never be used"}
	s := NewMarkdownSynthesizer(fake)

	md, err := s.Synthesize(context.Background(), models.PageBundle{
		TextBlocks: []models.TextSpan{big, span("trailing text")},
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if fake.calls != 0 {
		t.Errorf("model calls = %d, want 0 for over-budget page", fake.calls)
	}
	if !strings.Contains(md, "# Page Content Too Large for Detailed Analysis") {
		t.Error("fallback heading missing from over-budget output")
	}
	if !strings.Contains(md, "trailing text") {
		t.Error("fallback output should dump every span in order")
	}
	if strings.Index(md, "xxx") > strings.Index(md, "trailing text") {
		t.Error("fallback output out of original span order")
	}
}

func TestSynthesizeSendsDescriptionToModel(t *testing.T) {
	fake := &fakeModel{response: "md"}
	s := NewMarkdownSynthesizer(fake)

	bundle := models.PageBundle{
		TextBlocks: []models.TextSpan{span("needle text")},
		Tables:     []models.Table{{{"a", "b"}}},
	}
	if _, err := s.Synthesize(context.Background(), bundle); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(fake.messages) != 2 {
		t.Fatalf("messages = %d, want system + human", len(fake.messages))
	}
	human := contentOf(t, fake.messages[1])
	if !strings.Contains(human, "needle text") || !strings.Contains(human, "a | b") {
		t.Errorf("human message missing page description: %q", human)
	}
}

func contentOf(t *testing.T, msg llms.MessageContent) string {
	t.Helper()
	var sb strings.Builder
	for _, part := range msg.Parts {
		if tp, ok := part.(llms.TextContent); ok {
			sb.WriteString(tp.Text)
		}
	}
	return sb.String()
}
