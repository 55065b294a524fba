package extract

import (
	"context"
	"testing"
	"time"
)

func TestFallbackMissingToolDegradesToEmpty(t *testing.T) {
	e := &ImageExtractor{
		Tool:    "definitely-not-a-real-binary",
		Timeout: time.Second,
	}
	assets := e.fallback(context.Background(), "irrelevant.pdf")
	if len(assets) != 0 {
		t.Errorf("assets = %d, want 0 when the tool is absent", len(assets))
	}
}

func TestFallbackHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewImageExtractor()
	assets := e.fallback(ctx, "irrelevant.pdf")
	if len(assets) != 0 {
		t.Errorf("assets = %d, want 0 under a cancelled context", len(assets))
	}
}

func TestNewImageExtractorDefaults(t *testing.T) {
	e := NewImageExtractor()
	if e.Tool != "pdfimages" {
		t.Errorf("tool = %s, want pdfimages", e.Tool)
	}
	if e.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", e.Timeout)
	}
}
