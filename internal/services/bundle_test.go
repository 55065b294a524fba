package services

import (
	"testing"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

func denseTexts(pageCount int) []models.PageText {
	texts := make([]models.PageText, pageCount)
	for i := range texts {
		texts[i] = models.PageText{PageNumber: i}
	}
	return texts
}

func TestBundleJoinIsStable(t *testing.T) {
	tables := []models.PageTables{
		{PageNumber: 3, Tables: []models.Table{{{"only", "here"}}}},
	}
	ix := NewDocumentIndex(5, denseTexts(5), nil, tables)

	for page := 0; page < 5; page++ {
		b := ix.Bundle(page)
		if page == 3 {
			if len(b.Tables) != 1 {
				t.Fatalf("page 3 tables = %d, want 1", len(b.Tables))
			}
			continue
		}
		if len(b.Tables) != 0 {
			t.Errorf("page %d tables = %d, want 0", page, len(b.Tables))
		}
	}
}

func TestBundleMissingTablesDefaultsToEmpty(t *testing.T) {
	ix := NewDocumentIndex(2, denseTexts(2), nil, nil)
	if got := ix.Bundle(1).Tables; len(got) != 0 {
		t.Errorf("tables = %v, want empty for a page with no detections", got)
	}
}

func TestBundleFiltersImagesByPage(t *testing.T) {
	images := []models.ImageAsset{
		{Name: "image_0_4.png", Page: 0},
		{Name: "image_1_9.jpeg", Page: 1},
		{Name: "image_1_12.png", Page: 1},
	}
	ix := NewDocumentIndex(2, denseTexts(2), images, nil)

	if got := len(ix.Bundle(0).Images); got != 1 {
		t.Errorf("page 0 images = %d, want 1", got)
	}
	if got := len(ix.Bundle(1).Images); got != 2 {
		t.Errorf("page 1 images = %d, want 2", got)
	}
}

func TestDocumentCoversEveryPage(t *testing.T) {
	ix := NewDocumentIndex(4, denseTexts(4), []models.ImageAsset{{Name: "a", Page: 2}}, nil)
	doc := ix.Document()

	if doc.PageCount != 4 || len(doc.Pages) != 4 {
		t.Fatalf("pages = %d/%d, want 4/4", doc.PageCount, len(doc.Pages))
	}
	for i, b := range doc.Pages {
		if b.PageNumber != i {
			t.Errorf("bundle %d carries page number %d", i, b.PageNumber)
		}
	}
	if len(doc.Images) != 1 {
		t.Errorf("global images = %d, want 1", len(doc.Images))
	}
}
