package extract

import (
	"fmt"

	tabmodel "github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	"github.com/tsawler/tabula/text"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

// ExtractTables runs layout-aware table detection over every page of the
// document at path. The result is sparse: only pages yielding at least one
// table appear. Detection itself is delegated entirely to the geometric
// detector; this is a pass-through that regroups its output by page index.
func ExtractTables(path string) ([]models.PageTables, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open for table detection: %w", err)
	}
	defer r.Close()

	pageCount, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}

	detector := tables.NewGeometricDetector()

	var result []models.PageTables
	for i := 0; i < pageCount; i++ {
		page, err := r.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		fragments, err := r.ExtractTextFragments(page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		if len(fragments) == 0 {
			continue
		}

		width, _ := page.Width()
		height, _ := page.Height()
		modelPage := tabmodel.NewPage(width, height)
		modelPage.Number = i + 1
		modelPage.RawText = toModelFragments(fragments)

		detected, err := detector.Detect(modelPage)
		if err != nil {
			return nil, fmt.Errorf("page %d: detect tables: %w", i+1, err)
		}
		if len(detected) == 0 {
			continue
		}

		pageTables := models.PageTables{PageNumber: i}
		for _, t := range detected {
			pageTables.Tables = append(pageTables.Tables, toCellGrid(t))
		}
		result = append(result, pageTables)
	}
	return result, nil
}

func toModelFragments(fragments []text.TextFragment) []tabmodel.TextFragment {
	out := make([]tabmodel.TextFragment, len(fragments))
	for i, f := range fragments {
		out[i] = tabmodel.TextFragment{
			Text:     f.Text,
			BBox:     tabmodel.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		}
	}
	return out
}

func toCellGrid(t *tabmodel.Table) models.Table {
	grid := make(models.Table, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell.Text)
		}
		grid = append(grid, cells)
	}
	return grid
}
