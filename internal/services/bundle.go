package services

import (
	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

// DocumentIndex is the page-indexed join of the extractor outputs, built
// once per document. Table lookup for a page without detected tables
// yields an empty list, never an index miss; image lookup filters the
// document-global list by page equality.
type DocumentIndex struct {
	pageCount int
	texts     []models.PageText
	images    []models.ImageAsset
	tables    map[int][]models.Table
}

// NewDocumentIndex builds the index. texts must be dense over
// 0..pageCount-1; tables may be sparse.
func NewDocumentIndex(pageCount int, texts []models.PageText, images []models.ImageAsset, tables []models.PageTables) *DocumentIndex {
	byPage := make(map[int][]models.Table, len(tables))
	for _, pt := range tables {
		byPage[pt.PageNumber] = pt.Tables
	}
	return &DocumentIndex{
		pageCount: pageCount,
		texts:     texts,
		images:    images,
		tables:    byPage,
	}
}

// Bundle joins one page's text, images, and tables into a unit of work.
func (ix *DocumentIndex) Bundle(page int) models.PageBundle {
	var blocks []models.TextSpan
	if page >= 0 && page < len(ix.texts) {
		blocks = ix.texts[page].Blocks
	}
	var pageImages []models.ImageAsset
	for _, img := range ix.images {
		if img.Page == page {
			pageImages = append(pageImages, img)
		}
	}
	return models.PageBundle{
		PageNumber: page,
		TextBlocks: blocks,
		Images:     pageImages,
		Tables:     ix.tables[page],
	}
}

// Document materializes every page bundle plus the global image list used
// for archive packaging.
func (ix *DocumentIndex) Document() models.Document {
	doc := models.Document{
		PageCount: ix.pageCount,
		Pages:     make([]models.PageBundle, 0, ix.pageCount),
		Images:    ix.images,
	}
	for page := 0; page < ix.pageCount; page++ {
		doc.Pages = append(doc.Pages, ix.Bundle(page))
	}
	return doc
}
