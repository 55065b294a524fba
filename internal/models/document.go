package models

// TextSpan is one contiguous run of uniformly-styled text on a page.
// Coordinates are PDF points with the origin at the bottom-left corner.
type TextSpan struct {
	Text  string    `json:"text"`
	BBox  []float64 `json:"bbox"` // x0, y0, x1, y1
	Font  string    `json:"font"`
	Size  int       `json:"size"` // rounded to the nearest integer
	Color int       `json:"color"`
}

// PageText holds the flattened text spans of a single page, in draw order.
type PageText struct {
	PageNumber int        `json:"pageNumber"` // 0-based
	Blocks     []TextSpan `json:"blocks"`
}

// ImageAsset is one raster image extracted from the document. Name is
// unique within the document and doubles as the archive entry name under
// images/. Page is 0-based; images recovered through the command-line
// fallback all carry Page 0 because the tool does not report page numbers.
type ImageAsset struct {
	Name  string `json:"name"`
	Bytes []byte `json:"-"`
	Page  int    `json:"page"`
}

// Table is an ordered grid of cell strings. Rows are rectangular only if
// the source table was well-formed; cells may be empty.
type Table [][]string

// PageTables groups the tables detected on a single page. Pages without
// tables do not appear in the extractor's result.
type PageTables struct {
	PageNumber int     `json:"pageNumber"` // 0-based
	Tables     []Table `json:"tables"`
}

// PageBundle is the per-page join of text, images, and tables: the unit
// of work for synthesis. Never mutated after construction.
type PageBundle struct {
	PageNumber int
	TextBlocks []TextSpan
	Images     []ImageAsset
	Tables     []Table
}

// Document is the fully-extracted input to the archive assembler. Images
// holds every image in the document; the per-bundle lists are filtered
// views of it.
type Document struct {
	PageCount int
	Pages     []PageBundle
	Images    []ImageAsset
}

// Metadata carries the document information dictionary plus derived facts.
type Metadata struct {
	PageCount        int    `json:"pageCount"`
	Title            string `json:"title,omitempty"`
	Author           string `json:"author,omitempty"`
	Subject          string `json:"subject,omitempty"`
	Producer         string `json:"producer,omitempty"`
	CreationDate     string `json:"creationDate,omitempty"`
	ModificationDate string `json:"modificationDate,omitempty"`
	Encrypted        bool   `json:"isEncrypted"`
}
