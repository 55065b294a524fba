package extract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

// Handle is an opened PDF document. It owns the underlying file and must
// be closed on every exit path.
type Handle struct {
	path      string
	file      *os.File
	reader    *pdf.Reader
	pageCount int
}

// Decrypt prepares the document for the structured readers. An encrypted
// document is decrypted into outPath with the supplied password and the
// returned path points at the plaintext copy; an unencrypted document
// passes through untouched. A wrong or missing password fails closed with
// PasswordProtected; anything else unreadable fails with InvalidDocument.
func Decrypt(inPath, outPath, password string) (string, error) {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	cfg.UserPW = password
	cfg.OwnerPW = password

	err := api.DecryptFile(inPath, outPath, cfg)
	switch {
	case err == nil:
		return outPath, nil
	case errors.Is(err, pdfcpu.ErrWrongPassword):
		return "", NewPasswordProtected()
	case strings.Contains(err.Error(), "not encrypted"):
		return inPath, nil
	}
	return "", NewInvalidDocument(fmt.Errorf("decrypt: %w", err))
}

// Open opens the plaintext PDF at path; run Decrypt first for documents
// that may be encrypted. The span reader panics on content it cannot
// decode, so the body is isolated behind a recover and anything
// unreadable maps to InvalidDocument. A document that is somehow still
// encrypted fails closed with PasswordProtected.
func Open(path string) (h *Handle, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if r := recover(); r != nil {
			f.Close()
			h, err = nil, NewInvalidDocument(fmt.Errorf("document parse failed: %v", r))
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		f.Close()
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, NewPasswordProtected()
		}
		return nil, NewInvalidDocument(err)
	}

	return &Handle{
		path:      path,
		file:      f,
		reader:    r,
		pageCount: r.NumPage(),
	}, nil
}

// Path returns the location of the underlying file.
func (h *Handle) Path() string {
	return h.path
}

// PageCount returns the number of pages in the document.
func (h *Handle) PageCount() int {
	return h.pageCount
}

// Close releases the underlying file.
func (h *Handle) Close() error {
	return h.file.Close()
}

// Metadata reads the document information dictionary. A malformed Info
// dictionary yields whatever fields were readable before the parse failed.
func (h *Handle) Metadata() (md models.Metadata) {
	md = models.Metadata{PageCount: h.pageCount}
	defer func() {
		recover()
	}()
	info := h.reader.Trailer().Key("Info")
	if info.IsNull() {
		return md
	}
	md.Title = info.Key("Title").Text()
	md.Author = info.Key("Author").Text()
	md.Subject = info.Key("Subject").Text()
	md.Producer = info.Key("Producer").Text()
	md.CreationDate = info.Key("CreationDate").Text()
	md.ModificationDate = info.Key("ModDate").Text()
	return md
}

// Preflight validates and rewrites the document before the structured
// extraction passes run against it. Relaxed validation keeps slightly
// out-of-spec but recoverable files convertible.
func Preflight(inPath, outPath string) error {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	if err := api.OptimizeFile(inPath, outPath, cfg); err != nil {
		return NewInvalidDocument(fmt.Errorf("optimize: %w", err))
	}
	return nil
}
