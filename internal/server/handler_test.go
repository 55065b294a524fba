package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// multipartUpload builds a request with one file part of the given
// declared content type.
func multipartUpload(t *testing.T, contentType string, payload []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="report.pdf"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pdf-to-html/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

func TestConvertRejectsNonPDFContentType(t *testing.T) {
	router := New(nil).Router([]string{"*"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "text/plain", []byte("not a pdf")))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp := decodeError(t, w); resp.Error.Type != "InvalidFileType" {
		t.Errorf("error type = %s, want InvalidFileType", resp.Error.Type)
	}
}

func TestConvertRejectsOversizedUpload(t *testing.T) {
	router := New(nil).Router([]string{"*"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "application/pdf", make([]byte, MaxFileSize+1)))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
	if resp := decodeError(t, w); resp.Error.Type != "FileTooLarge" {
		t.Errorf("error type = %s, want FileTooLarge", resp.Error.Type)
	}
}

func TestConvertRejectsMissingFile(t *testing.T) {
	router := New(nil).Router([]string{"*"})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pdf-to-html/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp := decodeError(t, w); resp.Error.Type != "MissingFile" {
		t.Errorf("error type = %s, want MissingFile", resp.Error.Type)
	}
}

func TestIndexReportsHealthy(t *testing.T) {
	router := New(nil).Router([]string{"*"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
