package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/extract"
	"github.com/Goutam-aswani/pdf-to-html-converter/internal/models"
)

// MaxFileSize caps uploads at 50 MiB. The check runs against the declared
// multipart part size, before the file is read into memory.
const MaxFileSize = 50 * 1024 * 1024

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "pdf-to-html-converter",
		"status":  "ok",
	})
}

// handleConvert accepts one multipart PDF upload and responds with the
// converted archive as a binary download.
func (s *Server) handleConvert(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		clientError(c, http.StatusBadRequest, "MissingFile", "a PDF file must be uploaded under the 'file' form field")
		return
	}

	if ct := fileHeader.Header.Get("Content-Type"); ct != "application/pdf" {
		clientError(c, http.StatusBadRequest, "InvalidFileType", "invalid file type; only application/pdf is accepted")
		return
	}
	if fileHeader.Size > MaxFileSize {
		clientError(c, http.StatusRequestEntityTooLarge, "FileTooLarge",
			fmt.Sprintf("file size exceeds the %d MiB limit", MaxFileSize/(1024*1024)))
		return
	}

	workDir, err := os.MkdirTemp("", "pdf-to-html-*")
	if err != nil {
		serverError(c, fmt.Errorf("create work dir: %w", err))
		return
	}
	defer os.RemoveAll(workDir)

	srcPath := filepath.Join(workDir, "source.pdf")
	if err := c.SaveUploadedFile(fileHeader, srcPath); err != nil {
		serverError(c, fmt.Errorf("save upload: %w", err))
		return
	}

	logCtx := slog.With("filename", fileHeader.Filename, "bytes", fileHeader.Size)
	logCtx.Info("conversion started")

	archive, err := s.converter.Convert(c.Request.Context(), srcPath, workDir, c.PostForm("password"))
	if err != nil {
		if perr, ok := extract.AsProcessingError(err); ok {
			logCtx.Warn("conversion rejected", "type", perr.Type, "error", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{Type: perr.Type, Message: perr.Message},
			})
			return
		}
		serverError(c, err)
		return
	}

	downloadName := fmt.Sprintf("converted_%s.zip", stem(fileHeader.Filename))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", downloadName))
	c.Data(http.StatusOK, "application/zip", archive)
	logCtx.Info("conversion finished", "download", downloadName)
}

func clientError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Type: errType, Message: message},
	})
}

// serverError logs the real failure and returns an opaque body: no
// internal detail, stack trace, or model output ever reaches the caller.
func serverError(c *gin.Context, err error) {
	slog.Error("unexpected failure", "error", err)
	c.JSON(http.StatusInternalServerError, models.ServerErrorResponse{
		Message: "an internal server error occurred",
	})
}

func stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
