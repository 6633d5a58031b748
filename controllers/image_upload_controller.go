package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// multipart framing allowance on top of the image limit
const formOverhead = 1 << 20

type uploadError struct {
	status  int
	message string
}

func (e *uploadError) Error() string { return e.message }

// readImageUpload pulls the first present form field out of a multipart request,
// enforcing the size limit and an image/* content type.
func readImageUpload(c *gin.Context, maxBytes int64, fields ...string) ([]byte, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+formOverhead)

	var (
		fh  *multipart.FileHeader
		err error
	)
	for _, f := range fields {
		fh, err = c.FormFile(f)
		if err == nil {
			break
		}
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, "", &uploadError{http.StatusRequestEntityTooLarge, "image too large"}
		}
	}
	if fh == nil {
		return nil, "", &uploadError{http.StatusBadRequest,
			fmt.Sprintf("missing image file (form field '%s')", strings.Join(fields, "' or '"))}
	}
	if fh.Size > maxBytes {
		return nil, "", &uploadError{http.StatusRequestEntityTooLarge, "image too large"}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", &uploadError{http.StatusBadRequest, "failed to open uploaded file"}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, "", &uploadError{http.StatusBadRequest, "failed to read image"}
	}
	if int64(len(data)) > maxBytes {
		return nil, "", &uploadError{http.StatusRequestEntityTooLarge, "image too large"}
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		// clients often send application/octet-stream; trust the bytes instead
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", &uploadError{http.StatusBadRequest, "Invalid file type. Please upload an image file."}
	}
	return data, contentType, nil
}

func abortUpload(c *gin.Context, err error) {
	var ue *uploadError
	if errors.As(err, &ue) {
		c.JSON(ue.status, gin.H{"error": ue.message})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
