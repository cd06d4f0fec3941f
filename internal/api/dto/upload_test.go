package dto

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func newUploadRequest(t *testing.T, name, filename string, data []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if name != "" {
		require.NoError(t, writer.WriteField("name", name))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestGetUploadFromMultipartForm(t *testing.T) {
	t.Run("png upload", func(t *testing.T) {
		req := newUploadRequest(t, "Team photo", "team.png", pngHeader)

		name, upload, err := GetUploadFromMultipartForm(httptest.NewRecorder(), req, 1<<20)

		require.NoError(t, err)
		assert.Equal(t, "Team photo", name)
		assert.Equal(t, "team.png", upload.Name)
		assert.Equal(t, int64(len(pngHeader)), upload.Size)
		assert.Equal(t, "image/png", upload.ContentType)

		content, err := io.ReadAll(upload.Entry)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, content)
		require.NoError(t, upload.Entry.Close())
	})

	t.Run("plain text ignores client content type", func(t *testing.T) {
		req := newUploadRequest(t, "notes", "notes.bin", []byte("just some text\n"))

		_, upload, err := GetUploadFromMultipartForm(httptest.NewRecorder(), req, 0)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(upload.ContentType, "text/plain"))
	})

	t.Run("missing fields", func(t *testing.T) {
		req := newUploadRequest(t, "", "", nil)

		_, _, err := GetUploadFromMultipartForm(httptest.NewRecorder(), req, 0)

		var vErr *errlocal.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "File upload failed", vErr.Message())
		assert.Equal(t, []string{"This field is required."}, vErr.Details()["name"])
		assert.Equal(t, []string{"No file was submitted."}, vErr.Details()["file"])
	})

	t.Run("empty file", func(t *testing.T) {
		req := newUploadRequest(t, "empty", "empty.txt", []byte{})

		_, _, err := GetUploadFromMultipartForm(httptest.NewRecorder(), req, 0)

		var vErr *errlocal.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"The submitted file is empty."}, vErr.Details()["file"])
	})

	t.Run("name too long", func(t *testing.T) {
		req := newUploadRequest(t, strings.Repeat("a", 256), "a.txt", []byte("a"))

		_, _, err := GetUploadFromMultipartForm(httptest.NewRecorder(), req, 0)

		var vErr *errlocal.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Details(), "name")
	})

	t.Run("body over the limit", func(t *testing.T) {
		req := newUploadRequest(t, "big", "big.bin", bytes.Repeat([]byte("x"), 4096))

		_, _, err := GetUploadFromMultipartForm(httptest.NewRecorder(), req, 512)

		var vErr *errlocal.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"The submitted file is too large."}, vErr.Details()["file"])
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload/", strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		_, _, err := GetUploadFromMultipartForm(httptest.NewRecorder(), req, 0)

		var vErr *errlocal.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Details(), "non_field_errors")
	})
}
