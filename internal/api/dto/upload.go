package dto

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/gabriel-vasile/mimetype"
)

const (
	uploadNameField = "name"
	uploadFileField = "file"
	maxNameLength   = 255
	multipartMemory = 8 << 20
	uploadFailedMsg = "File upload failed"
)

// GetUploadFromMultipartForm reads the name and file fields of an upload
// form. The body is capped at maxSize bytes when maxSize is positive. The
// content type is sniffed from the data, the client supplied header is
// ignored.
func GetUploadFromMultipartForm(w http.ResponseWriter, r *http.Request, maxSize int64) (string, *models.Upload, error) {
	if maxSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, errlocal.NewErrValidation(uploadFailedMsg, map[string][]string{
				uploadFileField: {"The submitted file is too large."},
			})
		}
		return "", nil, errlocal.NewErrValidationFrom(uploadFailedMsg, err)
	}

	fields := map[string][]string{}

	name := strings.TrimSpace(r.FormValue(uploadNameField))
	switch {
	case name == "":
		fields[uploadNameField] = []string{"This field is required."}
	case utf8.RuneCountInString(name) > maxNameLength:
		fields[uploadNameField] = []string{"Ensure this field has no more than 255 characters."}
	}

	file, header, err := r.FormFile(uploadFileField)
	if err != nil {
		fields[uploadFileField] = []string{"No file was submitted."}
	} else if header.Size == 0 {
		fields[uploadFileField] = []string{"The submitted file is empty."}
		_ = file.Close()
	}

	if len(fields) > 0 {
		return "", nil, errlocal.NewErrValidation(uploadFailedMsg, fields)
	}

	contentType, err := detectContentType(file)
	if err != nil {
		_ = file.Close()
		return "", nil, errlocal.NewErrInternal("failed to read uploaded file", err.Error(), nil)
	}

	return name, &models.Upload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: contentType,
		Entry:       file,
	}, nil
}

func detectContentType(file multipart.File) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mtype.String(), nil
}
