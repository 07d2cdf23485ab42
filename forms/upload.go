package forms

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"ngoconnect-web/backend"
)

var (
	ErrNotImage = errors.New("uploaded file is not an image")
	ErrTooLarge = errors.New("uploaded file is too large")
)

// ReadAttachment loads an uploaded image into memory so it can be forwarded
// to the backend. The content type is sniffed, never taken from the client.
func ReadAttachment(fh *multipart.FileHeader, maxBytes int64) (*backend.Attachment, error) {
	if fh == nil {
		return nil, nil
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, ErrNotImage
	}

	return &backend.Attachment{
		Filename:    fh.Filename,
		ContentType: mt.String(),
		Data:        data,
	}, nil
}

// UploadMessage is the field message for an attachment error.
func UploadMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotImage):
		return "*Only image files can be uploaded"
	case errors.Is(err, ErrTooLarge):
		return "*The image is too large"
	}
	return "*Could not read the uploaded file"
}
