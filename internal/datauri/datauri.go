// Package datauri decodes the inline self-describing file representation
// produced by the portfolio form at file-selection time
// (data:<mime>;base64,<payload>).
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
)

const prefix = "data:"

var (
	ErrNotDataURI = errors.New("not a data URI")
	ErrMalformed  = errors.New("malformed data URI")
)

// File is a decoded inline file.
type File struct {
	MimeType string
	Data     []byte
}

// IsDataURI reports whether the value still carries inline file data
// instead of a resolved URL.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, prefix)
}

// Parse decodes a base64 data URI into its MIME type and raw bytes.
func Parse(s string) (*File, error) {
	if !IsDataURI(s) {
		return nil, ErrNotDataURI
	}

	meta, payload, found := strings.Cut(s[len(prefix):], ",")
	if !found {
		return nil, fmt.Errorf("%w: missing payload separator", ErrMalformed)
	}

	mimeType, encoding, hasEncoding := strings.Cut(meta, ";")
	if !hasEncoding || encoding != "base64" {
		return nil, fmt.Errorf("%w: only base64 encoding is supported", ErrMalformed)
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &File{MimeType: mimeType, Data: data}, nil
}

// Ext returns a file extension for the MIME type, including the dot.
func (f *File) Ext() string {
	switch f.MimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	}
	if exts, err := mime.ExtensionsByType(f.MimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}
