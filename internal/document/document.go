// Package document holds the user-selected file and turns it into a
// transport-ready payload for the inference call.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	rpdf "rsc.io/pdf"
)

// DefaultAccept mirrors the file picker filter of the upload panel.
var DefaultAccept = []string{"image/*"}

// ErrNotAccepted is returned by Load when the media type is filtered out.
var ErrNotAccepted = errors.New("document type not accepted")

// Document is an opaque binary payload with a declared media type.
// It is immutable once created; selecting another file means creating a new one.
type Document struct {
	Name      string `json:"name"`
	MediaType string `json:"media_type"`
	Size      int64  `json:"size"`
	Pages     int    `json:"pages,omitempty"`

	open func() (io.ReadCloser, error)
}

// New builds a Document around an opener. The opener is called once per
// encode, so a Document can be analyzed repeatedly.
func New(name, mediaType string, size int64, open func() (io.ReadCloser, error)) *Document {
	return &Document{Name: name, MediaType: mediaType, Size: size, open: open}
}

// FromBytes wraps an in-memory file.
func FromBytes(name, mediaType string, b []byte) *Document {
	data := append([]byte(nil), b...)
	return New(name, mediaType, int64(len(data)), func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	})
}

// Open returns the document's binary stream.
func (d *Document) Open() (io.ReadCloser, error) {
	if d.open == nil {
		return nil, errors.New("document has no content source")
	}
	return d.open()
}

// ExceedsHint reports whether the document is larger than the advisory size.
// The hint is only ever shown to the user, never enforced.
func (d *Document) ExceedsHint(maxMB int) bool {
	return maxMB > 0 && d.Size > int64(maxMB)<<20
}

// Load selects a file from disk. The media type comes from the extension,
// falling back to content sniffing, and must match one of accept.
func Load(path string, accept []string) (*Document, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	mt := detectMediaType(path)
	if len(accept) == 0 {
		accept = DefaultAccept
	}
	if !Accepts(accept, mt) {
		return nil, fmt.Errorf("%w: %s is %s (accepted: %s)", ErrNotAccepted, filepath.Base(path), mt, strings.Join(accept, ", "))
	}
	doc := New(filepath.Base(path), mt, st.Size(), func() (io.ReadCloser, error) {
		return os.Open(path)
	})
	if mt == "application/pdf" {
		doc.Pages = pdfPageCount(path, st.Size())
	}
	return doc, nil
}

// Accepts matches a media type against patterns like "image/*" or "application/pdf".
func Accepts(patterns []string, mediaType string) bool {
	mediaType = strings.ToLower(mediaType)
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		switch {
		case p == "*/*" || p == "*":
			return true
		case strings.HasSuffix(p, "/*"):
			if strings.HasPrefix(mediaType, strings.TrimSuffix(p, "*")) {
				return true
			}
		case p == mediaType:
			return true
		}
	}
	return false
}

func detectMediaType(path string) string {
	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mt == "" {
		if detected, err := mimetype.DetectFile(path); err == nil && detected != nil {
			mt = detected.String()
		}
	}
	if base, _, err := mime.ParseMediaType(mt); err == nil {
		return base
	}
	return "application/octet-stream"
}

// pdfPageCount is informational only; unreadable PDFs report zero pages.
func pdfPageCount(path string, size int64) (n int) {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()
	defer func() {
		// rsc.io/pdf panics on some malformed cross-reference tables
		if recover() != nil {
			n = 0
		}
	}()
	r, err := rpdf.NewReader(f, size)
	if err != nil {
		return 0
	}
	return r.NumPage()
}
