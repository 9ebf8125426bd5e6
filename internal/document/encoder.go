package document

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrNoDocument is wrapped by EncodingError when nothing was selected.
var ErrNoDocument = errors.New("no document selected")

// Payload is the transport form of a Document: plain base64 (no data URI
// prefix) plus the declared media type.
type Payload struct {
	Data     string `json:"data"`
	MIMEType string `json:"mime_type"`
}

// Bytes decodes the payload back into raw bytes.
func (p Payload) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(p.Data)
}

// EncodingError reports a local failure to read the selected document.
type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("failed to read document: %v", e.Err)
	}
	return fmt.Sprintf("failed to read document %s: %v", e.Name, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Encode reads the whole document and base64-encodes it.
func Encode(ctx context.Context, d *Document) (Payload, error) {
	if d == nil {
		return Payload{}, &EncodingError{Err: ErrNoDocument}
	}
	if err := ctx.Err(); err != nil {
		return Payload{}, &EncodingError{Name: d.Name, Err: err}
	}
	rc, err := d.Open()
	if err != nil {
		return Payload{}, &EncodingError{Name: d.Name, Err: err}
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return Payload{}, &EncodingError{Name: d.Name, Err: err}
	}
	return Payload{
		Data:     base64.StdEncoding.EncodeToString(b),
		MIMEType: d.MediaType,
	}, nil
}
