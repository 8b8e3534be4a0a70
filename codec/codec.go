// Package codec turns response bodies into Go values and payload values into
// request bodies.
package codec

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// ContentTypeJSON is the media type of JSON bodies.
const ContentTypeJSON = "application/json"

// Codec encodes request payloads and decodes response bodies.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	ContentType() string
}

// JSON is the default Codec.
type JSON struct{}

// Encode marshals v to JSON.
func (JSON) Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}

// Decode unmarshals data into v. A blank body decodes like a JSON null and
// leaves v unchanged.
func (JSON) Decode(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// ContentType returns application/json.
func (JSON) ContentType() string { return ContentTypeJSON }
