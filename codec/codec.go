// Package codec turns element sets into blob payloads and back.
//
// An export records the name of the codec that wrote its blobs and Read
// resolves that name through Lookup, so a name must never be reused for a
// different encoding.
package codec

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned by Lookup for a name no built-in codec carries.
var ErrUnknown = errors.New("codec: unknown name")

// Codec is one payload encoding. Blob writers share a single value across
// goroutines.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// builtin lists the codecs Lookup knows, preferred first.
var builtin = []Codec{GoJSON{}, JSON{}}

// Names returns the names Lookup accepts, preferred first.
func Names() []string {
	names := make([]string, len(builtin))
	for i, c := range builtin {
		names[i] = c.Name()
	}
	return names
}

// Lookup resolves a name read from a manifest or a command-line flag.
func Lookup(name string) (Codec, error) {
	for _, c := range builtin {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknown, name)
}

// Encode marshals v with c. Errors carry the codec name.
func Encode(c Codec, v any) ([]byte, error) {
	data, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s encode: %w", c.Name(), err)
	}
	return data, nil
}

// Decode unmarshals data into v with c. Errors carry the codec name.
func Decode(c Codec, data []byte, v any) error {
	if err := c.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s decode: %w", c.Name(), err)
	}
	return nil
}
