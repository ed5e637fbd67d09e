package mesher

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Algorithm selects which dimensions a mesher discretizes.
type Algorithm string

const (
	// Linear meshes vertices and edges.
	Linear Algorithm = "linear"
	// Surface meshes vertices, edges and faces.
	Surface Algorithm = "surface"
	// Volume meshes everything including solids.
	Volume Algorithm = "volume"
)

// Dim returns the highest topological dimension the algorithm meshes.
func (a Algorithm) Dim() int {
	switch a {
	case Linear:
		return 1
	case Surface:
		return 2
	case Volume:
		return 3
	}
	return -1
}

var (
	// ErrInvalidParams is returned by Params.Validate.
	ErrInvalidParams = errors.New("invalid meshing parameters")
)

// Params are the meshing parameters handed to a Mesher.
type Params struct {
	Algorithm Algorithm `toml:"algorithm"`
	// MaxSize is the target element size. Edges are split into segments no
	// longer than MaxSize.
	MaxSize float64 `toml:"max_size"`
	// MinSize bounds MaxSize from below; 0 means unbounded.
	MinSize float64 `toml:"min_size"`
	// Order is the element order, 1 or 2.
	Order int `toml:"order"`
	// Optimize asks the mesher to smooth the result when it can.
	Optimize bool `toml:"optimize"`
}

// DefaultParams returns first-order surface meshing with unit size.
func DefaultParams() Params {
	return Params{
		Algorithm: Surface,
		MaxSize:   1,
		Order:     1,
	}
}

// Validate checks p for consistency.
func (p Params) Validate() error {
	if p.Algorithm.Dim() < 0 {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidParams, p.Algorithm)
	}
	if p.MaxSize <= 0 {
		return fmt.Errorf("%w: max_size must be positive, got %g", ErrInvalidParams, p.MaxSize)
	}
	if p.MinSize < 0 || p.MinSize > p.MaxSize {
		return fmt.Errorf("%w: min_size %g outside [0, %g]", ErrInvalidParams, p.MinSize, p.MaxSize)
	}
	if p.Order != 1 && p.Order != 2 {
		return fmt.Errorf("%w: order must be 1 or 2, got %d", ErrInvalidParams, p.Order)
	}
	return nil
}

// DecodeParams parses TOML. Keys that are absent keep their defaults.
func DecodeParams(data string) (Params, error) {
	return ReadParams(strings.NewReader(data))
}

// ReadParams parses TOML from r. Keys that are absent keep their defaults.
func ReadParams(r io.Reader) (Params, error) {
	p := DefaultParams()
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Params{}, fmt.Errorf("decode params: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Params{}, fmt.Errorf("%w: unknown key %q", ErrInvalidParams, undecoded[0].String())
	}
	p.Algorithm = Algorithm(strings.ToLower(string(p.Algorithm)))
	return p, p.Validate()
}

// LoadParams reads parameters from a TOML file.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Params{}, fmt.Errorf("load params %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Params{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidParams, undecoded[0].String(), path)
	}
	p.Algorithm = Algorithm(strings.ToLower(string(p.Algorithm)))
	return p, p.Validate()
}
