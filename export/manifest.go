package export

import (
	"fmt"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// ManifestName is the blob holding the manifest, relative to the prefix.
const ManifestName = "manifest.json"

// FormatVersion is the manifest layout version written by this package.
const FormatVersion = 1

// Manifest describes one export.
type Manifest struct {
	Version       int         `json:"version"`
	Codec         string      `json:"codec"`
	Compression   string      `json:"compression"`
	RootType      string      `json:"root_type"`
	MaxShapeIndex shape.Index `json:"max_shape_index"`
	SubMeshes     []Entry     `json:"submeshes"`
}

// Entry describes one submesh. Blob is empty for submeshes without
// elements. Compound is set for group entries only: it is the index of the
// grouped compound.
type Entry struct {
	Index      shape.Index   `json:"index"`
	ShapeType  string        `json:"shape_type"`
	Limit      string        `json:"limit"`
	Compound   shape.Index   `json:"compound,omitempty"`
	Children   []shape.Index `json:"children,omitempty"`
	Blob       string        `json:"blob,omitempty"`
	Checksum   uint32        `json:"crc32c,omitempty"`
	RawSize    int           `json:"raw_size,omitempty"`
	StoredSize int           `json:"stored_size,omitempty"`
	Nodes      int           `json:"nodes"`
	Cells      int           `json:"cells"`
}

// BlobName returns the blob name of submesh i.
func BlobName(i shape.Index) string {
	return fmt.Sprintf("submesh-%d.bin", i)
}

// Entry returns the entry for index i.
func (m *Manifest) Entry(i shape.Index) (Entry, bool) {
	for _, e := range m.SubMeshes {
		if e.Index == i {
			return e, true
		}
	}
	return Entry{}, false
}

// Totals returns the node and cell counts over all entries.
func (m *Manifest) Totals() (nodes, cells int) {
	for _, e := range m.SubMeshes {
		nodes += e.Nodes
		cells += e.Cells
	}
	return nodes, cells
}

// IsGroup reports whether e stands for a group "sub-shapes of a compound up
// to a type" rather than a single shape.
func (e Entry) IsGroup() bool {
	return e.Limit != shape.AllTypes.String()
}
