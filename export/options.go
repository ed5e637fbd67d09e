package export

import (
	"runtime"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/codec"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/compress"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/resource"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesh"
)

// DefaultCodec encodes element blobs when WithCodec is not given. Element
// sets are mostly float arrays, which go-json encodes faster than the
// standard library.
var DefaultCodec codec.Codec = codec.GoJSON{}

type options struct {
	codec       codec.Codec
	compression compress.Kind
	concurrency int
	prefix      string
	limits      resource.Limits
	logger      *mesh.Logger
}

// Option configures Write and Read.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{
		codec:       DefaultCodec,
		compression: compress.LZ4,
		concurrency: runtime.GOMAXPROCS(0),
		logger:      mesh.NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithCodec sets the element codec. Read always uses the codec named in
// the manifest.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithCompression sets the block compression. Default: LZ4.
func WithCompression(k compress.Kind) Option {
	return func(o *options) {
		o.compression = k
	}
}

// WithConcurrency sets the number of blobs encoded and transferred at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithPrefix places every blob, the manifest included, under prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithLimits bounds buffered bytes and write bandwidth.
func WithLimits(l resource.Limits) Option {
	return func(o *options) {
		o.limits = l
	}
}

// WithLogger sets the logger. Pass nil to disable logging.
func WithLogger(l *mesh.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = mesh.NoopLogger()
		}
		o.logger = l
	}
}
