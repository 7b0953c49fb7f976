package record

import (
	"reflect"

	"github.com/zcrt/zcrt/header"
	"github.com/zcrt/zcrt/internal/options"
	"github.com/zcrt/zcrt/internal/pool"
	"github.com/zcrt/zcrt/schema"
	"github.com/zcrt/zcrt/zcerr"
)

// defaultScratchPool backs every Writer that doesn't supply its own via
// WithBufferPool, so repeated Write calls actually reuse scratch buffers
// instead of allocating a fresh pool each time.
var defaultScratchPool = pool.NewByteBufferPool(pool.RecordBufferDefaultSize, pool.RecordBufferMaxThreshold)

// Writer emits v2, versioned, field-tagged records.
type Writer struct {
	cfg *WriterConfig
}

// NewWriter constructs a Writer with the given options applied.
func NewWriter(opts ...WriterOption) *Writer {
	cfg := &WriterConfig{}
	_ = options.Apply(cfg, opts...)

	return &Writer{cfg: cfg}
}

// defaultWriter is used by the package-level Write convenience function.
var defaultWriter = NewWriter()

// Write encodes v against s into buf and returns the number of bytes
// written, or zcerr.ErrBufferTooSmall if buf cannot hold the encoded
// record. v must be a struct or a supported scalar kind.
func Write(v any, buf []byte, s *schema.Schema) (int, error) {
	return defaultWriter.Write(v, buf, s)
}

// Write is the public entry point: write(value, buffer, schema) ->
// bytes_written.
func (w *Writer) Write(v any, buf []byte, s *schema.Schema) (int, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	topTag, ok := wireTagFor(rv.Kind())
	if !ok {
		return 0, zcerr.New(zcerr.KindUnsupportedType, "unsupported top-level value kind")
	}

	scratch := w.scratchPool().Get()
	defer w.scratchPool().Put(scratch)

	h := header.V2{
		TypeTag:           topTag,
		SchemaVersion:     uint64(s.Version),
		DataSize:          0,
		SchemaFingerprint: s.Fingerprint(),
	}
	scratch.MustWrite(h.Bytes())

	body, err := appendValue(scratch.Bytes(), topTag, rv)
	if err != nil {
		return 0, err
	}
	scratch.B = body

	if scratch.Len() > len(buf) {
		return 0, zcerr.New(zcerr.KindBufferTooSmall, "output buffer too small for encoded record").
			WithPosition(scratch.Len())
	}

	n := copy(buf, scratch.Bytes())
	return n, nil
}

func (w *Writer) scratchPool() *pool.ByteBufferPool {
	if w.cfg != nil && w.cfg.pool != nil {
		return w.cfg.pool
	}

	return defaultScratchPool
}
