package record

import (
	"github.com/zcrt/zcrt/internal/options"
	"github.com/zcrt/zcrt/internal/pool"
)

// WriterConfig holds a Writer's configurable state.
type WriterConfig struct {
	pool *pool.ByteBufferPool
}

// WriterOption configures a Writer, following internal/options' generic
// Option[T] pattern already used elsewhere in this module.
type WriterOption = options.Option[*WriterConfig]

// WithBufferPool overrides the scratch ByteBufferPool a Writer draws from.
// Useful for callers who want writer-local pool isolation instead of the
// package-default pool.
func WithBufferPool(p *pool.ByteBufferPool) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.pool = p
	})
}

// ReaderConfig holds a Reader's configurable state.
type ReaderConfig struct {
	// strictFingerprint, when true, makes the reader return
	// SchemaVersionMismatch on a schema fingerprint mismatch instead of
	// treating the fingerprint as advisory. Off by default.
	strictFingerprint bool
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*ReaderConfig]

// WithStrictFingerprint opts into failing a read when the schema
// fingerprint embedded in the header doesn't match the reading schema's
// own fingerprint. The fingerprint is advisory by default; this option is
// an explicit per-reader deviation from that default.
func WithStrictFingerprint() ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.strictFingerprint = true
	})
}
