package view

import (
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/zcrt/zcrt/zcerr"
)

// FileView is a read-only memory-mapped file, usable as the input buffer
// for Accessor and FileIterator without copying the file into the heap.
type FileView struct {
	f   *os.File
	m   mmap.MMap
	cfg *Config
}

// OpenFile opens path and maps it read-only into memory.
func OpenFile(path string, opts ...Option) (*FileView, error) {
	cfg := &Config{}
	applyOptions(cfg, opts)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zcerr.New(zcerr.KindFileNotFound, "file does not exist").WithField(path)
		}
		return nil, zcerr.New(zcerr.KindFileReadError, err.Error()).WithField(path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, zcerr.New(zcerr.KindMappingFailed, err.Error()).WithField(path)
	}

	if cfg.readAhead {
		touchPages(m)
	}

	return &FileView{f: f, m: m, cfg: cfg}, nil
}

// touchPages faults in every page of m once, up front, so a subsequent
// sequential multi-record scan doesn't pay for page faults one at a time.
func touchPages(m mmap.MMap) {
	const pageSize = 4096

	var sink byte
	for i := 0; i < len(m); i += pageSize {
		sink += m[i]
	}
	_ = sink
}

// Bytes returns the mapped region as a byte slice. The slice is valid
// until Close is called.
func (fv *FileView) Bytes() []byte {
	return fv.m
}

// Close unmaps the file and closes the underlying descriptor. The mapping
// is exclusively owned by its FileView; nothing else may unmap it.
func (fv *FileView) Close() error {
	if err := fv.m.Unmap(); err != nil {
		return zcerr.New(zcerr.KindMappingFailed, err.Error())
	}

	return fv.f.Close()
}

// Records returns an iterator over every v2 record concatenated in the
// mapped region, in file order.
func (fv *FileView) Records() *FileIterator {
	return &FileIterator{buf: fv.m}
}
