// Package view provides zero-copy read access over an encoded record: an
// Accessor parses only the header eagerly and walks the body lazily on
// demand, returning borrowed slices for string fields and owned values for
// everything else. FileView and FileIterator extend this to memory-mapped
// files containing one or more concatenated v2 records.
package view
