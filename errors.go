package hashindex

import "github.com/pkg/errors"

// Sentinel errors returned by Init, Read, and the internal resize path.
// Wrap them with errors.Wrap/Wrapf so callers can still recover the
// sentinel via errors.Cause while getting a path-annotated message.
var (
	// ErrBadMagic is returned by Read when a file's header does not start
	// with the "BORG_IDX" magic.
	ErrBadMagic = errors.New("hashindex: bad magic")

	// ErrShortRead is returned by Read when fewer bytes than the header
	// or bucket region requires could be read from the file.
	ErrShortRead = errors.New("hashindex: short read")

	// ErrLengthMismatch is returned by Read when the file's total length
	// does not equal 18 + num_buckets*(key_size+value_size).
	ErrLengthMismatch = errors.New("hashindex: length mismatch")

	// ErrInvalidSizes is returned when key_size or value_size fall
	// outside the ranges fixed by the format (key 1-127, value 4-127).
	ErrInvalidSizes = errors.New("hashindex: invalid key/value size")

	// ErrAlloc is returned by a resize triggered by Set/Delete when a live
	// entry cannot be re-inserted into the freshly allocated table.
	ErrAlloc = errors.New("hashindex: allocation failed")
)
