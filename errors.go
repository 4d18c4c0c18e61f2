package x64write

import "fmt"

// Error is the diagnostic value x64write returns for every encoding failure.
// It carries no exported fields: callers are expected to treat any error as
// a programmer mistake (spec.md §7) and either assert or propagate it, not
// to pattern-match on its contents.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Sentinel-shaped constructors for the error kinds enumerated in spec.md §7.
// These are value-level, not type-level: every one of them is a plain *Error,
// distinguished only by message, matching errorEncodingUnsupported's style in
// the teacher (a single error constructor used for every unsupported-shape
// failure rather than a typed error hierarchy).

func errInvalidRegister(kind string, index int) error {
	return errf("x64write: invalid %s register index %d", kind, index)
}

func errInvalidGpr8Combination() error {
	return errf("x64write: ah/ch/dh/bh cannot be combined with an operand requiring REX in the same instruction")
}

func errInvalidMemory(why string) error {
	return errf("x64write: invalid memory operand: %s", why)
}

func errUnsupportedEncoding(mnemonic string) error {
	return errf("x64write: unsupported encoding for %s", mnemonic)
}

func errImmediateRange(value int64, bits int) error {
	return errf("x64write: immediate %d does not fit in %d bits", value, bits)
}
