//go:build x64write_novalidate

package x64write

// Under x64write_novalidate, every invariant check compiles to a no-op:
// callers are trusted to pass only well-formed operands, trading the
// diagnostic for the branch and function-call overhead of checking them.
// This mirrors the teacher's debug_asm/debug_disabled split in
// internal/asm/amd64 (a build tag that removes a whole verification path
// rather than gating it behind a runtime flag).

func checkMemory(m Memory) error { return nil }
func checkGpr8Conflict(hasHighByte, needsRex bool) error { return nil }
func checkImmediateRange(value int64, bits int) error { return nil }

func checkGpr8Range(g Gpr8) error { return nil }
func checkGpr16Range(g Gpr16) error { return nil }
func checkGpr32Range(g Gpr32) error { return nil }
func checkGpr64Range(g Gpr64) error { return nil }
func checkVecRange(kind string, idx uint8) error { return nil }
