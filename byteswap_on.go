//go:build byteswap

package x64write

import "encoding/binary"

// putLE16/32/64 invert the emitted byte order. spec.md §6.4 calls this out
// as a recognised build-time option ("for unusual host layouts"); since the
// emitted stream must always be the little-endian x86-64 wire format
// regardless of host endianness, this tag is for generating deliberately
// swapped test fixtures or cross-checking a byteswapping consumer, not for
// correct code generation on a big-endian host.
func putLE16(dst []byte, v uint16) { binary.BigEndian.PutUint16(dst, v) }
func putLE32(dst []byte, v uint32) { binary.BigEndian.PutUint32(dst, v) }
func putLE64(dst []byte, v uint64) { binary.BigEndian.PutUint64(dst, v) }
