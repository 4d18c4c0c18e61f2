//go:build !byteswap

package x64write

import "encoding/binary"

// putLE16/32/64 write v in the wire-correct little-endian order. This is the
// default build: real x86-64 hosts never need the byteswap tag below.
func putLE16(dst []byte, v uint16) { binary.LittleEndian.PutUint16(dst, v) }
func putLE32(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }
func putLE64(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }
