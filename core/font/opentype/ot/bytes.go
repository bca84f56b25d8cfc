package ot

import (
	"errors"
)

var errBufferBounds = errors.New("read beyond end of table data")

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func u32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// binarySegm is a window onto font data. All reads are big-endian and
// bounds-checked.
type binarySegm []byte

func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n <= 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

func (b binarySegm) u8(i int) (uint8, error) {
	if i < 0 || i >= len(b) {
		return 0, errBufferBounds
	}
	return b[i], nil
}

func (b binarySegm) u16(i int) (uint16, error) {
	w, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(w), nil
}

func (b binarySegm) i16(i int) (int16, error) {
	n, err := b.u16(i)
	return int16(n), err
}

func (b binarySegm) u32(i int) (uint32, error) {
	w, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(w), nil
}

// U16 reads a uint16 at i, or 0 if out of bounds.
func (b binarySegm) U16(i int) uint16 {
	n, _ := b.u16(i)
	return n
}

// U32 reads a uint32 at i, or 0 if out of bounds.
func (b binarySegm) U32(i int) uint32 {
	n, _ := b.u32(i)
	return n
}
