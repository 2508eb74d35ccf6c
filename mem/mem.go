// Package mem provides the memory collaborator the core depends on: a
// byte-addressed, read-only capability set, plus a concrete backing store.
package mem

import (
	"fmt"
	"os"
)

// Reader is the capability the core's Fetch stage depends on. It never
// blocks and never errors: a read either succeeds with a byte, or reports
// ok=false, which Fetch turns into a stall.
type Reader interface {
	// Read8 returns the byte at address, or ok=false if address is out of
	// range for this backend.
	Read8(address uint32) (data uint8, ok bool)

	// Read32LE returns the 32-bit little-endian word starting at address,
	// or ok=false if any of the four underlying bytes is unavailable.
	Read32LE(address uint32) (data uint32, ok bool)
}

// Read32LE composes four Read8 calls into a little-endian 32-bit read. It
// is the default implementation described by the memory collaborator
// contract; backends that only implement Read8 can expose Read32LE by
// delegating to this function.
func Read32LE(r Reader, address uint32) (uint32, bool) {
	var out uint32

	b0, ok := r.Read8(address + 0)
	if !ok {
		return 0, false
	}
	out |= uint32(b0) << 0

	b1, ok := r.Read8(address + 1)
	if !ok {
		return 0, false
	}
	out |= uint32(b1) << 8

	b2, ok := r.Read8(address + 2)
	if !ok {
		return 0, false
	}
	out |= uint32(b2) << 16

	b3, ok := r.Read8(address + 3)
	if !ok {
		return 0, false
	}
	out |= uint32(b3) << 24

	return out, true
}

// VirtualFlash is a read-only memory-mapped image backend. Reads beyond the
// loaded image return data=0, ok=true: the image is conceptually infinite
// and zero-filled past whatever was loaded.
type VirtualFlash struct {
	image []byte
}

// NewVirtualFlash creates an empty flash backend. sizeHint preallocates the
// backing slice; it is not a hard limit, since LoadImageFromFile and
// LoadImage replace the slice with whatever is loaded.
func NewVirtualFlash(sizeHint int) *VirtualFlash {
	return &VirtualFlash{image: make([]byte, 0, sizeHint)}
}

// LoadImageFromFile reads the entire file into the backend's internal
// buffer, replacing any previously loaded image.
func (f *VirtualFlash) LoadImageFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load flash image from %q: %w", path, err)
	}

	f.image = data
	return nil
}

// LoadImage replaces the backend's image with data directly, useful for
// tests that build firmware in memory instead of from a file.
func (f *VirtualFlash) LoadImage(data []byte) {
	f.image = data
}

// Read8 implements Reader.
func (f *VirtualFlash) Read8(address uint32) (uint8, bool) {
	if int(address) >= len(f.image) {
		return 0, true
	}
	return f.image[address], true
}

// Read32LE implements Reader.
func (f *VirtualFlash) Read32LE(address uint32) (uint32, bool) {
	return Read32LE(f, address)
}

// BoundedReader decorates a Reader so that addresses outside [Low, High)
// report ok=false instead of delegating. VirtualFlash alone never fails a
// read, which leaves the Fetch stage's stall path unreachable outside of
// hand-built fakes; BoundedReader gives that path a realistic, reusable
// backend to exercise in tests. The CLI does not use it; it reads the
// VirtualFlash directly.
type BoundedReader struct {
	Inner Reader
	Low   uint32
	High  uint32
}

// Read8 implements Reader.
func (b *BoundedReader) Read8(address uint32) (uint8, bool) {
	if address < b.Low || address >= b.High {
		return 0, false
	}
	return b.Inner.Read8(address)
}

// Read32LE implements Reader.
func (b *BoundedReader) Read32LE(address uint32) (uint32, bool) {
	return Read32LE(b, address)
}
