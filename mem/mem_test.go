package mem_test

import (
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cjohnson/rv32icore/mem"
)

func TestMem(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Mem Suite")
}

var _ = Describe("VirtualFlash", func() {
	var flash *mem.VirtualFlash

	BeforeEach(func() {
		flash = mem.NewVirtualFlash(16)
	})

	It("reads back a loaded image byte for byte", func() {
		flash.LoadImage([]byte{0x93, 0x00, 0x50, 0x00})

		b, ok := flash.Read8(0)
		Expect(ok).To(BeTrue())
		Expect(b).To(Equal(uint8(0x93)))
	})

	It("reads 0 with ok=true past the end of the image", func() {
		flash.LoadImage([]byte{0x01})

		b, ok := flash.Read8(1000)
		Expect(ok).To(BeTrue())
		Expect(b).To(Equal(uint8(0)))
	})

	It("assembles Read32LE little-endian", func() {
		// ADDI x1, x0, 5 = 0x00500093
		flash.LoadImage([]byte{0x93, 0x00, 0x50, 0x00})

		word, ok := flash.Read32LE(0)
		Expect(ok).To(BeTrue())
		Expect(word).To(Equal(uint32(0x00500093)))
	})

	It("loads an image from a file", func() {
		path := writeTempImage([]byte{0xAA, 0xBB, 0xCC, 0xDD})
		Expect(flash.LoadImageFromFile(path)).To(Succeed())

		word, ok := flash.Read32LE(0)
		Expect(ok).To(BeTrue())
		Expect(word).To(Equal(uint32(0xDDCCBBAA)))
	})

	It("reports an error for a missing file", func() {
		err := flash.LoadImageFromFile("/nonexistent/path/does-not-exist.bin")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("BoundedReader", func() {
	It("fails reads outside its window", func() {
		flash := mem.NewVirtualFlash(4)
		flash.LoadImage([]byte{1, 2, 3, 4})
		bounded := &mem.BoundedReader{Inner: flash, Low: 0, High: 4}

		_, ok := bounded.Read8(4)
		Expect(ok).To(BeFalse())
	})

	It("delegates reads inside its window", func() {
		flash := mem.NewVirtualFlash(4)
		flash.LoadImage([]byte{1, 2, 3, 4})
		bounded := &mem.BoundedReader{Inner: flash, Low: 0, High: 4}

		b, ok := bounded.Read8(2)
		Expect(ok).To(BeTrue())
		Expect(b).To(Equal(uint8(3)))
	})

	It("fails Read32LE when any constituent byte is out of range", func() {
		flash := mem.NewVirtualFlash(4)
		flash.LoadImage([]byte{1, 2, 3, 4})
		bounded := &mem.BoundedReader{Inner: flash, Low: 0, High: 2}

		_, ok := bounded.Read32LE(0)
		Expect(ok).To(BeFalse())
	})
})

func writeTempImage(data []byte) string {
	f, err := os.CreateTemp("", "rv32icore-image-*.bin")
	Expect(err).NotTo(HaveOccurred())
	defer f.Close()

	_, err = f.Write(data)
	Expect(err).NotTo(HaveOccurred())

	return f.Name()
}
