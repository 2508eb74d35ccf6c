package insts_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cjohnson/rv32icore/insts"
)

func TestInsts(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Insts Suite")
}

var _ = Describe("bitfield extraction", func() {
	// ADDI x1, x0, 5 = 0x00500093
	const addiX1X0_5 = 0x00500093

	It("extracts the opcode group", func() {
		Expect(insts.OpcodeGroup(addiX1X0_5)).To(Equal(insts.GroupOpImm))
	})

	It("extracts rd", func() {
		Expect(insts.Rd(addiX1X0_5)).To(Equal(uint32(1)))
	})

	It("extracts funct3", func() {
		Expect(insts.Funct3(addiX1X0_5)).To(Equal(uint32(0b000)))
	})

	It("extracts rs1", func() {
		Expect(insts.Rs1(addiX1X0_5)).To(Equal(uint32(0)))
	})

	It("extracts the 12-bit immediate", func() {
		Expect(insts.Imm12(addiX1X0_5)).To(Equal(uint32(5)))
	})

	// ADD x3, x1, x2 = 0x002081B3
	const addX3X1X2 = 0x002081B3

	It("extracts rs2 for R-type", func() {
		Expect(insts.Rs2(addX3X1X2)).To(Equal(uint32(2)))
	})

	It("extracts funct7", func() {
		Expect(insts.Funct7(addX3X1X2)).To(Equal(uint32(0)))
	})
})

var _ = Describe("ArithShiftBit", func() {
	It("is clear for SRLI x2, x1, 1 (0x0010D113)", func() {
		Expect(insts.ArithShiftBit(0x0010D113)).To(BeFalse())
	})

	It("is set for SRAI x2, x1, 1 (0x4010D113)", func() {
		Expect(insts.ArithShiftBit(0x4010D113)).To(BeTrue())
	})
})

var _ = Describe("SignExtend", func() {
	It("leaves positive small values unchanged", func() {
		Expect(insts.SignExtend(5, 12)).To(Equal(uint32(5)))
	})

	It("sign-extends a negative 12-bit immediate to -1", func() {
		// imm[11:0] = 0xFFF == -1 in 12-bit two's complement.
		Expect(insts.SignExtend(0xFFF, 12)).To(Equal(uint32(0xFFFFFFFF)))
	})

	It("sign-extends the most negative 12-bit value", func() {
		// imm[11:0] = 0x800 == -2048 in 12-bit two's complement.
		Expect(insts.SignExtend(0x800, 12)).To(Equal(uint32(0xFFFFF800)))
	})
})

var _ = Describe("Opcode.String", func() {
	It("renders known mnemonics", func() {
		Expect(insts.ADDI.String()).To(Equal("ADDI"))
		Expect(insts.SRA.String()).To(Equal("SRA"))
	})

	It("renders unknown opcodes distinctly", func() {
		Expect(insts.OpUnknown.String()).To(Equal("UNKNOWN"))
	})
})
