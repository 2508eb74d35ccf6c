package core

import "github.com/cjohnson/rv32icore/insts"

// IfId holds state carried from Fetch into Decode.
type IfId struct {
	Valid bool
	PC    uint32
	Inst  uint32
}

// IdEx holds state carried from Decode into Execute.
type IdEx struct {
	Valid   bool
	Illegal bool
	PC      uint32
	Opcode  insts.Opcode
	Rd      uint32
	V1      uint32
	V2      uint32
}

// ExMem holds state carried from Execute into Memory.
type ExMem struct {
	Valid   bool
	Illegal bool
	PC      uint32
	Opcode  insts.Opcode
	Rd      uint32
	V       uint32
}

// MemWb holds state carried from Memory into Writeback.
type MemWb struct {
	Valid   bool
	Illegal bool
	PC      uint32
	Opcode  insts.Opcode
	Rd      uint32
	V       uint32
}

// ForwardPacket is the bypass produced by Execute or Memory each cycle and
// consumed by Decode's register read.
type ForwardPacket struct {
	// Valid reports whether a forwarded destination exists at all.
	Valid bool
	// Rd is the target register index this packet speaks for.
	Rd uint32
	// DataValid is false when the producer cannot supply the value this
	// cycle; the consumer must then stall rather than read stale data.
	DataValid bool
	// Data is the value to forward when DataValid is true.
	Data uint32
}
