// Package core implements the five-stage in-order pipelined datapath: the
// inter-stage latches, the Fetch/Decode/Execute/Memory/Writeback stage
// functions, the EX/MEM forwarding network, and the Tick driver that
// advances the whole machine by one clock cycle.
package core

import (
	"io"
	"os"

	"github.com/cjohnson/rv32icore/mem"
)

// Core is a single hart: a program counter, a 32-entry register file, and
// the four pipeline latches between Fetch/Decode/Execute/Memory/Writeback.
type Core struct {
	pc   uint32
	xreg RegFile

	ifid  IfId
	idex  IdEx
	exmem ExMem
	memwb MemWb

	cycleCount uint64

	traceWriter io.Writer
}

// Option configures a Core at construction time.
type Option func(*Core)

// WithTraceWriter routes retirement trace lines to w instead of the
// default (os.Stdout). Passing io.Discard silences tracing entirely
// without changing anything about how or when it is computed.
func WithTraceWriter(w io.Writer) Option {
	return func(c *Core) {
		c.traceWriter = w
	}
}

// New creates a Core with pc=0, a zeroed register file, and all latches
// empty — the same state reset produces.
func New(opts ...Option) *Core {
	c := &Core{traceWriter: os.Stdout}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PC returns the current program counter.
func (c *Core) PC() uint32 {
	return c.pc
}

// XReg returns the current value of register reg.
func (c *Core) XReg(reg uint32) uint32 {
	return c.xreg.Read(reg)
}

// CycleCount returns the number of ticks advanced so far, including the
// tick currently in progress once Tick has been entered.
func (c *Core) CycleCount() uint64 {
	return c.cycleCount
}

// IfId returns the current IF/ID latch, for inspection in tests.
func (c *Core) IfId() IfId { return c.ifid }

// IdEx returns the current ID/EX latch, for inspection in tests.
func (c *Core) IdEx() IdEx { return c.idex }

// ExMem returns the current EX/MEM latch, for inspection in tests.
func (c *Core) ExMem() ExMem { return c.exmem }

// MemWb returns the current MEM/WB latch, for inspection in tests.
func (c *Core) MemWb() MemWb { return c.memwb }

// Tick advances the pipeline by exactly one clock cycle: it computes next
// values for every latch in reverse pipeline order (Writeback, Memory,
// Execute, Decode, Fetch) from the current committed state, then either
// commits all of them atomically or, if reset is asserted, zeroes pc, every
// latch, and the register file instead. m is borrowed exclusively for the
// duration of Fetch. Tick never returns an error: illegal instructions and
// failed memory reads are ordinary, non-fatal outcomes, not faults.
func (c *Core) Tick(m mem.Reader, reset bool) {
	c.cycleCount++

	postWB := doWriteback(c.xreg, c.memwb)
	nextMemwb, memForward := doMemory(c.exmem)
	nextExmem, exForward := doExecute(c.idex)
	nextIdex := doDecode(c.ifid, postWB, exForward, memForward)
	nextIfid, nextPC := doFetch(c.pc, m)

	if reset {
		c.pc = 0
		c.xreg = RegFile{}
		c.ifid = IfId{}
		c.idex = IdEx{}
		c.exmem = ExMem{}
		c.memwb = MemWb{}

		return
	}

	c.pc = nextPC
	c.xreg = postWB
	c.ifid = nextIfid
	c.idex = nextIdex
	c.exmem = nextExmem
	c.memwb = nextMemwb

	c.emitTrace()
}
