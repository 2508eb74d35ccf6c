package core

import "github.com/cjohnson/rv32icore/mem"

// doFetch issues a 4-byte little-endian read at pc. A successful read
// produces a new IF/ID occupant and advances the program counter by 4; a
// failed read stalls at the current address and leaves IF/ID empty for
// this cycle. Fetch never raises illegal — malformed instructions are
// classified at Decode.
func doFetch(pc uint32, m mem.Reader) (nextIfId IfId, nextPC uint32) {
	word, ok := m.Read32LE(pc)
	if !ok {
		return IfId{}, pc
	}

	return IfId{Valid: true, PC: pc, Inst: word}, pc + 4
}
