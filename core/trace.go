package core

import "fmt"

// emitTrace writes one retirement line for whatever just committed to
// MEM/WB, if anything. Legal retirements are TRACE; retirements carrying an
// illegal placeholder are WARN.
func (c *Core) emitTrace() {
	if !c.memwb.Valid {
		return
	}

	if c.memwb.Illegal {
		fmt.Fprintf(c.traceWriter, "[%d] [WARN] [HART 0]: Retired ILLEGAL instruction @ PC %08x\n",
			c.cycleCount, c.memwb.PC)
		return
	}

	fmt.Fprintf(c.traceWriter, "[%d] [TRACE] [HART 0]: Retired %s instruction @ PC %08x\n",
		c.cycleCount, c.memwb.Opcode, c.memwb.PC)
}
