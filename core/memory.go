package core

// doMemory is a pass-through for the integer subset this core implements:
// no load/store opcode reaches EX/MEM with Illegal=false, so Memory simply
// relays EX/MEM into MEM/WB and forwards the legal result, unchanged.
func doMemory(exmem ExMem) (MemWb, ForwardPacket) {
	if !exmem.Valid {
		return MemWb{}, ForwardPacket{}
	}

	next := MemWb{
		Valid:   true,
		Illegal: exmem.Illegal,
		PC:      exmem.PC,
		Opcode:  exmem.Opcode,
		Rd:      exmem.Rd,
		V:       exmem.V,
	}

	if exmem.Illegal {
		return next, ForwardPacket{}
	}

	return next, forwardFrom(exmem.Rd, exmem.V)
}
