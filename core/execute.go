package core

import "github.com/cjohnson/rv32icore/insts"

// doExecute computes the ALU result for the instruction latched in ID/EX
// and the forwarding packet Decode may consume next cycle. Illegal
// instructions flow through unchanged and never forward.
func doExecute(idex IdEx) (ExMem, ForwardPacket) {
	if !idex.Valid {
		return ExMem{}, ForwardPacket{}
	}

	if idex.Illegal {
		next := ExMem{Valid: true, Illegal: true, PC: idex.PC, Opcode: idex.Opcode, Rd: idex.Rd}
		return next, ForwardPacket{}
	}

	v := alu(idex.Opcode, idex.V1, idex.V2)
	next := ExMem{Valid: true, PC: idex.PC, Opcode: idex.Opcode, Rd: idex.Rd, V: v}

	return next, forwardFrom(idex.Rd, v)
}

// forwardFrom builds a forwarding packet for a legal producer, suppressing
// it when the destination is register 0 — consistent with Write's
// treatment of register 0 as hardwired to zero: a producer targeting the
// zero register never forwards.
func forwardFrom(rd uint32, data uint32) ForwardPacket {
	if rd == 0 {
		return ForwardPacket{}
	}
	return ForwardPacket{Valid: true, Rd: rd, DataValid: true, Data: data}
}

// alu computes the 32-bit two's-complement result for opcode given its two
// already-resolved operands. Decode guarantees that a Valid && !Illegal
// latch always carries one of these opcodes, so the default arm below is
// unreachable in practice.
func alu(op insts.Opcode, v1, v2 uint32) uint32 {
	switch op {
	case insts.ADDI, insts.ADD:
		return v1 + v2
	case insts.SLTI, insts.SLT:
		if int32(v1) < int32(v2) {
			return 1
		}
		return 0
	case insts.SLTIU, insts.SLTU:
		if v1 < v2 {
			return 1
		}
		return 0
	case insts.XORI, insts.XOR:
		return v1 ^ v2
	case insts.ORI, insts.OR:
		return v1 | v2
	case insts.ANDI, insts.AND:
		return v1 & v2
	case insts.SLLI, insts.SLL:
		return v1 << (v2 & 0x1F)
	case insts.SRLI, insts.SRL:
		return v1 >> (v2 & 0x1F)
	case insts.SRAI, insts.SRA:
		return uint32(int32(v1) >> (v2 & 0x1F))
	default:
		return 0
	}
}
