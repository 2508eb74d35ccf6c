package core

import "github.com/cjohnson/rv32icore/insts"

// doDecode parses the instruction latched in IF/ID, resolves its operands
// against the post-writeback register view with EX/MEM forwarding, and
// produces the next ID/EX occupant. An unrecognized opcode group or funct3
// yields an Illegal placeholder that still proceeds through the pipeline so
// it can be traced at retirement.
func doDecode(ifid IfId, postWB RegFile, exForward, memForward ForwardPacket) IdEx {
	if !ifid.Valid {
		return IdEx{}
	}

	next := IdEx{Valid: true, PC: ifid.PC}

	switch insts.OpcodeGroup(ifid.Inst) {
	case insts.GroupOpImm:
		decodeOpImm(ifid.Inst, postWB, exForward, memForward, &next)
	case insts.GroupOp:
		decodeOp(ifid.Inst, postWB, exForward, memForward, &next)
	default:
		next.Illegal = true
	}

	return next
}

// decodeOpImm decodes the I-type integer register-immediate group.
func decodeOpImm(word uint32, postWB RegFile, exForward, memForward ForwardPacket, next *IdEx) {
	next.Rd = insts.Rd(word)

	rs1 := insts.Rs1(word)
	v1, ok := readOperand(rs1, postWB, exForward, memForward)
	if !ok {
		// Load-use style hazard reservation: the producer cannot supply the
		// value this cycle, so Decode's output is not valid this cycle.
		*next = IdEx{}
		return
	}
	next.V1 = v1

	funct3 := insts.Funct3(word)
	imm12 := insts.Imm12(word)

	switch funct3 {
	case 0b000:
		next.Opcode = insts.ADDI
		next.V2 = insts.SignExtend(imm12, 12)
	case 0b010:
		next.Opcode = insts.SLTI
		next.V2 = insts.SignExtend(imm12, 12)
	case 0b011:
		next.Opcode = insts.SLTIU
		next.V2 = insts.SignExtend(imm12, 12)
	case 0b100:
		next.Opcode = insts.XORI
		next.V2 = insts.SignExtend(imm12, 12)
	case 0b110:
		next.Opcode = insts.ORI
		next.V2 = insts.SignExtend(imm12, 12)
	case 0b111:
		next.Opcode = insts.ANDI
		next.V2 = insts.SignExtend(imm12, 12)
	case 0b001:
		next.Opcode = insts.SLLI
		next.V2 = insts.Shamt(word)
	case 0b101:
		if insts.ArithShiftBit(word) {
			next.Opcode = insts.SRAI
		} else {
			next.Opcode = insts.SRLI
		}
		next.V2 = insts.Shamt(word)
	default:
		next.Illegal = true
	}
}

// decodeOp decodes the R-type integer register-register group. This
// taxonomy has no SUB: a funct3=000 encoding with bit 30 set (which would
// conventionally be SUB) is not a supported opcode and is marked illegal.
func decodeOp(word uint32, postWB RegFile, exForward, memForward ForwardPacket, next *IdEx) {
	next.Rd = insts.Rd(word)

	rs1 := insts.Rs1(word)
	v1, ok := readOperand(rs1, postWB, exForward, memForward)
	if !ok {
		*next = IdEx{}
		return
	}

	rs2 := insts.Rs2(word)
	v2, ok := readOperand(rs2, postWB, exForward, memForward)
	if !ok {
		*next = IdEx{}
		return
	}

	next.V1 = v1
	next.V2 = v2

	funct3 := insts.Funct3(word)
	bit30 := insts.ArithShiftBit(word)

	switch funct3 {
	case 0b000:
		if bit30 {
			next.Illegal = true
		} else {
			next.Opcode = insts.ADD
		}
	case 0b010:
		next.Opcode = insts.SLT
	case 0b011:
		next.Opcode = insts.SLTU
	case 0b100:
		next.Opcode = insts.XOR
	case 0b110:
		next.Opcode = insts.OR
	case 0b111:
		next.Opcode = insts.AND
	case 0b001:
		next.Opcode = insts.SLL
	case 0b101:
		if bit30 {
			next.Opcode = insts.SRA
		} else {
			next.Opcode = insts.SRL
		}
	default:
		next.Illegal = true
	}
}

// readOperand resolves a single source register against the forwarding
// network. Precedence is strict: EX > MEM > post-writeback register file,
// so the younger producer always wins over an older one.
func readOperand(r uint32, postWB RegFile, exForward, memForward ForwardPacket) (uint32, bool) {
	if exForward.Valid && exForward.Rd == r {
		if !exForward.DataValid {
			return 0, false
		}
		return exForward.Data, true
	}

	if memForward.Valid && memForward.Rd == r {
		return memForward.Data, true
	}

	return postWB.Read(r), true
}
