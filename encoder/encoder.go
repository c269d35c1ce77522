package encoder

import "fmt"

// EncodeInstruction bit-encodes one real instruction. rd/rs1/rs2 are
// register numbers already resolved by the caller; fields the format
// doesn't use are ignored. imm is the fully resolved immediate —
// already made PC-relative for branches/jal where that applies.
func EncodeInstruction(desc Descriptor, rd, rs1, rs2 uint32, imm int32, lineNum int, source string) (uint32, error) {
	switch desc.Format {
	case FormatR:
		return encodeR(desc, rd, rs1, rs2), nil
	case FormatI:
		return encodeI(desc, rd, rs1, imm, lineNum, source)
	case FormatS:
		return encodeS(desc, rs1, rs2, imm, lineNum, source)
	case FormatB:
		return encodeB(desc, rs1, rs2, imm, lineNum, source)
	case FormatU:
		return encodeU(desc, rd, imm, lineNum, source)
	case FormatJ:
		return encodeJ(desc, rd, imm, lineNum, source)
	default:
		panic(fmt.Sprintf("encoder: descriptor %q has unreachable format %v", desc.Mnemonic, desc.Format))
	}
}
