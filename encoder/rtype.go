package encoder

// encodeR packs the R-type word: funct7 | rs2 | rs1 | funct3 | rd | opcode.
// R-type operands are always registers, so there is no range to check.
func encodeR(desc Descriptor, rd, rs1, rs2 uint32) uint32 {
	word := desc.Opcode & 0x7F
	word |= (rd & 0x1F) << 7
	word |= (desc.Funct3 & 0x7) << 12
	word |= (rs1 & 0x1F) << 15
	word |= (rs2 & 0x1F) << 20
	word |= (desc.Funct7 & 0x7F) << 25
	return word
}
