package encoder

// encodeB packs the B-type word: a 13-bit signed offset with an
// implicit zero low bit, scattered across imm[12|10:5|4:1|11].
func encodeB(desc Descriptor, rs1, rs2 uint32, imm int32, lineNum int, source string) (uint32, error) {
	if imm%2 != 0 {
		return 0, alignmentError(desc.Mnemonic, "branch offset", int64(imm), lineNum, source)
	}
	if err := checkSignedRange(desc.Mnemonic, "branch offset", int64(imm), 13, lineNum, source); err != nil {
		return 0, err
	}
	u := uint32(imm) & 0x1FFE
	word := desc.Opcode & 0x7F
	word |= ((u >> 11) & 0x1) << 7
	word |= ((u >> 1) & 0xF) << 8
	word |= (desc.Funct3 & 0x7) << 12
	word |= (rs1 & 0x1F) << 15
	word |= (rs2 & 0x1F) << 20
	word |= ((u >> 5) & 0x3F) << 25
	word |= ((u >> 12) & 0x1) << 31
	return word, nil
}
