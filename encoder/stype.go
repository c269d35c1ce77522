package encoder

// encodeS packs the S-type word, splitting the 12-bit signed offset
// across imm[11:5] and imm[4:0] around the register fields.
func encodeS(desc Descriptor, rs1, rs2 uint32, imm int32, lineNum int, source string) (uint32, error) {
	if err := checkSignedRange(desc.Mnemonic, "offset", int64(imm), 12, lineNum, source); err != nil {
		return 0, err
	}
	u := uint32(imm) & 0xFFF
	word := desc.Opcode & 0x7F
	word |= (u & 0x1F) << 7
	word |= (desc.Funct3 & 0x7) << 12
	word |= (rs1 & 0x1F) << 15
	word |= (rs2 & 0x1F) << 20
	word |= ((u >> 5) & 0x7F) << 25
	return word, nil
}
