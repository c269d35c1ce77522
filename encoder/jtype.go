package encoder

// encodeJ packs the J-type word: a 21-bit signed offset with an
// implicit zero low bit, scattered across imm[20|10:1|11|19:12].
func encodeJ(desc Descriptor, rd uint32, imm int32, lineNum int, source string) (uint32, error) {
	if imm%2 != 0 {
		return 0, alignmentError(desc.Mnemonic, "jump offset", int64(imm), lineNum, source)
	}
	if err := checkSignedRange(desc.Mnemonic, "jump offset", int64(imm), 21, lineNum, source); err != nil {
		return 0, err
	}
	u := uint32(imm) & 0x1FFFFE
	word := desc.Opcode & 0x7F
	word |= (rd & 0x1F) << 7
	word |= ((u >> 12) & 0xFF) << 12
	word |= ((u >> 11) & 0x1) << 20
	word |= ((u >> 1) & 0x3FF) << 21
	word |= ((u >> 20) & 0x1) << 31
	return word, nil
}
