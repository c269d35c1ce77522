package encoder

// encodeI packs the I-type word. Three shapes share this format:
// ecall/ebreak (system, immediate fixed by the descriptor, rd/rs1
// forced to zero), the shift-immediates (a 5-bit unsigned shamt plus
// funct7, per HasFunct7), and everything else (a 12-bit signed
// immediate).
func encodeI(desc Descriptor, rd, rs1 uint32, imm int32, lineNum int, source string) (uint32, error) {
	if desc.IsSystem {
		word := desc.Opcode & 0x7F
		word |= (desc.Funct3 & 0x7) << 12
		word |= (desc.SystemImm & 0xFFF) << 20
		return word, nil
	}

	if desc.HasFunct7 {
		if err := checkUnsignedRange(desc.Mnemonic, "shift amount", int64(imm), 5, lineNum, source); err != nil {
			return 0, err
		}
		word := desc.Opcode & 0x7F
		word |= (rd & 0x1F) << 7
		word |= (desc.Funct3 & 0x7) << 12
		word |= (rs1 & 0x1F) << 15
		word |= (uint32(imm) & 0x1F) << 20
		word |= (desc.Funct7 & 0x7F) << 25
		return word, nil
	}

	if err := checkSignedRange(desc.Mnemonic, "immediate", int64(imm), 12, lineNum, source); err != nil {
		return 0, err
	}
	word := desc.Opcode & 0x7F
	word |= (rd & 0x1F) << 7
	word |= (desc.Funct3 & 0x7) << 12
	word |= (rs1 & 0x1F) << 15
	word |= (uint32(imm) & 0xFFF) << 20
	return word, nil
}
