package assembler

import (
	"fmt"
	"strings"

	"github.com/riscvibe/rv32asm/encoder"
	"github.com/riscvibe/rv32asm/parser"
)

// resolveAndEncode resolves one real instruction's operands against the
// symbol table and the current program counter, then hands the
// resolved fields to the encoder. It is the only place that knows how
// each mnemonic's operand list maps onto its instruction format.
func resolveAndEncode(mnemonic string, operands []string, pc uint32, symbols *SymbolTable, lineNum int, source string) (uint32, error) {
	desc, ok := encoder.Lookup(mnemonic)
	if !ok {
		return 0, parser.NewError(parser.Position{Line: lineNum}, parser.ErrorUnknownMnemonic, source,
			fmt.Sprintf("unknown instruction: %s", mnemonic))
	}

	if mnemonic == "fence" {
		return encoder.EncodeInstruction(desc, 0, 0, 0, 0, lineNum, source)
	}
	if desc.IsSystem {
		if len(operands) != 0 {
			return 0, operandCountError(mnemonic, 0, len(operands), lineNum, source)
		}
		return encoder.EncodeInstruction(desc, 0, 0, 0, 0, lineNum, source)
	}

	switch desc.Format {
	case encoder.FormatR:
		return resolveRType(desc, operands, lineNum, source)
	case encoder.FormatI:
		return resolveIType(desc, mnemonic, operands, symbols, lineNum, source)
	case encoder.FormatS:
		return resolveSType(desc, operands, lineNum, source)
	case encoder.FormatB:
		return resolveBType(desc, operands, pc, symbols, lineNum, source)
	case encoder.FormatU:
		return resolveUType(desc, operands, symbols, lineNum, source)
	case encoder.FormatJ:
		return resolveJType(desc, operands, pc, symbols, lineNum, source)
	default:
		return 0, fmt.Errorf("assembler: unreachable format for %s", mnemonic)
	}
}

func resolveRType(desc encoder.Descriptor, operands []string, lineNum int, source string) (uint32, error) {
	if len(operands) != 3 {
		return 0, operandCountError(desc.Mnemonic, 3, len(operands), lineNum, source)
	}
	rd, err := resolveRegister(operands[0], lineNum, source)
	if err != nil {
		return 0, err
	}
	rs1, err := resolveRegister(operands[1], lineNum, source)
	if err != nil {
		return 0, err
	}
	rs2, err := resolveRegister(operands[2], lineNum, source)
	if err != nil {
		return 0, err
	}
	return encoder.EncodeInstruction(desc, rd, rs1, rs2, 0, lineNum, source)
}

func resolveIType(desc encoder.Descriptor, mnemonic string, operands []string, symbols *SymbolTable, lineNum int, source string) (uint32, error) {
	switch mnemonic {
	case "lb", "lh", "lw", "lbu", "lhu":
		if len(operands) != 2 {
			return 0, operandCountError(mnemonic, 2, len(operands), lineNum, source)
		}
		rd, err := resolveRegister(operands[0], lineNum, source)
		if err != nil {
			return 0, err
		}
		rs1, imm, err := resolveMemoryOperand(operands[1], lineNum, source)
		if err != nil {
			return 0, err
		}
		return encoder.EncodeInstruction(desc, rd, rs1, 0, imm, lineNum, source)

	case "jalr":
		switch len(operands) {
		case 3:
			rd, err := resolveRegister(operands[0], lineNum, source)
			if err != nil {
				return 0, err
			}
			rs1, err := resolveRegister(operands[1], lineNum, source)
			if err != nil {
				return 0, err
			}
			imm, err := resolveAbsolute(operands[2], symbols, lineNum, source)
			if err != nil {
				return 0, err
			}
			return encoder.EncodeInstruction(desc, rd, rs1, 0, imm, lineNum, source)
		case 2:
			rd, err := resolveRegister(operands[0], lineNum, source)
			if err != nil {
				return 0, err
			}
			rs1, imm, err := resolveMemoryOperand(operands[1], lineNum, source)
			if err != nil {
				return 0, err
			}
			return encoder.EncodeInstruction(desc, rd, rs1, 0, imm, lineNum, source)
		default:
			return 0, operandCountError(mnemonic, 3, len(operands), lineNum, source)
		}

	default:
		// addi, slti, sltiu, xori, ori, andi, slli, srli, srai
		if len(operands) != 3 {
			return 0, operandCountError(mnemonic, 3, len(operands), lineNum, source)
		}
		rd, err := resolveRegister(operands[0], lineNum, source)
		if err != nil {
			return 0, err
		}
		rs1, err := resolveRegister(operands[1], lineNum, source)
		if err != nil {
			return 0, err
		}
		imm, err := resolveAbsolute(operands[2], symbols, lineNum, source)
		if err != nil {
			return 0, err
		}
		return encoder.EncodeInstruction(desc, rd, rs1, 0, imm, lineNum, source)
	}
}

func resolveSType(desc encoder.Descriptor, operands []string, lineNum int, source string) (uint32, error) {
	if len(operands) != 2 {
		return 0, operandCountError(desc.Mnemonic, 2, len(operands), lineNum, source)
	}
	rs2, err := resolveRegister(operands[0], lineNum, source)
	if err != nil {
		return 0, err
	}
	rs1, imm, err := resolveMemoryOperand(operands[1], lineNum, source)
	if err != nil {
		return 0, err
	}
	return encoder.EncodeInstruction(desc, 0, rs1, rs2, imm, lineNum, source)
}

func resolveBType(desc encoder.Descriptor, operands []string, pc uint32, symbols *SymbolTable, lineNum int, source string) (uint32, error) {
	if len(operands) != 3 {
		return 0, operandCountError(desc.Mnemonic, 3, len(operands), lineNum, source)
	}
	rs1, err := resolveRegister(operands[0], lineNum, source)
	if err != nil {
		return 0, err
	}
	rs2, err := resolveRegister(operands[1], lineNum, source)
	if err != nil {
		return 0, err
	}
	imm, err := resolveBranchTarget(operands[2], pc, symbols, lineNum, source)
	if err != nil {
		return 0, err
	}
	return encoder.EncodeInstruction(desc, 0, rs1, rs2, imm, lineNum, source)
}

func resolveUType(desc encoder.Descriptor, operands []string, symbols *SymbolTable, lineNum int, source string) (uint32, error) {
	if len(operands) != 2 {
		return 0, operandCountError(desc.Mnemonic, 2, len(operands), lineNum, source)
	}
	rd, err := resolveRegister(operands[0], lineNum, source)
	if err != nil {
		return 0, err
	}
	imm, err := resolveAbsolute(operands[1], symbols, lineNum, source)
	if err != nil {
		return 0, err
	}
	return encoder.EncodeInstruction(desc, rd, 0, 0, imm, lineNum, source)
}

func resolveJType(desc encoder.Descriptor, operands []string, pc uint32, symbols *SymbolTable, lineNum int, source string) (uint32, error) {
	if len(operands) != 2 {
		return 0, operandCountError(desc.Mnemonic, 2, len(operands), lineNum, source)
	}
	rd, err := resolveRegister(operands[0], lineNum, source)
	if err != nil {
		return 0, err
	}
	imm, err := resolveBranchTarget(operands[1], pc, symbols, lineNum, source)
	if err != nil {
		return 0, err
	}
	return encoder.EncodeInstruction(desc, rd, 0, 0, imm, lineNum, source)
}

func resolveRegister(s string, lineNum int, source string) (uint32, error) {
	n, ok := parser.RegisterNumber(s)
	if !ok {
		return 0, parser.NewError(parser.Position{Line: lineNum}, parser.ErrorBadRegister, source,
			fmt.Sprintf("invalid register: %s", s))
	}
	return uint32(n), nil
}

func resolveMemoryOperand(s string, lineNum int, source string) (rs1 uint32, imm int32, err error) {
	offsetText, regName, err := parser.ParseMemoryOperand(s)
	if err != nil {
		return 0, 0, asParseError(lineNum, source, err)
	}
	rs1, err = resolveRegister(regName, lineNum, source)
	if err != nil {
		return 0, 0, err
	}
	imm, err = parser.ParseImmediate(offsetText)
	if err != nil {
		return 0, 0, asParseError(lineNum, source, err)
	}
	return rs1, imm, nil
}

// resolveAbsolute resolves an operand that is either a label (whose
// address is used directly) or a plain immediate literal.
func resolveAbsolute(s string, symbols *SymbolTable, lineNum int, source string) (int32, error) {
	s = strings.TrimSpace(s)
	if addr, ok := symbols.Lookup(s); ok {
		return int32(addr), nil
	}
	imm, err := parser.ParseImmediate(s)
	if err != nil {
		return 0, asParseError(lineNum, source, err)
	}
	return imm, nil
}

// resolveBranchTarget resolves a branch/jump target: a label becomes the
// PC-relative distance from this instruction, while a plain literal is
// taken as an already-relative offset, as-is.
func resolveBranchTarget(s string, pc uint32, symbols *SymbolTable, lineNum int, source string) (int32, error) {
	s = strings.TrimSpace(s)
	if addr, ok := symbols.Lookup(s); ok {
		return int32(int64(addr) - int64(pc)), nil
	}
	imm, err := parser.ParseImmediate(s)
	if err != nil {
		return 0, asParseError(lineNum, source, err)
	}
	return imm, nil
}

func operandCountError(mnemonic string, want, got, lineNum int, source string) error {
	return parser.NewError(parser.Position{Line: lineNum}, parser.ErrorBadOperand, source,
		fmt.Sprintf("%s requires %d operand(s), got %d", mnemonic, want, got))
}

// asParseError normalizes a plain error into a positioned parser.Error,
// passing already-positioned errors through unchanged.
func asParseError(lineNum int, source string, err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*parser.Error); ok {
		if pe.Pos.Line == 0 {
			pe.Pos.Line = lineNum
		}
		if pe.Source == "" {
			pe.Source = source
		}
		return pe
	}
	return parser.NewError(parser.Position{Line: lineNum}, parser.ErrorSyntax, source, err.Error())
}
