// Package pseudo expands the fixed set of RV32I pseudo-instructions
// into the one or two real instructions that realize them. It never
// resolves a register or label itself: expansion produces operand
// strings fed straight back through the same pipeline that resolves a
// real instruction's operands.
package pseudo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riscvibe/rv32asm/parser"
)

// Real is one real (non-pseudo) instruction produced by expanding a
// pseudo-mnemonic.
type Real struct {
	Mnemonic string
	Operands []string
}

var names = map[string]bool{
	"li": true, "mv": true, "not": true, "neg": true, "nop": true,
	"j": true, "jr": true, "ret": true, "call": true,
	"beqz": true, "bnez": true, "blez": true, "bgez": true, "bltz": true, "bgtz": true,
	"seqz": true, "snez": true, "sltz": true, "sgtz": true,
}

// IsPseudo reports whether mnemonic names one of the supported
// pseudo-instructions (case-insensitive).
func IsPseudo(mnemonic string) bool {
	return names[strings.ToLower(mnemonic)]
}

// Count answers "how many real instructions does this pseudo occupy?"
// without performing the expansion, for Pass 1 address computation. It
// never errors: an immediate that can't yet be parsed, or a malformed
// operand list, falls back to the conservative two-instruction estimate
// for li and one instruction for everything else — the real error
// surfaces from Expand in Pass 2.
func Count(mnemonic string, operands []string) int {
	if strings.ToLower(mnemonic) != "li" {
		return 1
	}
	if len(operands) != 2 {
		return 2
	}
	imm, err := parser.ParseImmediate(operands[1])
	if err != nil {
		return 2
	}
	if imm >= -2048 && imm <= 2047 {
		return 1
	}
	upper := (int64(imm) + 0x800) >> 12
	lower := int64(imm) - (upper << 12)
	if lower == 0 {
		return 1
	}
	return 2
}

// Expand realizes one pseudo-instruction into its real equivalent(s).
func Expand(mnemonic string, operands []string) ([]Real, error) {
	m := strings.ToLower(mnemonic)
	switch m {
	case "li":
		return expandLI(operands)
	case "mv":
		if err := requireOperands(m, operands, 2); err != nil {
			return nil, err
		}
		return []Real{{"addi", []string{operands[0], operands[1], "0"}}}, nil
	case "not":
		if err := requireOperands(m, operands, 2); err != nil {
			return nil, err
		}
		return []Real{{"xori", []string{operands[0], operands[1], "-1"}}}, nil
	case "neg":
		if err := requireOperands(m, operands, 2); err != nil {
			return nil, err
		}
		return []Real{{"sub", []string{operands[0], "x0", operands[1]}}}, nil
	case "nop":
		if err := requireOperands(m, operands, 0); err != nil {
			return nil, err
		}
		return []Real{{"addi", []string{"x0", "x0", "0"}}}, nil
	case "j":
		if err := requireOperands(m, operands, 1); err != nil {
			return nil, err
		}
		return []Real{{"jal", []string{"x0", operands[0]}}}, nil
	case "jr":
		if err := requireOperands(m, operands, 1); err != nil {
			return nil, err
		}
		return []Real{{"jalr", []string{"x0", operands[0], "0"}}}, nil
	case "ret":
		if err := requireOperands(m, operands, 0); err != nil {
			return nil, err
		}
		return []Real{{"jalr", []string{"x0", "ra", "0"}}}, nil
	case "call":
		if err := requireOperands(m, operands, 1); err != nil {
			return nil, err
		}
		return []Real{{"jal", []string{"ra", operands[0]}}}, nil
	case "beqz":
		return expandBranchZero(m, "beq", operands)
	case "bnez":
		return expandBranchZero(m, "bne", operands)
	case "blez":
		return expandBranchZeroSwapped(m, "bge", operands)
	case "bgez":
		return expandBranchZero(m, "bge", operands)
	case "bltz":
		return expandBranchZero(m, "blt", operands)
	case "bgtz":
		return expandBranchZeroSwapped(m, "blt", operands)
	case "seqz":
		if err := requireOperands(m, operands, 2); err != nil {
			return nil, err
		}
		return []Real{{"sltiu", []string{operands[0], operands[1], "1"}}}, nil
	case "snez":
		if err := requireOperands(m, operands, 2); err != nil {
			return nil, err
		}
		return []Real{{"sltu", []string{operands[0], "x0", operands[1]}}}, nil
	case "sltz":
		if err := requireOperands(m, operands, 2); err != nil {
			return nil, err
		}
		return []Real{{"slt", []string{operands[0], operands[1], "x0"}}}, nil
	case "sgtz":
		if err := requireOperands(m, operands, 2); err != nil {
			return nil, err
		}
		return []Real{{"slt", []string{operands[0], "x0", operands[1]}}}, nil
	default:
		return nil, fmt.Errorf("unknown pseudo-instruction: %s", mnemonic)
	}
}

// expandBranchZero handles beqz/bnez/bgez/bltz: rs, target -> real rs, x0, target.
func expandBranchZero(pseudoName, real string, operands []string) ([]Real, error) {
	if err := requireOperands(pseudoName, operands, 2); err != nil {
		return nil, err
	}
	return []Real{{real, []string{operands[0], "x0", operands[1]}}}, nil
}

// expandBranchZeroSwapped handles blez/bgtz: rs, target -> real x0, rs, target.
func expandBranchZeroSwapped(pseudoName, real string, operands []string) ([]Real, error) {
	if err := requireOperands(pseudoName, operands, 2); err != nil {
		return nil, err
	}
	return []Real{{real, []string{"x0", operands[0], operands[1]}}}, nil
}

func requireOperands(mnemonic string, operands []string, n int) error {
	if len(operands) != n {
		return fmt.Errorf("%s requires %d operand(s), got %d", mnemonic, n, len(operands))
	}
	return nil
}

// expandLI realizes the variable-length li pseudo-instruction: a single
// addi when the immediate fits in 12 signed bits, otherwise a lui/addi
// pair built with the +0x800 rounding trick so the addi's sign-extension
// doesn't corrupt the lui's upper 20 bits.
func expandLI(operands []string) ([]Real, error) {
	if err := requireOperands("li", operands, 2); err != nil {
		return nil, err
	}
	rd := operands[0]
	imm, err := parser.ParseImmediate(operands[1])
	if err != nil {
		return nil, err
	}
	if imm >= -2048 && imm <= 2047 {
		return []Real{{"addi", []string{rd, "x0", strconv.Itoa(int(imm))}}}, nil
	}

	upper := (int64(imm) + 0x800) >> 12
	lower := int64(imm) - (upper << 12)
	upper &= 0xFFFFF

	result := []Real{{"lui", []string{rd, strconv.FormatInt(upper, 10)}}}
	if lower != 0 {
		result = append(result, Real{"addi", []string{rd, rd, strconv.FormatInt(lower, 10)}})
	}
	return result, nil
}
