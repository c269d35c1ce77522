package parser

import (
	"strconv"
	"strings"
)

// abiRegisterNames maps every RV32I ABI register name to its register
// number. "fp" is an alias for "s0" (x8), matching the calling-convention
// table every RISC-V assembler ships.
var abiRegisterNames = map[string]int{
	"zero": 0, "ra": 1, "sp": 2, "gp": 3, "tp": 4,
	"t0": 5, "t1": 6, "t2": 7,
	"s0": 8, "fp": 8, "s1": 9,
	"a0": 10, "a1": 11, "a2": 12, "a3": 13, "a4": 14, "a5": 15, "a6": 16, "a7": 17,
	"s2": 18, "s3": 19, "s4": 20, "s5": 21, "s6": 22, "s7": 23, "s8": 24, "s9": 25, "s10": 26, "s11": 27,
	"t3": 28, "t4": 29, "t5": 30, "t6": 31,
}

// RegisterNumber resolves a register operand — "x0".."x31" or an ABI
// name — to its register number, case-insensitively.
func RegisterNumber(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) >= 2 && name[0] == 'x' {
		if n, err := strconv.Atoi(name[1:]); err == nil && n >= 0 && n <= 31 {
			return n, true
		}
	}
	if n, ok := abiRegisterNames[name]; ok {
		return n, true
	}
	return 0, false
}
