// Package encoder bit-encodes one real RV32I instruction at a time. It
// knows nothing about labels, pseudo-instructions, or source lines
// beyond the position/text it is given for error messages: every
// mnemonic it understands is in the closed Descriptor catalog below.
package encoder

import "strings"

// Format is one of the six RV32I instruction encodings.
type Format int

const (
	FormatR Format = iota
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
)

// Descriptor is everything the encoder needs to bit-pack one mnemonic,
// short of the resolved register numbers and immediate. The catalog
// below is a closed, compile-time table: no mnemonic is ever added to
// or removed from it at runtime.
type Descriptor struct {
	Mnemonic  string
	Format    Format
	Opcode    uint32
	Funct3    uint32
	HasFunct7 bool
	Funct7    uint32
	IsSystem  bool
	SystemImm uint32
}

// catalog is the full, closed set of mnemonics this assembler supports.
// Go has no compile-time constant map; this package-level literal,
// populated once at init and never mutated, is the closest idiomatic
// equivalent (see DESIGN.md).
var catalog = map[string]Descriptor{
	// R-type, opcode 0x33
	"add":  {Mnemonic: "add", Format: FormatR, Opcode: 0x33, Funct3: 0x0, HasFunct7: true, Funct7: 0x00},
	"sub":  {Mnemonic: "sub", Format: FormatR, Opcode: 0x33, Funct3: 0x0, HasFunct7: true, Funct7: 0x20},
	"sll":  {Mnemonic: "sll", Format: FormatR, Opcode: 0x33, Funct3: 0x1, HasFunct7: true, Funct7: 0x00},
	"slt":  {Mnemonic: "slt", Format: FormatR, Opcode: 0x33, Funct3: 0x2, HasFunct7: true, Funct7: 0x00},
	"sltu": {Mnemonic: "sltu", Format: FormatR, Opcode: 0x33, Funct3: 0x3, HasFunct7: true, Funct7: 0x00},
	"xor":  {Mnemonic: "xor", Format: FormatR, Opcode: 0x33, Funct3: 0x4, HasFunct7: true, Funct7: 0x00},
	"srl":  {Mnemonic: "srl", Format: FormatR, Opcode: 0x33, Funct3: 0x5, HasFunct7: true, Funct7: 0x00},
	"sra":  {Mnemonic: "sra", Format: FormatR, Opcode: 0x33, Funct3: 0x5, HasFunct7: true, Funct7: 0x20},
	"or":   {Mnemonic: "or", Format: FormatR, Opcode: 0x33, Funct3: 0x6, HasFunct7: true, Funct7: 0x00},
	"and":  {Mnemonic: "and", Format: FormatR, Opcode: 0x33, Funct3: 0x7, HasFunct7: true, Funct7: 0x00},

	// I-type arithmetic, opcode 0x13
	"addi":  {Mnemonic: "addi", Format: FormatI, Opcode: 0x13, Funct3: 0x0},
	"slti":  {Mnemonic: "slti", Format: FormatI, Opcode: 0x13, Funct3: 0x2},
	"sltiu": {Mnemonic: "sltiu", Format: FormatI, Opcode: 0x13, Funct3: 0x3},
	"xori":  {Mnemonic: "xori", Format: FormatI, Opcode: 0x13, Funct3: 0x4},
	"ori":   {Mnemonic: "ori", Format: FormatI, Opcode: 0x13, Funct3: 0x6},
	"andi":  {Mnemonic: "andi", Format: FormatI, Opcode: 0x13, Funct3: 0x7},
	"slli":  {Mnemonic: "slli", Format: FormatI, Opcode: 0x13, Funct3: 0x1, HasFunct7: true, Funct7: 0x00},
	"srli":  {Mnemonic: "srli", Format: FormatI, Opcode: 0x13, Funct3: 0x5, HasFunct7: true, Funct7: 0x00},
	"srai":  {Mnemonic: "srai", Format: FormatI, Opcode: 0x13, Funct3: 0x5, HasFunct7: true, Funct7: 0x20},

	// Loads, opcode 0x03
	"lb":  {Mnemonic: "lb", Format: FormatI, Opcode: 0x03, Funct3: 0x0},
	"lh":  {Mnemonic: "lh", Format: FormatI, Opcode: 0x03, Funct3: 0x1},
	"lw":  {Mnemonic: "lw", Format: FormatI, Opcode: 0x03, Funct3: 0x2},
	"lbu": {Mnemonic: "lbu", Format: FormatI, Opcode: 0x03, Funct3: 0x4},
	"lhu": {Mnemonic: "lhu", Format: FormatI, Opcode: 0x03, Funct3: 0x5},

	"jalr": {Mnemonic: "jalr", Format: FormatI, Opcode: 0x67, Funct3: 0x0},

	"ecall":  {Mnemonic: "ecall", Format: FormatI, Opcode: 0x73, Funct3: 0x0, IsSystem: true, SystemImm: 0x000},
	"ebreak": {Mnemonic: "ebreak", Format: FormatI, Opcode: 0x73, Funct3: 0x0, IsSystem: true, SystemImm: 0x001},

	"fence": {Mnemonic: "fence", Format: FormatI, Opcode: 0x0F, Funct3: 0x0},

	// Stores, opcode 0x23
	"sb": {Mnemonic: "sb", Format: FormatS, Opcode: 0x23, Funct3: 0x0},
	"sh": {Mnemonic: "sh", Format: FormatS, Opcode: 0x23, Funct3: 0x1},
	"sw": {Mnemonic: "sw", Format: FormatS, Opcode: 0x23, Funct3: 0x2},

	// Branches, opcode 0x63
	"beq":  {Mnemonic: "beq", Format: FormatB, Opcode: 0x63, Funct3: 0x0},
	"bne":  {Mnemonic: "bne", Format: FormatB, Opcode: 0x63, Funct3: 0x1},
	"blt":  {Mnemonic: "blt", Format: FormatB, Opcode: 0x63, Funct3: 0x4},
	"bge":  {Mnemonic: "bge", Format: FormatB, Opcode: 0x63, Funct3: 0x5},
	"bltu": {Mnemonic: "bltu", Format: FormatB, Opcode: 0x63, Funct3: 0x6},
	"bgeu": {Mnemonic: "bgeu", Format: FormatB, Opcode: 0x63, Funct3: 0x7},

	// Upper-immediate, U-type
	"lui":   {Mnemonic: "lui", Format: FormatU, Opcode: 0x37},
	"auipc": {Mnemonic: "auipc", Format: FormatU, Opcode: 0x17},

	// Jump, J-type
	"jal": {Mnemonic: "jal", Format: FormatJ, Opcode: 0x6F},
}

// Lookup returns the Descriptor for a mnemonic, case-insensitively.
func Lookup(mnemonic string) (Descriptor, bool) {
	d, ok := catalog[strings.ToLower(mnemonic)]
	return d, ok
}
