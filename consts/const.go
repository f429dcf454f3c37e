package consts

const (
	CHARS_PER_LINE   = 64
	LINES_PER_SCREEN = 16
	CHARS_PER_SCREEN = CHARS_PER_LINE * LINES_PER_SCREEN
)

// MAX_CHARS_PER_SCREEN bounds the block size a geometry may ask for.
const MAX_CHARS_PER_SCREEN = 1 << 24

// BLOCKFILE is the block file used when none is given.
const BLOCKFILE = "figforth_blocks"

// FALLBACK_EDITOR is used when neither VISUAL nor EDITOR is set.
const FALLBACK_EDITOR = "emacs"

// Printable ASCII. Everything outside [PRINT_LOW, PRINT_HIGH] is stored
// as a SPACE.
const (
	SPACE      byte = 0x20
	PRINT_LOW  byte = 0x20
	PRINT_HIGH byte = 0x7e
)
