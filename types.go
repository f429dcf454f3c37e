package screenedit

import (
	"fmt"
	"math"
)

import (
	"github.com/timtadh/screenedit/consts"
)

// Geometry is the text grid a screen is laid out on.
type Geometry struct {
	CharsPerLine   int
	LinesPerScreen int
}

// DefaultGeometry is the 64x16 screen of a fig-FORTH block file.
func DefaultGeometry() Geometry {
	return Geometry{
		CharsPerLine:   consts.CHARS_PER_LINE,
		LinesPerScreen: consts.LINES_PER_SCREEN,
	}
}

// CharsPerScreen is the block size of the block file.
func (g Geometry) CharsPerScreen() int {
	return g.CharsPerLine * g.LinesPerScreen
}

// MaxScreen is the largest screen number whose byte offset fits in an
// int64. The geometry must be valid.
func (g Geometry) MaxScreen() int64 {
	return math.MaxInt64 / int64(g.CharsPerScreen())
}

// Validate checks that both dimensions are positive and that a screen
// is at most consts.MAX_CHARS_PER_SCREEN bytes.
func (g Geometry) Validate() error {
	if g.CharsPerLine <= 0 {
		return fmt.Errorf("chars per line must be positive, got %d", g.CharsPerLine)
	}
	if g.LinesPerScreen <= 0 {
		return fmt.Errorf("lines per screen must be positive, got %d", g.LinesPerScreen)
	}
	if g.CharsPerLine > consts.MAX_CHARS_PER_SCREEN/g.LinesPerScreen {
		return fmt.Errorf("screen of %v is larger than %d bytes", g, consts.MAX_CHARS_PER_SCREEN)
	}
	return nil
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.CharsPerLine, g.LinesPerScreen)
}
