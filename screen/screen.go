// Package screen converts between the fixed size on disk form of a
// screen and the line oriented text a person edits.
package screen

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/screenedit"
	"github.com/timtadh/screenedit/consts"
	"github.com/timtadh/screenedit/errors"
)

// Replacement records a non-printable byte that was turned into a space.
type Replacement struct {
	Pos   int
	Value byte
}

func Printable(b byte) bool {
	return b >= consts.PRINT_LOW && b <= consts.PRINT_HIGH
}

// Sanitize replaces, in place, every byte of buf outside of printable
// ASCII with a space.
func Sanitize(buf []byte) []Replacement {
	var reps []Replacement
	for i, b := range buf {
		if !Printable(b) {
			reps = append(reps, Replacement{Pos: i, Value: b})
			buf[i] = consts.SPACE
		}
	}
	return reps
}

// Pad right pads s with spaces out to n bytes. It never truncates.
func Pad(s []byte, n int) []byte {
	if len(s) >= n {
		return s
	}
	return append(s, bytes.Repeat([]byte{consts.SPACE}, n-len(s))...)
}

// Fit pads or truncates s to exactly n bytes.
func Fit(s []byte, n int) []byte {
	if len(s) > n {
		return s[:n]
	}
	return Pad(s, n)
}

// lines splits a screen into its fixed width lines.
func lines(buf []byte, g screenedit.Geometry) [][]byte {
	out := make([][]byte, 0, g.LinesPerScreen)
	for l := 0; l < g.LinesPerScreen; l++ {
		p := l * g.CharsPerLine
		out = append(out, buf[p:p+g.CharsPerLine])
	}
	return out
}

// Render writes buf as text, one line per screen line with trailing
// spaces removed.
func Render(w io.Writer, buf []byte, g screenedit.Geometry) error {
	if len(buf) != g.CharsPerScreen() {
		return errors.Errorf("screen is %d bytes, expected %d", len(buf), g.CharsPerScreen())
	}
	out := bufio.NewWriter(w)
	for _, line := range lines(buf, g) {
		if _, err := out.Write(bytes.TrimRight(line, " ")); err != nil {
			return errors.Wrap(err, "rendering screen")
		}
		if err := out.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "rendering screen")
		}
	}
	return errors.Wrap(out.Flush(), "rendering screen")
}

// Parse reads text back into a screen. Only the first LinesPerScreen
// lines are used, each with trailing whitespace removed and fit to
// CharsPerLine. Missing lines are blank. Non-printable bytes in the text
// are replaced with spaces and reported with their position in the
// screen.
func Parse(r io.Reader, g screenedit.Geometry) ([]byte, []Replacement, error) {
	buf := make([]byte, 0, g.CharsPerScreen())
	in := bufio.NewReader(r)
	for l := 0; l < g.LinesPerScreen; l++ {
		line, err := in.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, nil, errors.Wrap(err, "reading line %d", l+1)
		}
		if len(line) == 0 && err == io.EOF {
			break
		}
		line = bytes.TrimRightFunc(line, isSpace)
		buf = append(buf, Fit(line, g.CharsPerLine)...)
		if err == io.EOF {
			break
		}
	}
	buf = Pad(buf, g.CharsPerScreen())
	reps := Sanitize(buf)
	return buf, reps, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// WriteTemp renders screen n into a new temporary file in dir (the
// system temp dir if dir is empty) and returns its path.
func WriteTemp(dir string, n int64, buf []byte, g screenedit.Geometry) (path string, err error) {
	f, err := os.CreateTemp(dir, "screen-"+strconv.FormatInt(n, 10)+"-*.txt")
	if err != nil {
		return "", errors.Wrap(err, "creating temporary file")
	}
	if err := Render(f, buf, g); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(err, "closing temporary file")
	}
	return f.Name(), nil
}

// ReadTemp parses the text file at path back into a screen.
func ReadTemp(path string, g screenedit.Geometry) ([]byte, []Replacement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening temporary file")
	}
	defer f.Close()
	return Parse(f, g)
}

// Text is the rendered form of buf as a string.
func Text(buf []byte, g screenedit.Geometry) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, buf, g); err != nil {
		return "", err
	}
	return sb.String(), nil
}
