package editor

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

import (
	"github.com/sirupsen/logrus"
)

import (
	"github.com/timtadh/screenedit"
	"github.com/timtadh/screenedit/errors"
	"github.com/timtadh/screenedit/file"
	"github.com/timtadh/screenedit/screen"
)

type Result int

const (
	Unchanged Result = iota
	Written
)

func (r Result) String() string {
	switch r {
	case Unchanged:
		return "unchanged"
	case Written:
		return "written"
	}
	return "unknown"
}

// Session edits screens of one block file.
type Session struct {
	File     file.BlockReadWriter
	Geometry screenedit.Geometry
	Runner   Runner
	Editor   string
	TempDir  string
	Log      logrus.FieldLogger
}

func (self *Session) log() logrus.FieldLogger {
	if self.Log == nil {
		return logrus.StandardLogger()
	}
	return self.Log
}

func (self *Session) check() error {
	if err := self.Geometry.Validate(); err != nil {
		return errors.Wrap(err, "bad geometry")
	}
	if s, ok := self.File.(file.BlockSizer); ok {
		if int(s.BlockSize()) != self.Geometry.CharsPerScreen() {
			return errors.Errorf("block size %d does not match geometry %v",
				s.BlockSize(), self.Geometry)
		}
	}
	return nil
}

// Read fetches screen n, padding a short block and replacing
// non-printable bytes. Both are logged as warnings.
func (self *Session) Read(n int64) ([]byte, error) {
	if err := self.check(); err != nil {
		return nil, err
	}
	buf, short, err := self.File.ReadBlock(n)
	if err != nil {
		return nil, err
	}
	log := self.log().WithField("screen", n)
	if short > 0 {
		log.WithField("missing", short).Warn("block too short, padding")
	}
	for _, r := range screen.Sanitize(buf) {
		log.WithFields(logrus.Fields{
			"pos":  r.Pos,
			"char": hex(r.Value),
		}).Warn("non-printing character, replacing with space")
	}
	return buf, nil
}

// Print writes screen n to w as text.
func (self *Session) Print(w io.Writer, n int64) error {
	buf, err := self.Read(n)
	if err != nil {
		return err
	}
	return screen.Render(w, buf, self.Geometry)
}

// Edit runs the editor on screen n and writes the screen back if the
// text changed. The temporary file is removed once it has been read
// back. If the editor could not be started at all the temporary file is
// left in place and its path logged.
func (self *Session) Edit(n int64) (Result, error) {
	if self.Runner == nil {
		return Unchanged, errors.Errorf("no runner")
	}
	buf, err := self.Read(n)
	if err != nil {
		return Unchanged, err
	}
	log := self.log().WithField("screen", n)

	path, err := screen.WriteTemp(self.TempDir, n, buf, self.Geometry)
	if err != nil {
		return Unchanged, err
	}
	log.WithField("path", path).Debug("wrote temporary file")

	name, args := Command(self.Editor, path)
	log.WithFields(logrus.Fields{"editor": name, "args": args}).Debug("starting editor")
	status, err := self.Runner.Run(name, args...)
	if err != nil {
		log.WithField("path", path).Error("editor did not run, leaving temporary file")
		return Unchanged, err
	}
	log.WithField("status", status).Debug("editor exited")

	log.Debug("reading")
	edited, reps, err := screen.ReadTemp(path, self.Geometry)
	if err != nil {
		return Unchanged, err
	}
	if err := os.Remove(path); err != nil {
		return Unchanged, errors.Wrap(err, "removing temporary file")
	}
	for _, r := range reps {
		log.WithFields(logrus.Fields{
			"pos":  r.Pos,
			"char": hex(r.Value),
		}).Warn("non-printing character in edited text, replacing with space")
	}

	if bytes.Equal(buf, edited) {
		log.Info("screen unchanged")
		return Unchanged, nil
	}
	if err := self.File.WriteBlock(n, edited); err != nil {
		return Unchanged, err
	}
	log.Info("screen written")
	return Written, nil
}

func hex(b byte) string {
	return fmt.Sprintf("0x%02x", b)
}
