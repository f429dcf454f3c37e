package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
)

import (
	"github.com/sirupsen/logrus"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/screenedit"
	"github.com/timtadh/screenedit/consts"
	"github.com/timtadh/screenedit/editor"
	"github.com/timtadh/screenedit/errors"
	"github.com/timtadh/screenedit/file"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":   0,
	"failed":  1,
	"opts":    3,
	"badint":  5,
	"badfile": 7,
	"badgeom": 8,
}

var UsageMessage string = "screenedit [options] <screen_num>"
var ExtendedMessage string = `
screenedit -- edit one screen of a FORTH block file with a text editor

The screen is written to a temporary text file, one line per screen
line, and your editor is run on it. When the editor exits the text is
folded back into the screen. The block file is written only if the
screen changed.

Options
  -h, --help                view this message
  -e, --editor=<cmd>        editor to run (default: $VISUAL, then
                            $EDITOR, then ` + consts.FALLBACK_EDITOR + `)
  -f, --file=<path>         block file (default: ` + consts.BLOCKFILE + `)
  --chars-per-line=<int>    default: 64
  --lines-per-screen=<int>  default: 16
  -p, --print               print the screen instead of editing it
  -v, --verbose             log each step and print stack traces

Example

  $ screenedit -e vi 12
`

// UsageError ends the run before any file is touched.
type UsageError struct {
	Code int
	Msg  string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErr(code string, format string, args ...interface{}) error {
	return &UsageError{
		Code: ErrorCodes[code],
		Msg:  fmt.Sprintf(format, args...),
	}
}

type Options struct {
	Screen   int64
	Editor   string
	File     string
	Geometry screenedit.Geometry
	Print    bool
	Verbose  bool
}

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

func ParseInt(str string) (int, error) {
	i, err := strconv.Atoi(str)
	if err != nil {
		return 0, usageErr("badint", "Error parsing '%v' expected an int", str)
	}
	return i, nil
}

func AssertFile(fname string) (string, error) {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname, nil
	} else if err != nil {
		return "", usageErr("badfile", "%v", err)
	} else if fi.IsDir() {
		return "", usageErr("badfile", "Passed in file was a directory, %s", fname)
	}
	return fname, nil
}

// ParseArgs reads the command line. The editor default comes from env.
func ParseArgs(argv []string, env editor.Env) (*Options, error) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"he:f:pv",
		[]string{
			"help", "editor=", "file=", "chars-per-line=", "lines-per-screen=",
			"print", "verbose",
		},
	)
	if err != nil {
		return nil, usageErr("opts", "%v", err)
	}

	opts := &Options{
		File:     consts.BLOCKFILE,
		Geometry: screenedit.DefaultGeometry(),
	}
	editorFlag := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			return nil, &UsageError{Code: ErrorCodes["usage"]}
		case "-e", "--editor":
			editorFlag = oa.Arg()
		case "-f", "--file":
			if opts.File, err = AssertFile(oa.Arg()); err != nil {
				return nil, err
			}
		case "--chars-per-line":
			if opts.Geometry.CharsPerLine, err = ParseInt(oa.Arg()); err != nil {
				return nil, err
			}
		case "--lines-per-screen":
			if opts.Geometry.LinesPerScreen, err = ParseInt(oa.Arg()); err != nil {
				return nil, err
			}
		case "-p", "--print":
			opts.Print = true
		case "-v", "--verbose":
			opts.Verbose = true
		default:
			return nil, usageErr("opts", "Unknown flag '%v'", oa.Opt())
		}
	}
	if err := opts.Geometry.Validate(); err != nil {
		return nil, usageErr("badgeom", "%v", err)
	}

	if len(args) != 1 {
		return nil, usageErr("opts", "Must supply exactly one screen number, try --help")
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, usageErr("badint", "Error parsing '%v' expected an int", args[0])
	} else if n < 0 {
		return nil, usageErr("badint", "Screen number must not be negative, got %d", n)
	} else if n > opts.Geometry.MaxScreen() {
		return nil, usageErr("badint", "Screen number %d is past the last addressable screen %d",
			n, opts.Geometry.MaxScreen())
	}
	opts.Screen = n
	opts.Editor = editor.Resolve(editorFlag, env)
	return opts, nil
}

func NewLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = out
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if verbose {
		log.Level = logrus.DebugLevel
	} else {
		log.Level = logrus.InfoLevel
	}
	return log
}

// Run opens the block file and edits (or prints) one screen. The block
// file is closed on every return path.
func Run(opts *Options, runner editor.Runner, log *logrus.Logger, stdout io.Writer) (err error) {
	if err := opts.Geometry.Validate(); err != nil {
		return errors.Wrap(err, "bad geometry")
	}
	bf := file.NewBlockFileCustomBlockSize(opts.File, uint32(opts.Geometry.CharsPerScreen()))
	if err := bf.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := bf.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	size, err := bf.Size()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":     opts.File,
		"size":     size,
		"screens":  size / uint64(bf.BlockSize()),
		"geometry": opts.Geometry,
		"editor":   opts.Editor,
	}).Debug("opened block file")

	s := &editor.Session{
		File:     bf,
		Geometry: opts.Geometry,
		Runner:   runner,
		Editor:   opts.Editor,
		Log:      log,
	}
	if opts.Print {
		return s.Print(stdout, opts.Screen)
	}
	_, err = s.Edit(opts.Screen)
	return err
}

func main() {
	opts, err := ParseArgs(os.Args[1:], editor.OSEnv())
	if ue, ok := err.(*UsageError); ok {
		if ue.Msg != "" {
			fmt.Fprintln(os.Stderr, ue.Msg)
		}
		Usage(ue.Code)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}

	log := NewLogger(os.Stderr, opts.Verbose)
	if err := Run(opts, editor.NewExecRunner(), log, os.Stdout); err != nil {
		if opts.Verbose {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintln(os.Stderr, "screenedit:", errors.Message(err))
		}
		os.Exit(ErrorCodes["failed"])
	}
}
