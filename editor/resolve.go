package editor

import (
	"os"
	"strings"
)

import (
	"github.com/timtadh/screenedit/consts"
)

// Env looks up an environment variable.
type Env func(key string) (string, bool)

// OSEnv reads the process environment.
func OSEnv() Env {
	return os.LookupEnv
}

// MapEnv serves lookups out of m.
func MapEnv(m map[string]string) Env {
	return func(key string) (string, bool) {
		v, has := m[key]
		return v, has
	}
}

// Variables consulted for a default editor, in order.
var EditorVariables = []string{"VISUAL", "EDITOR"}

// Resolve picks the editor command. In order of precedence:
// 1. flag (--editor)
// 2. $VISUAL
// 3. $EDITOR
// 4. consts.FALLBACK_EDITOR
// Blank values are skipped.
func Resolve(flag string, env Env) string {
	if strings.TrimSpace(flag) != "" {
		return flag
	}
	if env != nil {
		for _, name := range EditorVariables {
			if v, has := env(name); has && strings.TrimSpace(v) != "" {
				return v
			}
		}
	}
	return consts.FALLBACK_EDITOR
}

// Command splits an editor command such as "code --wait" into a program
// name and its arguments, then appends path.
func Command(editor, path string) (name string, args []string) {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return consts.FALLBACK_EDITOR, []string{path}
	}
	args = make([]string, 0, len(fields))
	args = append(args, fields[1:]...)
	args = append(args, path)
	return fields[0], args
}
