package editor

import "testing"

import (
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		env      map[string]string
		expected string
	}{
		{
			name:     "flag takes precedence over env vars",
			flag:     "vi",
			env:      map[string]string{"VISUAL": "code --wait", "EDITOR": "nano"},
			expected: "vi",
		},
		{
			name:     "VISUAL takes precedence over EDITOR",
			env:      map[string]string{"VISUAL": "code --wait", "EDITOR": "nano"},
			expected: "code --wait",
		},
		{
			name:     "EDITOR is used when VISUAL is not set",
			env:      map[string]string{"EDITOR": "nano"},
			expected: "nano",
		},
		{
			name:     "blank VISUAL is skipped",
			env:      map[string]string{"VISUAL": "  ", "EDITOR": "nano"},
			expected: "nano",
		},
		{
			name:     "fallback when nothing is set",
			env:      map[string]string{},
			expected: "emacs",
		},
		{
			name:     "blank flag falls through",
			flag:     " ",
			env:      map[string]string{"EDITOR": "ed"},
			expected: "ed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.flag, MapEnv(tc.env)))
		})
	}
}

func TestResolveNilEnv(t *testing.T) {
	assert.Equal(t, "emacs", Resolve("", nil))
}

func TestCommand(t *testing.T) {
	tests := []struct {
		editor string
		name   string
		args   []string
	}{
		{editor: "vi", name: "vi", args: []string{"/tmp/s.txt"}},
		{editor: "code --wait", name: "code", args: []string{"--wait", "/tmp/s.txt"}},
		{editor: "  emacs   -nw ", name: "emacs", args: []string{"-nw", "/tmp/s.txt"}},
		{editor: "", name: "emacs", args: []string{"/tmp/s.txt"}},
	}
	for _, tc := range tests {
		t.Run(tc.editor, func(t *testing.T) {
			name, args := Command(tc.editor, "/tmp/s.txt")
			assert.Equal(t, tc.name, name)
			assert.Equal(t, tc.args, args)
		})
	}
}
