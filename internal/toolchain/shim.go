package toolchain

import (
	"os"
	"path/filepath"
)

// Command describes a possibly wrapped compiler invocation: an optional
// prefix command (ccache) plus the underlying compiler. Cache-wrapped and
// pass-through shims are the same structure with and without a prefix.
type Command struct {
	Prefix string
	Path   string
}

// Wrapped reports whether the command runs under a cache wrapper.
func (c Command) Wrapped() bool { return c.Prefix != "" }

// Argv returns the invocation as an argument vector, wrapper first.
func (c Command) Argv() []string {
	if c.Prefix != "" {
		return []string{c.Prefix, c.Path}
	}
	return []string{c.Path}
}

// Script renders the command as an executable shim script. The script
// forwards all arguments and, via exec, the exit code unchanged.
func (c Command) Script() string {
	line := "exec"
	for _, arg := range c.Argv() {
		line += " \"" + arg + "\""
	}
	return "#!/bin/sh\n" + line + " \"$@\"\n"
}

// writeShim writes the shim script, overwriting any previous one. The script
// is written to a temporary file and renamed into place so that a crash
// mid-write never leaves a half-written shim behind.
func writeShim(path string, cmd Command) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(cmd.Script()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o755); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
