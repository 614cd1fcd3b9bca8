// Package cmake wraps the cmake configure workflow used to set up the
// project's build trees.
package cmake

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Define is a single -D cache definition. Order of definitions is preserved
// exactly as given; callers own determinism.
type Define struct {
	Key      string
	Value    string
	TypeName string // "BOOL", "STRING", or "" for untyped
}

// Bool returns a BOOL define rendered as ON/OFF.
func Bool(key string, value bool) Define {
	v := "OFF"
	if value {
		v = "ON"
	}
	return Define{Key: key, Value: v, TypeName: "BOOL"}
}

// String returns a STRING define.
func String(key, value string) Define {
	return Define{Key: key, Value: value, TypeName: "STRING"}
}

func (d Define) arg() string {
	if d.TypeName != "" {
		return "-D" + d.Key + ":" + d.TypeName + "=" + d.Value
	}
	return "-D" + d.Key + "=" + d.Value
}

// CMake drives a single cmake configure invocation.
type CMake struct {
	exe       string
	sourceDir string
	buildDir  string
	buildType string
	cc        string
	cxx       string
	defines   []Define
}

// New returns a CMake invocation for the given executable, source directory
// and build directory.
func New(exe, sourceDir, buildDir string) *CMake {
	return &CMake{exe: exe, sourceDir: sourceDir, buildDir: buildDir}
}

// BuildType sets CMAKE_BUILD_TYPE (e.g. "Release", "Debug").
func (c *CMake) BuildType(name string) { c.buildType = name }

// Compilers sets CMAKE_C_COMPILER and CMAKE_CXX_COMPILER.
func (c *CMake) Compilers(cc, cxx string) {
	c.cc = cc
	c.cxx = cxx
}

// Define appends cache definitions in the order given.
func (c *CMake) Define(defs ...Define) {
	c.defines = append(c.defines, defs...)
}

// Args returns the full argument list for the configure invocation.
func (c *CMake) Args() []string {
	args := []string{"-S", c.sourceDir, "-B", c.buildDir}
	if c.cc != "" {
		args = append(args, String("CMAKE_C_COMPILER", c.cc).arg())
	}
	if c.cxx != "" {
		args = append(args, String("CMAKE_CXX_COMPILER", c.cxx).arg())
	}
	if c.buildType != "" {
		args = append(args, String("CMAKE_BUILD_TYPE", c.buildType).arg())
	}
	for _, d := range c.defines {
		args = append(args, d.arg())
	}
	return args
}

// Configure runs the cmake configure step. Extra args are appended at the end.
func (c *CMake) Configure(args ...string) error {
	if err := os.MkdirAll(c.buildDir, 0o755); err != nil {
		return err
	}
	return runCommand(c.exe, append(c.Args(), args...)...)
}

// runCommand is a package var so tests can intercept subprocess execution.
var runCommand = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// PrependPath prepends value to a PATH-style env var.
func PrependPath(key, value string) {
	sep := ":"
	if runtime.GOOS == "windows" {
		sep = ";"
	}
	if cur := os.Getenv(key); cur != "" {
		value += sep + cur
	}
	os.Setenv(key, value)
}

// AppendFlag appends a space-separated flag to an env var, keeping whatever
// the user already exported.
func AppendFlag(key, flag string) {
	if cur := os.Getenv(key); cur != "" {
		flag = strings.TrimSpace(cur + " " + flag)
	}
	os.Setenv(key, flag)
}
