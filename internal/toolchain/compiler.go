package toolchain

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
)

// ErrNoCompiler is reported when no compiler candidate resolves.
var ErrNoCompiler = errors.New("compiler not found; set CC and CXX to the compilers to use")

// lookPath is a package var so tests can control probing.
var lookPath = exec.LookPath

// discoverCompilers resolves the C and C++ compilers. CC/CXX environment
// overrides are used verbatim; otherwise candidates are probed in fixed
// order and the first match wins.
func discoverCompilers() (cc, cxx string, err error) {
	ccNames, cxxNames := compilerCandidates(runtime.GOOS)
	cc, err = resolveCompiler(os.Getenv("CC"), ccNames)
	if err != nil {
		return "", "", err
	}
	cxx, err = resolveCompiler(os.Getenv("CXX"), cxxNames)
	if err != nil {
		return "", "", err
	}
	return cc, cxx, nil
}

func compilerCandidates(goos string) (ccNames, cxxNames []string) {
	if goos == "darwin" {
		return []string{"clang"}, []string{"clang++"}
	}
	return []string{"cc", "gcc", "clang"}, []string{"c++", "g++", "clang++"}
}

func resolveCompiler(override string, candidates []string) (string, error) {
	if override != "" {
		return override, nil
	}
	for _, name := range candidates {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNoCompiler
}
