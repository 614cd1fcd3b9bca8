// Package toolchain locates or bootstraps the tools a configure run needs:
// the C/C++ compilers (behind local shim scripts, ccache-wrapped when
// possible) and a cmake meeting the project's minimum version.
package toolchain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgebuild/cfgen/internal/env"
	"github.com/forgebuild/cfgen/internal/lockedfile"
	"github.com/qiniu/x/log"
)

// Spec holds the provisioned toolchain. CC and CXX point at the generated
// shim scripts; the booleans report whether each shim wraps ccache around
// the compiler or just passes through.
type Spec struct {
	CC        string
	CXX       string
	CCacheCC  bool
	CCacheCXX bool

	CMake        string
	BundledCMake bool
}

// Provision discovers the compilers, writes the shim layer into the local
// prefix and resolves a usable cmake. It is idempotent: re-running with the
// same inputs rewrites byte-identical shims and reuses a bootstrapped cmake.
func Provision(root string, useCCache, systemCMake bool) (*Spec, error) {
	unlock, err := lockedfile.MutexAt(env.LockFile(root)).Lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	cc, cxx, err := discoverCompilers()
	if err != nil {
		return nil, err
	}

	ccachePath := ""
	if useCCache {
		if p, err := lookPath("ccache"); err == nil {
			ccachePath = p
		} else {
			log.Warn("ccache not found, compiling without cache acceleration")
		}
	}

	binDir := env.BinDir(root)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return nil, err
	}
	ccCmd := Command{Prefix: ccachePath, Path: cc}
	cxxCmd := Command{Prefix: ccachePath, Path: cxx}
	ccShim := filepath.Join(binDir, "cc")
	cxxShim := filepath.Join(binDir, "cxx")
	if err := writeShim(ccShim, ccCmd); err != nil {
		return nil, fmt.Errorf("failed to write cc shim: %w", err)
	}
	if err := writeShim(cxxShim, cxxCmd); err != nil {
		return nil, fmt.Errorf("failed to write cxx shim: %w", err)
	}

	cmakePath, bundled, err := provisionCMake(root, systemCMake)
	if err != nil {
		return nil, err
	}

	return &Spec{
		CC:           ccShim,
		CXX:          cxxShim,
		CCacheCC:     ccCmd.Wrapped(),
		CCacheCXX:    cxxCmd.Wrapped(),
		CMake:        cmakePath,
		BundledCMake: bundled,
	}, nil
}
