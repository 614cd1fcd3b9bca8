// Package buildtree configures the project's parallel build trees, one per
// build profile, from a resolved configuration and provisioned toolchain.
package buildtree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgebuild/cfgen/internal/cmake"
	"github.com/forgebuild/cfgen/internal/toolchain"
	"github.com/qiniu/x/log"
)

// Profile is one build flavor, mapped to its own output directory and
// CMAKE_BUILD_TYPE.
type Profile struct {
	Name      string
	Dir       string
	BuildType string
}

// Profiles returns the build profiles in configuration order: the optimized
// tree first, then the debuggable one.
func Profiles() []Profile {
	return []Profile{
		{Name: "release", Dir: "build-release", BuildType: "Release"},
		{Name: "debug", Dir: "build-debug", BuildType: "Debug"},
	}
}

// wrappersDir is the binding-layer output of a previous build. Stale
// wrappers are not safely reconfigurable in place, so the directory is
// removed from every tree before any cmake invocation.
const wrappersDir = "wrappers"

// cacheFile is cmake's own cache; removing it forces a full reconfigure.
const cacheFile = "CMakeCache.txt"

// InvokeError reports a failed cmake invocation for one profile.
type InvokeError struct {
	Profile string
	Err     error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("failed to configure %s tree: %v", e.Profile, e.Err)
}

func (e *InvokeError) Unwrap() error { return e.Err }

// Configure sets up every build tree under root with the given toolchain and
// definitions. The first failing profile aborts the run; already configured
// trees are left as-is.
func Configure(root string, spec *toolchain.Spec, defs []cmake.Define) error {
	profiles := Profiles()
	for _, p := range profiles {
		if err := os.RemoveAll(filepath.Join(root, p.Dir, wrappersDir)); err != nil {
			return err
		}
	}
	for _, p := range profiles {
		if err := configureTree(root, p, spec, defs); err != nil {
			return &InvokeError{Profile: p.Name, Err: err}
		}
	}
	return nil
}

func configureTree(root string, p Profile, spec *toolchain.Spec, defs []cmake.Define) error {
	dir := filepath.Join(root, p.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(dir, cacheFile)); err != nil && !os.IsNotExist(err) {
		return err
	}
	log.Infof("configuring %s tree in %s", p.Name, dir)
	c := cmake.New(spec.CMake, root, dir)
	c.Compilers(spec.CC, spec.CXX)
	c.BuildType(p.BuildType)
	c.Define(defs...)
	return c.Configure()
}
