package toolchain

import (
	"os"
	"os/exec"

	"github.com/forgebuild/cfgen/internal/env"
	"github.com/forgebuild/cfgen/internal/version"
	"github.com/qiniu/x/log"
)

// MinCMakeVersion is the oldest cmake the project's CMakeLists accepts.
const MinCMakeVersion = "3.5.1"

// commandOutput is a package var so tests can control version probes.
var commandOutput = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// provisionCMake resolves the cmake executable to use. A system cmake is
// preferred when allowed and recent enough; otherwise a private copy is
// bootstrapped into the local prefix. A previously bootstrapped copy is
// reused without rebuilding.
func provisionCMake(root string, system bool) (path string, bundled bool, err error) {
	bundledExe := env.CMakeExe(root)
	if system {
		if path, ok := usableSystemCMake(); ok {
			return path, false, nil
		}
	}
	if isExecutable(bundledExe) {
		return bundledExe, true, nil
	}
	if err := bootstrapCMake(root); err != nil {
		return "", false, err
	}
	return bundledExe, true, nil
}

func usableSystemCMake() (string, bool) {
	path, err := lookPath("cmake")
	if err != nil {
		log.Warn("no cmake on PATH, bootstrapping a private copy")
		return "", false
	}
	out, err := commandOutput(path, "--version")
	if err != nil {
		log.Warnf("failed to probe %s, bootstrapping a private copy: %v", path, err)
		return "", false
	}
	detected := version.Extract(string(out))
	if version.Compare(detected, MinCMakeVersion) < 0 {
		log.Warnf("cmake %s is older than %s, bootstrapping a private copy", detected, MinCMakeVersion)
		return "", false
	}
	return path, true
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Mode()&0o111 != 0
}
