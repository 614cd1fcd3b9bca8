package toolchain

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/forgebuild/cfgen/internal/env"
	"github.com/qiniu/x/log"
)

// ErrBootstrap is reported when the external cmake bootstrap fails.
var ErrBootstrap = errors.New("cmake bootstrap failed")

// runScript is a package var so tests can intercept external scripts.
var runScript = func(script string, args ...string) error {
	cmd := exec.Command(script, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// bootstrapCMake builds a private cmake into the local prefix by invoking
// the project's bootstrap script with a staging dir and the install prefix.
func bootstrapCMake(root string) error {
	staging, err := os.MkdirTemp("", "cfgen-cmake-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(staging)

	prefix := env.CMakePrefix(root)
	script := filepath.Join(root, "scripts", "bootstrap-cmake.sh")
	log.Infof("bootstrapping cmake into %s", prefix)
	if err := runScript(script, staging, prefix); err != nil {
		return fmt.Errorf("%w: %v", ErrBootstrap, err)
	}
	return nil
}

// InstallPythonToolchain invokes the external toolchain-install script for
// the given virtualenv path.
func InstallPythonToolchain(root, venv string) error {
	script := filepath.Join(root, "scripts", "install-python-toolchain.sh")
	log.Infof("installing python toolchain into %s", venv)
	if err := runScript(script, venv); err != nil {
		return fmt.Errorf("failed to install python toolchain: %w", err)
	}
	return nil
}
