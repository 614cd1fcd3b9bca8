package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgebuild/cfgen/internal/buildtree"
	"github.com/forgebuild/cfgen/internal/cmake"
	"github.com/forgebuild/cfgen/internal/env"
	"github.com/forgebuild/cfgen/internal/options"
	"github.com/forgebuild/cfgen/internal/toolchain"
	"github.com/qiniu/x/log"
)

// defaultsFile is the optional per-project defaults overlay.
const defaultsFile = "cfgen.yaml"

// errHelp marks a help display; the process exits 1 without logging it.
var errHelp = errors.New("help requested")

func run(args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}

	base, err := options.LoadFile(filepath.Join(root, defaultsFile), options.Default())
	if err != nil {
		return err
	}
	cfg, err := options.Parse(args, base)
	if err != nil {
		return err
	}

	if cfg.Help {
		fmt.Print(usage)
		return errHelp
	}
	if cfg.Verbose {
		log.SetOutputLevel(log.Ldebug)
	}
	if cfg.Cleanup {
		return cleanup(root, cfg.AssumeYes)
	}

	if cfg.Virtualenv == "" {
		cfg.Virtualenv = os.Getenv("VIRTUAL_ENV")
	}
	if cfg.Virtualenv == "" {
		cfg.Virtualenv = env.VirtualenvDir(root)
	}

	if cfg.InstallPython {
		if err := toolchain.InstallPythonToolchain(root, cfg.Virtualenv); err != nil {
			return err
		}
	}
	exportVirtualenvPaths(cfg.Virtualenv)

	spec, err := toolchain.Provision(root, cfg.CCache, cfg.SystemCMake)
	if err != nil {
		return err
	}
	log.Infof("using CC=%s CXX=%s cmake=%s", spec.CC, spec.CXX, spec.CMake)

	if err := buildtree.Configure(root, spec, cfg.Defines()); err != nil {
		return err
	}
	log.Info("build trees configured")
	return nil
}

// exportVirtualenvPaths appends the virtualenv's include and lib dirs to the
// compiler search-path variables, keeping whatever the user already set.
func exportVirtualenvPaths(venv string) {
	if include := filepath.Join(venv, "include"); dirExists(include) {
		cmake.AppendFlag("CPPFLAGS", "-I"+include)
	}
	if lib := filepath.Join(venv, "lib"); dirExists(lib) {
		cmake.AppendFlag("LDFLAGS", "-L"+lib)
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
