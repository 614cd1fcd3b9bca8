package toolchain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeTools replaces the probing and subprocess hooks for one test.
func fakeTools(t *testing.T, paths map[string]string, cmakeVersion string) {
	t.Helper()
	savedLook, savedOut, savedRun := lookPath, commandOutput, runScript
	t.Cleanup(func() { lookPath, commandOutput, runScript = savedLook, savedOut, savedRun })

	lookPath = func(name string) (string, error) {
		if p, ok := paths[name]; ok {
			return p, nil
		}
		return "", fmt.Errorf("%s: not found", name)
	}
	commandOutput = func(name string, args ...string) ([]byte, error) {
		return []byte("cmake version " + cmakeVersion + "\n"), nil
	}
	runScript = func(script string, args ...string) error {
		t.Fatalf("unexpected script invocation: %s %v", script, args)
		return nil
	}
	t.Setenv("CC", "")
	t.Setenv("CXX", "")
}

func TestProvisionWithCCache(t *testing.T) {
	root := t.TempDir()
	fakeTools(t, map[string]string{
		"cc":      "/usr/bin/cc",
		"clang":   "/usr/bin/cc",
		"c++":     "/usr/bin/c++",
		"clang++": "/usr/bin/c++",
		"ccache":  "/usr/bin/ccache",
		"cmake":   "/usr/bin/cmake",
	}, "3.22.1")

	spec, err := Provision(root, true, true)
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	if !spec.CCacheCC || !spec.CCacheCXX {
		t.Error("shims not ccache-wrapped")
	}
	if spec.CMake != "/usr/bin/cmake" || spec.BundledCMake {
		t.Errorf("cmake = %q bundled=%v, want system cmake", spec.CMake, spec.BundledCMake)
	}

	data, err := os.ReadFile(spec.CC)
	if err != nil {
		t.Fatalf("read cc shim: %v", err)
	}
	want := "#!/bin/sh\nexec \"/usr/bin/ccache\" \"/usr/bin/cc\" \"$@\"\n"
	if string(data) != want {
		t.Errorf("cc shim = %q, want %q", data, want)
	}
	info, err := os.Stat(spec.CC)
	if err != nil || info.Mode().Perm()&0o111 == 0 {
		t.Errorf("cc shim not executable: %v %v", info, err)
	}
}

func TestProvisionPassThroughWithoutCCache(t *testing.T) {
	root := t.TempDir()
	fakeTools(t, map[string]string{
		"cc":      "/usr/bin/cc",
		"clang":   "/usr/bin/cc",
		"c++":     "/usr/bin/c++",
		"clang++": "/usr/bin/c++",
		"cmake":   "/usr/bin/cmake",
	}, "3.22.1")

	// ccache requested but absent on the host.
	spec, err := Provision(root, true, true)
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	if spec.CCacheCC || spec.CCacheCXX {
		t.Error("shims claim ccache wrapping without ccache")
	}
	data, _ := os.ReadFile(spec.CXX)
	want := "#!/bin/sh\nexec \"/usr/bin/c++\" \"$@\"\n"
	if string(data) != want {
		t.Errorf("cxx shim = %q, want %q", data, want)
	}
}

func TestProvisionIdempotent(t *testing.T) {
	root := t.TempDir()
	fakeTools(t, map[string]string{
		"cc":      "/usr/bin/cc",
		"clang":   "/usr/bin/cc",
		"c++":     "/usr/bin/c++",
		"clang++": "/usr/bin/c++",
		"ccache":  "/usr/bin/ccache",
		"cmake":   "/usr/bin/cmake",
	}, "3.22.1")

	spec1, err := Provision(root, true, true)
	if err != nil {
		t.Fatalf("first Provision: %v", err)
	}
	first, _ := os.ReadFile(spec1.CC)

	spec2, err := Provision(root, true, true)
	if err != nil {
		t.Fatalf("second Provision: %v", err)
	}
	second, _ := os.ReadFile(spec2.CC)
	if string(first) != string(second) {
		t.Errorf("shims differ across runs: %q vs %q", first, second)
	}
}

func TestProvisionCompilerOverride(t *testing.T) {
	root := t.TempDir()
	fakeTools(t, map[string]string{"cmake": "/usr/bin/cmake"}, "3.22.1")
	t.Setenv("CC", "/custom/cc")
	t.Setenv("CXX", "/custom/c++")

	spec, err := Provision(root, false, true)
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	data, _ := os.ReadFile(spec.CC)
	if want := "#!/bin/sh\nexec \"/custom/cc\" \"$@\"\n"; string(data) != want {
		t.Errorf("cc shim = %q, want %q", data, want)
	}
}

func TestProvisionNoCompiler(t *testing.T) {
	root := t.TempDir()
	fakeTools(t, map[string]string{"cmake": "/usr/bin/cmake"}, "3.22.1")

	_, err := Provision(root, false, true)
	if !errors.Is(err, ErrNoCompiler) {
		t.Errorf("error = %v, want ErrNoCompiler", err)
	}
}

func TestCompilerCandidates(t *testing.T) {
	cc, cxx := compilerCandidates("darwin")
	if cc[0] != "clang" || cxx[0] != "clang++" {
		t.Errorf("darwin candidates = %v %v", cc, cxx)
	}
	cc, cxx = compilerCandidates("linux")
	if cc[0] != "cc" || cxx[0] != "c++" {
		t.Errorf("linux candidates = %v %v", cc, cxx)
	}
}

func TestProvisionBootstrapsOldCMake(t *testing.T) {
	root := t.TempDir()
	fakeTools(t, map[string]string{
		"cc":      "/usr/bin/cc",
		"clang":   "/usr/bin/cc",
		"c++":     "/usr/bin/c++",
		"clang++": "/usr/bin/c++",
		"cmake":   "/usr/bin/cmake",
	}, "3.4.9")

	var gotScript string
	var gotArgs []string
	runScript = func(script string, args ...string) error {
		gotScript = script
		gotArgs = args
		// Simulate the bootstrap installing the executable.
		exe := filepath.Join(args[1], "bin", "cmake")
		if err := os.MkdirAll(filepath.Dir(exe), 0o755); err != nil {
			return err
		}
		return os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755)
	}

	spec, err := Provision(root, false, true)
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	if !spec.BundledCMake {
		t.Error("old system cmake was not replaced by a bundled one")
	}
	if gotScript != filepath.Join(root, "scripts", "bootstrap-cmake.sh") {
		t.Errorf("bootstrap script = %q", gotScript)
	}
	if len(gotArgs) != 2 || gotArgs[1] != filepath.Join(root, "local", "cmake") {
		t.Errorf("bootstrap args = %v", gotArgs)
	}
}

func TestProvisionReusesBundledCMake(t *testing.T) {
	root := t.TempDir()
	fakeTools(t, map[string]string{
		"cc":      "/usr/bin/cc",
		"clang":   "/usr/bin/cc",
		"c++":     "/usr/bin/c++",
		"clang++": "/usr/bin/c++",
	}, "")

	exe := filepath.Join(root, "local", "cmake", "bin", "cmake")
	if err := os.MkdirAll(filepath.Dir(exe), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	// Forced private copy, already bootstrapped: no script run expected.
	spec, err := Provision(root, false, false)
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	if spec.CMake != exe || !spec.BundledCMake {
		t.Errorf("cmake = %q bundled=%v, want reused bundled copy", spec.CMake, spec.BundledCMake)
	}
}

func TestProvisionBootstrapFailure(t *testing.T) {
	root := t.TempDir()
	fakeTools(t, map[string]string{
		"cc":      "/usr/bin/cc",
		"clang":   "/usr/bin/cc",
		"c++":     "/usr/bin/c++",
		"clang++": "/usr/bin/c++",
	}, "")
	runScript = func(script string, args ...string) error {
		return errors.New("exit status 2")
	}

	_, err := Provision(root, false, false)
	if !errors.Is(err, ErrBootstrap) {
		t.Errorf("error = %v, want ErrBootstrap", err)
	}
}
