// Package env defines the on-disk layout of the local toolchain prefix.
package env

import "path/filepath"

// LocalDir returns the local prefix directory under the project root. It
// holds the compiler shims and, when bootstrapped, a private cmake tree.
func LocalDir(root string) string {
	return filepath.Join(root, "local")
}

// BinDir returns the directory the compiler shims are written to.
func BinDir(root string) string {
	return filepath.Join(LocalDir(root), "bin")
}

// CMakePrefix returns the install prefix for a bootstrapped cmake.
func CMakePrefix(root string) string {
	return filepath.Join(LocalDir(root), "cmake")
}

// CMakeExe returns the path of the bootstrapped cmake executable.
func CMakeExe(root string) string {
	return filepath.Join(CMakePrefix(root), "bin", "cmake")
}

// LockFile returns the path of the mutex file guarding the local prefix.
func LockFile(root string) string {
	return filepath.Join(LocalDir(root), ".lock")
}

// VirtualenvDir returns the default Python virtualenv location.
func VirtualenvDir(root string) string {
	return filepath.Join(root, "venv")
}
