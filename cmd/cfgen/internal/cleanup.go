package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/forgebuild/cfgen/internal/buildtree"
	"github.com/forgebuild/cfgen/internal/env"
	"github.com/qiniu/x/log"
)

// stdin is a package var so tests can feed the confirmation prompt.
var stdin io.Reader = os.Stdin

// cleanup removes the build trees and the local toolchain prefix after a
// confirmation prompt (bypassed by --yes).
func cleanup(root string, assumeYes bool) error {
	var targets []string
	for _, p := range buildtree.Profiles() {
		targets = append(targets, filepath.Join(root, p.Dir))
	}
	targets = append(targets, env.LocalDir(root))

	if !assumeYes {
		fmt.Printf("About to remove:\n")
		for _, dir := range targets {
			fmt.Printf("  %s\n", dir)
		}
		fmt.Printf("Continue? [y/N] ")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && line == "" {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
		default:
			log.Info("cleanup aborted")
			return nil
		}
	}

	for _, dir := range targets {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
		log.Infof("removed %s", dir)
	}
	return nil
}
