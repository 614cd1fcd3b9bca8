package internal

import (
	"errors"
	"os"
	"os/exec"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cfgen [options]",
	Short: "cfgen configures the project's build trees",
	Long: `cfgen translates feature toggles into a cmake invocation, provisions the
compiler shims and a minimum-version cmake, and configures the release and
debug build trees consistently.`,
	// The options parser owns the whole token grammar: order-sensitive
	// last-write-wins, value-consuming flags and -D accumulation.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errHelp) {
			log.Error(err)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
