package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optigon/stoneflow/approx"
)

// newRootCmd assembles the command tree. Logging defaults to Info; the
// --verbose flag switches to Debug with per-iteration detail.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "stoneflow",
		Short:         "Balanced transportation problem solver (VAM/RAM seeding + MODI refinement)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newRaceCmd())
	root.AddCommand(newSensitivityCmd())
	return root
}

// parseMethod maps a CLI method name to the approx enum. Accepts the
// conventional short names and the surnames.
func parseMethod(s string) (approx.Method, error) {
	switch strings.ToLower(s) {
	case "vam", "vogel":
		return approx.MethodVogel, nil
	case "ram", "russell":
		return approx.MethodRussell, nil
	default:
		return 0, fmt.Errorf("unknown method %q (want vam|ram)", s)
	}
}
