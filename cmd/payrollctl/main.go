// Command payrollctl runs schema migrations and offline payroll tasks.
package main

import (
	"os"

	"go-payroll/internal/shared/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cliState struct {
	cfg     config.Config
	logger  *zap.Logger
	verbose bool
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:           "payrollctl",
		Short:         "Payroll administration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			state.cfg = config.Load()

			zcfg := zap.NewDevelopmentConfig()
			if !state.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
			}
			logger, err := zcfg.Build()
			if err != nil {
				return err
			}
			state.logger = logger
			zap.ReplaceGlobals(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.logger != nil {
				_ = state.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "log at info level")

	root.AddCommand(
		newMigrateCmd(state),
		newPayslipCmd(state),
		newComputeCmd(),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
