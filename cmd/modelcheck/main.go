package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/modelcheck/internal/cli"
	"codeberg.org/snonux/modelcheck/internal/logging"
	"codeberg.org/snonux/modelcheck/internal/models"
	"codeberg.org/snonux/modelcheck/internal/report"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile, flags.EnvFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cli.ResolveFlags(cmd, flags)

		logger := logging.New(flags.Verbose, os.Stderr)
		defer logger.Sync()

		return runCommand(cmd.Context(), os.Stdout, flags, cli.GetAPIKey(flags.Provider), http.DefaultClient, logger)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runCommand performs one listing and prints it. Request failures are
// printed as a single line and do not change the exit status.
func runCommand(ctx context.Context, out io.Writer, flags *cli.Flags, credential string, client *http.Client, logger *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	source, err := models.NewSource(&models.Config{
		Provider:   flags.Provider,
		BaseURL:    flags.BaseURL,
		HTTPClient: client,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	lister := models.NewLister(source, flags.Method, logger)
	names, err := lister.List(ctx, credential)

	if werr := report.Print(out, names, err); werr != nil {
		return fmt.Errorf("failed to write output: %w", werr)
	}
	return nil
}
