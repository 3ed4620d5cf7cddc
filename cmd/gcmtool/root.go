package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"hermannm.dev/devlog"
)

var (
	debug    bool
	logLevel slog.LevelVar
)

var rootCmd = &cobra.Command{
	Use:   "gcmtool",
	Short: "Encrypt and decrypt with AES-GCM-512",
	Long: `gcmtool drives the aesgcm512 primitive from the shell: one
call in, one call out, no session state between invocations.`,
}

// Execute adds all child commands to the root command and runs it.
// Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debug {
			logLevel.Set(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(encryptCmd, decryptCmd)
}
