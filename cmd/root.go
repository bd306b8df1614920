package cmd

import (
	"textpart/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "textpart",
	Short: "textpart splits and concatenates text files at paragraph boundaries",
	Long: `textpart is a CLI tool for preparing large text documents: split breaks a
file into approximately sized parts without ever cutting a paragraph, and
concat merges a directory of text files back into one annotated document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Shared by subcommands; populated once by Execute.
var (
	cfg    config.Config
	logger *zap.Logger
)

// Execute wires the loaded configuration and logger into the command tree
// and runs the root command.
func Execute(c config.Config, l *zap.Logger) error {
	cfg = c
	logger = l
	return RootCmd.Execute()
}
