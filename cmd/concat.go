package cmd

import (
	"fmt"

	"textpart/pkg/concat"

	"github.com/spf13/cobra"
)

// concatCmd combines all text files in a directory into one output file.
var concatCmd = &cobra.Command{
	Use:   "concat <input_dir> <output_file>",
	Short: "Concatenate all text files in a directory into one file",
	Long: `Concatenate all text files in a directory into a single output file.

Every file's content is preceded by a header line of the form
"{delimiter} File: {filename} {delimiter}". When the directory contains no
.txt files, all regular files are concatenated instead.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delimiter, err := cmd.Flags().GetString("delimiter")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		// The config file default applies only when the flag is left unset.
		if !cmd.Flags().Changed("delimiter") && cfg.Concat.Delimiter != "" {
			delimiter = cfg.Concat.Delimiter
		}

		return concat.Execute(concat.Arguments{
			InputDir:   args[0],
			OutputFile: args[1],
			Delimiter:  delimiter,
		}, logger)
	},
}

func init() {
	concatCmd.Flags().StringP("delimiter", "d", "===", "Delimiter string for file headers")

	RootCmd.AddCommand(concatCmd)
}
