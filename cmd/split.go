package cmd

import (
	"fmt"

	"textpart/pkg/split"

	"github.com/spf13/cobra"
)

// splitCmd splits one text file into paragraph-bounded parts.
var splitCmd = &cobra.Command{
	Use:   "split <input_file> <batch_size>",
	Short: "Split a text file into parts of approximately batch_size bytes",
	Long: `Split a large text file into multiple files at paragraph boundaries.

Each output part stays at or under the target size unless a single
paragraph alone exceeds it, in which case that paragraph is written to its
own oversized part. The size accepts an optional unit, e.g. "10MB",
"500KB" or plain "2048".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, err := cmd.Flags().GetString("output-dir")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		prefix, err := cmd.Flags().GetString("prefix")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		_, err = split.Execute(split.Arguments{
			InputFile: args[0],
			BatchSize: args[1],
			OutputDir: outputDir,
			Prefix:    prefix,
			Extension: cfg.Split.Extension,
		}, logger)
		return err
	},
}

func init() {
	splitCmd.Flags().StringP("output-dir", "o", "", "Output directory (default: same as input file)")
	splitCmd.Flags().StringP("prefix", "p", "", "Prefix for output files (default: input filename without extension)")

	RootCmd.AddCommand(splitCmd)
}
