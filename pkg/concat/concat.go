// Package concat combines every text file in a directory into a single
// output file with delimiter-annotated headers.
package concat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"textpart/pkg/textenc"

	"go.uber.org/zap"
)

// Arguments holds the configuration options for one concat invocation.
type Arguments struct {
	InputDir   string    // Directory whose files are concatenated.
	OutputFile string    // Destination path for the combined output.
	Delimiter  string    // Marker surrounding each file header, e.g. "===".
	Progress   io.Writer // Destination for progress reporting; nil means os.Stdout.
}

// Execute writes all text files in the input directory back-to-back into
// the output file. Every file's content is preceded by a header line of the
// form "{delimiter} File: {filename} {delimiter}"; files after the first
// get a blank line before their header. A file that cannot be read embeds
// an error note in the output instead of aborting the run.
func Execute(args Arguments, logger *zap.Logger) error {
	out := args.Progress
	if out == nil {
		out = os.Stdout
	}

	files, err := collectFiles(args.InputDir)
	if err != nil {
		logger.Error("Failed to list input directory", zap.String("dir", args.InputDir), zap.Error(err))
		return fmt.Errorf("failed to list input directory: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No files found in %s\n", args.InputDir)
		return nil
	}

	outFile, err := os.Create(args.OutputFile)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", args.OutputFile), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", args.OutputFile), zap.Error(closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for i, path := range files {
		name := filepath.Base(path)

		header := fmt.Sprintf("%s File: %s %s\n\n", args.Delimiter, name, args.Delimiter)
		if i > 0 {
			header = "\n" + header
		}
		if _, err := writer.WriteString(header); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", name, err)
		}

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Warn("Failed to read file, embedding error note",
				zap.String("file", path), zap.Error(readErr))
			fmt.Fprintf(writer, "\nError reading file %s: %v\n", name, readErr)
			continue
		}

		text, encoding := textenc.Decode(raw)
		if encoding == textenc.EncodingLatin1 {
			logger.Info("File decoded with fallback encoding",
				zap.String("file", path), zap.String("encoding", encoding.String()))
		}
		if _, err := writer.WriteString(text); err != nil {
			return fmt.Errorf("failed to write content of %s: %w", name, err)
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", args.OutputFile), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	fmt.Fprintf(out, "Successfully concatenated %d files into %s\n", len(files), args.OutputFile)
	logger.Info("Concatenation complete",
		zap.String("outputFile", args.OutputFile),
		zap.Int("totalFiles", len(files)))
	return nil
}

// collectFiles returns the .txt files in dir, sorted by name. When the
// directory holds no .txt files at all, every regular file is returned
// instead. os.ReadDir already sorts entries, so output order is stable.
func collectFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var textFiles, allFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		allFiles = append(allFiles, path)
		if strings.HasSuffix(entry.Name(), ".txt") {
			textFiles = append(textFiles, path)
		}
	}

	if len(textFiles) > 0 {
		return textFiles, nil
	}
	return allFiles, nil
}
