package split

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"textpart/pkg/textenc"

	"go.uber.org/zap"
)

// Arguments holds the configuration options for one split invocation.
type Arguments struct {
	InputFile string    // Path to the text file to split.
	BatchSize string    // Target size expression per output part, e.g. "10MB".
	OutputDir string    // Destination directory; empty means the input file's directory.
	Prefix    string    // Output filename prefix; empty means the input filename without extension.
	Extension string    // Extension for output parts; empty means ".txt".
	Progress  io.Writer // Destination for progress reporting; nil means os.Stdout.
}

// OutputPart describes one written output file.
type OutputPart struct {
	Path string // Absolute or joined path of the written part.
	Size int64  // Byte size of the part's content.
}

// Execute splits the input file into paragraph-bounded parts.
//
// The batch size expression is parsed before any filesystem access so a bad
// expression fails fast. Read and write errors are fatal for the invocation
// and propagate; a UTF-8 decode failure is not an error — the input is
// re-decoded as Latin-1 and a note is reported.
func Execute(args Arguments, logger *zap.Logger) ([]OutputPart, error) {
	out := args.Progress
	if out == nil {
		out = os.Stdout
	}

	target, err := ParseSize(args.BatchSize)
	if err != nil {
		return nil, err
	}
	if target <= 0 {
		return nil, fmt.Errorf("%w: %s (batch size must be positive)", ErrInvalidSizeFormat, args.BatchSize)
	}

	outputDir := args.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(args.InputFile)
	} else if err := os.MkdirAll(outputDir, 0o755); err != nil {
		logger.Error("Failed to create output directory", zap.String("dir", outputDir), zap.Error(err))
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	prefix := args.Prefix
	if prefix == "" {
		base := filepath.Base(args.InputFile)
		prefix = strings.TrimSuffix(base, filepath.Ext(base))
	}

	extension := args.Extension
	if extension == "" {
		extension = ".txt"
	}

	info, err := os.Stat(args.InputFile)
	if err != nil {
		logger.Error("Failed to stat input file", zap.String("file", args.InputFile), zap.Error(err))
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	totalSize := info.Size()

	// The estimate assumes parts fill to the target exactly; paragraph
	// boundaries rarely align with it, so the real count can differ.
	estimated := int64(math.Ceil(float64(totalSize) / float64(target)))
	fmt.Fprintf(out, "Input file: %s (%s)\n", args.InputFile, FormatSize(totalSize))
	fmt.Fprintf(out, "Target batch size: %s\n", FormatSize(target))
	fmt.Fprintf(out, "Splitting into approximately %d parts...\n", estimated)

	raw, err := os.ReadFile(args.InputFile)
	if err != nil {
		logger.Error("Failed to read input file", zap.String("file", args.InputFile), zap.Error(err))
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	text, encoding := textenc.Decode(raw)
	if encoding == textenc.EncodingLatin1 {
		fmt.Fprintln(out, "Note: File decoded using latin-1 encoding (UTF-8 failed)")
		logger.Info("Input decoded with fallback encoding",
			zap.String("file", args.InputFile),
			zap.String("encoding", encoding.String()))
	}

	parts := Plan(text, target)
	logger.Debug("Planned parts",
		zap.Int("paragraphs", strings.Count(text, ParagraphSeparator)+1),
		zap.Int("parts", len(parts)))

	outputs := make([]OutputPart, 0, len(parts))
	for i, part := range parts {
		name := fmt.Sprintf("%s_part%03d%s", prefix, i+1, extension)
		path := filepath.Join(outputDir, name)

		if err := os.WriteFile(path, []byte(part.Text), 0o644); err != nil {
			logger.Error("Failed to write output part", zap.String("file", path), zap.Error(err))
			return outputs, fmt.Errorf("failed to write part %d: %w", i+1, err)
		}

		fmt.Fprintf(out, "Created: %s (%s)\n", path, FormatSize(part.Size))
		outputs = append(outputs, OutputPart{Path: path, Size: part.Size})
	}

	logger.Info("Split complete",
		zap.String("inputFile", args.InputFile),
		zap.Int("totalParts", len(outputs)))
	return outputs, nil
}
