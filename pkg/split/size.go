package split

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSizeFormat is returned when a size expression cannot be parsed.
var ErrInvalidSizeFormat = errors.New("invalid size format")

// sizeUnits maps recognized suffixes to their byte multipliers. Two-letter
// units come first so "MB" is not mistaken for a bare "B" suffix.
var sizeUnits = []struct {
	suffix     string
	multiplier float64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"GB", 1 << 30},
	{"B", 1},
}

// ParseSize converts a human-readable size expression like "10MB", "500KB"
// or "2048" into a byte count. The unit is case-insensitive and optional;
// the numeric prefix may be fractional, and the result is truncated to an
// integer byte count.
func ParseSize(s string) (int64, error) {
	expr := strings.ToUpper(strings.TrimSpace(s))

	for _, unit := range sizeUnits {
		if !strings.HasSuffix(expr, unit.suffix) {
			continue
		}
		prefix := strings.TrimSpace(strings.TrimSuffix(expr, unit.suffix))
		if value, err := strconv.ParseFloat(prefix, 64); err == nil {
			return int64(value * unit.multiplier), nil
		}
	}

	// No unit suffix: assume bytes.
	if value, err := strconv.ParseFloat(expr, 64); err == nil {
		return int64(value), nil
	}

	return 0, fmt.Errorf("%w: %s", ErrInvalidSizeFormat, s)
}

// FormatSize renders a byte count with the largest unit under which the
// magnitude stays below 1024, clamped at GB, with two decimal places and
// no space before the unit.
func FormatSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB"} {
		if size < 1024 {
			return fmt.Sprintf("%.2f%s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2fGB", size)
}
