// Package bytesize parses the byte sizes used by registry limits, such as
// "4MB", "8GiB" or "512k". All units are powers of 1024.
package bytesize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binary units.
const (
	B   int64 = 1
	KiB int64 = 1 << 10
	MiB int64 = 1 << 20
	GiB int64 = 1 << 30
	TiB int64 = 1 << 40
)

var (
	ErrEmpty      = errors.New("empty size")
	ErrSyntax     = errors.New("invalid size")
	ErrOutOfRange = errors.New("size out of range")
)

var units = map[string]int64{
	"":    B,
	"B":   B,
	"K":   KiB,
	"KB":  KiB,
	"KIB": KiB,
	"M":   MiB,
	"MB":  MiB,
	"MIB": MiB,
	"G":   GiB,
	"GB":  GiB,
	"GIB": GiB,
	"T":   TiB,
	"TB":  TiB,
	"TIB": TiB,
}

// Parse returns the number of bytes in s. A bare number is a byte count,
// fractions are allowed with a unit ("1.5GB") and units are case-insensitive.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	number, unit := s, ""
	if split >= 0 {
		number, unit = s[:split], strings.ToUpper(strings.TrimSpace(s[split:]))
	}

	mult, ok := units[unit]
	if !ok {
		return 0, fmt.Errorf("%w %q: unknown unit %q", ErrSyntax, s, unit)
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w %q: bad number %q", ErrSyntax, s, number)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrOutOfRange, s)
	}

	bytes := value * float64(mult)
	if bytes >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q is too large", ErrOutOfRange, s)
	}
	return int64(bytes), nil
}

// ParseLimit parses the value of the size limit setting key. A limit must
// be at least one byte; errors name the setting.
func ParseLimit(key, s string) (int64, error) {
	n, err := Parse(s)
	if err == nil && n <= 0 {
		err = fmt.Errorf("%w: %q must be greater than zero", ErrOutOfRange, s)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
