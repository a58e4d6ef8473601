// Package duration parses the intervals used by registry settings such as
// upload_ttl and gc_grace. It accepts everything time.ParseDuration does,
// without a sign, plus days and weeks: "1d", "2w3d", "1d12h", "90m".
package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

var (
	ErrEmpty      = errors.New("empty duration")
	ErrSyntax     = errors.New("invalid duration")
	ErrNegative   = errors.New("negative duration")
	ErrZero       = errors.New("zero duration")
	ErrOutOfRange = errors.New("duration out of range")
)

var units = map[string]time.Duration{
	"ns": time.Nanosecond,
	"us": time.Microsecond,
	"µs": time.Microsecond,
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  Day,
	"w":  Week,
}

// term matches one component; unit alternatives are ordered so "ms" wins
// over "m".
var term = regexp.MustCompile(`^(\d+(?:\.\d+)?)(ns|us|µs|ms|s|m|h|d|w)`)

// Parse returns the duration in s. "0" is accepted without a unit.
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return 0, ErrEmpty
	case s == "0":
		return 0, nil
	case strings.HasPrefix(s, "-"):
		return 0, fmt.Errorf("%w: %q", ErrNegative, s)
	}

	var total float64
	for rest := strings.TrimPrefix(s, "+"); rest != ""; {
		m := term.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("%w %q: cannot parse %q", ErrSyntax, s, rest)
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrSyntax, s, err)
		}
		total += value * float64(units[m[2]])
		rest = rest[len(m[0]):]
	}
	if total >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return time.Duration(total), nil
}

// Bound is the smallest value a setting accepts.
type Bound int

const (
	// NonNegative settings accept zero, which usually disables the behaviour.
	NonNegative Bound = iota
	// Positive settings must be at least one nanosecond.
	Positive
)

// ParseSetting parses the value of setting key and checks it against b.
// Errors name the setting.
func ParseSetting(key, s string, b Bound) (time.Duration, error) {
	d, err := Parse(s)
	if err == nil && d == 0 && b == Positive {
		err = fmt.Errorf("%w: %q must be greater than zero", ErrZero, s)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
