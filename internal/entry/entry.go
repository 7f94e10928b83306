package entry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// One sentinel per way an entry can be rejected, so callers can tell the
// failure classes apart.
var (
	ErrEmptyRating = errors.New("rating is required")
	ErrNotANumber  = errors.New("rating must be a number")
	ErrOutOfRange  = errors.New("rating must be greater than 0 and at most 100")
)

// Entry is a named condition with its individual rating percentage.
type Entry struct {
	Name    string  `json:"name" yaml:"name"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Parse reads a single NAME=PERCENT token. The name may be omitted, in which
// case the entry is called "Condition N" using the one-based ordinal.
func Parse(token string, ordinal int) (Entry, error) {
	name := ""
	value := strings.TrimSpace(token)
	if idx := strings.LastIndex(token, "="); idx >= 0 {
		name = strings.TrimSpace(token[:idx])
		value = strings.TrimSpace(token[idx+1:])
	}
	if name == "" {
		name = fmt.Sprintf("Condition %d", ordinal)
	}
	if value == "" {
		return Entry{}, fmt.Errorf("entry %d: %w", ordinal, ErrEmptyRating)
	}
	percent, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d (%q): %w", ordinal, value, ErrNotANumber)
	}
	if !(percent > 0 && percent <= 100) {
		return Entry{}, fmt.Errorf("entry %d (%v): %w", ordinal, percent, ErrOutOfRange)
	}
	return Entry{Name: name, Percent: percent}, nil
}

// ParseArgs converts command-line tokens into entries, failing on the first
// malformed one.
func ParseArgs(args []string) ([]Entry, error) {
	var entries []Entry
	for i, arg := range args {
		parsed, err := Parse(arg, i+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, parsed)
	}
	return entries, nil
}

// Read consumes one entry token per line. Blank lines and lines starting
// with # are skipped.
func Read(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	var entries []Entry
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parsed, err := Parse(line, len(entries)+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, parsed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return entries, nil
}

// SortByPercentDesc orders entries for display the same way the engine orders
// ratings internally. Ordering is stable so equal ratings keep entry order.
func SortByPercentDesc(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percent > entries[j].Percent
	})
}

// Percents extracts the numeric ratings in entry order.
func Percents(entries []Entry) []float64 {
	out := make([]float64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Percent)
	}
	return out
}
