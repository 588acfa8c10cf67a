package deployer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////////////
// Helpers: ids, logging, json, small slices
////////////////////////////////////////////////////////////////////////////////

// newID yields the opaque identifiers used for roles and voting classes.
// Globally unique within the process is all that is required; callers with
// their own identity scheme swap it via SetIDGenerator.
var newID = uuid.NewString

// SetIDGenerator replaces the identity source. Passing nil restores the
// default uuid generator.
func SetIDGenerator(gen func() string) {
	if gen == nil {
		newID = uuid.NewString
		return
	}
	newID = gen
}

// logger is the caller-supplied diagnostic sink. nil means silent; the core
// never requires logging to function.
var logger *zap.Logger

// SetLogger installs the diagnostic sink used for reducer warnings.
func SetLogger(l *zap.Logger) { logger = l }

func warnf(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Warn(msg, fields...)
	}
}

// ToJSON marshals any value or returns an error naming the object type, so
// call sites stay one-liners.
func ToJSON[T any](v T, objectType string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", objectType, err)
	}
	return string(b), nil
}

// FromJSON is the matching decode helper.
func FromJSON[T any](data string, objectType string) (*T, error) {
	data = strings.TrimSpace(data)
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", objectType, err)
	}
	return &v, nil
}

// Convenience pointer helpers for patch and settings literals.
func intptr(n int) *int    { return &n }
func boolptr(b bool) *bool { return &b }

// clampInt pins v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// dedupSortInts returns a fresh ascending list with duplicates removed.
// Every permission write funnels through here so set output stays stable.
func dedupSortInts(list []int) []int {
	out := make([]int, 0, len(list))
	seen := make(map[int]bool, len(list))
	for _, v := range list {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// containsInt reports membership in a small index list.
func containsInt(list []int, v int) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}

// removeInt drops every occurrence of v, preserving order.
func removeInt(list []int, v int) []int {
	out := make([]int, 0, len(list))
	for _, e := range list {
		if e != v {
			out = append(out, e)
		}
	}
	return out
}
