package club

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"
)

// BlindLevel is one parsed level of a tournament's blind structure.
type BlindLevel struct {
	SmallBlind int `json:"small_blind"`
	BigBlind   int `json:"big_blind"`
	Ante       int `json:"ante,omitempty"`
}

var commaSplitter, _ = splitter.NewSplitter(',')

func splitLevels(s string) []string {
	parts, err := commaSplitter.Split(s)
	if err != nil {
		parts = strings.Split(s, ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseBlindStructure parses a comma-separated structure where each level is
// "SB/BB" or "SB/BB/Ante", e.g. "25/50, 50/100/100". Admins type these in
// free text, so parsing is best-effort at display time and never gates a
// save.
func ParseBlindStructure(structure string) ([]BlindLevel, error) {
	raw := splitLevels(structure)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty blind structure")
	}

	levels := make([]BlindLevel, 0, len(raw))
	for _, level := range raw {
		parts := strings.Split(level, "/")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, fmt.Errorf("level %q: expected SB/BB or SB/BB/Ante", level)
		}

		nums := make([]int, len(parts))
		for i, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("level %q: invalid blind value %q", level, part)
			}
			nums[i] = n
		}

		bl := BlindLevel{SmallBlind: nums[0], BigBlind: nums[1]}
		if len(nums) == 3 {
			bl.Ante = nums[2]
		}
		levels = append(levels, bl)
	}

	return levels, nil
}

// NormalizeLevelTimes expands a single level time across every blind level,
// so "20 min" against a five-level structure becomes five entries. Anything
// else passes through untouched.
func NormalizeLevelTimes(levelTimes, blindStructure string) string {
	if strings.TrimSpace(levelTimes) == "" {
		return ""
	}

	times := splitLevels(levelTimes)
	levels := splitLevels(blindStructure)

	if len(times) == 1 && len(levels) > 1 {
		expanded := make([]string, len(levels))
		for i := range expanded {
			expanded[i] = times[0]
		}
		return strings.Join(expanded, ", ")
	}

	return levelTimes
}
