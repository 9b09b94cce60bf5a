package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hanabi-toolbox/internal/config"
	"hanabi-toolbox/internal/hand"
)

var ErrBadCommand = errors.New("bad command")

// parseSlot turns a 1-based slot number into a hand index.
func parseSlot(s string, size int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > size {
		return 0, fmt.Errorf("%w: slot must be a number between 1 and %d, got %q", ErrBadCommand, size, s)
	}
	return n - 1, nil
}

func parseAxis(s string) (hand.Axis, error) {
	switch strings.ToLower(s) {
	case "color", "c":
		return hand.AxisColor, nil
	case "rank", "r":
		return hand.AxisRank, nil
	}
	return 0, fmt.Errorf("%w: expected 'color' or 'rank', got %q", ErrBadCommand, s)
}

// parseHintValue reads a color symbol or rank digit for axis.
func parseHintValue(axis hand.Axis, s string, cfg *config.GameConfig) (int, error) {
	if len(s) == 1 {
		index := cfg.ColorIndex
		if axis == hand.AxisRank {
			index = cfg.RankIndex
		}
		if v, ok := index(s[0]); ok {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrBadCommand, axis, s)
}

// parseMask reads one '0' or '1' per slot, slot 1 first, into a reveal mask.
func parseMask(s string, size int) (uint8, error) {
	if len(s) != size || size > hand.MaxSize {
		return 0, fmt.Errorf("%w: mask needs one digit per slot (%d), got %q", ErrBadCommand, size, s)
	}
	var mask uint8
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			mask |= 1 << i
		case '0':
		default:
			return 0, fmt.Errorf("%w: mask may only contain 0 and 1, got %q", ErrBadCommand, s)
		}
	}
	return mask, nil
}
