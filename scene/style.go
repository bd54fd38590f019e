// Package scene turns poster parameters into an ordered list of styled
// polygons: radially wobbled blobs behind a scatter of small hearts.
//
// Two styles exist. Style A ("harmonic blobs") picks a harmonic per blob from
// a short list and jitters every point with a fixed spread. Style B ("ripple
// blobs") draws a fresh harmonic and phase for every blob and takes its
// jitter spread from the parameters.
//
// Nothing here touches global random state. Callers hand in a
// blobposter.Streams pair and own it for the length of one composition.
package scene

import (
	"fmt"
	"strings"
)

// Style selects the generator.
type Style int

const (
	StyleA Style = iota // harmonic blobs
	StyleB              // ripple blobs
)

func (s Style) String() string {
	switch s {
	case StyleA:
		return "A"
	case StyleB:
		return "B"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle accepts "a", "b" and the long names "harmonic" and "ripple".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "harmonic":
		return StyleA, nil
	case "b", "ripple":
		return StyleB, nil
	}
	return 0, fmt.Errorf("unknown style %q (want A or B)", s)
}

// MarshalText writes the style as "A" or "B".
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText; it lets config files say style: b.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
