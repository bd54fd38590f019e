package blobposter

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Seed holds the primary seed used for random numbers.
// A Seed that was not fixed by the user still carries the time based value it
// was started from, so an unseeded poster can be named (but not reproduced
// through the parameter surface).
type Seed struct {
	intSeed int64
	fixed   bool
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed
// `seed` is either the empty string or a decimal integer
func Init(seed string) (Seed, error) {
	s := Seed{intSeed: time.Now().UnixNano() - epoch2020}
	if seed == "" {
		return s, nil
	}
	err := s.SetSeed(seed)
	return s, err
}

// Fixed returns a seed pinned to v.
func Fixed(v int64) Seed {
	return Seed{intSeed: v, fixed: true}
}

// Unseeded returns a time based seed.
func Unseeded() Seed {
	s, _ := Init("")
	return s
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// IsFixed is true when the seed came from the user.
func (s Seed) IsFixed() bool {
	return s.fixed
}

// SetSeed parses a seed and pins it. Decimal and 0x-prefixed hex are
// accepted, so the hex seed in a stamped filename can be fed back in.
func (s *Seed) SetSeed(seed string) error {
	v, err := parseSeed(seed)
	if err != nil {
		return fmt.Errorf("invalid seed %q: %w", seed, err)
	}
	s.intSeed = v
	s.fixed = true
	return nil
}

func parseSeed(seed string) (int64, error) {
	sign, digits := "", seed
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) > 2 && strings.EqualFold(digits[:2], "0x") {
		return strconv.ParseInt(sign+digits[2:], 16, 64)
	}
	return strconv.ParseInt(seed, 10, 64)
}

// Streams creates the general and jitter generators for one scene.
func (s Seed) Streams() Streams {
	return NewStreams(s.intSeed)
}

// String is the seed for humans; "none" when unseeded.
func (s Seed) String() string {
	if !s.fixed {
		return "none"
	}
	return strconv.FormatInt(s.intSeed, 10)
}

// GetFilename returns a string to use for this file
// The seed is written as 0x-prefixed hex, which SetSeed reads back.
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%#x%s", prefix, getGitHash(), s.intSeed, ext)
}

func getGitHash() string {
	var (
		cmdOut []byte
		err    error
	)
	cmdName := "git"
	cmdArgs := []string{"rev-parse", "--verify", "HEAD"}
	if cmdOut, err = exec.Command(cmdName, cmdArgs...).Output(); err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) < 7 {
		return hash
	}
	return hash[0:7]
}
