package session

import (
	"fmt"
	"strconv"
	"strings"
)

// Script is a fixed sequence of inputs, for headless runs and tests.
type Script struct {
	steps []Input
	pos   int
}

// ParseScript reads a whitespace separated list of steps. Each step is a set
// of keys, L R J or Q, or "." for no keys, optionally followed by *N to
// repeat it N times. "R*20 RJ .*5" holds right for 20 ticks, jumps while
// running for one tick, then idles for 5.
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	for _, tok := range strings.Fields(src) {
		keys, count := tok, 1
		if i := strings.IndexByte(tok, '*'); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("step %q: invalid repeat count", tok)
			}
			keys, count = tok[:i], n
		}

		var in Input
		for _, k := range keys {
			switch k {
			case 'L', 'l':
				in.Left = true
			case 'R', 'r':
				in.Right = true
			case 'J', 'j':
				in.Jump = true
			case 'Q', 'q':
				in.Quit = true
			case '.':
			default:
				return nil, fmt.Errorf("step %q: unknown key %q", tok, k)
			}
		}
		if keys == "" {
			return nil, fmt.Errorf("step %q: no keys", tok)
		}
		for i := 0; i < count; i++ {
			s.steps = append(s.steps, in)
		}
	}
	return s, nil
}

// Next implements InputSource.
func (s *Script) Next() (Input, bool) {
	if s.pos >= len(s.steps) {
		return Input{}, false
	}
	in := s.steps[s.pos]
	s.pos++
	return in, true
}

// Len returns the total number of ticks in the script.
func (s *Script) Len() int { return len(s.steps) }
