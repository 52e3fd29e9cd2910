// Package colors decorates prompt text for a given shell dialect.
//
// A Set holds one Bit per canonical colour name. Bits know how to open and
// close a decoration, and for bash prompts wrap each marker in \[ \] so the
// shell leaves them out of its line-length computation.
package colors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/gdot/pkg/errors"
	"github.com/muesli/termenv"
)

// Canonical colour names every Set must define
const (
	Bold   = "bold"
	Blue   = "blue"
	Green  = "green"
	Yellow = "yellow"
	Red    = "red"
	Cyan   = "cyan"
)

// Names lists the canonical colour names, in declaration order
var Names = []string{Bold, Blue, Green, Yellow, Red, Cyan}

// ansiCodes maps each canonical name to its SGR parameter
var ansiCodes = map[string]string{
	Bold:   termenv.BoldSeq,
	Blue:   termenv.ANSIBlue.Sequence(false),
	Green:  termenv.ANSIGreen.Sequence(false),
	Yellow: termenv.ANSIYellow.Sequence(false),
	Red:    termenv.ANSIRed.Sequence(false),
	Cyan:   termenv.ANSICyan.Sequence(false),
}

// bashNonPrinting tells bash that the enclosed bytes take no room on screen
const bashNonPrinting = `\[%s\]`

// Bit is one named decoration: an open and a close marker, optionally
// passed through a wrapper format.
type Bit struct {
	name    string
	open    string
	close   string
	wrapper string
}

// NewBit creates a decoration. wrapper, when non-empty, is a format with a
// single %s applied to each marker.
func NewBit(name, open, close, wrapper string) Bit {
	return Bit{name: name, open: open, close: close, wrapper: wrapper}
}

// Name returns the colour name of the bit
func (b Bit) Name() string {
	return b.name
}

// Render surrounds text with the bit's markers
func (b Bit) Render(text string) string {
	return b.wrapped(b.open) + text + b.wrapped(b.close)
}

func (b Bit) wrapped(marker string) string {
	if b.wrapper == "" {
		return marker
	}
	return fmt.Sprintf(b.wrapper, marker)
}

// Set is a named, fixed collection of Bits keyed by canonical name
type Set struct {
	name string
	bits map[string]Bit
}

// NewSet builds a Set. It fails unless bits define exactly the canonical
// colour names.
func NewSet(name string, bits ...Bit) (*Set, error) {
	byName := make(map[string]Bit, len(bits))
	for _, bit := range bits {
		if _, dup := byName[bit.name]; dup {
			return nil, errors.Newf(errors.ErrInvalidInput, "color set %s defines %s twice", name, bit.name)
		}
		byName[bit.name] = bit
	}

	var missing, extra []string
	for _, n := range Names {
		if _, ok := byName[n]; !ok {
			missing = append(missing, n)
		}
	}
	for n := range byName {
		if !isCanonical(n) {
			extra = append(extra, n)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(extra)
		return nil, errors.Newf(errors.ErrInvalidInput,
			"color set %s must define exactly %s (missing: %s, unexpected: %s)",
			name, strings.Join(Names, ","), strings.Join(missing, ","), strings.Join(extra, ","))
	}

	return &Set{name: name, bits: byName}, nil
}

func mustSet(name string, bits ...Bit) *Set {
	set, err := NewSet(name, bits...)
	if err != nil {
		panic(err)
	}
	return set
}

func isCanonical(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// String returns the set name
func (s *Set) String() string {
	return s.name
}

// Get returns the bit for a canonical colour name
func (s *Set) Get(name string) (Bit, bool) {
	bit, ok := s.bits[name]
	return bit, ok
}

func (s *Set) Bold() Bit   { return s.bits[Bold] }
func (s *Set) Blue() Bit   { return s.bits[Blue] }
func (s *Set) Green() Bit  { return s.bits[Green] }
func (s *Set) Yellow() Bit { return s.bits[Yellow] }
func (s *Set) Red() Bit    { return s.bits[Red] }
func (s *Set) Cyan() Bit   { return s.bits[Cyan] }
