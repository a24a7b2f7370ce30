package element

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const letters = "spdfghik"

// Subshell is one (n, l) shell with its electron count. Occupancy may be
// fractional for averaged configurations.
type Subshell struct {
	N         int
	L         int
	Occupancy float64
}

// Capacity is the number of electrons the subshell can hold.
func (s Subshell) Capacity() float64 { return float64(2 * (2*s.L + 1)) }

// Label is the spectroscopic name, e.g. "3d".
func (s Subshell) Label() string {
	if s.L < len(letters) {
		return strconv.Itoa(s.N) + string(letters[s.L])
	}
	return fmt.Sprintf("%d[l=%d]", s.N, s.L)
}

func (s Subshell) String() string {
	return s.Label() + strconv.FormatFloat(s.Occupancy, 'g', -1, 64)
}

func (s Subshell) validate() error {
	if s.N < 1 || s.L < 0 || s.L >= s.N {
		return fmt.Errorf("%w: n=%d l=%d", ErrInvalidSubshell, s.N, s.L)
	}
	if !(s.Occupancy >= 0 && s.Occupancy <= s.Capacity()) {
		return fmt.Errorf("%w: %s holds at most %g", ErrInvalidOccupancy, s, s.Capacity())
	}
	return nil
}

// Configuration is an ordered list of subshells, sorted by n then l, with no
// (n, l) pair repeated. Build one with NewConfiguration, Parse or GroundState.
type Configuration []Subshell

// NewConfiguration validates and sorts the subshells.
func NewConfiguration(shells ...Subshell) (Configuration, error) {
	c := make(Configuration, 0, len(shells))
	for _, s := range shells {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if c.index(s.N, s.L) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSubshell, s.Label())
		}
		c = append(c, s)
	}
	c.sort()
	return c, nil
}

func (c Configuration) index(n, l int) int {
	return slices.IndexFunc(c, func(s Subshell) bool { return s.N == n && s.L == l })
}

func (c Configuration) sort() {
	slices.SortFunc(c, func(a, b Subshell) int {
		if a.N != b.N {
			return a.N - b.N
		}
		return a.L - b.L
	})
}

// Electrons is the total occupancy.
func (c Configuration) Electrons() float64 {
	total := 0.0
	for _, s := range c {
		total += s.Occupancy
	}
	return total
}

// Clone returns an independent copy.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	copy(out, c)
	return out
}

func (c Configuration) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Noble-gas cores accepted in bracket notation.
var cores = map[string]string{
	"He": "1s2",
	"Ne": "[He] 2s2 2p6",
	"Ar": "[Ne] 3s2 3p6",
	"Kr": "[Ar] 3d10 4s2 4p6",
	"Xe": "[Kr] 4d10 5s2 5p6",
	"Rn": "[Xe] 4f14 5d10 6s2 6p6",
}

// Parse reads a configuration such as "1s2 2s2 2p6", "[Ne] 3s1" or
// "1s2,2s1.5". Lower- or upper-case orbital letters are accepted.
func Parse(spec string) (Configuration, error) {
	shells, err := parseShells(spec, 0)
	if err != nil {
		return nil, err
	}
	return NewConfiguration(shells...)
}

// MustParse is Parse for literal specs known to be valid.
func MustParse(spec string) Configuration {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func parseShells(spec string, depth int) ([]Subshell, error) {
	if depth > len(cores) {
		return nil, fmt.Errorf("%w: core nesting too deep", ErrMalformedSpec)
	}
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedSpec)
	}

	var out []Subshell
	for _, f := range fields {
		if strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]") {
			core, ok := cores[f[1:len(f)-1]]
			if !ok {
				return nil, fmt.Errorf("%w: unknown core %s", ErrMalformedSpec, f)
			}
			inner, err := parseShells(core, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, inner...)
			continue
		}
		s, err := parseToken(f)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// parseToken reads "<n><letter><occupancy>", e.g. "4f14" or "2p1.5".
func parseToken(tok string) (Subshell, error) {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(tok) {
		return Subshell{}, fmt.Errorf("%w: %q", ErrMalformedSpec, tok)
	}
	n, err := strconv.Atoi(tok[:i])
	if err != nil {
		return Subshell{}, fmt.Errorf("%w: %q: %v", ErrMalformedSpec, tok, err)
	}
	l := strings.IndexByte(letters, lower(tok[i]))
	if l < 0 {
		return Subshell{}, fmt.Errorf("%w: %q has no orbital letter", ErrMalformedSpec, tok)
	}
	occ := 1.0
	if rest := tok[i+1:]; rest != "" {
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return Subshell{}, fmt.Errorf("%w: %q: %v", ErrMalformedSpec, tok, err)
		}
		occ = v
	}
	return Subshell{N: n, L: l, Occupancy: occ}, nil
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
