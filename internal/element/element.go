// Package element knows the elements by symbol and number and describes how
// their electrons are distributed over subshells.
package element

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// MaxZ is the heaviest element with a tabulated ground state.
const MaxZ = 103

var (
	ErrUnknownElement    = errors.New("element: unknown element")
	ErrInvalidSubshell   = errors.New("element: invalid subshell")
	ErrDuplicateSubshell = errors.New("element: duplicate subshell")
	ErrInvalidOccupancy  = errors.New("element: invalid occupancy")
	ErrMalformedSpec     = errors.New("element: malformed configuration")
	ErrNoGroundState     = errors.New("element: no tabulated ground state")
)

var symbols = []string{"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr",
}

var names = []string{"",
	"Hydrogen", "Helium", "Lithium", "Beryllium", "Boron", "Carbon", "Nitrogen", "Oxygen", "Fluorine", "Neon",
	"Sodium", "Magnesium", "Aluminium", "Silicon", "Phosphorus", "Sulfur", "Chlorine", "Argon", "Potassium", "Calcium",
	"Scandium", "Titanium", "Vanadium", "Chromium", "Manganese", "Iron", "Cobalt", "Nickel", "Copper", "Zinc",
	"Gallium", "Germanium", "Arsenic", "Selenium", "Bromine", "Krypton", "Rubidium", "Strontium", "Yttrium", "Zirconium",
	"Niobium", "Molybdenum", "Technetium", "Ruthenium", "Rhodium", "Palladium", "Silver", "Cadmium", "Indium", "Tin",
	"Antimony", "Tellurium", "Iodine", "Xenon", "Caesium", "Barium", "Lanthanum", "Cerium", "Praseodymium", "Neodymium",
	"Promethium", "Samarium", "Europium", "Gadolinium", "Terbium", "Dysprosium", "Holmium", "Erbium", "Thulium", "Ytterbium",
	"Lutetium", "Hafnium", "Tantalum", "Tungsten", "Rhenium", "Osmium", "Iridium", "Platinum", "Gold", "Mercury",
	"Thallium", "Lead", "Bismuth", "Polonium", "Astatine", "Radon", "Francium", "Radium", "Actinium", "Thorium",
	"Protactinium", "Uranium", "Neptunium", "Plutonium", "Americium", "Curium", "Berkelium", "Californium", "Einsteinium", "Fermium",
	"Mendelevium", "Nobelium", "Lawrencium",
}

// Element identifies a nucleus.
type Element struct {
	Z      int
	Symbol string
	Name   string
}

func (e Element) String() string { return e.Symbol }

// ByNumber returns the element with atomic number z.
func ByNumber(z int) (Element, error) {
	if z < 1 || z >= len(symbols) {
		return Element{}, fmt.Errorf("%w: Z=%d", ErrUnknownElement, z)
	}
	return Element{Z: z, Symbol: symbols[z], Name: names[z]}, nil
}

// Lookup accepts a symbol ("Fe", case-insensitive), a name ("iron") or an
// atomic number ("26").
func Lookup(s string) (Element, error) {
	s = strings.TrimSpace(s)
	if z, err := strconv.Atoi(s); err == nil {
		return ByNumber(z)
	}
	z := slices.IndexFunc(symbols, func(sym string) bool {
		return sym != "" && strings.EqualFold(sym, s)
	})
	if z < 0 {
		z = slices.IndexFunc(names, func(n string) bool {
			return n != "" && strings.EqualFold(n, s)
		})
	}
	if z < 0 {
		return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, s)
	}
	return ByNumber(z)
}
