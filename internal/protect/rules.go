package protect

import "regexp"

// DefaultSeparators is the character set at which titles are split into
// tokens: ASCII punctuation commonly found in titles plus narrow/no-break
// spaces and Unicode hyphen/dash variants.
const DefaultSeparators = " -.:,;()[]/\u00a0\u2009\u2010\u2013\u2014"

// defaultNames lists surnames of physicists and other eponyms whose
// capitalized derivatives ("Gaussian", "Hamiltonian") must not be lowercased
// by bibliography styles.
var defaultNames = []string{
	"Bethe",
	"Born",
	"Bose",
	"Brillouin",
	"Burke",
	"Carlo",
	"Cooper",
	"Coulomb",
	"Dirac",
	"Eliashberg",
	"Ernzerhof",
	"Fermi",
	"Feynman",
	"Fock",
	"Fröhlich",
	"Gauss",
	"Goldstone",
	"Green",
	"Haeckel",
	"Hall",
	"Hamilton",
	"Hartree",
	"Heeger",
	"Heisenberg",
	"Hove",
	"Huang",
	"Hubbard",
	"Hund",
	"Ising",
	"Jahn",
	"Kasuya",
	"Kittel",
	"Kohn",
	"Lifshitz",
	"Luttinger",
	"Matsubara",
	"Migdal",
	"Monte",
	"Mott",
	"Oppenheimer",
	"Padé",
	"Pariser",
	"Parr",
	"Peierls",
	"Perdew",
	"Pople",
	"Python",
	"Raman",
	"Ruderman",
	"Salpeter",
	"Schrieffer",
	"Schwinger",
	"Stark",
	"Sternheimer",
	"Su",
	"Teller",
	"Tomonaga",
	"Van",
	"Vanderbilt",
	"Waals",
	"Wagner",
	"Wannier",
	"Ward",
	"Weyl",
	"Wick",
	"Wigner",
	"Yosida",
}

// defaultElements lists the chemical element symbols used to disambiguate
// tokens like "Li" from ordinary words. "Bi" and "In" are excluded because
// they collide with common English words at the start of a subtitle.
var defaultElements = []string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Po", "At", "Rn",
	"Fr", "Ra", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er",
	"Tm", "Yb",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No",
}

// suffixExemptRe matches the grammatical suffixes (-ion, -ions, -on, -ons)
// that exempt a name-derived token from protection.
var suffixExemptRe = regexp.MustCompile(`^i?ons?$`)

// Rules is the configurable rule set of the fragility classifier. The zero
// value is not useful; use DefaultRules and adjust.
type Rules struct {
	// Names holds eponym surnames whose derivatives are protected.
	Names map[string]bool

	// Elements holds chemical element symbols.
	Elements map[string]bool

	// Separators is the token separator character set.
	Separators string

	// ExemptSuffixes disables protection of tokens that are a known name
	// plus one of the suffixes -ion, -ions, -on, -ons. When false, any
	// token starting with a known name is protected.
	ExemptSuffixes bool

	// PlainLetters lists single uppercase letters that are treated as
	// ordinary words rather than quantity symbols.
	PlainLetters map[string]bool
}

// DefaultRules returns the built-in classifier rule set.
func DefaultRules() Rules {
	r := Rules{
		Names:          make(map[string]bool, len(defaultNames)),
		Elements:       make(map[string]bool, len(defaultElements)),
		Separators:     DefaultSeparators,
		ExemptSuffixes: true,
		PlainLetters:   map[string]bool{"A": true},
	}
	for _, name := range defaultNames {
		r.Names[name] = true
	}
	for _, symbol := range defaultElements {
		r.Elements[symbol] = true
	}
	return r
}

// AddNames extends the eponym set.
func (r *Rules) AddNames(names []string) {
	for _, name := range names {
		r.Names[name] = true
	}
}

// AddElements extends the element symbol set.
func (r *Rules) AddElements(symbols []string) {
	for _, symbol := range symbols {
		r.Elements[symbol] = true
	}
}
