package protect

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "words and spaces",
			input: "NaCl crystal structure",
			want:  []string{"NaCl", " ", "crystal", " ", "structure"},
		},
		{
			name:  "colon space is one separator run",
			input: "insulators: A review",
			want:  []string{"insulators", ": ", "A", " ", "review"},
		},
		{
			name:  "hyphenated compound",
			input: "spin-orbit coupling",
			want:  []string{"spin", "-", "orbit", " ", "coupling"},
		},
		{
			name:  "leading separator",
			input: " leading",
			want:  []string{" ", "leading"},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input, DefaultSeparators)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
			if joined := strings.Join(got, ""); joined != tt.input {
				t.Errorf("concatenated tokens = %q, want input %q", joined, tt.input)
			}
		})
	}
}

func TestMaskRoundTrip(t *testing.T) {
	tests := []string{
		"no groups at all",
		"one {group} here",
		"nested {outer {inner} group}",
		"math $x^2$ span",
		"{a} and {b} and $c$",
	}

	for _, input := range tests {
		masked, groups := mask(input)
		if got := unmask(masked, groups); got != input {
			t.Errorf("unmask(mask(%q)) = %q", input, got)
		}
	}
}

func TestMaskUppercaseMath(t *testing.T) {
	masked, groups := mask(`near the $\Lambda$-point`)
	if strings.Contains(masked, "$") {
		t.Errorf("math span not masked: %q", masked)
	}
	if len(groups) != 1 || groups[0] != `{$\Lambda$}` {
		t.Errorf("groups = %q, want the span pre-wrapped in braces", groups)
	}
}

func TestMaskUnbalanced(t *testing.T) {
	input := "stray { brace"
	masked, groups := mask(input)
	if masked != input || len(groups) != 0 {
		t.Errorf("mask(%q) = %q, %q, want input unchanged", input, masked, groups)
	}
}

func TestFragile(t *testing.T) {
	p := New(DefaultRules())

	tests := []struct {
		name  string
		token string
		prev  string
		want  bool
	}{
		{"acronym", "DNA", " ", true},
		{"chemical formula", "NaCl", "", true},
		{"formula with digit", "W90", " ", true},
		{"internal capital", "eV", " ", true},
		{"internal capital opens title", "eV", "", true},
		{"lowercase word", "crystal", " ", false},
		{"capitalized first word", "Quantum", "", false},
		{"capitalized after colon", "New", ": ", false},
		{"single letter symbol", "T", " ", true},
		{"article A", "A", " ", false},
		{"single letter opens title", "T", "", false},
		{"known name", "Wigner", " ", true},
		{"name opens title", "Wigner", "", false},
		{"name derivative", "Gaussian", " ", true},
		{"name derivative Hamiltonian", "Hamiltonian", " ", true},
		{"exempt suffix ons", "Fermions", " ", false},
		{"exempt suffix ion", "Fermion", " ", false},
		{"element symbol", "Li", " ", true},
		{"element symbol Tc", "Tc", " ", true},
		{"excluded element In", "In", " ", false},
		{"element with charge", "Cu2+", " ", true},
		{"ordinary word after period", "Role", ". ", true},
		{"ordinary word after space", "Role", " ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Fragile(tt.token, tt.prev); got != tt.want {
				t.Errorf("Fragile(%q, %q) = %v, want %v", tt.token, tt.prev, got, tt.want)
			}
		})
	}
}

func TestFragileNoSuffixExemption(t *testing.T) {
	rules := DefaultRules()
	rules.ExemptSuffixes = false
	p := New(rules)

	if !p.Fragile("Fermions", " ") {
		t.Error("Fragile(Fermions) = false with suffix exemption disabled, want true")
	}
}

func TestFragileCustomRules(t *testing.T) {
	rules := DefaultRules()
	rules.AddNames([]string{"Haldane"})
	rules.AddElements([]string{"Uue"})
	rules.PlainLetters["J"] = true
	p := New(rules)

	if !p.Fragile("Haldane", " ") {
		t.Error("added name not protected")
	}
	if !p.Fragile("Uue", " ") {
		t.Error("added element not protected")
	}
	if p.Fragile("J", " ") {
		t.Error("plain letter J protected")
	}

	// PlainLetters only disables the single-letter rule; "I" is still
	// protected as the element symbol for iodine.
	rules.PlainLetters["I"] = true
	if !New(rules).Fragile("I", " ") {
		t.Error("element symbol I not protected")
	}
}

func TestProtect(t *testing.T) {
	p := New(DefaultRules())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "chemical formula",
			input: "NaCl crystal structure",
			want:  "{NaCl} crystal structure",
		},
		{
			name:  "battery material",
			input: "LiFePO4 cathodes for Li-ion batteries",
			want:  "{LiFePO4} cathodes for {Li}-ion batteries",
		},
		{
			name:  "name derivative",
			input: "The Gaussian approximation",
			want:  "The {Gaussian} approximation",
		},
		{
			name:  "name opens title",
			input: "Wigner crystallization in quantum wires",
			want:  "Wigner crystallization in quantum wires",
		},
		{
			name:  "name mid-title",
			input: "Dynamics of the Wigner crystal",
			want:  "Dynamics of the {Wigner} crystal",
		},
		{
			name:  "exempt suffix",
			input: "Interacting Fermions in one dimension",
			want:  "Interacting Fermions in one dimension",
		},
		{
			name:  "unit",
			input: "Gap opening at 5 eV",
			want:  "Gap opening at 5 {eV}",
		},
		{
			name:  "word after period separator",
			input: "Hubbard model. Exact results",
			want:  "Hubbard model. {Exact} results",
		},
		{
			name:  "name after period separator",
			input: "Strong correlations. Hubbard model results",
			want:  "Strong correlations. {Hubbard} model results",
		},
		{
			name:  "capital after colon",
			input: "Quantum matter: New directions",
			want:  "Quantum matter: New directions",
		},
		{
			name:  "greek letter left for the escape layer",
			input: "Λ-point phonons in NaCl and LiF",
			want:  "Λ-point phonons in {NaCl} and {LiF}",
		},
		{
			name:  "uppercase math span",
			input: `Critical dynamics at the $\Lambda$-point`,
			want:  `Critical dynamics at the {$\Lambda$}-point`,
		},
		{
			name:  "existing group untouched",
			input: "{NaCl} crystal structure",
			want:  "{NaCl} crystal structure",
		},
		{
			name:  "group spliced into added braces",
			input: "Ti{O}2 nanotubes",
			want:  "{TiO2} nanotubes",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Protect(tt.input); got != tt.want {
				t.Errorf("Protect(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProtectIdempotent(t *testing.T) {
	p := New(DefaultRules())

	titles := []string{
		"NaCl crystal structure",
		"LiFePO4 cathodes for Li-ion batteries",
		"Dynamics of the Wigner crystal",
		`Critical dynamics at the $\Lambda$-point`,
		"Hubbard model. Exact results",
	}

	for _, title := range titles {
		once := p.Protect(title)
		if twice := p.Protect(once); twice != once {
			t.Errorf("Protect not idempotent on %q: %q != %q", title, twice, once)
		}
	}
}

func TestProtectBraceRemovalYieldsInput(t *testing.T) {
	p := New(DefaultRules())
	stripBraces := strings.NewReplacer("{", "", "}", "")

	titles := []string{
		"NaCl crystal structure",
		"Dependence of the gap on T",
		"The Gaussian approximation",
	}

	for _, title := range titles {
		got := stripBraces.Replace(p.Protect(title))
		if got != title {
			t.Errorf("Protect(%q) minus braces = %q", title, got)
		}
	}
}

func TestJoinSubscriptPeriods(t *testing.T) {
	got := joinSubscriptPeriods("La₂.₅ films")
	want := "La₂" + string(SubJoin) + "₅ films"
	if got != want {
		t.Errorf("joinSubscriptPeriods = %q, want %q", got, want)
	}

	// A period not between subscript digits stays.
	if got := joinSubscriptPeriods("end. Next"); got != "end. Next" {
		t.Errorf("joinSubscriptPeriods altered ordinary period: %q", got)
	}
}

func TestProtectDebugf(t *testing.T) {
	p := New(DefaultRules())
	var lines []string
	p.Debugf = func(format string, args ...any) {
		lines = append(lines, format)
	}

	p.Protect("NaCl crystal structure")
	if len(lines) == 0 {
		t.Error("no diagnostics emitted for a protected token")
	}
}
