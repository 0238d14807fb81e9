// Package texenc replaces non-ASCII Unicode characters in bibliographic
// fields with LaTeX escape sequences, and applies superscript, subscript
// and math-mode markup to runs of the corresponding characters. The tables
// are fixed at init time and never written afterwards.
package texenc

import "github.com/ristex/ristex/internal/protect"

// accents maps accented letters and typographic quotes and dashes to LaTeX
// commands.
var accents = map[rune]string{
	'Á': `\'A`,
	'Í': `\'I`,
	'Ö': `\"{O}`,
	'Ü': `\"{U}`,
	'ß': `{\ss}`,
	'à': "\\`a",
	'á': `\'a`,
	'ä': `\"a`,
	'å': `{\aa}`,
	'ç': `\c{c}`,
	'è': "\\`e",
	'é': `\'e`,
	'í': `\'i`,
	'ï': `\"i`,
	'ñ': `\~n`,
	'ò': "\\`o",
	'ó': `\'o`,
	'ô': `\^o`,
	'ö': `\"o`,
	'ø': `{\o}`,
	'ú': `\'u`,
	'ü': `\"u`,
	'Ă': `\u{A}`,
	'ă': `\u{a}`,
	'ć': `\'c`,
	'Č': `\v{C}`,
	'č': `\v{c}`,
	'ę': `\k{e}`,
	'ě': `\v{e}`,
	'ğ': `\u{g}`,
	'ĭ': `{\u\i}`,
	'İ': `\.I`,
	'ı': `{\i}`,
	'ł': `{\l}`,
	'ń': `\'n`,
	'ň': `\v{n}`,
	'Ő': `\H{O}`,
	'ő': `\H{o}`,
	'Ř': `\v{R}`,
	'ř': `\v{r}`,
	'ś': `\'s`,
	'Ş': `\c{S}`,
	'ş': `\c{s}`,
	'Š': `\v{S}`,
	'š': `\v{s}`,
	'ţ': `\c{t}`,
	'Ű': `\H{U}`,
	'ű': `\H{u}`,
	'ż': `\.c`,
	'ž': `\v{z}`,
	'ǧ': `\v{g}`,
	'‘': "`",
	'’': "'",
	'“': "``",
	'”': "''",
}

// dashes maps Unicode hyphen and dash variants to their TeX ligatures.
var dashes = map[rune]string{
	'‐': "-", // unbreakable hyphen
	'–': "--",
	'—': "---",
}

// spaces maps space variants to TeX spacing commands.
var spaces = map[rune]string{
	'\u00a0': "~",
	'\u2009': `\,`,
}

// quotes maps guillemets to their LaTeX commands.
var quotes = map[rune]string{
	'«': `{\guillemotleft}`,
	'»': `{\guillemotright}`,
}

// superscripts maps superscript characters to their plain counterparts.
var superscripts = map[rune]string{
	'²': "2",
	'³': "3",
	'¹': "1",
	'⁰': "0",
	'ⁱ': "i",
	'⁴': "4",
	'⁵': "5",
	'⁶': "6",
	'⁷': "7",
	'⁸': "8",
	'⁹': "9",
	'⁺': "+",
	'⁻': `\ensuremath-`,
	'⁼': "=",
	'⁽': "(",
	'⁾': ")",
	'ⁿ': "n",
}

// subscripts maps subscript characters to their plain counterparts.
var subscripts = map[rune]string{
	'ᵢ': "i",
	'₀': "0",
	'₁': "1",
	'₂': "2",
	'₃': "3",
	'₄': "4",
	'₅': "5",
	'₆': "6",
	'₇': "7",
	'₈': "8",
	'₉': "9",
	'₊': "+",
	'₋': `\ensuremath-`,
	'₌': "=",
	'₍': "(",
	'₎': ")",
	'ₐ': "a",
	'ₑ': "e",
	'ₒ': "o",
	'ₓ': "x",
	'ₕ': "h",
	'ₖ': "k",
	'ₗ': "l",
	'ₘ': "m",
	'ₙ': "n",
	'ₚ': "p",
	'ₛ': "s",
	'ₜ': "t",
}

// math maps Greek letters and math symbols to their LaTeX commands.
var math = map[rune]string{
	'×': `\times`,
	'Γ': `\Gamma`,
	'Δ': `\Delta`,
	'Θ': `\Theta`,
	'Λ': `\Lambda`,
	'Ξ': `\Xi`,
	'Π': `\Pi`,
	'Σ': `\Sigma`,
	'Υ': `\Upsilon`,
	'Φ': `\Phi`,
	'Ψ': `\Psi`,
	'Ω': `\Omega`,
	'α': `\alpha`,
	'β': `\beta`,
	'γ': `\gamma`,
	'δ': `\delta`,
	'ε': `\varepsilon`,
	'ζ': `\zeta`,
	'η': `\eta`,
	'θ': `\theta`,
	'ι': `\iota`,
	'κ': `\kappa`,
	'λ': `\lambda`,
	'μ': `\mu`,
	'ν': `\nu`,
	'ξ': `\xi`,
	'π': `\pi`,
	'ρ': `\rho`,
	'ς': `\varsigma`,
	'σ': `\sigma`,
	'τ': `\tau`,
	'υ': `\upsilon`,
	'φ': `\varphi`,
	'χ': `\chi`,
	'ψ': `\psi`,
	'ω': `\omega`,
	'ϑ': `\vartheta`,
	'ϕ': `\phi`,
	'ϖ': `\varpi`,
	'ϱ': `\varrho`,
	'ϵ': `\epsilon`,
	'′': `'`,
	'″': `''`,
	'∂': `\partial`,
	'−': `-`,
	'√': `\sqrt`,
	'∞': `\infty`,
	'∼': `\sim`,
	'≤': `\leq`,
}

// others maps remaining special characters.
var others = map[rune]string{
	'&':      `\&`,
	'\u00ad': `\-`,
}

// replacements is the union of all per-rune tables, built once at init.
var replacements = map[rune]string{}

func init() {
	for _, table := range []map[rune]string{
		accents, dashes, spaces, quotes, superscripts, subscripts, math, others,
	} {
		for r, repl := range table {
			replacements[r] = repl
		}
	}
	// The non-splitting subscript-period marker inserted by the protection
	// engine becomes a literal period again.
	replacements[protect.SubJoin] = "."
}
