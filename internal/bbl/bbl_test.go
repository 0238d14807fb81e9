package bbl

import (
	"strings"
	"testing"
)

// sampleBbl mimics a REVTeX-generated .bbl file. The preamble contains the
// first \BibitemOpen ... \BibitemShut span, which must be skipped.
const sampleBbl = `\begin{thebibliography}{2}%
\providecommand \BibitemOpen {}%
\providecommand \BibitemShut [1]{}%

\bibitem [{Kohn(1965)}]{Kohn1965}%
\BibitemOpen
\bibfield {author} {\bibnamefont {W.~Kohn}}, \bibfield {journal} {\bibinfo
{journal} {Phys. Rev.}} \textbf {140}, \bibinfo {pages} {A1133} (\bibinfo
{year} {1965})\BibitemShut {NoStop}%

\bibitem [{Hubbard(1963)}]{Hubbard1963}%
\BibitemOpen
\bibinfo {title} {Electron correlations}, \href
{https://doi.org/10.1098/rspa.1963.0204} {\bibinfo {journal} {Proc. R.
Soc.}}\BibitemShut {NoStop}%
\end{thebibliography}%
`

func TestItemsSkipPreamble(t *testing.T) {
	keyed := items(sampleBbl, true)
	if len(keyed) != 2 {
		t.Fatalf("items(keyed) returned %d entries, want 2", len(keyed))
	}
	if keyed[0].Key != "Kohn1965" || keyed[1].Key != "Hubbard1963" {
		t.Errorf("keys = %q, %q", keyed[0].Key, keyed[1].Key)
	}

	bare := items(sampleBbl, false)
	if len(bare) != 2 {
		t.Fatalf("items(bare) returned %d entries, want 2", len(bare))
	}
	if bare[0].Key != "" {
		t.Errorf("bare item carries key %q", bare[0].Key)
	}
}

func TestHTMLItems(t *testing.T) {
	result := HTMLItems(sampleBbl)
	if len(result) != 2 {
		t.Fatalf("HTMLItems returned %d entries, want 2", len(result))
	}

	want0 := "W.&nbsp;Kohn, Phys. Rev. <b>140</b>, A1133 (1965)"
	if got := result[0].Text; got != want0 {
		t.Errorf("item 0 = %q, want %q", got, want0)
	}

	want1 := "Electron correlations, <a href='https://doi.org/10.1098/rspa.1963.0204'>Proc. R. Soc.</a>"
	if got := result[1].Text; got != want1 {
		t.Errorf("item 1 = %q, want %q", got, want1)
	}
}

func TestTeXItems(t *testing.T) {
	result := TeXItems(sampleBbl)
	if len(result) != 2 {
		t.Fatalf("TeXItems returned %d entries, want 2", len(result))
	}

	want0 := `W.~Kohn, Phys. Rev. \textbf{140}, A1133 (1965)`
	if got := result[0].Text; got != want0 {
		t.Errorf("item 0 = %q, want %q", got, want0)
	}

	want1 := `Electron correlations, \href{https://doi.org/10.1098/rspa.1963.0204}{Proc. R. Soc.}`
	if got := result[1].Text; got != want1 {
		t.Errorf("item 1 = %q, want %q", got, want1)
	}
}

func TestHTMLAccents(t *testing.T) {
	rewrites := []struct {
		input string
		want  string
	}{
		{`M\"uller`, `M&uuml;ller`},
		{`Pad\'e`, `Pad&eacute;`},
		{`it's`, `it&rsquo;s`},
	}

	for _, tt := range rewrites {
		bbl := preambleWrap(tt.input)
		result := HTMLItems(bbl)
		if len(result) != 1 {
			t.Fatalf("HTMLItems(%q) returned %d entries", tt.input, len(result))
		}
		if got := result[0].Text; got != tt.want {
			t.Errorf("HTMLItems(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// preambleWrap embeds body in a minimal .bbl skeleton with a preamble span.
func preambleWrap(body string) string {
	return `\begin{thebibliography}{1}%
\providecommand \BibitemOpen {}%
\providecommand \BibitemShut [1]{}%

\bibitem [{X(2000)}]{X2000}%
\BibitemOpen
` + body + `\BibitemShut {NoStop}%
\end{thebibliography}%
`
}

func TestTransformMasksNestedGroups(t *testing.T) {
	got := transform(`\emph {nested {inner} text}`, texRewrites)
	if got != `\emph{nested inner text}` {
		t.Errorf("transform = %q", got)
	}
}

func TestWriteHTML(t *testing.T) {
	entries := []Item{
		{Key: "Kohn1965", Text: "W.&nbsp;Kohn (1965)"},
		{Key: "Hubbard1963", Text: "J. Hubbard (1963)"},
	}

	var plain strings.Builder
	if err := WriteHTML(&plain, entries, false); err != nil {
		t.Fatal(err)
	}
	out := plain.String()
	if !strings.Contains(out, "<ul>") || strings.Contains(out, "id='Kohn1965'") {
		t.Errorf("plain list output wrong:\n%s", out)
	}

	var keyed strings.Builder
	if err := WriteHTML(&keyed, entries, true); err != nil {
		t.Fatal(err)
	}
	out = keyed.String()
	for _, want := range []string{
		"<ol id='bibliography'>",
		"id='Kohn1965'",
		"W.&nbsp;Kohn (1965)",
		"<script>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("keyed output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTeX(t *testing.T) {
	entries := []Item{
		{Text: `W.~Kohn, Phys. Rev. \textbf{140} (1965)`},
	}

	var b strings.Builder
	if err := WriteTeX(&b, entries); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		`\documentclass{article}`,
		`\begin{itemize}`,
		`    \item W.~Kohn, Phys. Rev. \textbf{140} (1965)`,
		`\end{document}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
