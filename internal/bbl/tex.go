package bbl

import (
	"io"
	"regexp"
	"strings"
	"text/template"
)

var texRewrites = []rewrite{
	{regexp.MustCompile(`\\bibf?namefont` + arg), `${1}`},
	{regexp.MustCompile(`\\bib(info|field)` + arg + arg), `${3}`},
	{regexp.MustCompile(`\\(Eprint|href)` + arg + arg), `\href{${2}}{${3}}`},
	{regexp.MustCompile(`\\(emph|textbf|textsc)` + arg), `\${1}{${2}}`},
	{regexp.MustCompile(`\\natexlab` + arg), ``},
}

// TeXItems converts the entries of a .bbl file to plain LaTeX fragments,
// free of BibTeX style macros.
func TeXItems(s string) []Item {
	result := items(s, false)

	for i, item := range result {
		text := transform(item.Text, texRewrites)
		text = strings.ReplaceAll(text, `\ `, " ")
		result[i].Text = strings.TrimSpace(text)
	}

	return result
}

var texDocument = template.Must(template.New("itemize").Parse(`\documentclass{article}
\usepackage[colorlinks]{hyperref}
\begin{document}
\begin{itemize}
{{range .}}    \item {{.Text}}
{{end}}\end{itemize}
\end{document}
`))

// WriteTeX renders items as a standalone LaTeX document with one itemize
// entry per reference.
func WriteTeX(w io.Writer, entries []Item) error {
	return texDocument.Execute(w, entries)
}
