package bbl

import (
	"html/template"
	"io"
	"regexp"
	"strings"
)

var htmlRewrites = []rewrite{
	{regexp.MustCompile(`\\bibf?namefont` + arg), `${1}`},
	{regexp.MustCompile(`\\bib(info|field)` + arg + arg), `${3}`},
	{regexp.MustCompile(`\\(Eprint|href)` + arg + arg), `<a href='${2}'>${3}</a>`},
	{regexp.MustCompile(`\\emph` + arg), `<em>${1}</em>`},
	{regexp.MustCompile(`\\natexlab` + arg), ``},
	{regexp.MustCompile(`\\textbf` + arg), `<b>${1}</b>`},
	{regexp.MustCompile(`\\textsc` + arg), `<span style='font-variant: small-caps'>${1}</span>`},
	{regexp.MustCompile(`\\textsubscript(\d)`), `&#x208${1};`},
	{regexp.MustCompile(`\\textsubscript` + arg), `<sub>${1}</sub>`},
	{regexp.MustCompile(`\\allowbreak *(\{\})?`), `&#x200B;`},
	{regexp.MustCompile(`\\@ *(\{\})?`), ``},
}

var (
	apostropheRe = regexp.MustCompile(`(\w)'`)
	acuteRe      = regexp.MustCompile(`\\'([aeiouAEIOU])`)
	umlautRe     = regexp.MustCompile(`\\"([aeiouAEIOU])`)
)

// HTMLItems converts the entries of a .bbl file to HTML fragments keyed by
// citation key.
func HTMLItems(s string) []Item {
	result := items(s, true)

	for i, item := range result {
		text := apostropheRe.ReplaceAllString(item.Text, `${1}&rsquo;`)
		text = transform(text, htmlRewrites)

		text = strings.ReplaceAll(text, "--", "&ndash;")
		text = strings.ReplaceAll(text, "~", "&nbsp;")
		text = strings.ReplaceAll(text, `\ `, " ")
		text = acuteRe.ReplaceAllString(text, `&${1}acute;`)
		text = umlautRe.ReplaceAllString(text, `&${1}uml;`)

		result[i].Text = strings.TrimSpace(text)
	}

	return result
}

// htmlDocument is the page shell. With citation keys the list is ordered
// and a script renumbers in-document reference links and drops uncited
// entries.
var htmlDocument = template.Must(template.New("bibliography").Parse(`<!DOCTYPE html>
<html>
<body>
{{if .Citekeys}}<ol id='bibliography'>{{else}}<ul>{{end}}
{{range .Items}}<li{{if .Key}} id='{{.Key}}'{{end}}> {{.Text}}
{{end}}{{if .Citekeys}}</ol>
<script>
    const links = document.getElementsByTagName('a')
    const bib = document.getElementById('bibliography')
    const refs = new Array()
    for (let i = 0; i < links.length; i++) {
        let href = links[i].getAttribute('href')
        if (href && href.startsWith('#')) {
            let ref = document.getElementById(href.substring(1))
            if (ref && bib.contains(ref)) {
                links[i].innerText = refs.indexOf(ref) + 1 || refs.push(ref)
            }
        }
    }
    if (refs.length) bib.replaceChildren(...refs)
</script>{{else}}</ul>{{end}}
</body>
</html>
`))

type htmlItem struct {
	Key  string
	Text template.HTML
}

// WriteHTML renders items as a complete HTML document. With citekeys the
// list items carry anchor ids so LaTeX cross references keep working.
func WriteHTML(w io.Writer, entries []Item, citekeys bool) error {
	data := struct {
		Citekeys bool
		Items    []htmlItem
	}{Citekeys: citekeys}

	for _, item := range entries {
		key := ""
		if citekeys {
			key = item.Key
		}
		data.Items = append(data.Items, htmlItem{Key: key, Text: template.HTML(item.Text)})
	}

	return htmlDocument.Execute(w, data)
}
