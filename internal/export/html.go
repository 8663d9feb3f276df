package export

import (
	"strings"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

const htmlHead = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>%TITLE% Data</title>
  <style>
    table { border-collapse: collapse; width: 100%; }
    th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
    th { background-color: #f2f2f2; }
    tr:nth-child(even) { background-color: #f9f9f9; }
  </style>
</head>
<body>
  <h1>%TITLE%</h1>
  <table>
    <thead>
      <tr>`

// htmlWriter renders values verbatim. The output is a local developer artifact
// and is not escaped.
type htmlWriter struct {
	*sink
	fields []types.FieldSpec
	table  string
}

func (h *htmlWriter) Begin() error {
	h.str(strings.ReplaceAll(htmlHead, "%TITLE%", h.table))
	for _, f := range h.fields {
		h.str("<th>" + f.Name + "</th>")
	}
	h.str("</tr>\n    </thead>\n    <tbody>\n")
	return h.err
}

func (h *htmlWriter) WriteRow(row types.Row) error {
	h.str("      <tr>")
	for i := range h.fields {
		v := cell(row, i)
		if v.IsNull() {
			h.str("<td>NULL</td>")
			continue
		}
		h.str("<td>" + v.String() + "</td>")
	}
	h.str("</tr>\n")
	return h.err
}

func (h *htmlWriter) End() error {
	h.str("    </tbody>\n  </table>\n</body>\n</html>\n")
	return h.err
}
