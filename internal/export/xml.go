package export

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"unicode"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
)

type xmlWriter struct {
	*sink
	fields []types.FieldSpec
	table  string
	names  []string
	rows   int
}

func (x *xmlWriter) Begin() error {
	x.names = make([]string, len(x.fields))
	for i, f := range x.fields {
		x.names[i] = ElementName(f.Name)
	}
	x.str(xml.Header)
	x.str(`<records table="` + escapeXML(x.table) + `">` + "\n")
	return x.err
}

func (x *xmlWriter) WriteRow(row types.Row) error {
	x.rows++
	x.str(`  <record id="` + strconv.Itoa(x.rows) + `">` + "\n")
	for i, name := range x.names {
		v := cell(row, i)
		x.str("    <" + name + ">")
		if !v.IsNull() {
			x.str(escapeXML(v.String()))
		}
		x.str("</" + name + ">\n")
	}
	x.str("  </record>\n")
	return x.err
}

func (x *xmlWriter) End() error {
	x.str("</records>\n")
	return x.err
}

// ElementName turns a field name into a valid XML element name by replacing
// disallowed characters with '_'. A name that cannot start an element, such as
// "2fa", is prefixed with '_' so distinct names stay distinct.
func ElementName(name string) string {
	if name == "" {
		return "_"
	}
	out := []rune(name)
	for i, r := range out {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case r == '-' || r == '.' || unicode.IsDigit(r):
		default:
			out[i] = '_'
		}
	}
	s := string(out)
	if first := out[0]; first != '_' && !unicode.IsLetter(first) {
		s = "_" + s
	}
	if len(s) >= 3 && (s[0]|0x20) == 'x' && (s[1]|0x20) == 'm' && (s[2]|0x20) == 'l' {
		s = "_" + s
	}
	return s
}

func escapeXML(s string) string {
	var b bytes.Buffer
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return ""
	}
	return b.String()
}
