package export

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *types.Table {
	return &types.Table{
		Name: "people",
		Fields: []types.FieldSpec{
			{Name: "id", Type: types.TypeAutoIncrement, Options: types.IDOptions{Digits: 3}},
			{Name: "name", Type: types.TypeName},
			{Name: "score", Type: types.TypeNumeric, Column: types.ColumnFloat, AllowNull: true},
			{Name: "active", Type: types.TypeBoolean},
			{Name: "note", Type: types.TypeString, AllowNull: true},
		},
		Rows: []types.Row{
			{types.String("001"), types.String("O'Brien, Pat"), types.Float(1.5), types.Bool(true), types.String(`say "hi" <b>`)},
			{types.String("002"), types.String("Ann"), types.Null, types.Bool(false), types.Null},
			{types.String("003"), types.String(`back\slash`), types.Float(-0.25), types.Bool(true), types.String("x")},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	table := sampleTable()
	out, err := Serialize(types.FormatJSON, table, Options{})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 3)
	for _, obj := range decoded {
		assert.Len(t, obj, len(table.Fields))
	}
	assert.Equal(t, "O'Brien, Pat", decoded[0]["name"])
	assert.Equal(t, 1.5, decoded[0]["score"])
	assert.Equal(t, true, decoded[0]["active"])
	assert.Nil(t, decoded[1]["score"])
	assert.Contains(t, out, `"say \"hi\" <b>"`)

	// Keys keep field order.
	first := out[:strings.Index(out, "}")]
	order := []string{`"id"`, `"name"`, `"score"`, `"active"`, `"note"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(first, key)
		require.Greater(t, idx, last, key)
		last = idx
	}
}

func TestJSONLayout(t *testing.T) {
	table := &types.Table{
		Fields: []types.FieldSpec{{Name: "id"}, {Name: "n"}},
		Rows:   []types.Row{{types.String("1"), types.Int(2)}},
	}
	out, err := Serialize(types.FormatJSON, table, Options{})
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"id\": \"1\",\n    \"n\": 2\n  }\n]", out)

	empty, err := Serialize(types.FormatJSON, &types.Table{Fields: table.Fields}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}

func TestCSVRoundTrip(t *testing.T) {
	table := sampleTable()
	out, err := Serialize(types.FormatCSV, table, Options{})
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(out, "\n"))

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"id", "name", "score", "active", "note"}, records[0])
	assert.Equal(t, []string{"001", "O'Brien, Pat", "1.5", "true", `say "hi" <b>`}, records[1])
	assert.Equal(t, []string{"002", "Ann", "", "false", ""}, records[2])
}

func TestCSVSingleNullableColumn(t *testing.T) {
	table := &types.Table{
		Fields: []types.FieldSpec{{Name: "city", Type: types.TypeCity, AllowNull: true}},
		Rows:   []types.Row{{types.String("Paris")}, {types.Null}, {types.String("Rome")}},
	}
	out, err := Serialize(types.FormatCSV, table, Options{})
	require.NoError(t, err)
	assert.Equal(t, "city\nParis\n\"\"\nRome", out)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{""}, records[2])
	assert.Equal(t, []string{"Rome"}, records[3])
}

func TestCSVScenario(t *testing.T) {
	table := &types.Table{
		Fields: []types.FieldSpec{{Name: "id", Type: types.TypeAutoIncrement}},
		Rows:   []types.Row{{types.String("001")}, {types.String("002")}, {types.String("003")}},
	}
	out, err := Serialize(types.FormatCSV, table, Options{})
	require.NoError(t, err)
	assert.Equal(t, "id\n001\n002\n003", out)

	xlsx, err := Serialize(types.FormatXLSX, table, Options{})
	require.NoError(t, err)
	assert.Equal(t, out, xlsx)
}

func TestSQLStatements(t *testing.T) {
	table := sampleTable()
	out, err := Serialize(types.FormatSQL, table, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "CREATE TABLE"))
	assert.Equal(t, 3, strings.Count(out, "INSERT INTO"))
	assert.Contains(t, out, "CREATE TABLE IF NOT EXISTS `people` (")
	assert.Contains(t, out, "`id` INT AUTO_INCREMENT PRIMARY KEY,")
	assert.Contains(t, out, "`name` VARCHAR(255) NOT NULL,")
	assert.Contains(t, out, "`score` FLOAT,")
	assert.Contains(t, out, "`active` BOOLEAN NOT NULL,")
	assert.Contains(t, out, "INSERT INTO `people` (`id`, `name`, `score`, `active`, `note`) VALUES (1, 'O''Brien, Pat', 1.5, TRUE, 'say \"hi\" <b>');")
	assert.Contains(t, out, "VALUES (2, 'Ann', NULL, FALSE, NULL);")
	assert.Contains(t, out, `'back\\slash'`)
}

func TestSQLEscapesQuotes(t *testing.T) {
	table := &types.Table{
		Name:   "t",
		Fields: []types.FieldSpec{{Name: "name", Type: types.TypeString}},
		Rows:   []types.Row{{types.String("O'Brien")}},
	}
	for _, d := range Dialects {
		t.Run(string(d), func(t *testing.T) {
			out, err := Serialize(types.FormatSQL, table, Options{Dialect: d})
			require.NoError(t, err)
			assert.Contains(t, out, "'O''Brien'")
			assert.NotContains(t, out, "'O'Brien'")
		})
	}
}

func TestSQLDialects(t *testing.T) {
	table := sampleTable()

	pg, err := Serialize(types.FormatSQL, table, Options{Dialect: DialectPostgres})
	require.NoError(t, err)
	assert.Contains(t, pg, `CREATE TABLE IF NOT EXISTS "people" (`)
	assert.Contains(t, pg, `"id" SERIAL PRIMARY KEY,`)
	assert.Contains(t, pg, `"score" REAL,`)
	assert.Contains(t, pg, `E'back\\slash'`)

	lite, err := Serialize(types.FormatSQL, table, Options{Dialect: DialectSQLite})
	require.NoError(t, err)
	assert.Contains(t, lite, `"id" INTEGER PRIMARY KEY AUTOINCREMENT,`)
	assert.Contains(t, lite, "VALUES (2, 'Ann', NULL, 0, NULL);")

	_, err = Serialize(types.FormatSQL, table, Options{Dialect: "oracle"})
	assert.Error(t, err)
}

func TestSQLBatchedInsert(t *testing.T) {
	table := sampleTable()
	out, err := Serialize(types.FormatSQL, table, Options{BatchSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "INSERT INTO"))
	assert.Equal(t, 3, strings.Count(out, "\n("))
	assert.True(t, strings.HasSuffix(out, ");\n"))
}

func TestCreateTableTypes(t *testing.T) {
	fields := []types.FieldSpec{
		{Name: "uid", Type: types.TypeAutoIncrement, Options: types.IDOptions{UUID: true}},
		{Name: "code", Type: types.TypeAutoIncrement, Options: types.IDOptions{Prefix: "E-"}},
		{Name: "born", Type: types.TypeDate},
		{Name: "seen", Type: types.TypeDateTime},
		{Name: "bio", Type: types.TypeText},
		{Name: "tier", Type: types.TypeCustom, Options: types.CustomOptions{TypeName: "Tier"}},
		{Name: "ratio", Type: types.TypeNumeric, Options: types.NumericOptions{Kind: types.NumberDouble}},
	}
	assert.Equal(t, -1, DesignatedID(fields))

	ddl := CreateTable(DialectMySQL, "t", fields)
	assert.Contains(t, ddl, "`uid` VARCHAR(255) NOT NULL,")
	assert.Contains(t, ddl, "`code` VARCHAR(255) NOT NULL,")
	assert.Contains(t, ddl, "`born` DATE NOT NULL,")
	assert.Contains(t, ddl, "`seen` DATETIME NOT NULL,")
	assert.Contains(t, ddl, "`bio` TEXT NOT NULL,")
	assert.Contains(t, ddl, "`tier` VARCHAR(255),")
	assert.Contains(t, ddl, "`ratio` DOUBLE NOT NULL\n);")

	pg := CreateTable(DialectPostgres, "t", fields)
	assert.Contains(t, pg, `"seen" TIMESTAMP NOT NULL,`)
	assert.Contains(t, pg, `"ratio" DOUBLE PRECISION NOT NULL`)
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, "`we``ird`", DialectMySQL.QuoteIdent("we`ird"))
	assert.Equal(t, `"we""ird"`, DialectPostgres.QuoteIdent(`we"ird`))
	assert.Equal(t, `"we""ird"`, DialectSQLite.QuoteIdent(`we"ird`))
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{
		"":           DialectMySQL,
		"MariaDB":    DialectMySQL,
		"postgresql": DialectPostgres,
		"sqlite3":    DialectSQLite,
	} {
		got, err := ParseDialect(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestHTML(t *testing.T) {
	out, err := Serialize(types.FormatHTML, sampleTable(), Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>people Data</title>")
	assert.Contains(t, out, "<th>id</th><th>name</th><th>score</th><th>active</th><th>note</th>")
	assert.Contains(t, out, "<td>NULL</td>")
	assert.Contains(t, out, `<td>say "hi" <b></td>`)
	assert.Equal(t, 4, strings.Count(out, "<tr>"))
}

func TestXML(t *testing.T) {
	table := sampleTable()
	table.Fields[4].Name = "my note"
	out, err := Serialize(types.FormatXML, table, Options{})
	require.NoError(t, err)

	var doc struct {
		XMLName xml.Name `xml:"records"`
		Table   string   `xml:"table,attr"`
		Records []struct {
			ID     int    `xml:"id,attr"`
			Name   string `xml:"name"`
			Score  string `xml:"score"`
			MyNote string `xml:"my_note"`
		} `xml:"record"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "people", doc.Table)
	require.Len(t, doc.Records, 3)
	assert.Equal(t, 1, doc.Records[0].ID)
	assert.Equal(t, "O'Brien, Pat", doc.Records[0].Name)
	assert.Equal(t, `say "hi" <b>`, doc.Records[0].MyNote)
	assert.Equal(t, "", doc.Records[1].Score)
	assert.Contains(t, out, "<score></score>")
}

func TestElementName(t *testing.T) {
	tests := map[string]string{
		"name":       "name",
		"first-name": "first-name",
		"2fa":        "_2fa",
		"1a":         "_1a",
		"2a":         "_2a",
		"-x":         "_-x",
		"a b":        "a_b",
		"":           "_",
		"xmlData":    "_xmlData",
	}
	for in, want := range tests {
		assert.Equal(t, want, ElementName(in), in)
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := Serialize("yaml", sampleTable(), Options{})
	assert.True(t, errors.Is(err, types.ErrUnknownFormat))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".json", Extension(types.FormatJSON))
	assert.Equal(t, ".csv", Extension(types.FormatCSV))
	assert.Equal(t, ".csv", Extension(types.FormatXLSX))
	assert.Equal(t, ".sql", Extension(types.FormatSQL))
	assert.Equal(t, ".html", Extension(types.FormatHTML))
	assert.Equal(t, ".xml", Extension(types.FormatXML))
	assert.Equal(t, "data.sql", FileName("data.sql", types.FormatSQL))
	assert.Equal(t, "data.csv", FileName("data", types.FormatXLSX))
	assert.Equal(t, "text/csv; charset=utf-8", ContentType(types.FormatXLSX))
	assert.Equal(t, "application/json; charset=utf-8", ContentType(""))
}

