package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeHeaders(t *testing.T) {
	got := SanitizeHeaders([]string{
		"\uFEFFID",
		"  Candidate State ",
		"Años Experience",
		"Résumé",
		"Sector",
	})

	assert.Equal(t, []string{"ID", "Candidate State", "Aos Experience", "Rsum", "Sector"}, got)
}

func TestNewValue(t *testing.T) {
	assert.True(t, NewValue("").IsMissing())
	assert.True(t, NewValue("   ").IsMissing())
	assert.False(t, NewValue("x").IsMissing())
	assert.Equal(t, "x", NewValue("x").String())
	assert.Equal(t, "", Missing.String())
}

func TestValueFloat(t *testing.T) {
	f, ok := NewValue(" 42.5 ").Float()
	require.True(t, ok)
	assert.Equal(t, 42.5, f)

	_, ok = NewValue("n/a").Float()
	assert.False(t, ok)

	_, ok = Missing.Float()
	assert.False(t, ok)
}

func TestRowGetAbsentColumn(t *testing.T) {
	row := Row{"A": NewValue("1")}

	assert.True(t, row.Get("B").IsMissing())
	assert.Equal(t, "1", row.Get("A").String())
}

func TestKeepColumns(t *testing.T) {
	tbl := New([]string{"ID", "State", "Sector"})
	tbl.Rows = append(tbl.Rows, Row{
		"ID":     NewValue("1"),
		"State":  NewValue("hired"),
		"Sector": NewValue("IT"),
	})

	tbl.KeepColumns([]string{"Sector", "ID", "Not There"})

	assert.Equal(t, []string{"ID", "Sector"}, tbl.Columns)
	assert.True(t, tbl.Rows[0].Get("State").IsMissing())
	assert.Equal(t, "IT", tbl.Rows[0].Get("Sector").String())
}

func TestGroupBy(t *testing.T) {
	tbl := New([]string{"ID"})
	for _, id := range []string{"b", "a", "b", ""} {
		row := make(Row)
		if id != "" {
			row.Set("ID", NewValue(id))
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	groups := tbl.GroupBy("ID")

	require.Len(t, groups, 3)
	assert.Equal(t, "b", groups[0].Key)
	assert.Equal(t, []int{0, 2}, groups[0].Rows)
	assert.Equal(t, "a", groups[1].Key)
	assert.Equal(t, "", groups[2].Key)
	assert.Equal(t, []int{3}, groups[2].Rows)
}

func TestLoadAndWrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.csv")
	output := filepath.Join(dir, "output.csv")

	raw := "\uFEFFID , Candidate State,Sector\n1,hired,\n2,,IT\n"
	require.NoError(t, os.WriteFile(input, []byte(raw), 0o644))

	tbl, err := Load(input)
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Candidate State", "Sector"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "hired", tbl.Rows[0].Get("Candidate State").String())
	assert.True(t, tbl.Rows[0].Get("Sector").IsMissing())
	assert.True(t, tbl.Rows[1].Get("Candidate State").IsMissing())

	require.NoError(t, tbl.Write(output))

	reread, err := Load(output)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns, reread.Columns)
	require.Equal(t, tbl.Len(), reread.Len())
	assert.Equal(t, "IT", reread.Rows[1].Get("Sector").String())
}

func TestLoadShortRecord(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "short.csv")

	require.NoError(t, os.WriteFile(input, []byte("ID,State\n1\n"), 0o644))

	tbl, err := Load(input)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "1", tbl.Rows[0].Get("ID").String())
	assert.True(t, tbl.Rows[0].Get("State").IsMissing())
}

func TestClone(t *testing.T) {
	tbl := New([]string{"ID"})
	tbl.Rows = append(tbl.Rows, Row{"ID": NewValue("1")})

	cp := tbl.Clone()
	cp.Rows[0].Set("ID", NewValue("2"))

	assert.Equal(t, "1", tbl.Rows[0].Get("ID").String())
	assert.Equal(t, "2", cp.Rows[0].Get("ID").String())
}
