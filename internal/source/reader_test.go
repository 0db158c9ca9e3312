package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"csv-pump/internal/schema"
	"csv-pump/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadHeaderAndSample(t *testing.T) {
	path := writeTemp(t, "id,price,name\n1,9.99,widget\n2,3.50,gadget\n")

	header, sample, err := source.ReadHeaderAndSample(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "price", "name"}, header)
	assert.Equal(t, []string{"1", "9.99", "widget"}, sample)
}

func TestReadHeaderAndSample_StripsBOM(t *testing.T) {
	path := writeTemp(t, "\uFEFFid,name\n1,a\n")

	header, _, err := source.ReadHeaderAndSample(path)
	require.NoError(t, err)
	assert.Equal(t, "id", header[0])
}

func TestReadHeaderAndSample_ShortSampleIsReturned(t *testing.T) {
	// Width mismatch is left to the schema builder.
	path := writeTemp(t, "a,b\n1\n")

	header, sample, err := source.ReadHeaderAndSample(path)
	require.NoError(t, err)
	assert.Len(t, header, 2)
	assert.Len(t, sample, 1)

	_, err = schema.Build("t", header, sample)
	assert.ErrorIs(t, err, schema.ErrMalformedInput)
}

func TestReadHeaderAndSample_Errors(t *testing.T) {
	_, _, err := source.ReadHeaderAndSample(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, schema.ErrMalformedInput)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = source.ReadHeaderAndSample(writeTemp(t, ""))
	assert.ErrorIs(t, err, schema.ErrMalformedInput)

	_, _, err = source.ReadHeaderAndSample(writeTemp(t, "id,name\n"))
	assert.ErrorIs(t, err, schema.ErrMalformedInput)
}

func TestEach_NameKeyedRecords(t *testing.T) {
	path := writeTemp(t, "id,name\n1,widget\n2,gadget\n")

	var got []source.Record
	header, err := source.Each(path, func(r source.Record) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, header)
	require.Len(t, got, 2)

	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, []string{"id", "name"}, got[0].Names)
	assert.Equal(t, map[string]interface{}{"id": "1", "name": "widget"}, got[0].Values)
	assert.Equal(t, 3, got[1].Line)
	assert.Equal(t, "gadget", got[1].Values["name"])
}

func TestEach_WidthMismatchIsMalformed(t *testing.T) {
	path := writeTemp(t, "id,name\n1,widget\n2\n")

	calls := 0
	_, err := source.Each(path, func(source.Record) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, schema.ErrMalformedInput)
	assert.Equal(t, 1, calls)
}

func TestEach_CallbackErrorStops(t *testing.T) {
	path := writeTemp(t, "id\n1\n2\n3\n")
	stop := assert.AnError

	calls := 0
	_, err := source.Each(path, func(source.Record) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestReadAllAndCountRows(t *testing.T) {
	path := writeTemp(t, "id,name\n1,widget\n2,gadget\n")

	header, rows, err := source.ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, header)
	assert.Equal(t, [][]string{{"1", "widget"}, {"2", "gadget"}}, rows)

	n, err := source.CountRows(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	require.NoError(t, source.WriteFile(path, []string{"id", "note"}, [][]string{{"1", "a, b"}, {"2", `say "hi"`}}))

	header, rows, err := source.ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "note"}, header)
	assert.Equal(t, [][]string{{"1", "a, b"}, {"2", `say "hi"`}}, rows)
}

func TestNewRecords(t *testing.T) {
	recs, err := source.NewRecords([]string{"id", "name"}, [][]string{{"1", "a"}, {"2", "b"}})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 3, recs[1].Line)
	assert.Equal(t, "b", recs[1].Values["name"])

	var seen []int
	require.NoError(t, recs.Each(func(r source.Record) error {
		seen = append(seen, r.Line)
		return nil
	}))
	assert.Equal(t, []int{2, 3}, seen)

	_, err = source.NewRecords([]string{"id", "name"}, [][]string{{"1"}})
	assert.ErrorIs(t, err, schema.ErrMalformedInput)
}

func TestFile_Each(t *testing.T) {
	f := source.File{Table: "t", Path: writeTemp(t, "id\n1\n2\n")}
	n := 0
	require.NoError(t, f.Each(func(source.Record) error { n++; return nil }))
	assert.Equal(t, 2, n)
}
