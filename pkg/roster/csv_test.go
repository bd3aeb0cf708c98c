package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImportCSV_Basic(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("email,name,company\nalice@example.com,Alice,Acme\nbob@example.com,Bob,Globex\n")

	r, err := ImportCSV(in)

	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
	require.Equal(t, "alice@example.com", r.At(0).Email)
	require.Equal(t, "Globex", r.At(1).Custom["company"])
	require.Equal(t, StatusPending, r.At(0).Status)
}

func TestImportCSV_HeaderCaseAndOrder(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("Company, NAME ,Email\nAcme,Alice,alice@example.com\n")

	r, err := ImportCSV(in)

	require.NoError(t, err)
	require.Equal(t, "alice@example.com", r.At(0).Email)
	require.Equal(t, "Alice", r.At(0).Name)
	require.Equal(t, "Acme", r.At(0).Custom["company"])
}

func TestImportCSV_ByteOrderMark(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("\ufeffemail,name\nalice@example.com,Alice\n")

	r, err := ImportCSV(in)

	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
}

func TestImportCSV_TrimsCellsAndSkipsBlankRows(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("email,name\n alice@example.com , Alice \n,\nbob@example.com,Bob\n")

	r, err := ImportCSV(in)

	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
	require.Equal(t, "alice@example.com", r.At(0).Email)
	require.Equal(t, "bob@example.com", r.At(1).Email)
}

func TestImportCSV_MissingHeaders(t *testing.T) {
	t.Parallel()

	_, err := ImportCSV(strings.NewReader("name,company\nAlice,Acme\n"))
	require.ErrorIs(t, err, ErrMissingHeader)
	require.Contains(t, err.Error(), "email")

	_, err = ImportCSV(strings.NewReader("email,company\na@example.com,Acme\n"))
	require.ErrorIs(t, err, ErrMissingHeader)
	require.Contains(t, err.Error(), "name")
}

func TestImportCSV_EmptyEmailRowReported(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("email,name\nalice@example.com,Alice\n,Bob\n")

	_, err := ImportCSV(in)

	require.ErrorIs(t, err, ErrInvalidEmail)
	require.Contains(t, err.Error(), "row 3")
}

func TestImportCSV_EmptyFile(t *testing.T) {
	t.Parallel()

	_, err := ImportCSV(strings.NewReader(""))

	require.ErrorIs(t, err, ErrImportFailed)
}

func TestImportCSV_GBK(t *testing.T) {
	t.Parallel()

	// "张三" in GBK is d5c5 c8fd.
	in := strings.NewReader("email,name\nzhang@example.com,\xd5\xc5\xc8\xfd\n")

	r, err := ImportCSV(in, WithCharset("gbk"))

	require.NoError(t, err)
	require.Equal(t, "张三", r.At(0).Name)
}

func TestImportCSV_UnknownCharset(t *testing.T) {
	t.Parallel()

	_, err := ImportCSV(strings.NewReader("email,name\n"), WithCharset("klingon-8"))

	require.ErrorIs(t, err, ErrUnknownCharset)
}

func TestExportCSV_ColumnsAndNoStatus(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Add("alice@example.com", "Alice", map[string]string{"company": "Acme"}))
	require.NoError(t, r.Add("bob@example.com", "Bob", nil))
	r.SetStatus(0, StatusSent)

	var out bytes.Buffer
	require.NoError(t, r.ExportCSV(&out, []string{"company"}))

	require.Equal(t,
		"email,name,company\n"+
			"alice@example.com,Alice,Acme\n"+
			"bob@example.com,Bob,\n",
		out.String())
	require.NotContains(t, out.String(), "sent")
}

func TestExportCSV_RoundTripGBK(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Add("zhang@example.com", "张三", map[string]string{"公司": "大公司"}))

	var out bytes.Buffer
	require.NoError(t, r.ExportCSV(&out, []string{"公司"}, WithCharset("gbk")))

	back, err := ImportCSV(&out, WithCharset("gbk"))
	require.NoError(t, err)
	require.Equal(t, "张三", back.At(0).Name)
	require.Equal(t, "大公司", back.At(0).Custom["公司"])
}
