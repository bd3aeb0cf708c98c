package placeholder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubstitute_AllBound(t *testing.T) {
	t.Parallel()

	out := Substitute("Dear {name}, welcome to {company}!", map[string]string{
		"name":    "Alice",
		"company": "Acme",
	})

	require.Equal(t, "Dear Alice, welcome to Acme!", out)
	require.False(t, strings.Contains(out, "{"))
}

func TestSubstitute_MissingStaysLiteral(t *testing.T) {
	t.Parallel()

	out := Substitute("Dear {name}, your plan is {plan}.", map[string]string{
		"name": "Bob",
	})

	require.Equal(t, "Dear Bob, your plan is {plan}.", out)
}

func TestSubstitute_NonRecursive(t *testing.T) {
	t.Parallel()

	out := Substitute("{a}", map[string]string{"a": "{b}", "b": "X"})

	require.Equal(t, "{b}", out)
}

func TestSubstitute_ValueNeverRescanned(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"greeting": "Hello {name}",
		"name":     "Alice",
	}

	out := Substitute("{greeting}, bye {name}", vars)

	require.Equal(t, "Hello {name}, bye Alice", out)
}

func TestSubstitute_RepeatedAndAdjacent(t *testing.T) {
	t.Parallel()

	out := Substitute("{x}{x} and {x}", map[string]string{"x": "ha"})

	require.Equal(t, "haha and ha", out)
}

func TestSubstitute_NoVars(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Hello {name}", Substitute("Hello {name}", nil))
	require.Equal(t, "", Substitute("", map[string]string{"a": "b"}))
}

func TestSubstitute_UnterminatedBrace(t *testing.T) {
	t.Parallel()

	out := Substitute("Hello {name", map[string]string{"name": "Alice"})

	require.Equal(t, "Hello {name", out)
}

func TestSubstitute_BraceBeforePlaceholder(t *testing.T) {
	t.Parallel()

	// The outer brace is literal; the inner {b} is still substituted.
	out := Substitute("{a{b}", map[string]string{"b": "X"})

	require.Equal(t, "{aX", out)
}

func TestSubstitute_DoubledBraces(t *testing.T) {
	t.Parallel()

	out := Substitute("{{a}}", map[string]string{"a": "X"})

	require.Equal(t, "{X}", out)
}

func TestSubstitute_EmptyBracesIgnored(t *testing.T) {
	t.Parallel()

	out := Substitute("{} and {x}", map[string]string{"": "nope", "x": "yes"})

	require.Equal(t, "{} and yes", out)
}

func TestSubstitute_Unicode(t *testing.T) {
	t.Parallel()

	out := Substitute("你好 {名字}!", map[string]string{"名字": "小明"})

	require.Equal(t, "你好 小明!", out)
}

func TestParams_OrderAndDedup(t *testing.T) {
	t.Parallel()

	params := Params("{b} then {a} then {b} again, finally {c}")

	require.Equal(t, []string{"b", "a", "c"}, params)
}

func TestParams_None(t *testing.T) {
	t.Parallel()

	require.Empty(t, Params("no placeholders here"))
	require.Empty(t, Params(""))
	require.Empty(t, Params("empty braces {} do not count"))
}

func TestParams_NoEscapeMechanism(t *testing.T) {
	t.Parallel()

	// Literal braces read as placeholder syntax. Known format limitation.
	params := Params("set {literal} in code")

	require.Equal(t, []string{"literal"}, params)
}

func TestParams_OpenBraceInsideIdentifier(t *testing.T) {
	t.Parallel()

	params := Params("a{b{c}d}")

	require.Equal(t, []string{"b{c"}, params)
}

func TestParamsMulti_Union(t *testing.T) {
	t.Parallel()

	params := ParamsMulti("Hi {name}", "Dear {name}, from {company}: {offer}")

	require.Equal(t, []string{"name", "company", "offer"}, params)
}

func TestParamsMulti_SubjectFirst(t *testing.T) {
	t.Parallel()

	params := ParamsMulti("{z}", "{a} {z}")

	require.Equal(t, []string{"z", "a"}, params)
}
