package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the given files under root, creating parent directories as needed
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.c":             "",
		"include/stack.h":    "",
		"src/deep/lexer.c":   "",
		"README.md":          "",
		"src/notes.txt":      "",
		"src/upper.C":        "",
		".git/hooks/fake.c":  "",
		"build/.git/other.h": "",
	})

	files, err := Discover(root, DefaultExtensions, DefaultSkipDirs)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"main.c", "include/stack.h", "src/deep/lexer.c"},
		relPaths(t, root, files))
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.go":  "",
		"b.cpp": "",
		"c.c":   "",
	})

	files, err := Discover(root, []string{".go", ".cpp"}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.go", "b.cpp"}, relPaths(t, root, files))
}

func TestDiscover_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := Discover(filepath.Join(t.TempDir(), "nope"), DefaultExtensions, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	text := `int myValue = getUserName();
/* HTTPResponse stays, parseHTTPResponse goes */
const char *s = "printfLike";
#define MAX_SIZE 10
int my_value2, x2Y, _privateThing, 9badToken;
myValue++;`

	assert.Equal(t,
		[]string{"_privateThing", "getUserName", "myValue", "parseHTTPResponse", "printfLike"},
		Candidates(text))
}

func TestScan_UnionSortedAcrossFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.c": "int zetaValue; int alphaValue;",
		"b.h": "int alphaValue; int betaValue;",
	})

	var calls []int
	candidates, err := Scan(
		[]string{filepath.Join(root, "a.c"), filepath.Join(root, "b.h")},
		func(current, total int, _ string) {
			assert.Equal(t, 2, total)
			calls = append(calls, current)
		})
	require.NoError(t, err)

	assert.Equal(t, []string{"alphaValue", "betaValue", "zetaValue"}, candidates)
	assert.Equal(t, []int{1, 2}, calls)
}

func TestScan_NotText(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "blob.c")
	require.NoError(t, os.WriteFile(path, []byte{'a', 'B', 0xff, 0xfe}, 0o644))

	_, err := Scan([]string{path}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotText)
}

func TestScan_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Scan([]string{filepath.Join(t.TempDir(), "gone.c")}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildMapping(t *testing.T) {
	t.Parallel()

	m := BuildMapping([]string{"HTTPResponse", "getUserName", "my_value", "myValue"})

	assert.Equal(t, Mapping{
		{From: "getUserName", To: "get_user_name"},
		{From: "myValue", To: "my_value"},
	}, m)
	assert.Equal(t, map[string]string{
		"getUserName": "get_user_name",
		"myValue":     "my_value",
	}, m.Lookup())
}

func TestBuildMapping_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, BuildMapping(nil))
	assert.Empty(t, BuildMapping([]string{"snake_case", "UPPER"}))
}

func TestReplaceText_WholeWordOnly(t *testing.T) {
	t.Parallel()

	lookup := map[string]string{"get": "fetch"}
	out, n := ReplaceText("get(); getValue(); forget; get_x; x.get;", lookup)

	assert.Equal(t, "fetch(); getValue(); forget; get_x; x.fetch;", out)
	assert.Equal(t, 2, n)
}

func TestReplaceText_CaseSensitive(t *testing.T) {
	t.Parallel()

	out, n := ReplaceText("myValue MyValue MYVALUE", map[string]string{"myValue": "my_value"})
	assert.Equal(t, "my_value MyValue MYVALUE", out)
	assert.Equal(t, 1, n)
}

func TestReplaceText_NoDoubleRewrite(t *testing.T) {
	t.Parallel()

	// "aB" becomes "a_b", which is itself a key; it must not be rewritten again.
	lookup := map[string]string{"aB": "a_b", "a_b": "wrong"}
	out, n := ReplaceText("aB a_b", lookup)

	assert.Equal(t, "a_b wrong", out)
	assert.Equal(t, 2, n)
}

func TestReplaceText_EmptyLookup(t *testing.T) {
	t.Parallel()

	out, n := ReplaceText("myValue", nil)
	assert.Equal(t, "myValue", out)
	assert.Zero(t, n)
}

func TestApply(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.c":  "int myValue = getUserName();\n",
		"other.c": "int plain;\n",
	})
	mainPath := filepath.Join(root, "main.c")
	otherPath := filepath.Join(root, "other.c")
	require.NoError(t, os.Chmod(mainPath, 0o600))

	m := BuildMapping([]string{"getUserName", "myValue"})
	stats, err := Apply([]string{mainPath, otherPath}, m, nil)
	require.NoError(t, err)

	assert.Equal(t, &ApplyStats{FilesWritten: 1, Replacements: 2}, stats)
	assert.Equal(t, "int my_value = get_user_name();\n", readFile(t, mainPath))
	assert.Equal(t, "int plain;\n", readFile(t, otherPath))

	info, err := os.Stat(mainPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestApply_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.c": "int fooBar;\n"})
	first := filepath.Join(root, "a.c")
	missing := filepath.Join(root, "missing.c")

	m := BuildMapping([]string{"fooBar"})
	stats, err := Apply([]string{first, missing}, m, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Files before the failure stay rewritten.
	assert.Equal(t, 1, stats.FilesWritten)
	assert.Equal(t, "int foo_bar;\n", readFile(t, first))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.c": "int fooBar;\n",
		"b.c": "int baz;\n",
	})
	a := filepath.Join(root, "a.c")

	changes, err := Preview([]string{a, filepath.Join(root, "b.c")}, BuildMapping([]string{"fooBar"}))
	require.NoError(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, FileChange{Path: a, Before: "int fooBar;\n", After: "int foo_bar;\n", Count: 1}, changes[0])
	assert.Equal(t, "int fooBar;\n", readFile(t, a))
}
