package workspace

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeduden/denojsonlint/internal/config"
	"github.com/jeduden/denojsonlint/internal/log"
)

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

func paths(docs []*Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Path)
	}
	return out
}

func TestLoad_SingleDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"deno.json": file(`{"lock": false}`),
	}
	docs, err := (&Loader{FS: fsys}).Load("")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "deno.json", docs[0].Path)
	assert.True(t, docs[0].IsRoot())
	assert.Nil(t, docs[0].Config)
	assert.Equal(t, `{"lock": false}`, string(docs[0].Source))
}

func TestLoad_DefaultNameOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"deno.jsonc": file(`{}`),
	}
	docs, err := (&Loader{FS: fsys}).Load(".")
	require.NoError(t, err)
	assert.Equal(t, []string{"deno.jsonc"}, paths(docs))

	fsys["deno.json"] = file(`{}`)
	docs, err = (&Loader{FS: fsys}).Load(".")
	require.NoError(t, err)
	assert.Equal(t, []string{"deno.json"}, paths(docs))
}

func TestLoad_NotFound(t *testing.T) {
	fsys := fstest.MapFS{"README.md": file("# hi\n")}

	_, err := (&Loader{FS: fsys}).Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = (&Loader{FS: fsys}).Load("missing.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoad_ExplicitFile(t *testing.T) {
	fsys := fstest.MapFS{
		"configs/custom.jsonc": file(`// comment
{"lock": true,}`),
	}
	docs, err := (&Loader{FS: fsys, Base: "/repo"}).Load("configs/custom.jsonc")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, filepath.Join("/repo", "configs", "custom.jsonc"), docs[0].Name)
}

func TestLoad_LintBlock(t *testing.T) {
	fsys := fstest.MapFS{
		"deno.jsonc": file(`{
  // policy
  "deno-json-lint": {"rules": {"ban-allow-all": "warn",}},
}`),
	}
	docs, err := (&Loader{FS: fsys}).Load("")
	require.NoError(t, err)
	require.NotNil(t, docs[0].Config)
	assert.Equal(t, config.Warn, docs[0].Config.Rules["ban-allow-all"])
}

func TestLoad_InvalidLintBlock(t *testing.T) {
	fsys := fstest.MapFS{
		"deno.json": file(`{"deno-json-lint": {"rules": {"ban-allow-all": "loud"}}}`),
	}
	_, err := (&Loader{FS: fsys}).Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config block")
}

func TestLoad_UnknownRule(t *testing.T) {
	fsys := fstest.MapFS{
		"deno.json": file(`{"deno-json-lint": {"rules": {"ban-allow-al": "off"}}}`),
	}
	l := &Loader{FS: fsys, KnownRules: []string{"ban-allow-all", "require-lockfile"}}
	_, err := l.Load("")
	require.Error(t, err)

	var unknown *config.UnknownRuleError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "ban-allow-all", unknown.Suggestion)
}

func TestLoad_UnparseableRoot(t *testing.T) {
	fsys := fstest.MapFS{"deno.json": file(`{"lock": `)}
	docs, err := (&Loader{FS: fsys}).Load("")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Nil(t, docs[0].Config)
}

func TestLoad_Members(t *testing.T) {
	tests := []struct {
		name      string
		workspace string
		want      []string
	}{
		{"bare list", `["./a", "b"]`, []string{"deno.json", "a/deno.json", "b/deno.jsonc"}},
		{"members object", `{"members": ["b", "./a"]}`, []string{"deno.json", "b/deno.jsonc", "a/deno.json"}},
		{"glob", `["packages/*"]`, []string{"deno.json", "packages/x/deno.json", "packages/y/deno.json"}},
		{"missing member", `["a", "nope"]`, []string{"deno.json", "a/deno.json"}},
		{"duplicates", `["a", "./a", "a/deno.json"]`, []string{"deno.json", "a/deno.json"}},
		{"escapes root", `["../other"]`, []string{"deno.json"}},
		{"absolute path", `["/a", "b"]`, []string{"deno.json", "b/deno.jsonc"}},
		{"not a list", `"a"`, []string{"deno.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"deno.json":            file(`{"workspace": ` + tt.workspace + `}`),
				"a/deno.json":          file(`{}`),
				"b/deno.jsonc":         file(`{}`),
				"packages/x/deno.json": file(`{}`),
				"packages/y/deno.json": file(`{}`),
				"packages/z/README.md": file(`# no config`),
			}
			docs, err := (&Loader{FS: fsys}).Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.want, paths(docs))
			for _, d := range docs[1:] {
				assert.Same(t, docs[0], d.Parent)
				assert.False(t, d.IsRoot())
			}
		})
	}
}

func TestLoad_AbsoluteMemberIsLogged(t *testing.T) {
	var buf bytes.Buffer
	fsys := fstest.MapFS{
		"deno.json":   file(`{"workspace": ["/a"]}`),
		"a/deno.json": file(`{}`),
	}
	docs, err := (&Loader{FS: fsys, Logger: &log.Logger{Enabled: true, W: &buf}}).Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"deno.json"}, paths(docs))
	assert.Contains(t, buf.String(), "member /a: absolute paths are not allowed")
}

func TestLoad_MembersRelativeToRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"app/deno.json":     file(`{"workspace": ["./lib"]}`),
		"app/lib/deno.json": file(`{}`),
	}
	docs, err := (&Loader{FS: fsys}).Load("app")
	require.NoError(t, err)
	assert.Equal(t, []string{"app/deno.json", "app/lib/deno.json"}, paths(docs))
}

func TestLoad_Ignore(t *testing.T) {
	fsys := fstest.MapFS{
		"deno.json":            file(`{"workspace": ["packages/*", "tools"]}`),
		"packages/x/deno.json": file(`{}`),
		"packages/y/deno.json": file(`{}`),
		"tools/deno.json":      file(`{}`),
	}
	docs, err := (&Loader{FS: fsys, Ignore: []string{"packages/y"}}).Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"deno.json", "packages/x/deno.json", "tools/deno.json"}, paths(docs))

	docs, err = (&Loader{FS: fsys, Ignore: []string{"packages/**"}}).Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"deno.json", "tools/deno.json"}, paths(docs))
}

func TestLoad_UnparseableMemberSkipped(t *testing.T) {
	var buf bytes.Buffer
	fsys := fstest.MapFS{
		"deno.json":   file(`{"workspace": ["a", "b"]}`),
		"a/deno.json": file(`{`),
		"b/deno.json": file(`{}`),
	}
	l := &Loader{FS: fsys, Logger: &log.Logger{Enabled: true, W: &buf}}
	docs, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"deno.json", "b/deno.json"}, paths(docs))
	assert.Contains(t, buf.String(), "member a/deno.json: skipped")
}

func TestLoad_MembersAreNotExpandedRecursively(t *testing.T) {
	fsys := fstest.MapFS{
		"deno.json":     file(`{"workspace": ["a"]}`),
		"a/deno.json":   file(`{"workspace": ["b"]}`),
		"a/b/deno.json": file(`{}`),
	}
	docs, err := (&Loader{FS: fsys}).Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"deno.json", "a/deno.json"}, paths(docs))
}

func TestDocument_Effective(t *testing.T) {
	root := &Document{Config: &config.Config{Rules: map[string]config.Level{
		"ban-allow-all":      config.Off,
		"require-allow-list": config.Warn,
	}}}
	member := &Document{Parent: root, Config: &config.Config{Rules: map[string]config.Level{
		"ban-allow-all": config.Error,
	}}}
	bare := &Document{Parent: root}

	assert.Same(t, root.Config, root.Effective())
	assert.Equal(t, map[string]config.Level{
		"ban-allow-all":      config.Error,
		"require-allow-list": config.Warn,
	}, member.Effective().Rules)
	assert.Equal(t, root.Config.Rules, bare.Effective().Rules)
}
