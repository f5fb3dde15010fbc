package cli

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectkit/internal/config"
	"selectkit/internal/selection"
)

const fruitYAML = `title: Fruit
items:
  - id: a
    label: Apple
  - id: b
    label: Banana
    disabled: true
  - id: c
    label: Cherry
`

// testEnv writes a config that logs into a temp dir and returns its path
func testEnv(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	cfgPath = filepath.Join(dir, config.FileName)
	body := "[log]\nfile = \"" + filepath.ToSlash(filepath.Join(dir, "test.log")) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return dir, cfgPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want selection.Request
	}{
		{"select:a,b", selection.Select{IDs: []string{"a", "b"}}},
		{" select: a , ,b ", selection.Select{IDs: []string{"a", "b"}}},
		{"deselect:a", selection.Deselect{IDs: []string{"a"}}},
		{"toggle:x", selection.Toggle{ID: "x"}},
		{"all", selection.SelectAll{}},
		{"ALL", selection.SelectAll{}},
		{"clear", selection.Clear{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAction(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	for _, in := range []string{"", "select", "select:", "deselect:", "toggle:a,b", "toggle", "all:a", "clear:x", "invert"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseAction(in)
			assert.Error(t, err)
		})
	}
}

func TestSummaryCommand(t *testing.T) {
	dir, cfg := testEnv(t)
	cat := filepath.Join(dir, "fruit.yaml")
	require.NoError(t, os.WriteFile(cat, []byte(fruitYAML), 0o644))

	out, err := run(t, "summary", cat, "--config", cfg,
		"--do", "select:a,b", "--do", "toggle:b", "--do", "all", "--do", "deselect:c")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "select a -> [a]")
	assert.Contains(t, lines[1], "no change")
	assert.Contains(t, lines[2], "selectAll -> [a,c]")
	assert.Contains(t, lines[3], "deselect c -> [a]")
	assert.Equal(t, "selected=1 total=3 enabled=2 enabledSelected=1 state=partial ids=[a]", lines[4])
}

func TestSummarySingleMode(t *testing.T) {
	dir, cfg := testEnv(t)
	cat := filepath.Join(dir, "fruit.yaml")
	require.NoError(t, os.WriteFile(cat, []byte(fruitYAML), 0o644))

	out, err := run(t, "summary", cat, "--config", cfg, "--mode", "single",
		"--do", "select:c,a", "--do", "all")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "select c,a -> [c]")
	assert.Contains(t, lines[1], "no change")
	assert.Equal(t, "selected=1 total=3 enabled=2 enabledSelected=1 state=partial ids=[c]", lines[2])
}

func TestSummaryRangeCatalog(t *testing.T) {
	_, cfg := testEnv(t)

	out, err := run(t, "summary", "--config", cfg, "--count", "5", "--disable", "1", "--do", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "selectAll -> [0,2,3,4]")
	assert.Contains(t, out, "selected=4 total=5 enabled=4 enabledSelected=4 state=all")
}

func TestSummaryIgnoresDisabledOutsideCatalog(t *testing.T) {
	_, cfg := testEnv(t)

	out, err := run(t, "summary", "--config", cfg, "--count", "3", "--disable", "zz", "--do", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "selected=3 total=3 enabled=3 enabledSelected=3 state=all ids=[0,1,2]")
}

func TestSummaryInitialSelection(t *testing.T) {
	_, cfg := testEnv(t)

	out, err := run(t, "summary", "--config", cfg, "--count", "3", "--mode", "single", "--select", "2,0")
	require.NoError(t, err)
	assert.Equal(t, "selected=1 total=3 enabled=3 enabledSelected=1 state=partial ids=[0]\n", out)
}

func TestSummaryErrors(t *testing.T) {
	_, cfg := testEnv(t)

	_, err := run(t, "summary", "--config", cfg)
	assert.ErrorIs(t, err, errNoCatalog)

	_, err = run(t, "summary", "--config", cfg, "--count", "3", "--mode", "sometimes")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "summary", "--config", cfg, "--count", "3", "--do", "invert")
	assert.ErrorContains(t, err, "unknown action")
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	out, err := run(t, "init", "--config", path, "--mode", "single")
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+path+"\n", out)

	loaded, err := config.NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, selection.Single, loaded.SelectionMode())

	_, err = run(t, "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "init", "--config", path, "--force")
	require.NoError(t, err)
	loaded, err = config.NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, selection.Multi, loaded.SelectionMode())
}

func TestWriteIDs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeIDs(&buf, []string{"a", "b"}, false))
	assert.Equal(t, "a\nb\n", buf.String())

	buf.Reset()
	require.NoError(t, writeIDs(&buf, []string{"a", "b"}, true))
	assert.Equal(t, "a\x00b\x00", buf.String())
}
