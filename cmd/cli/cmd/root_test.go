package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tariff-compare/core/catalog"
	"tariff-compare/internal/errors"
)

// writeConfig creates a config that keeps the store inside a temp dir
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := map[string]interface{}{
		"store":   map[string]string{"backend": "file", "path": filepath.Join(dir, "store.json")},
		"output":  map[string]interface{}{"no_color": true, "currency": "EUR", "default_format": "cli"},
		"logging": map[string]string{"level": "error", "format": "console", "output": "stderr"},
	}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRankCSV(t *testing.T) {
	cfg := writeConfig(t)

	out, _, err := run(t, cfg, "rank", "--quantity", "100", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1+catalog.DefaultCount)
	assert.True(t, strings.HasPrefix(lines[1], "100,1,"))
}

func TestRankRequiresQuantity(t *testing.T) {
	cfg := writeConfig(t)

	_, _, err := run(t, cfg, "rank")
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, _, err = run(t, cfg, "rank", "-q", "lots")
	assert.True(t, errors.IsType(err, errors.TypeFormat))

	_, _, err = run(t, cfg, "rank", "-q", "100", "-f", "pdf")
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestLadderJSON(t *testing.T) {
	cfg := writeConfig(t)

	out, _, err := run(t, cfg, "ladder", "--format", "json")
	require.NoError(t, err)

	var report struct {
		Levels []struct {
			Quantity    float64           `json:"quantity"`
			RankedPlans []json.RawMessage `json:"rankedPlans"`
		} `json:"levels"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Levels, 15)
	assert.Len(t, report.Levels[0].RankedPlans, catalog.DefaultCount)
}

func TestVendorsLifecycle(t *testing.T) {
	cfg := writeConfig(t)

	out, _, err := run(t, cfg, "vendors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no custom vendors")

	out, _, err = run(t, cfg, "vendors", "add", "--vendor", "Kvarn", "--plan", "Fast", "--fee", "0", "--rate", "0.01")
	require.NoError(t, err)
	assert.Contains(t, out, "added Kvarn / Fast")

	out, _, err = run(t, cfg, "rank", "-q", "100", "-f", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2+catalog.DefaultCount)
	assert.Equal(t, "100,1,Kvarn,Fast,0,0.01,,1.00", lines[1])

	out, _, err = run(t, cfg, "vendors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Kvarn")

	_, _, err = run(t, cfg, "vendors", "remove", "4")
	assert.True(t, errors.IsType(err, errors.TypeNotFound))

	out, _, err = run(t, cfg, "vendors", "remove", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "removed Kvarn / Fast")

	out, _, err = run(t, cfg, "vendors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no custom vendors")
}

func TestVendorsEdit(t *testing.T) {
	cfg := writeConfig(t)

	for _, plan := range []string{"Fast", "Flex"} {
		_, _, err := run(t, cfg, "vendors", "add", "--vendor", "Kvarn", "--plan", plan, "--fee", "1", "--rate", "0.1")
		require.NoError(t, err)
	}

	out, _, err := run(t, cfg, "vendors", "edit", "0", "--fee", "3.5")
	require.NoError(t, err)
	assert.Contains(t, out, "replaced Kvarn / Fast with Kvarn / Fast")

	out, _, err = run(t, cfg, "vendors", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, "Fast")
	assert.Contains(t, last, "3.5")
	assert.Contains(t, last, "0.1")

	tests := []struct {
		name     string
		args     []string
		wantType errors.Type
	}{
		{name: "out of range", args: []string{"vendors", "edit", "7", "--fee", "1"}, wantType: errors.TypeNotFound},
		{name: "bad index", args: []string{"vendors", "edit", "x"}, wantType: errors.TypeInput},
		{name: "bad fee", args: []string{"vendors", "edit", "0", "--fee", "ten"}, wantType: errors.TypeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, cfg, tt.args...)
			assert.True(t, errors.IsType(err, tt.wantType), "%v", err)
		})
	}
}

func TestVendorsAddRejectsBadInput(t *testing.T) {
	cfg := writeConfig(t)

	_, _, err := run(t, cfg, "vendors", "add", "--vendor", "Kvarn", "--plan", "Fast", "--fee", "ten", "--rate", "0.1")
	assert.True(t, errors.IsType(err, errors.TypeFormat))

	_, _, err = run(t, cfg, "vendors", "add", "--plan", "Fast", "--fee", "1", "--rate", "0.1")
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestImport(t *testing.T) {
	cfg := writeConfig(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "vendors.csv")
	require.NoError(t, os.WriteFile(file, []byte("v,p,f,r,l\nKvarn,Fast,1,0.1,\nKvarn,Flex,2,0.2,\n"), 0644))

	out, _, err := run(t, cfg, "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "2 plans in "+file)
	assert.Contains(t, out, "2 plans parsed")

	out, _, err = run(t, cfg, "vendors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no custom vendors")

	out, _, err = run(t, cfg, "import", file, "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "saved 2 plans")

	out, _, err = run(t, cfg, "vendors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Flex")

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("v,p,f\n"), 0644))
	_, _, err = run(t, cfg, "import", bad, "--save")
	assert.True(t, errors.IsType(err, errors.TypeFormat))
}

func TestDefaults(t *testing.T) {
	cfg := writeConfig(t)

	out, _, err := run(t, cfg, "defaults")
	require.NoError(t, err)
	for _, p := range catalog.Defaults() {
		assert.Contains(t, out, p.VendorName)
	}
}

func TestVersionAndConfigShow(t *testing.T) {
	cfg := writeConfig(t)

	out, _, err := run(t, cfg, "version")
	require.NoError(t, err)
	assert.Equal(t, "tariffs version "+Version+"\n", out)

	out, _, err = run(t, cfg, "config", "show")
	require.NoError(t, err)
	var shown struct {
		Store struct {
			Backend string `json:"backend"`
		} `json:"store"`
		Output struct {
			NoColor bool `json:"no_color"`
		} `json:"output"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "file", shown.Store.Backend)
	assert.True(t, shown.Output.NoColor)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	out, _, err := run(t, path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	out, _, err = run(t, path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"currency": "EUR"`)

	_, _, err = run(t, path, "config", "init")
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, _, err = run(t, path, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with context",
			err:  errors.Format(errors.MsgInvalidNumber).WithContext("value", "ten").WithContext("field", "fee"),
			want: "✗ [FORMAT_ERROR] invalid numeric value (field=fee, value=ten)\n",
		},
		{
			name: "plain",
			err:  errors.Input("quantity is required"),
			want: "✗ [INPUT_ERROR] quantity is required\n",
		},
	}

	t.Setenv("NO_COLOR", "1")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCorruptStoreIsReported(t *testing.T) {
	cfg := writeConfig(t)
	storePath := filepath.Join(filepath.Dir(cfg), "store.json")
	require.NoError(t, os.WriteFile(storePath, []byte(`{"customVendors":"not json"}`), 0644))

	out, stderr, err := run(t, cfg, "rank", "-q", "100", "-f", "csv")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1+catalog.DefaultCount)
	assert.Contains(t, stderr, "could not be loaded")
	assert.Contains(t, stderr, "corrupt")
}

func TestAddRepairsCorruptStoreFile(t *testing.T) {
	cfg := writeConfig(t)
	storePath := filepath.Join(filepath.Dir(cfg), "store.json")
	require.NoError(t, os.WriteFile(storePath, []byte("{broken"), 0644))

	_, stderr, err := run(t, cfg, "vendors", "list")
	require.NoError(t, err)
	assert.Contains(t, stderr, "corrupt")

	out, _, err := run(t, cfg, "vendors", "add", "--vendor", "Kvarn", "--plan", "Fast", "--fee", "1", "--rate", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "added Kvarn / Fast")

	out, stderr, err = run(t, cfg, "vendors", "list")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, out, "Kvarn")
}
