package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"numclass/internal/config"
)

// execute runs the CLI with args against a config path inside a temp dir
// and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "numclass.yaml")
	return executeWithConfig(t, cfgPath, args...)
}

func executeWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func outputLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestRootDefaultRun(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 100)
	assert.Equal(t, "Prime Number: 2", lines[0])
	assert.Equal(t, "Odd Number: 1, Divisors: [1]", lines[25])
	assert.Equal(t, "Even Number: 4, Divisors: [1, 2, 4]", lines[51])
	assert.Equal(t, "Even Number: 100, Divisors: [1, 2, 4, 5, 10, 20, 25, 50, 100]", lines[99])
}

func TestClassifyRangeFlags(t *testing.T) {
	out, err := execute(t, "classify", "--lower", "8", "--upper", "12")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Prime Number: 11",
		"Odd Number: 9, Divisors: [1, 3, 9]",
		"Even Number: 8, Divisors: [1, 2, 4, 8]",
		"Even Number: 10, Divisors: [1, 2, 5, 10]",
		"Even Number: 12, Divisors: [1, 2, 3, 4, 6, 12]",
	}, outputLines(out))
}

func TestRootRangeFlags(t *testing.T) {
	out, err := execute(t, "--lower=-1", "--upper=1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Odd Number: -1, Divisors: []",
		"Odd Number: 1, Divisors: [1]",
		"Even Number: 0, Divisors: []",
	}, outputLines(out))
}

func TestClassifyInvertedRange(t *testing.T) {
	out, err := execute(t, "classify", "--lower", "10", "--upper", "5")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestClassifyJSON(t *testing.T) {
	out, err := execute(t, "classify", "--upper", "10", "--format", "json")
	require.NoError(t, err)

	var decoded map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded["primes"], 4)
	assert.Len(t, decoded["odds"], 2)
	assert.Len(t, decoded["evens"], 4)
}

func TestClassifyUnknownFormat(t *testing.T) {
	_, err := execute(t, "classify", "--format", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestClassifyFromConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "numclass.yaml")
	cfg := config.DefaultConfig()
	cfg.Range = config.RangeConfig{Lower: 20, Upper: 23}
	require.NoError(t, cfg.Save(cfgPath))

	out, err := executeWithConfig(t, cfgPath)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Prime Number: 23",
		"Odd Number: 21, Divisors: [1, 3, 7, 21]",
		"Even Number: 20, Divisors: [1, 2, 4, 5, 10, 20]",
		"Even Number: 22, Divisors: [1, 2, 11, 22]",
	}, outputLines(out))

	// Flags win over the file.
	out, err = executeWithConfig(t, cfgPath, "--upper", "20")
	require.NoError(t, err)
	assert.Equal(t, []string{"Even Number: 20, Divisors: [1, 2, 4, 5, 10, 20]"}, outputLines(out))
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "12", "13", "--", "-3")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Even Number: 12, Divisors: [1, 2, 3, 4, 6, 12]",
		"Prime Number: 13",
		"Odd Number: -3, Divisors: []",
	}, outputLines(out))
}

func TestCheckInvalidInteger(t *testing.T) {
	_, err := execute(t, "check", "twelve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid integer "twelve"`)
}

func TestCheckRequiresArgs(t *testing.T) {
	_, err := execute(t, "check")
	require.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out", "numclass.yaml")

	out, err := execute(t, "config", "init", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+target)

	_, err = os.Stat(target)
	require.NoError(t, err)

	_, err = execute(t, "config", "init", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", target, "--force")
	require.NoError(t, err)

	out, err = executeWithConfig(t, target, "config", "show")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, *config.DefaultConfig(), shown)
}

func TestConfigShowReflectsFlags(t *testing.T) {
	out, err := execute(t, "config", "show", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "format: yaml")
}

func TestConfigSchema(t *testing.T) {
	out, err := execute(t, "config", "schema")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, out, "lower")
}

func TestMalformedConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "numclass.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("range: [oops"), 0644))

	_, err := executeWithConfig(t, cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfigInitReplacesBrokenFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "numclass.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("range: [oops"), 0644))

	_, err := executeWithConfig(t, cfgPath, "config", "init", cfgPath, "--force")
	require.NoError(t, err)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	out, err := executeWithConfig(t, cfgPath, "--upper", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Prime Number: 2",
		"Prime Number: 3",
		"Odd Number: 1, Divisors: [1]",
	}, outputLines(out))
}

func TestFormatFlagIsNormalized(t *testing.T) {
	out, err := execute(t, "check", "--format", " JSON ", "4")
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "even", decoded[0]["kind"])
}

func TestCheckJSONKeepsEmptyDivisors(t *testing.T) {
	out, err := execute(t, "check", "--format", "json", "--", "-3", "0")
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, []interface{}{}, decoded[0]["divisors"])
	assert.Equal(t, []interface{}{}, decoded[1]["divisors"])
}
