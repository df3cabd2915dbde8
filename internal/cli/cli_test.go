// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eviltwin "github.com/complex-gh/eviltwin_go"
)

// run executes the CLI with args and returns stdout and stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, ShareFormatJSON, cfg.ShareFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Passphrase)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	cfg.OutputFormat = "table"
	assert.Error(t, cfg.Validate())

	cfg = NewConfig()
	cfg.ShareFormat = "hex"
	assert.Error(t, cfg.Validate())
}

func TestSplitCombine(t *testing.T) {
	for _, format := range []string{ShareFormatJSON, ShareFormatBinary} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			a := filepath.Join(dir, "twin1")
			b := filepath.Join(dir, "twin2")
			out := filepath.Join(dir, "message")

			stdout, _, err := run(t, "attack at dawn", "split", "-a", a, "-b", b, "--format", format)
			require.NoError(t, err)
			assert.Contains(t, stdout, "Split 14 bytes")

			// Reverse order on purpose
			_, _, err = run(t, "", "combine", b, a, "--out", out)
			require.NoError(t, err)

			got, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, "attack at dawn", string(got))
		})
	}
}

func TestSplit_FromFileToStdout(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	require.NoError(t, os.WriteFile(in, []byte{0x00, 0xFF, 0x7F}, 0o600))
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")

	stdout, _, err := run(t, "", "-o", "json", "split", "--in", in, "-a", a, "-b", b)
	require.NoError(t, err)

	var result SplitResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, 3, result.Bytes)
	assert.Equal(t, ShareFormatJSON, result.Format)

	data, err := os.ReadFile(a)
	require.NoError(t, err)
	var share eviltwin.Share
	require.NoError(t, json.Unmarshal(data, &share))
	assert.Equal(t, 1, share.Twin)
	assert.Equal(t, 3, share.Count)

	stdout, _, err = run(t, "", "combine", a, b)
	require.NoError(t, err)
	assert.Equal(t, string([]byte{0x00, 0xFF, 0x7F}), stdout)
}

func TestSplit_PassphraseIsReproducible(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvPassphrase, "twins")

	contents := make([][]byte, 0, 4)
	for i := 0; i < 2; i++ {
		a := filepath.Join(dir, "a"+string(rune('0'+i)))
		b := filepath.Join(dir, "b"+string(rune('0'+i)))
		_, _, err := run(t, "same input", "split", "-a", a, "-b", b, "--salt", "s")
		require.NoError(t, err)
		for _, p := range []string{a, b} {
			data, err := os.ReadFile(p)
			require.NoError(t, err)
			contents = append(contents, data)
		}
	}
	assert.Equal(t, contents[0], contents[2])
	assert.Equal(t, contents[1], contents[3])
}

func TestSplit_VerboseRedactsMessage(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := run(t, "top secret", "-v", "split",
		"-a", filepath.Join(dir, "a"), "-b", filepath.Join(dir, "b"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "message=[redacted]")
	assert.NotContains(t, stderr, "top secret")
}

func TestCombine_MismatchedShares(t *testing.T) {
	dir := t.TempDir()
	a1 := filepath.Join(dir, "a1")
	b1 := filepath.Join(dir, "b1")
	a2 := filepath.Join(dir, "a2")
	b2 := filepath.Join(dir, "b2")

	_, _, err := run(t, "short", "split", "-a", a1, "-b", b1)
	require.NoError(t, err)
	_, _, err = run(t, "much longer", "split", "-a", a2, "-b", b2)
	require.NoError(t, err)

	_, _, err = run(t, "", "combine", a1, b2)
	assert.ErrorIs(t, err, eviltwin.StatusErrLength)
}

func TestCombine_BadFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("not a share"), 0o600))

	_, _, err := run(t, "", "combine", bad, bad)
	assert.ErrorIs(t, err, eviltwin.StatusErrFormat)

	_, _, err = run(t, "", "combine", filepath.Join(dir, "missing"), bad)
	assert.Error(t, err)
}

func TestSplit_RequiresOutputs(t *testing.T) {
	_, _, err := run(t, "x", "split", "-a", filepath.Join(t.TempDir(), "a"))
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	stdout, _, err := run(t, "", "-o", "json", "inspect", "206770", "30658570")
	require.NoError(t, err)

	var result InspectResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, byte(5), result.Message)
	assert.Equal(t, []uint64{2, 5, 23, 29, 31}, result.A.Factors)
	assert.Equal(t, []uint64{2, 5, 37, 41, 43, 47}, result.B.Factors)
	assert.Greater(t, result.A.Candidates, 1)
	assert.Greater(t, result.B.Hypotheses, 1)

	stdout, _, err = run(t, "", "inspect", "6", "35")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not a valid pair")

	_, _, err = run(t, "", "inspect", "six", "35")
	assert.Error(t, err)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, _, err := run(t, "", "-o", "table", "version")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Version:    dev")

	stdout, _, err = run(t, "", "-o", "json", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"version": "dev"`)
}

func TestPrinter_PrintError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter("json", &buf).PrintError(eviltwin.StatusErrInvalid))
	assert.Contains(t, buf.String(), `"error"`)

	buf.Reset()
	require.NoError(t, NewPrinter("text", &buf).PrintError(eviltwin.StatusErrInvalid))
	assert.True(t, strings.HasPrefix(buf.String(), "Error: "))
}
