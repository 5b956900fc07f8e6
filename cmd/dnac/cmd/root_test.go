package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickenator/dna-codec/pkg/codec"
	"github.com/rickenator/dna-codec/pkg/config"
	"github.com/rickenator/dna-codec/pkg/dnafile"
	"github.com/rickenator/dna-codec/pkg/vault"
)

// knownFrame is EncodeString("HI") under the default markers.
const knownFrame = "ATGCATGCCCATCCCACCAGCAGCCATGCACTATGGCAGACAGCTTAATTAAGGCCGGCC"

// executeRoot runs the root command with fresh flag state and captures
// its combined output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetCommandState(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{}, args...))

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetCommandState clears flag state between Execute calls; cobra keeps
// the package-level commands alive across tests.
func resetCommandState(t *testing.T) {
	t.Helper()

	for _, name := range []string{"encode", "decode", "encode-file", "decode-file"} {
		resetFlag(t, rootCmd, name)
	}
	resetFlag(t, vaultPutCmd, "file")
	resetFlag(t, vaultRmCmd, "noconfirm")
	resetFlag(t, initCmd, "force")
	resetFlag(t, initCmd, "vault-path")
	resetFlag(t, serveCmd, "port")
	resetFlag(t, serveCmd, "bind")
}

func resetFlag(t *testing.T, cmd *cobra.Command, name string) {
	t.Helper()

	flag := cmd.Flags().Lookup(name)
	require.NotNil(t, flag, "flag %s not registered", name)
	require.NoError(t, flag.Value.Set(flag.DefValue))
	flag.Changed = false
}

// withTempConfig points the CLI at a config file written to a temp dir.
func withTempConfig(t *testing.T, conf *config.Config) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.SaveConfig(conf, path))

	old := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = old })
}

func TestRootModeValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no mode",
			args: []string{},
		},
		{
			name: "two modes",
			args: []string{"-e", "HI", "-d", knownFrame},
		},
		{
			name: "all modes",
			args: []string{"-e", "HI", "-d", "x", "-i", "a.txt", "-o", "a.txt.dna"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeRoot(t, tt.args...)
			assert.Error(t, err)
			assert.Contains(t, out, "Usage:")
		})
	}
}

func TestRootEncode(t *testing.T) {
	withTempConfig(t, config.DefaultConfig())

	out, err := executeRoot(t, "--encode", "HI")
	require.NoError(t, err)
	assert.Equal(t, codec.Version+" || Encoded: "+knownFrame+"\n", out)
}

func TestRootDecode(t *testing.T) {
	withTempConfig(t, config.DefaultConfig())

	t.Run("valid sequence", func(t *testing.T) {
		out, err := executeRoot(t, "--decode", knownFrame)
		require.NoError(t, err)
		assert.Equal(t, "Decoded: HI\n", out)
	})

	t.Run("unframed input", func(t *testing.T) {
		_, err := executeRoot(t, "--decode", "GATTACA")
		assert.ErrorIs(t, err, codec.ErrInvalidFrame)
	})

	t.Run("file payload rejected", func(t *testing.T) {
		c, err := codec.New(codec.Config{})
		require.NoError(t, err)
		fileSeq, err := c.EncodeFile("ab.txt", []byte("abc"))
		require.NoError(t, err)

		_, err = executeRoot(t, "--decode", fileSeq)
		assert.ErrorIs(t, err, codec.ErrMalformedHeader)
		assert.ErrorContains(t, err, "--decode-file")
	})
}

func TestRootFileRoundTrip(t *testing.T) {
	conf := config.DefaultConfig()
	conf.TrimPadding = true
	withTempConfig(t, conf)

	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello world"), 0644))

	out, err := executeRoot(t, "--encode-file", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Encoded to file: "+src+".dna")
	assert.FileExists(t, src+".dna")

	// Remove the source so the decode provably recreates it
	require.NoError(t, os.Remove(src))

	out, err = executeRoot(t, "--decode-file", src+".dna")
	require.NoError(t, err)
	assert.Contains(t, out, "Decoded to file: "+src)

	restored, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(restored))
}

func TestRootDecodeFileSuffix(t *testing.T) {
	withTempConfig(t, config.DefaultConfig())

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(knownFrame), 0644))

	_, err := executeRoot(t, "--decode-file", path)
	assert.ErrorIs(t, err, dnafile.ErrNotDNAFile)
}

func TestRootMissingConfigFile(t *testing.T) {
	old := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	t.Cleanup(func() { cfgFile = old })

	_, err := executeRoot(t, "--encode", "HI")
	assert.ErrorContains(t, err, "config file does not exist")
}

func TestVersionCommand(t *testing.T) {
	withTempConfig(t, config.DefaultConfig())

	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dnac "+codec.Version+"\n", out)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	old := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = old })

	out, err := executeRoot(t, "init", "--vault-path", filepath.Join(dir, "vault"))
	require.NoError(t, err)
	assert.Contains(t, out, "Server API key:")
	assert.FileExists(t, path)

	out, err = executeRoot(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	out, err = executeRoot(t, "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration created")
}

func TestServeRequiresAPIKey(t *testing.T) {
	withTempConfig(t, config.DefaultConfig())

	_, err := executeRoot(t, "serve")
	assert.ErrorContains(t, err, "api_key")
}

func TestVaultCommands(t *testing.T) {
	conf := config.DefaultConfig()
	conf.Vault.Path = filepath.Join(t.TempDir(), "vault")
	withTempConfig(t, conf)

	out, err := executeRoot(t, "vault", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No entries found")

	out, err = executeRoot(t, "vault", "put", "greeting", knownFrame)
	require.NoError(t, err)
	assert.Contains(t, out, "Stored 'greeting' as ")

	// Output shape: Stored 'greeting' as <id> (60 nucleotides)
	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 4)
	id := fields[3]

	out, err = executeRoot(t, "vault", "get", id)
	require.NoError(t, err)
	assert.Contains(t, out, "greeting")
	assert.Contains(t, out, knownFrame)

	out, err = executeRoot(t, "vault", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "greeting")

	out, err = executeRoot(t, "vault", "rm", id, "--noconfirm")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted entry")

	_, err = executeRoot(t, "vault", "get", id)
	assert.ErrorIs(t, err, vault.ErrEntryNotFound)
}

func TestVaultPutValidation(t *testing.T) {
	conf := config.DefaultConfig()
	conf.Vault.Path = filepath.Join(t.TempDir(), "vault")
	withTempConfig(t, conf)

	t.Run("no sequence and no file", func(t *testing.T) {
		_, err := executeRoot(t, "vault", "put", "solo")
		assert.ErrorContains(t, err, "sequence argument or --file")
	})

	t.Run("unreadable sequence", func(t *testing.T) {
		_, err := executeRoot(t, "vault", "put", "bad", "GATTACA")
		assert.ErrorIs(t, err, codec.ErrInvalidFrame)
	})

	t.Run("sequence from dna file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seq.dna")
		require.NoError(t, dnafile.WriteSequence(path, knownFrame))

		out, err := executeRoot(t, "vault", "put", "from-file", "--file", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Stored 'from-file' as ")
	})
}
