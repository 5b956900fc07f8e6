package vault

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickenator/dna-codec/pkg/codec"
)

func newTestVault(t *testing.T, encoding string) *Vault {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "dnac_vault_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	dna, err := codec.New(codec.Config{})
	require.NoError(t, err)

	v, err := Open(tmpDir, dna, encoding)
	require.NoError(t, err)
	t.Cleanup(func() { v.Close() })

	return v
}

func encodeTestSequence(t *testing.T, text string) string {
	t.Helper()
	dna, err := codec.New(codec.Config{})
	require.NoError(t, err)
	seq, err := dna.EncodeString(text)
	require.NoError(t, err)
	return seq
}

func TestOpenUnknownEncoding(t *testing.T) {
	dna, err := codec.New(codec.Config{})
	require.NoError(t, err)

	_, err = Open(os.TempDir(), dna, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entry encoding")
}

func TestPutGet(t *testing.T) {
	for _, encoding := range []string{"json", "cbor"} {
		t.Run(encoding, func(t *testing.T) {
			v := newTestVault(t, encoding)
			seq := encodeTestSequence(t, "archived message")

			entry, err := v.Put("greeting", seq)
			require.NoError(t, err)
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, "greeting", entry.Name)
			assert.Equal(t, seq, entry.Sequence)
			assert.Equal(t, len(seq), entry.Nucleotides)
			assert.False(t, entry.CreatedAt.IsZero())

			got, err := v.Get(entry.ID)
			require.NoError(t, err)
			assert.Equal(t, entry.ID, got.ID)
			assert.Equal(t, entry.Name, got.Name)
			assert.Equal(t, entry.Sequence, got.Sequence)
			assert.Equal(t, entry.Nucleotides, got.Nucleotides)
			assert.True(t, entry.CreatedAt.Equal(got.CreatedAt))
		})
	}
}

func TestPutRejectsUnreadableSequence(t *testing.T) {
	v := newTestVault(t, "json")

	testCases := []struct {
		name string
		seq  string
		want error
	}{
		{
			name: "not a frame at all",
			seq:  "GATTACA",
			want: codec.ErrInvalidFrame,
		},
		{
			name: "frame around junk symbols",
			seq:  "ATGCATGCNNNNTTAATTAAGGCCGGCC",
			want: codec.ErrInvalidSymbol,
		},
		{
			name: "frame around untagged payload",
			seq:  "ATGCATGCACGTACGTACGTACGTACGTACGTTTAATTAAGGCCGGCC",
			want: codec.ErrUnknownHeader,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Put("bad", tc.seq)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)

			entries, err := v.List()
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestGetMissing(t *testing.T) {
	v := newTestVault(t, "json")

	// A well-formed ksuid that was never stored
	_, err := v.Get("2cTVLKiQvVdXSmYmf8KeyLjLBda")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	// Not a ksuid at all
	_, err = v.Get("no-such-id")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEntryNotFound)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestList(t *testing.T) {
	v := newTestVault(t, "json")

	entries, err := v.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	first, err := v.Put("first", encodeTestSequence(t, "one"))
	require.NoError(t, err)
	second, err := v.Put("second", encodeTestSequence(t, "two"))
	require.NoError(t, err)

	entries, err = v.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	ids := []string{entries[0].ID, entries[1].ID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}

func TestDelete(t *testing.T) {
	v := newTestVault(t, "json")

	entry, err := v.Put("doomed", encodeTestSequence(t, "bye"))
	require.NoError(t, err)

	require.NoError(t, v.Delete(entry.ID))

	_, err = v.Get(entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	// Deleting again reports the absence instead of a silent no-op
	err = v.Delete(entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	err = v.Delete("not-a-ksuid")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestReopenKeepsEntries(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "dnac_vault_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	dna, err := codec.New(codec.Config{})
	require.NoError(t, err)

	v, err := Open(tmpDir, dna, "cbor")
	require.NoError(t, err)

	seq := encodeTestSequence(t, "durable")
	entry, err := v.Put("persisted", seq)
	require.NoError(t, err)
	require.NoError(t, v.Close())

	v, err = Open(tmpDir, dna, "cbor")
	require.NoError(t, err)
	defer v.Close()

	got, err := v.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, seq, got.Sequence)
	assert.Equal(t, "persisted", got.Name)
}
