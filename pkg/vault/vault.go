// Package vault archives framed nucleotide sequences in a local pebble
// database so encoded artifacts can be kept, listed and retrieved without
// re-encoding. Every sequence is decoded once on the way in; the vault
// never holds data the configured codec cannot read back.
package vault

import (
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/rickenator/dna-codec/pkg/codec"
)

var (
	// ErrEntryNotFound is returned when no entry exists under the given ID.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrInvalidID is returned when an ID does not parse as a ksuid.
	ErrInvalidID = errors.New("invalid entry id")
)

// Entry is one archived sequence. IDs are ksuids, so iteration order is
// creation order at second resolution.
type Entry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Sequence    string    `json:"sequence"`
	Nucleotides int       `json:"nucleotides"`
	CreatedAt   time.Time `json:"created_at"`
}

// Vault is a pebble-backed sequence archive. Safe for concurrent use by
// multiple goroutines; not safe to open twice on the same path.
type Vault struct {
	db  *pebble.DB
	dna *codec.Codec
	enc EntryCodec
}

// Open opens (or creates) the archive at path. Entries are serialized
// with the codec named by encoding; "" and "json" select JSON, "cbor"
// selects deterministic CBOR. Reading entries back requires the same
// encoding they were written with.
func Open(path string, dna *codec.Codec, encoding string) (*Vault, error) {
	enc, err := forEncoding(encoding)
	if err != nil {
		return nil, err
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open vault at %s: %w", path, err)
	}
	return &Vault{db: db, dna: dna, enc: enc}, nil
}

// Put validates and archives a framed sequence under a fresh ID. The
// sequence must decode under the vault's codec; name is a free-form
// label, typically the original file name.
func (v *Vault) Put(name, seq string) (*Entry, error) {
	if _, err := v.dna.Decode(seq); err != nil {
		return nil, fmt.Errorf("refusing to store unreadable sequence: %w", err)
	}

	id := ksuid.New()
	entry := &Entry{
		ID:          id.String(),
		Name:        name,
		Sequence:    seq,
		Nucleotides: len(seq),
		CreatedAt:   id.Time().UTC(),
	}

	data, err := v.enc.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize entry: %w", err)
	}
	if err := v.db.Set(id.Bytes(), data, pebble.NoSync); err != nil {
		return nil, fmt.Errorf("failed to store entry: %w", err)
	}

	return entry, nil
}

// Get retrieves an entry by ID.
func (v *Vault) Get(id string) (*Entry, error) {
	key, err := ksuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}

	data, closer, err := v.db.Get(key.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
		return nil, fmt.Errorf("failed to read entry: %w", err)
	}
	defer closer.Close()

	var entry Entry
	if err := v.enc.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to deserialize entry %s: %w", id, err)
	}
	return &entry, nil
}

// List returns all archived entries in key order, which is creation
// order at second resolution.
func (v *Vault) List() ([]*Entry, error) {
	iter, err := v.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate vault: %w", err)
	}
	defer iter.Close()

	var entries []*Entry
	for iter.First(); iter.Valid(); iter.Next() {
		var entry Entry
		if err := v.enc.Unmarshal(iter.Value(), &entry); err != nil {
			return nil, fmt.Errorf("failed to deserialize entry %x: %w", iter.Key(), err)
		}
		entries = append(entries, &entry)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate vault: %w", err)
	}
	return entries, nil
}

// Delete removes an entry by ID. Deleting an ID that does not exist
// returns ErrEntryNotFound.
func (v *Vault) Delete(id string) error {
	key, err := ksuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}

	// Check existence first so callers can tell a no-op from a removal
	_, closer, err := v.db.Get(key.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
		return fmt.Errorf("failed to check entry existence: %w", err)
	}
	closer.Close()

	if err := v.db.Delete(key.Bytes(), pebble.NoSync); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (v *Vault) Close() error {
	return v.db.Close()
}
