package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rickenator/dna-codec/pkg/codec"
	"github.com/rickenator/dna-codec/pkg/vault"
)

// Server holds the API server state
type Server struct {
	dna     *codec.Codec
	archive SequenceArchive
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server. archive may be nil, in which case
// the vault routes report the feature as unavailable.
func NewServer(dna *codec.Codec, archive SequenceArchive, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		dna:     dna,
		archive: archive,
		config:  config,
		metrics: metrics,
	}
}

// codecStatus maps codec failures onto HTTP status codes. Wire-format
// problems are the client's input (422); anything else is ours (500).
func codecStatus(err error) int {
	var wireErr *codec.WireError
	if errors.As(err, &wireErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// handleHealth reports liveness and the wire-format version
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy", "version": codec.Version})
}

// handleEncode turns a message into a framed nucleotide sequence
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	seq, err := s.dna.EncodeString(req.Message)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("encode", false, time.Since(start))
		}
		sendError(w, fmt.Sprintf("Failed to encode message: %v", err), codecStatus(err))
		return
	}

	if s.metrics != nil {
		s.metrics.RecordCodecOperation("encode", true, time.Since(start))
		s.metrics.RecordNucleotides("encoded", len(seq))
	}
	sendSuccess(w, EncodeResponse{Sequence: seq, Nucleotides: len(seq)})
}

// handleDecode recovers the message from a framed sequence
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.Sequence == "" {
		sendError(w, "Sequence is required", http.StatusBadRequest)
		return
	}

	message, err := s.dna.DecodeString(req.Sequence)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("decode", false, time.Since(start))
		}
		sendError(w, fmt.Sprintf("Failed to decode sequence: %v", err), codecStatus(err))
		return
	}

	if s.metrics != nil {
		s.metrics.RecordCodecOperation("decode", true, time.Since(start))
		s.metrics.RecordNucleotides("decoded", len(req.Sequence))
	}
	sendSuccess(w, DecodeResponse{Message: message})
}

// handleEncodeFile encodes file contents under their original name
func (s *Server) handleEncodeFile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EncodeFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		sendError(w, "File name is required", http.StatusBadRequest)
		return
	}
	if len(req.Content) == 0 {
		sendError(w, "File content is required", http.StatusBadRequest)
		return
	}

	seq, err := s.dna.EncodeFile(req.Name, req.Content)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("encode_file", false, time.Since(start))
		}
		sendError(w, fmt.Sprintf("Failed to encode file: %v", err), codecStatus(err))
		return
	}

	if s.metrics != nil {
		s.metrics.RecordCodecOperation("encode_file", true, time.Since(start))
		s.metrics.RecordNucleotides("encoded", len(seq))
	}
	sendSuccess(w, EncodeResponse{Sequence: seq, Nucleotides: len(seq)})
}

// handleDecodeFile recovers a file name and contents from a sequence
func (s *Server) handleDecodeFile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.Sequence == "" {
		sendError(w, "Sequence is required", http.StatusBadRequest)
		return
	}

	name, content, err := s.dna.DecodeFile(req.Sequence)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("decode_file", false, time.Since(start))
		}
		sendError(w, fmt.Sprintf("Failed to decode file: %v", err), codecStatus(err))
		return
	}

	if s.metrics != nil {
		s.metrics.RecordCodecOperation("decode_file", true, time.Since(start))
		s.metrics.RecordNucleotides("decoded", len(req.Sequence))
	}
	sendSuccess(w, DecodeFileResponse{Name: name, Content: content})
}

// requireArchive reports whether the vault routes can be served
func (s *Server) requireArchive(w http.ResponseWriter) bool {
	if s.archive == nil {
		sendError(w, "Sequence vault is not configured", http.StatusServiceUnavailable)
		return false
	}
	return true
}

// handleVaultPut archives a sequence under a label
func (s *Server) handleVaultPut(w http.ResponseWriter, r *http.Request) {
	if !s.requireArchive(w) {
		return
	}

	var req VaultPutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		sendError(w, "Name is required", http.StatusBadRequest)
		return
	}
	if req.Sequence == "" {
		sendError(w, "Sequence is required", http.StatusBadRequest)
		return
	}

	entry, err := s.archive.Put(req.Name, req.Sequence)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordVaultOperation("put", false)
		}
		sendError(w, fmt.Sprintf("Failed to archive sequence: %v", err), codecStatus(err))
		return
	}

	if s.metrics != nil {
		s.metrics.RecordVaultOperation("put", true)
	}
	sendSuccess(w, entry)
}

// handleVaultList returns all archived entries
func (s *Server) handleVaultList(w http.ResponseWriter, r *http.Request) {
	if !s.requireArchive(w) {
		return
	}

	entries, err := s.archive.List()
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordVaultOperation("list", false)
		}
		sendError(w, fmt.Sprintf("Failed to list entries: %v", err), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []*vault.Entry{}
	}

	if s.metrics != nil {
		s.metrics.RecordVaultOperation("list", true)
	}
	sendSuccess(w, entries)
}

// handleVaultGet returns one archived entry by ID
func (s *Server) handleVaultGet(w http.ResponseWriter, r *http.Request) {
	if !s.requireArchive(w) {
		return
	}

	id := chi.URLParam(r, "id")
	entry, err := s.archive.Get(id)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordVaultOperation("get", false)
		}
		sendError(w, fmt.Sprintf("Failed to get entry: %v", err), vaultStatus(err))
		return
	}

	if s.metrics != nil {
		s.metrics.RecordVaultOperation("get", true)
	}
	sendSuccess(w, entry)
}

// handleVaultDelete removes one archived entry by ID
func (s *Server) handleVaultDelete(w http.ResponseWriter, r *http.Request) {
	if !s.requireArchive(w) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.archive.Delete(id); err != nil {
		if s.metrics != nil {
			s.metrics.RecordVaultOperation("delete", false)
		}
		sendError(w, fmt.Sprintf("Failed to delete entry: %v", err), vaultStatus(err))
		return
	}

	if s.metrics != nil {
		s.metrics.RecordVaultOperation("delete", true)
	}
	sendSuccess(w, map[string]string{"message": "Entry deleted successfully"})
}

// vaultStatus maps vault failures onto HTTP status codes
func vaultStatus(err error) int {
	switch {
	case errors.Is(err, vault.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, vault.ErrInvalidID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
