package api

import (
	"github.com/rickenator/dna-codec/pkg/vault"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EncodeRequest asks for a message to be encoded into a framed sequence
type EncodeRequest struct {
	Message string `json:"message"`
}

// EncodeResponse carries a freshly encoded sequence
type EncodeResponse struct {
	Sequence    string `json:"sequence"`
	Nucleotides int    `json:"nucleotides"`
}

// DecodeRequest asks for a framed sequence to be decoded
type DecodeRequest struct {
	Sequence string `json:"sequence"`
}

// DecodeResponse carries the decoded message
type DecodeResponse struct {
	Message string `json:"message"`
}

// EncodeFileRequest asks for file contents to be encoded. Content
// travels as base64, the JSON convention for byte slices.
type EncodeFileRequest struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

// DecodeFileResponse carries a recovered file name and contents
type DecodeFileResponse struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

// VaultPutRequest archives a sequence under a label
type VaultPutRequest struct {
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}

// SequenceArchive defines the vault operations the API depends on
type SequenceArchive interface {
	Put(name, seq string) (*vault.Entry, error)
	Get(id string) (*vault.Entry, error)
	List() ([]*vault.Entry, error)
	Delete(id string) error
}
