package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		apiKey         string
		requestHeader  string
		expectedStatus int
	}{
		{
			name:           "valid API key",
			apiKey:         "test-key",
			requestHeader:  "test-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing API key header",
			apiKey:         "test-key",
			requestHeader:  "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid API key",
			apiKey:         "test-key",
			requestHeader:  "wrong-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "key is a prefix of the expected one",
			apiKey:         "test-key",
			requestHeader:  "test",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			middleware := apiKeyMiddleware(tt.apiKey)
			handler := middleware(testHandler)

			req := httptest.NewRequest("GET", "/test", nil)
			if tt.requestHeader != "" {
				req.Header.Set("X-API-Key", tt.requestHeader)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			// Rejections use the standard envelope, not a bare status
			if tt.expectedStatus == http.StatusUnauthorized {
				var response APIResponse
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Fatalf("Failed to decode error body: %v", err)
				}
				if response.Success {
					t.Error("Expected success to be false")
				}
				if response.Error == "" {
					t.Error("Expected an error message")
				}
			}
		})
	}
}

func TestSendSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"sequence": "ACGT"}

	sendSuccess(w, data)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	contentType := w.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", contentType)
	}

	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if !response.Success {
		t.Error("Expected success to be true")
	}
	payload, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data object, got %T", response.Data)
	}
	if payload["sequence"] != "ACGT" {
		t.Errorf("Expected data to carry the payload, got %v", payload)
	}
	if response.Error != "" {
		t.Errorf("Expected no error, got %q", response.Error)
	}
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		statusCode int
	}{
		{
			name:       "bad request error",
			message:    "Sequence is required",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "unreadable sequence error",
			message:    "invalid frame",
			statusCode: http.StatusUnprocessableEntity,
		},
		{
			name:       "internal server error",
			message:    "Server error",
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			sendError(w, tt.message, tt.statusCode)

			if w.Code != tt.statusCode {
				t.Errorf("Expected status %d, got %d", tt.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %s", contentType)
			}

			var response APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to decode body: %v", err)
			}
			if response.Success {
				t.Error("Expected success to be false")
			}
			if response.Error != tt.message {
				t.Errorf("Expected error %q, got %q", tt.message, response.Error)
			}
		})
	}
}
