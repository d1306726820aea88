package httpclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openkcm/uaa-client/pkg/utils/httpclient"
)

func TestDecodeResponseDown(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		responseBody   string
		expectedStatus []int
		expectedResult map[string]any
		expectError    bool
		errorContains  string
	}{
		{
			name:           "Top-level keys lowered",
			statusCode:     http.StatusOK,
			responseBody:   `{"totalResults":1,"Resources":[],"startIndex":1}`,
			expectedStatus: []int{http.StatusOK},
			expectedResult: map[string]any{
				"totalresults": float64(1),
				"resources":    []any{},
				"startindex":   float64(1),
			},
			expectError: false,
		},
		{
			name:           "Nested keys untouched",
			statusCode:     http.StatusOK,
			responseBody:   `{"ID":"1234","Name":{"familyName":"Doe"}}`,
			expectedStatus: []int{http.StatusOK},
			expectedResult: map[string]any{
				"id":   "1234",
				"name": map[string]any{"familyName": "Doe"},
			},
			expectError: false,
		},
		{
			name:           "Any accepted status matches",
			statusCode:     http.StatusCreated,
			responseBody:   `{"id":"1234"}`,
			expectedStatus: []int{http.StatusOK, http.StatusCreated},
			expectedResult: map[string]any{"id": "1234"},
			expectError:    false,
		},
		{
			name:           "Empty body yields nil map",
			statusCode:     http.StatusNoContent,
			responseBody:   "",
			expectedStatus: []int{http.StatusOK, http.StatusNoContent},
			expectedResult: nil,
			expectError:    false,
		},
		{
			name:           "Unexpected Status Code",
			statusCode:     http.StatusInternalServerError,
			responseBody:   `{"message": "error"}`,
			expectedStatus: []int{http.StatusOK},
			expectedResult: nil,
			expectError:    true,
			errorContains:  "unexpected status code",
		},
		{
			name:           "Invalid JSON",
			statusCode:     http.StatusOK,
			responseBody:   `invalid-json`,
			expectedStatus: []int{http.StatusOK},
			expectedResult: nil,
			expectError:    true,
			errorContains:  "invalid response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, err := w.Write([]byte(tt.responseBody))
				assert.NoError(t, err)
			}))
			defer server.Close()

			req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, nil)
			assert.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			assert.NoError(t, err)

			defer resp.Body.Close()

			result, err := httpclient.DecodeResponseDown(t.Context(), "TestAPI", resp, tt.expectedStatus...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}
