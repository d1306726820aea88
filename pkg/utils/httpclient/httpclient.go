package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
)

var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// DecodeResponseDown decodes a JSON object reply into a map whose top-level
// keys are lower-cased. The API is case-sensitive on attribute names; callers
// downstream match on the lowered form. An empty body with an accepted status
// yields a nil map and no error.
func DecodeResponseDown(
	ctx context.Context,
	apiName string,
	resp *http.Response,
	expectedStatus ...int,
) (map[string]any, error) {
	if !slices.Contains(expectedStatus, resp.StatusCode) {
		return nil, fmt.Errorf("invalid response from %s: %w %s", apiName, ErrUnexpectedStatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("invalid response from %s: %w", apiName, err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var result map[string]any

	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, fmt.Errorf("invalid response from %s: %w", apiName, err)
	}

	lowered := make(map[string]any, len(result))
	for k, v := range result {
		lowered[strings.ToLower(k)] = v
	}

	return lowered, nil
}
