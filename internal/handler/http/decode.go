package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// decodeJSON reads a JSON request body into dst. Any decoding failure,
// including an empty body, is reported as ErrInvalidJSON.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
