// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import "fmt"

// StatusError is a non-200 response from the retrieval service, preserved so
// the client can classify it by status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("retrieval service returned %d: %s", e.Code, e.Body)
}
