package gateway

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ErrUnauthorized is returned for any 401 response, after the configured
// session purge hook has run.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from a backend service. Message carries the
// server-provided text verbatim when one was present, else a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// extractMessage pulls a human-readable error message out of a JSON error
// body. Backends are inconsistent: some use "message", some "error". Returns
// an empty string when neither is found or the body is not a JSON object.
func extractMessage(body []byte) string {
	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return ""
	}

	var msg string
	_ = d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "message", "error":
			s, err := d.Str()
			if err != nil {
				return err
			}
			if msg == "" {
				msg = s
			}
			return nil
		default:
			return d.Skip()
		}
	})
	return msg
}
