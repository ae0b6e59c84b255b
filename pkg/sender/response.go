package sender

import (
	"encoding/json"
	"errors"
)

// Response is a successful reply. Body is the verbatim JSON document, or
// nil when the endpoint replied with an empty body.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return errors.New("decode response: empty body")
	}
	return json.Unmarshal(r.Body, v)
}
