package sender

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus is wrapped by a SendError when the endpoint replies
// with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Op names the stage of a send that failed.
type Op string

const (
	OpEncode    Op = "encode"
	OpRequest   Op = "request"
	OpTransport Op = "transport"
	OpRead      Op = "read"
	OpStatus    Op = "status"
	OpDecode    Op = "decode"
)

// SendError is the single failure type returned by Send.
type SendError struct {
	Op  Op
	URL string

	// StatusCode and Body are set once a response was received.
	StatusCode int
	Body       []byte

	Err error
}

func (e *SendError) Error() string {
	if e.Op == OpStatus {
		return fmt.Sprintf("send %s: %s %d: %s", e.URL, e.Op, e.StatusCode, preview(e.Body))
	}
	return fmt.Sprintf("send %s: %s: %v", e.URL, e.Op, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

const maxPreview = 200

func preview(b []byte) string {
	if len(b) > maxPreview {
		return string(b[:maxPreview]) + "..."
	}
	return string(b)
}
