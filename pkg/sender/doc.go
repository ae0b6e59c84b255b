// Package sender posts a JSON payload to an HTTP endpoint and returns the
// parsed JSON response.
//
// A send has exactly two outcomes: a *Response for a 2xx reply with a
// well-formed (or empty) JSON body, or a *SendError describing why the
// exchange failed. There are no retries.
//
// # Usage
//
//	s := sender.New()
//	resp, err := s.Send(ctx, "http://localhost:5000/chatbot_agent", chat.NewSimplePayload("Hello"))
//	sender.Report(logger, resp, err)
//
// # Custom Transports
//
// Pass WithHTTPClient to route requests through anything with a
// Do(*http.Request) method, such as an instrumented client in tests.
package sender
