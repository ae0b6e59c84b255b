package chatpost_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/bft-labs/chatpost"
)

// ExampleSend posts a two-turn conversation and prints the reply.
func ExampleSend() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		fmt.Println(string(b))
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer ts.Close()

	payload := chatpost.NewConversationPayload(chatpost.NewConversation(
		chatpost.NewMessage(chatpost.User, "Hello."),
		chatpost.NewMessage(chatpost.Assistant, "Hi."),
	))

	resp, err := chatpost.Send(context.Background(), ts.URL+"/chatbot_agent", payload)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(resp.Body))

	// Output:
	// {"messages":[{"role":"user","content":"Hello."},{"role":"assistant","content":"Hi."}]}
	// {"ok":true}
}

// ExampleSend_serverError shows how a non-2xx reply surfaces.
func ExampleSend_serverError() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := chatpost.Send(context.Background(), ts.URL, chatpost.NewSimplePayload("Hello"))

	var se *chatpost.SendError
	fmt.Println(errors.As(err, &se), se.StatusCode, errors.Is(err, chatpost.ErrUnexpectedStatus))

	// Output: true 500 true
}
