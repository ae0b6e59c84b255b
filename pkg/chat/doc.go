// Package chat defines the payloads chatpost sends to a chatbot endpoint.
//
// Two unrelated shapes exist. ConversationPayload carries an ordered list
// of role/content messages as {"messages": [...]}; SimplePayload carries a
// single text as {"message": "..."}. Both are plain values and are never
// mutated after construction.
package chat
