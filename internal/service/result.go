package service

import "encoding/json"

// Kind classifies a Result for transports that need more than Success,
// such as picking an HTTP status code. It is not part of the JSON envelope.
type Kind int

const (
	KindOK Kind = iota
	KindUnauthenticated
	KindFailed
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the uniform envelope returned by every TaskService operation.
type Result[T any] struct {
	Success bool
	Message string
	Data    T
	Kind    Kind
}

// OK returns a successful result carrying data.
func OK[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Message: message, Data: data, Kind: KindOK}
}

// Unauthenticated returns the rejection issued when no caller identity is present.
func Unauthenticated[T any]() Result[T] {
	return Result[T]{Message: MsgNotAuthenticated, Kind: KindUnauthenticated}
}

// Failed returns a generic failure result with the zero value as data.
func Failed[T any](message string) Result[T] {
	return Result[T]{Message: message, Kind: KindFailed}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type envelopeWithData struct {
	envelope
	Data any `json:"data"`
}

// MarshalJSON encodes the result as {"success","message","data"}.
// Operations whose data type is struct{} carry no data and omit the key;
// for every other operation the key is always present, null on failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	head := envelope{Success: r.Success, Message: r.Message}
	if _, none := any(r.Data).(struct{}); none {
		return json.Marshal(head)
	}
	if !r.Success {
		return json.Marshal(envelopeWithData{envelope: head, Data: nil})
	}
	return json.Marshal(envelopeWithData{envelope: head, Data: r.Data})
}
