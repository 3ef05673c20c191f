// Package result carries use-case outcomes: a value on success or an ordered list of messages on failure.
package result

// Kind classifies a failure so transports can pick a status without parsing messages.
type Kind string

const (
	KindNone       Kind = ""
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindUnexpected Kind = "unexpected"
)

// Result holds either Value (success) or a non-empty Errors list (failure).
type Result[T any] struct {
	Value  T
	Errors []string
	Kind   Kind
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Failure builds a failed result. An empty message list is replaced with a generic message
// so that a failure can never look like a success.
func Failure[T any](kind Kind, messages ...string) Result[T] {
	if kind == KindNone {
		kind = KindUnexpected
	}
	if len(messages) == 0 {
		messages = []string{"operation failed"}
	}
	errs := make([]string, len(messages))
	copy(errs, messages)
	return Result[T]{Errors: errs, Kind: kind}
}

// IsSuccess reports whether the error list is empty.
func (r Result[T]) IsSuccess() bool {
	return len(r.Errors) == 0
}

// Outcome names the result for logs and metrics.
func (r Result[T]) Outcome() string {
	if r.IsSuccess() {
		return "success"
	}
	return string(r.Kind)
}
