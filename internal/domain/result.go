package domain

// ResultKind distinguishes a successful, empty and failed read.
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultEmpty
	ResultFailed
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultEmpty:
		return "empty"
	case ResultFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the outcome of a store read. Empty means "nothing to show"
// (no data or no identity); Failed carries the reason.
type Result[T any] struct {
	Kind   ResultKind
	Data   T
	Reason error
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] { return Result[T]{Kind: ResultOK, Data: v} }

// Empty returns an empty result.
func Empty[T any]() Result[T] { return Result[T]{Kind: ResultEmpty} }

// Failed returns a failed result carrying err.
func Failed[T any](err error) Result[T] { return Result[T]{Kind: ResultFailed, Reason: err} }

func (r Result[T]) IsOK() bool     { return r.Kind == ResultOK }
func (r Result[T]) IsEmpty() bool  { return r.Kind == ResultEmpty }
func (r Result[T]) IsFailed() bool { return r.Kind == ResultFailed }

// Value returns the data of an OK result and the zero value otherwise.
func (r Result[T]) Value() T {
	if r.Kind != ResultOK {
		var zero T
		return zero
	}
	return r.Data
}
