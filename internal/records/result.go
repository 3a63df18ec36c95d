package records

// Result is the outcome of an operation addressed by a user-facing id.
// A missing record is a normal outcome and is reported with Found set to false
type Result[T any] struct {
	Value T
	Found bool
}

// Found wraps a value for a record that exists
func Found[T any](value T) Result[T] {
	return Result[T]{Value: value, Found: true}
}

// NotFound reports that no record carries the requested id
func NotFound[T any]() Result[T] {
	return Result[T]{}
}
