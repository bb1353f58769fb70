package result

import "fmt"

// FieldError reports a field that the response data does not contain.
type FieldError struct {
	Name string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unknown field %q in response data", e.Name)
}

// IndexError reports an index access outside an array value. Len is zero
// when the value is not an array at all.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (len %d)", e.Index, e.Len)
}
