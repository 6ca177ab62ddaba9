package junction

// Enumerable is the interface implemented by types that can only be
// represented by enumerable, constant values.
type Enumerable interface {
	String() string
	Valid() error
}

// An Execution tags a dispatch with the entry point that began it.
//
// The tag is set exactly once when a dispatch call constructs its
// [Context] and is never mutated afterward.
type Execution string

const (
	Synchronous  Execution = "SYNCHRONOUS"
	Asynchronous Execution = "ASYNCHRONOUS"
)

func (e Execution) String() string { return string(e) }

func (e Execution) Valid() error {
	switch e {
	case Synchronous, Asynchronous:
		return nil
	default:
		return ErrNotValid
	}
}
