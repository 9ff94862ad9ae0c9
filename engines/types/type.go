package types

// Type identifies the engine an executable was compiled for.
type Type string

const (
	// Calc is the left-to-right integer expression engine.
	Calc Type = "calc"
)

func (t Type) String() string {
	return string(t)
}
