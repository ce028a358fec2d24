package term

import "fmt"

// UnboundVarError indicates a de Bruijn index past the end of the context.
type UnboundVarError struct {
	Idx   int
	Depth int
}

func (e *UnboundVarError) Error() string {
	return fmt.Sprintf("unbound variable #%d in context of depth %d", e.Idx, e.Depth)
}
