package checker

import (
	"fmt"

	"github.com/lumenlang/lumen/internal/term"
)

// Every error here is fatal to the Infer call that raised it: the checker
// never recovers or retries internally. Callers dispatch on the concrete
// kind with errors.As.

// TypeExpectedError indicates a term used in a sort position whose type
// normalizes to something that is neither a Sort nor Prop.
type TypeExpectedError struct {
	Expr term.Expr
}

func (e *TypeExpectedError) Error() string {
	return fmt.Sprintf("type expected: %s is not a sort", e.Expr)
}

func NewTypeExpectedError(expr term.Expr) *TypeExpectedError {
	return &TypeExpectedError{Expr: expr}
}

// FunctionExpectedError indicates an application whose head's type does not
// normalize to a Pi type.
type FunctionExpectedError struct {
	Expr term.Expr
}

func (e *FunctionExpectedError) Error() string {
	return fmt.Sprintf("function expected in application %s", e.Expr)
}

func NewFunctionExpectedError(expr term.Expr) *FunctionExpectedError {
	return &FunctionExpectedError{Expr: expr}
}

// UnassignedMetavarError indicates a metavariable node whose declared-type
// slot is empty. This is about the node itself, not about a missing
// substitution assignment.
type UnassignedMetavarError struct {
	ID term.MetaID
}

func (e *UnassignedMetavarError) Error() string {
	return fmt.Sprintf("metavariable ?m%d does not have a type associated with it", e.ID)
}

func NewUnassignedMetavarError(id term.MetaID) *UnassignedMetavarError {
	return &UnassignedMetavarError{ID: id}
}

// UntypedConstantError indicates a declared global object that carries no
// type.
type UntypedConstantError struct {
	Name string
}

func (e *UntypedConstantError) Error() string {
	return fmt.Sprintf("constant %s has no declared type", e.Name)
}

func NewUntypedConstantError(name string) *UntypedConstantError {
	return &UntypedConstantError{Name: name}
}

// InterruptedError indicates cooperative cancellation observed mid-inference
// or mid-normalization.
type InterruptedError struct{}

func (e *InterruptedError) Error() string { return "inference interrupted" }

func NewInterruptedError() *InterruptedError { return &InterruptedError{} }
