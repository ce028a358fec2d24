package symbols

import "fmt"

// UnknownConstantError indicates a constant name with no declared object.
type UnknownConstantError struct {
	Name string
}

func (e *UnknownConstantError) Error() string {
	return fmt.Sprintf("unknown constant: %s", e.Name)
}

func NewUnknownConstantError(name string) *UnknownConstantError {
	return &UnknownConstantError{Name: name}
}

// DuplicateSymbolError indicates an attempt to redeclare a global name.
type DuplicateSymbolError struct {
	Name string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("symbol already declared: %s", e.Name)
}

func NewDuplicateSymbolError(name string) *DuplicateSymbolError {
	return &DuplicateSymbolError{Name: name}
}
