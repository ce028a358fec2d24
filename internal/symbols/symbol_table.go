// Package symbols implements the global symbol table: the named, immutable
// kernel objects (axioms, definitions, builtins) that constant expressions
// refer to. The checker reads it, never writes it mid-inference.
package symbols

import "github.com/lumenlang/lumen/internal/term"

// Object is a declared global. Type is the declared type (nil for objects
// that carry none, which the checker rejects when their name is used in a
// typing position); Value is the definition body for defined objects, nil
// for axioms and opaque builtins.
type Object struct {
	Name  string
	Type  term.Expr
	Value term.Expr
}

// HasType reports whether the object carries a declared type.
func (o Object) HasType() bool { return o.Type != nil }

// HasValue reports whether the object is a definition with a body.
func (o Object) HasValue() bool { return o.Value != nil }

// Table is a name-keyed registry of global objects.
type Table struct {
	objects map[string]Object
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{objects: make(map[string]Object)}
}

// Add registers the object under its name. Redeclaring a name is an error.
func (t *Table) Add(o Object) error {
	if _, ok := t.objects[o.Name]; ok {
		return NewDuplicateSymbolError(o.Name)
	}
	t.objects[o.Name] = o
	return nil
}

// MustAdd is Add for bootstrap and test setup, panicking on redeclaration.
func (t *Table) MustAdd(o Object) {
	if err := t.Add(o); err != nil {
		panic(err)
	}
}

// Lookup returns the object declared under name.
func (t *Table) Lookup(name string) (Object, error) {
	o, ok := t.objects[name]
	if !ok {
		return Object{}, NewUnknownConstantError(name)
	}
	return o, nil
}

// Len returns the number of declared objects.
func (t *Table) Len() int { return len(t.objects) }
