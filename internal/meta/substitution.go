// Package meta holds the metavariable assignment table shared between the
// unifier (which writes it) and the checker (which only reads it). The table
// carries a version counter that increases on every mutation; the checker
// compares versions between calls to decide whether cached results may have
// gone stale, which is what makes between-call mutation by an external
// unifier safe to observe without locks.
package meta

import "github.com/lumenlang/lumen/internal/term"

// Substitution maps metavariable ids to assigned terms. It is owned by
// unification logic; a single Substitution must not be mutated concurrently
// with a checker call that reads it.
type Substitution struct {
	assignments map[term.MetaID]term.Expr
	version     uint64
}

// NewSubstitution creates an empty substitution at version 0.
func NewSubstitution() *Substitution {
	return &Substitution{assignments: make(map[term.MetaID]term.Expr)}
}

// Assign records (or replaces) the assignment of id and bumps the version.
func (s *Substitution) Assign(id term.MetaID, e term.Expr) {
	s.assignments[id] = e
	s.version++
}

// Unassign removes the assignment of id, if any. The version is bumped only
// when something was actually removed.
func (s *Substitution) Unassign(id term.MetaID) {
	if _, ok := s.assignments[id]; ok {
		delete(s.assignments, id)
		s.version++
	}
}

// Assignment returns the term assigned to id, if any.
func (s *Substitution) Assignment(id term.MetaID) (term.Expr, bool) {
	e, ok := s.assignments[id]
	return e, ok
}

// Version returns the mutation counter. It strictly increases on every
// Assign and on every effective Unassign.
func (s *Substitution) Version() uint64 { return s.version }

// Len returns the number of live assignments.
func (s *Substitution) Len() int { return len(s.assignments) }
