// Package lumen is the public embedding surface of the Lumen kernel: type
// aliases and constructors re-exporting the internal packages, so embedders
// build terms, declare globals and run the light checker without importing
// internal paths.
package lumen

import (
	"log/slog"

	"github.com/lumenlang/lumen/internal/checker"
	"github.com/lumenlang/lumen/internal/meta"
	"github.com/lumenlang/lumen/internal/symbols"
	"github.com/lumenlang/lumen/internal/term"
)

type (
	Expr           = term.Expr
	Kind           = term.Kind
	Level          = term.Level
	MetaID         = term.MetaID
	Context        = term.Context
	Entry          = term.Entry
	Substitution   = meta.Substitution
	Object         = symbols.Object
	Table          = symbols.Table
	Checker        = checker.Checker
	Normalizer     = checker.Normalizer
	ConstraintSink = checker.ConstraintSink
)

// Error kinds, for errors.As dispatch by embedders.
type (
	TypeExpectedError      = checker.TypeExpectedError
	FunctionExpectedError  = checker.FunctionExpectedError
	UnassignedMetavarError = checker.UnassignedMetavarError
	UntypedConstantError   = checker.UntypedConstantError
	InterruptedError       = checker.InterruptedError
	UnknownConstantError   = symbols.UnknownConstantError
	UnboundVarError        = term.UnboundVarError
)

// Prop is the impredicative sort of propositions.
var Prop = term.Prop

// BottomLevel is the universe level propositions contribute.
const BottomLevel = term.BottomLevel

// Term constructors.

func Var(idx int) Expr                          { return term.NewVar(idx) }
func Const(name string) Expr                    { return term.NewConst(name) }
func App(fn Expr, args ...Expr) Expr            { return term.NewApp(fn, args...) }
func Lambda(name string, dom, body Expr) Expr   { return term.NewLambda(name, dom, body) }
func Pi(name string, dom, body Expr) Expr       { return term.NewPi(name, dom, body) }
func Let(name string, typ, val, body Expr) Expr { return term.NewLet(name, typ, val, body) }
func Sort(level Level) Expr                     { return term.NewSort(level) }
func Lit(name string, typeOf Expr) Expr         { return term.NewLit(name, typeOf) }
func Eq(lhs, rhs Expr) Expr                     { return term.NewEq(lhs, rhs) }
func Meta(id MetaID, typeOf Expr) Expr          { return term.NewMeta(id, typeOf) }

// Context construction.

func Extend(ctx *Context, name string, domain Expr) *Context {
	return term.Extend(ctx, name, domain)
}

func ExtendLet(ctx *Context, name string, typ, value Expr) *Context {
	return term.ExtendLet(ctx, name, typ, value)
}

// Eqv reports structural equality of two expressions.
func Eqv(a, b Expr) bool { return term.Eqv(a, b) }

// Closed reports whether e has no free variable references.
func Closed(e Expr) bool { return term.Closed(e) }

// NewTable creates an empty global symbol table.
func NewTable() *Table { return symbols.NewTable() }

// NewSubstitution creates an empty metavariable substitution.
func NewSubstitution() *Substitution { return meta.NewSubstitution() }

// New creates a checker over table with the built-in beta normalizer.
func New(table *Table) *Checker { return checker.New(table) }

// NewWith creates a checker with a caller-supplied normalizer and logger.
func NewWith(table *Table, norm Normalizer, logger *slog.Logger) *Checker {
	return checker.NewWith(table, norm, logger)
}
