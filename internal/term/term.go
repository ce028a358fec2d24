package term

import (
	"sync/atomic"
)

// Kind discriminates expression node kinds.
type Kind int

const (
	KindVar Kind = iota
	KindConst
	KindApp
	KindLambda
	KindPi
	KindLet
	KindSort
	KindLit
	KindEq
	KindMeta
)

// Expr is an immutable, possibly shared expression node. All concrete nodes
// are pointer types, so comparing two Expr values with == compares node
// identity, which is what the checker's cache is keyed on. Nodes form a DAG:
// the same node may be reachable from several parents.
type Expr interface {
	Kind() Kind
	String() string

	// retain and parents implement the construction-time sharing counter
	// behind Shared. The methods are unexported so the node set is closed.
	retain()
	parents() uint32
}

// node carries the parent counter embedded in every concrete expression.
// Constructors bump the counter of each child, so a node referenced by more
// than one parent reports parents() > 1. The counter is metadata, not term
// structure; atomic updates keep DAG construction followed by read-only
// sharing across goroutines race-free.
type node struct {
	refs atomic.Uint32
}

func (n *node) retain()         { n.refs.Add(1) }
func (n *node) parents() uint32 { return n.refs.Load() }

// Shared reports whether e is referenced by more than one parent node.
// Memoizing a uniquely owned subterm can never pay off, so the checker only
// caches shared nodes.
func Shared(e Expr) bool { return e.parents() > 1 }

// MetaID names a metavariable.
type MetaID int32

// Var is a bound variable reference by de Bruijn index: 0 is the innermost
// binder.
type Var struct {
	node
	Idx int
}

// Const references a named object in the global symbol table.
type Const struct {
	node
	Name string
}

// App is an application node. Args[0] is the applied function, Args[1:] the
// actual arguments, all in one flat slice.
type App struct {
	node
	Args []Expr
}

// Lambda is a function abstraction binding one variable.
type Lambda struct {
	node
	Name   string
	Domain Expr
	Body   Expr
}

// Pi is a dependent function type binding one variable.
type Pi struct {
	node
	Name   string
	Domain Expr
	Body   Expr
}

// Let binds Name to Value (with optional declared Type) inside Body.
type Let struct {
	node
	Name  string
	Type  Expr // may be nil
	Value Expr
	Body  Expr
}

// Sort is a universe: Sort(n) is classified by Sort(n+1).
type Sort struct {
	node
	Level Level
}

// Lit is an opaque literal value carrying its intrinsic type.
type Lit struct {
	node
	Name   string
	TypeOf Expr
}

// Eq is propositional equality of two terms. Its type is always Prop.
type Eq struct {
	node
	LHS Expr
	RHS Expr
}

// Meta is a metavariable placeholder. TypeOf is the declared type slot; nil
// means the metavariable was created without one, which the checker reports
// as an unassigned-metavariable error. Assignments live in an external
// substitution, not on the node.
type Meta struct {
	node
	ID     MetaID
	TypeOf Expr
}

func (*Var) Kind() Kind    { return KindVar }
func (*Const) Kind() Kind  { return KindConst }
func (*App) Kind() Kind    { return KindApp }
func (*Lambda) Kind() Kind { return KindLambda }
func (*Pi) Kind() Kind     { return KindPi }
func (*Let) Kind() Kind    { return KindLet }
func (*Sort) Kind() Kind   { return KindSort }
func (*Lit) Kind() Kind    { return KindLit }
func (*Eq) Kind() Kind     { return KindEq }
func (*Meta) Kind() Kind   { return KindMeta }

// NewVar creates a de Bruijn variable reference.
func NewVar(idx int) *Var { return &Var{Idx: idx} }

// NewConst creates a reference to a globally declared name.
func NewConst(name string) *Const { return &Const{Name: name} }

// NewApp applies fn to one or more arguments.
func NewApp(fn Expr, args ...Expr) *App {
	all := make([]Expr, 0, len(args)+1)
	all = append(all, fn)
	all = append(all, args...)
	return mkApp(all)
}

func mkApp(all []Expr) *App {
	for _, a := range all {
		a.retain()
	}
	return &App{Args: all}
}

// NewLambda abstracts body over one variable of the given domain.
func NewLambda(name string, domain, body Expr) *Lambda {
	domain.retain()
	body.retain()
	return &Lambda{Name: name, Domain: domain, Body: body}
}

// NewPi builds the dependent function type (Pi name : domain, body).
func NewPi(name string, domain, body Expr) *Pi {
	domain.retain()
	body.retain()
	return &Pi{Name: name, Domain: domain, Body: body}
}

// NewLet binds value (with optional declared type, nil to omit) in body.
func NewLet(name string, typ, value, body Expr) *Let {
	if typ != nil {
		typ.retain()
	}
	value.retain()
	body.retain()
	return &Let{Name: name, Type: typ, Value: value, Body: body}
}

// NewSort creates the universe node at the given level.
func NewSort(level Level) *Sort { return &Sort{Level: level} }

// NewLit creates a literal value with its intrinsic type.
func NewLit(name string, typeOf Expr) *Lit {
	typeOf.retain()
	return &Lit{Name: name, TypeOf: typeOf}
}

// NewEq builds the equality proposition lhs == rhs.
func NewEq(lhs, rhs Expr) *Eq {
	lhs.retain()
	rhs.retain()
	return &Eq{LHS: lhs, RHS: rhs}
}

// NewMeta creates a metavariable node with a declared type. Pass nil for a
// metavariable whose type is not yet known.
func NewMeta(id MetaID, typeOf Expr) *Meta {
	if typeOf != nil {
		typeOf.retain()
	}
	return &Meta{ID: id, TypeOf: typeOf}
}

// Prop is the impredicative sort of propositions. It is a singleton: the
// checker recognizes it by identity, both as the fixed type of Eq nodes and
// as the bottom-level case of universe inference. Its own type is Sort(0).
var Prop = NewLit("Prop", NewSort(0))

// Eqv reports structural equality of two expressions: same shape, names,
// levels and metavariable ids. It is what "two calls return the same type"
// means observationally; node identity is intentionally ignored.
func Eqv(a, b Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case *Var:
		return a.Idx == b.(*Var).Idx
	case *Const:
		return a.Name == b.(*Const).Name
	case *App:
		bApp := b.(*App)
		if len(a.Args) != len(bApp.Args) {
			return false
		}
		for i, arg := range a.Args {
			if !Eqv(arg, bApp.Args[i]) {
				return false
			}
		}
		return true
	case *Lambda:
		bl := b.(*Lambda)
		return a.Name == bl.Name && Eqv(a.Domain, bl.Domain) && Eqv(a.Body, bl.Body)
	case *Pi:
		bp := b.(*Pi)
		return a.Name == bp.Name && Eqv(a.Domain, bp.Domain) && Eqv(a.Body, bp.Body)
	case *Let:
		bl := b.(*Let)
		if a.Name != bl.Name || !Eqv(a.Value, bl.Value) || !Eqv(a.Body, bl.Body) {
			return false
		}
		if (a.Type == nil) != (bl.Type == nil) {
			return false
		}
		return a.Type == nil || Eqv(a.Type, bl.Type)
	case *Sort:
		return a.Level == b.(*Sort).Level
	case *Lit:
		bl := b.(*Lit)
		return a.Name == bl.Name && Eqv(a.TypeOf, bl.TypeOf)
	case *Eq:
		be := b.(*Eq)
		return Eqv(a.LHS, be.LHS) && Eqv(a.RHS, be.RHS)
	case *Meta:
		return a.ID == b.(*Meta).ID
	default:
		return false
	}
}
