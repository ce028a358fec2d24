package term

import "github.com/samber/lo"

// Free-variable machinery over de Bruijn indices. Lit and Meta nodes are
// treated as atoms: their type slots are annotations expected to be closed,
// never part of the traversed term structure.

// Closed reports whether e has no free variable references.
func Closed(e Expr) bool { return ClosedAbove(e, 0) }

// ClosedAbove reports whether e has no free variable references with index
// depth or greater.
func ClosedAbove(e Expr, depth int) bool {
	switch e := e.(type) {
	case *Var:
		return e.Idx < depth
	case *App:
		return lo.EveryBy(e.Args, func(a Expr) bool { return ClosedAbove(a, depth) })
	case *Lambda:
		return ClosedAbove(e.Domain, depth) && ClosedAbove(e.Body, depth+1)
	case *Pi:
		return ClosedAbove(e.Domain, depth) && ClosedAbove(e.Body, depth+1)
	case *Let:
		if e.Type != nil && !ClosedAbove(e.Type, depth) {
			return false
		}
		return ClosedAbove(e.Value, depth) && ClosedAbove(e.Body, depth+1)
	case *Eq:
		return ClosedAbove(e.LHS, depth) && ClosedAbove(e.RHS, depth)
	default:
		return true
	}
}

// Lift shifts every free variable of e up by d.
func Lift(e Expr, d int) Expr { return LiftAbove(e, 0, d) }

// LiftAbove shifts free variables with index from or greater up by d.
// Subterms without such references are returned as the same node, preserving
// identity and sharing.
func LiftAbove(e Expr, from, d int) Expr {
	if d == 0 || ClosedAbove(e, from) {
		return e
	}
	switch e := e.(type) {
	case *Var:
		if e.Idx < from {
			return e
		}
		return NewVar(e.Idx + d)
	case *App:
		return mkApp(lo.Map(e.Args, func(a Expr, _ int) Expr {
			return LiftAbove(a, from, d)
		}))
	case *Lambda:
		return NewLambda(e.Name, LiftAbove(e.Domain, from, d), LiftAbove(e.Body, from+1, d))
	case *Pi:
		return NewPi(e.Name, LiftAbove(e.Domain, from, d), LiftAbove(e.Body, from+1, d))
	case *Let:
		var typ Expr
		if e.Type != nil {
			typ = LiftAbove(e.Type, from, d)
		}
		return NewLet(e.Name, typ, LiftAbove(e.Value, from, d), LiftAbove(e.Body, from+1, d))
	case *Eq:
		return NewEq(LiftAbove(e.LHS, from, d), LiftAbove(e.RHS, from, d))
	default:
		return e
	}
}

// Instantiate replaces the free variables 0..len(subs)-1 of e: variable i
// becomes subs[len(subs)-1-i] (so subs is listed outermost binder first),
// lifted by the number of binders crossed on the way down. Free variables
// above the substituted range are shifted down by len(subs), since that many
// binders are being removed. This is the type-level beta substitution used
// when computing application range types, not a full reduction.
func Instantiate(e Expr, subs []Expr) Expr {
	if len(subs) == 0 {
		return e
	}
	return instantiate(e, 0, subs)
}

func instantiate(e Expr, depth int, subs []Expr) Expr {
	if ClosedAbove(e, depth) {
		return e
	}
	n := len(subs)
	switch e := e.(type) {
	case *Var:
		if e.Idx < depth {
			return e
		}
		if e.Idx < depth+n {
			return Lift(subs[n-1-(e.Idx-depth)], depth)
		}
		return NewVar(e.Idx - n)
	case *App:
		return mkApp(lo.Map(e.Args, func(a Expr, _ int) Expr {
			return instantiate(a, depth, subs)
		}))
	case *Lambda:
		return NewLambda(e.Name, instantiate(e.Domain, depth, subs), instantiate(e.Body, depth+1, subs))
	case *Pi:
		return NewPi(e.Name, instantiate(e.Domain, depth, subs), instantiate(e.Body, depth+1, subs))
	case *Let:
		var typ Expr
		if e.Type != nil {
			typ = instantiate(e.Type, depth, subs)
		}
		return NewLet(e.Name, typ, instantiate(e.Value, depth, subs), instantiate(e.Body, depth+1, subs))
	case *Eq:
		return NewEq(instantiate(e.LHS, depth, subs), instantiate(e.RHS, depth, subs))
	default:
		return e
	}
}
