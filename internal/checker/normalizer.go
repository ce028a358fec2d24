package checker

import (
	"sync/atomic"

	"github.com/lumenlang/lumen/internal/meta"
	"github.com/lumenlang/lumen/internal/symbols"
	"github.com/lumenlang/lumen/internal/term"
)

// Normalizer is the reduction engine the checker calls when a syntactic
// Pi/sort shape is required but not present. Normalize must be deterministic
// for fixed inputs; any error it returns propagates to the Infer caller
// unchanged. SetInterrupt receives every flag change the checker sees, since
// reduction sequences may run long.
type Normalizer interface {
	Normalize(e term.Expr, ctx *term.Context) (term.Expr, error)
	SetInterrupt(flag bool)
	Clear()
}

// BetaNormalizer is the default Normalizer: weak-head reduction covering
// beta redexes, let expansion, context-bound values, defined constants and
// assigned metavariables. It reduces until the head is stuck, which is
// enough to reveal Pi and sort shapes in one Normalize call, so the
// checker's single retry when peeling application types suffices.
type BetaNormalizer struct {
	table       *symbols.Table
	subst       *meta.Substitution
	interrupted atomic.Bool
}

// NewBetaNormalizer creates a normalizer unfolding definitions from table.
func NewBetaNormalizer(table *symbols.Table) *BetaNormalizer {
	return &BetaNormalizer{table: table}
}

// SetSubstitution installs the metavariable view used to expand assigned
// metavariables. The checker hands its current substitution over on every
// call.
func (n *BetaNormalizer) SetSubstitution(s *meta.Substitution) { n.subst = s }

// SetInterrupt sets or clears the cooperative cancellation flag.
func (n *BetaNormalizer) SetInterrupt(flag bool) { n.interrupted.Store(flag) }

// Clear resets between-call state. The beta normalizer keeps no reduction
// cache, so only the substitution view is dropped.
func (n *BetaNormalizer) Clear() { n.subst = nil }

// Normalize returns the weak-head normal form of e under ctx.
func (n *BetaNormalizer) Normalize(e term.Expr, ctx *term.Context) (term.Expr, error) {
	for {
		if n.interrupted.Load() {
			return nil, NewInterruptedError()
		}
		switch t := e.(type) {
		case *term.Var:
			entry, defCtx, err := ctx.LookupExt(t.Idx)
			if err != nil || entry.Value == nil {
				return e, nil
			}
			e = term.Lift(entry.Value, ctx.Len()-defCtx.Len())
		case *term.Const:
			obj, err := n.table.Lookup(t.Name)
			if err != nil || !obj.HasValue() {
				return e, nil
			}
			e = obj.Value
		case *term.Meta:
			if n.subst != nil {
				if a, ok := n.subst.Assignment(t.ID); ok {
					e = a
					continue
				}
			}
			return e, nil
		case *term.Let:
			e = term.Instantiate(t.Body, []term.Expr{t.Value})
		case *term.App:
			fn, err := n.Normalize(t.Args[0], ctx)
			if err != nil {
				return nil, err
			}
			if lam, ok := fn.(*term.Lambda); ok {
				body := term.Instantiate(lam.Body, []term.Expr{t.Args[1]})
				if len(t.Args) > 2 {
					e = term.NewApp(body, t.Args[2:]...)
				} else {
					e = body
				}
				continue
			}
			if fn == t.Args[0] {
				return t, nil
			}
			return term.NewApp(fn, t.Args[1:]...), nil
		default:
			return e, nil
		}
	}
}
