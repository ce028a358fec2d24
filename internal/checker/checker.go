// Package checker implements the light checker: given an already elaborated
// term and a binding context, it reconstructs the term's type under the
// current metavariable assignment. It trusts that supplied terms are well
// formed — it never re-verifies that arguments match declared domains or
// that let values match their declared types; a full validating checker
// layers that on top.
package checker

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/lumenlang/lumen/internal/meta"
	"github.com/lumenlang/lumen/internal/symbols"
	"github.com/lumenlang/lumen/internal/term"
)

// ConstraintSink receives equality constraints from richer callers layered
// on top of the checker. The light checker accepts a sink and keeps it
// installed for the duration of a call but never feeds it.
type ConstraintSink interface {
	Push(lhs, rhs term.Expr, ctx *term.Context)
}

// Checker is a single checking session. It carries mutable cross-call state
// (the scoped cache and the last-seen context/substitution bookkeeping that
// governs the cache's validity), so one instance belongs to one logical
// caller at a time; wrap it in external synchronization or use one instance
// per goroutine. Expressions and contexts are immutable and freely shared.
type Checker struct {
	table        *symbols.Table
	norm         Normalizer
	cache        *scopedCache
	lastCtx      *term.Context
	subst        *meta.Substitution
	substVersion uint64
	sink         ConstraintSink
	interrupted  atomic.Bool
	log          *slog.Logger
}

// New creates a checker over the given symbol table, backed by the default
// beta normalizer.
func New(table *symbols.Table) *Checker {
	return NewWith(table, NewBetaNormalizer(table), nil)
}

// NewWith creates a checker with an explicit normalizer and logger. A nil
// logger disables logging.
func NewWith(table *symbols.Table, norm Normalizer, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Checker{
		table: table,
		norm:  norm,
		cache: newScopedCache(),
		log:   logger.With("component", "checker", "session", uuid.NewString()),
	}
}

// Infer computes the type of e under ctx and the given metavariable
// substitution. subst and sink may be nil. The substitution is read, never
// written; its identity and version are compared against the previous call
// to decide whether cached results are still valid. Errors are fatal to the
// call; no partial result is returned.
func (c *Checker) Infer(e term.Expr, ctx *term.Context, subst *meta.Substitution, sink ConstraintSink) (term.Expr, error) {
	c.setContext(ctx)
	c.setSubstitution(subst)
	prev := c.sink
	c.sink = sink
	defer func() { c.sink = prev }()
	return c.inferType(e, ctx)
}

// Clear unconditionally resets the cache and all lifecycle state, including
// the normalizer's.
func (c *Checker) Clear() {
	c.cache.clear()
	c.norm.Clear()
	c.lastCtx = nil
	c.subst = nil
	c.substVersion = 0
}

// SetInterrupt sets or clears the cooperative cancellation flag and
// propagates it to the normalizer. The flag is level-triggered: a caller
// that interrupted a run must reset it before reusing the checker. Checks
// happen on every expensive dispatch step, so cancellation is best-effort
// with bounded latency, not precise preemption.
func (c *Checker) SetInterrupt(flag bool) {
	c.interrupted.Store(flag)
	c.norm.SetInterrupt(flag)
}

// setContext reconciles the cache with the supplied context. Contexts are
// compared by identity: a structurally equal but distinct context is a
// different context and invalidates everything.
func (c *Checker) setContext(ctx *term.Context) {
	if c.lastCtx == ctx {
		return
	}
	c.log.Debug("context changed, resetting", "dropped", c.cache.size())
	c.Clear()
	c.lastCtx = ctx
}

// setSubstitution reconciles the cache with the supplied substitution. Same
// object but advanced version means its assignments changed since the cache
// entries were computed, so everything goes; a different object likewise.
func (c *Checker) setSubstitution(s *meta.Substitution) {
	switch {
	case c.subst == s:
		if s != nil && s.Version() > c.substVersion {
			c.log.Debug("substitution advanced, clearing cache",
				"from", c.substVersion, "to", s.Version(), "dropped", c.cache.size())
			c.substVersion = s.Version()
			c.cache.clear()
		}
	default:
		c.cache.clear()
		c.subst = s
		if s != nil {
			c.substVersion = s.Version()
		} else {
			c.substVersion = 0
		}
	}
	if sn, ok := c.norm.(interface{ SetSubstitution(*meta.Substitution) }); ok {
		sn.SetSubstitution(s)
	}
}

// inScope runs f inside a fresh cache layer, popping it on every exit path.
func inScope[T any](c *Checker, f func() (T, error)) (T, error) {
	c.cache.push()
	defer c.cache.pop()
	return f()
}

func (c *Checker) inferType(e term.Expr, ctx *term.Context) (term.Expr, error) {
	// Cheap cases: constant cost, never cached.
	switch t := e.(type) {
	case *term.Meta:
		if t.TypeOf == nil {
			return nil, NewUnassignedMetavarError(t.ID)
		}
		return t.TypeOf, nil
	case *term.Const:
		obj, err := c.table.Lookup(t.Name)
		if err != nil {
			return nil, err
		}
		if !obj.HasType() {
			return nil, NewUntypedConstantError(t.Name)
		}
		return obj.Type, nil
	case *term.Eq:
		return term.Prop, nil
	case *term.Lit:
		return t.TypeOf, nil
	case *term.Sort:
		return term.NewSort(t.Level.Succ()), nil
	case *term.Var:
		entry, err := ctx.Lookup(t.Idx)
		if err != nil {
			return nil, err
		}
		if entry.Domain != nil {
			// Already expressed relative to the lookup point, no lift.
			return entry.Domain, nil
		}
		// A binder without an explicit domain is not cheap: its type is
		// chased through the defining entry below.
	}

	if c.interrupted.Load() {
		return nil, NewInterruptedError()
	}

	shared := term.Shared(e)
	if shared {
		if r, ok := c.cache.lookup(e); ok {
			return r, nil
		}
	}

	var r term.Expr
	var err error
	switch t := e.(type) {
	case *term.Var:
		entry, defCtx, lerr := ctx.LookupExt(t.Idx)
		if lerr != nil {
			return nil, lerr
		}
		if entry.Value == nil {
			panic("checker: context entry has neither domain nor value")
		}
		var valType term.Expr
		valType, err = c.inferType(entry.Value, defCtx)
		if err == nil {
			// The value's type is expressed in the defining context; lift it
			// by the depth difference up to the lookup point.
			r = term.Lift(valType, ctx.Len()-defCtx.Len())
		}
	case *term.App:
		var fnType term.Expr
		fnType, err = c.inferType(t.Args[0], ctx)
		if err == nil {
			r, err = c.getRange(fnType, t, ctx)
		}
	case *term.Lambda:
		var bodyType term.Expr
		bodyType, err = inScope(c, func() (term.Expr, error) {
			return c.inferType(t.Body, term.Extend(ctx, t.Name, t.Domain))
		})
		if err == nil {
			r = term.NewPi(t.Name, t.Domain, bodyType)
		}
	case *term.Pi:
		var l1, l2 term.Level
		l1, err = c.inferUniverse(t.Domain, ctx)
		if err == nil {
			l2, err = inScope(c, func() (term.Level, error) {
				return c.inferUniverse(t.Body, term.Extend(ctx, t.Name, t.Domain))
			})
		}
		if err == nil {
			r = term.NewSort(l1.Max(l2))
		}
	case *term.Let:
		// Light-checker contract: the declared type and value agreement is
		// not re-verified here.
		r, err = inScope(c, func() (term.Expr, error) {
			return c.inferType(t.Body, term.ExtendLet(ctx, t.Name, t.Type, t.Value))
		})
	default:
		panic("checker: unreachable expression kind in expensive tier")
	}
	if err != nil {
		return nil, err
	}

	if shared {
		c.cache.insert(e, r)
	}
	return r, nil
}

// getRange computes the type of the application app given the inferred type
// t of its head. One Pi binder is peeled per argument; when t is not
// syntactically a Pi it is normalized once and retried, and if still not a
// Pi the head is not a function. A syntactically closed remainder is
// returned unchanged (the common non-dependent case); otherwise the peeled
// binders are instantiated with the actual arguments.
func (c *Checker) getRange(t term.Expr, app *term.App, ctx *term.Context) (term.Expr, error) {
	for num := len(app.Args) - 1; num > 0; num-- {
		if pi, ok := t.(*term.Pi); ok {
			t = pi.Body
			continue
		}
		nt, err := c.norm.Normalize(t, ctx)
		if err != nil {
			return nil, err
		}
		pi, ok := nt.(*term.Pi)
		if !ok {
			return nil, NewFunctionExpectedError(app)
		}
		t = pi.Body
	}
	if term.Closed(t) {
		return t, nil
	}
	return term.Instantiate(t, app.Args[1:]), nil
}

// inferUniverse returns the universe level of t: the level of its normalized
// type when that is a sort, or the bottom level when it is exactly Prop (the
// impredicative exception).
func (c *Checker) inferUniverse(t term.Expr, ctx *term.Context) (term.Level, error) {
	ty, err := c.inferType(t, ctx)
	if err != nil {
		return 0, err
	}
	u, err := c.norm.Normalize(ty, ctx)
	if err != nil {
		return 0, err
	}
	if s, ok := u.(*term.Sort); ok {
		return s.Level, nil
	}
	if u == term.Prop {
		return term.BottomLevel, nil
	}
	return 0, NewTypeExpectedError(t)
}
