package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosed(t *testing.T) {
	nat := NewConst("Nat")
	tests := []struct {
		name string
		expr Expr
		want bool
	}{
		{"constant", nat, true},
		{"sort", NewSort(3), true},
		{"free var", NewVar(0), false},
		{"bound var", NewLambda("x", nat, NewVar(0)), true},
		{"escaping var", NewLambda("x", nat, NewVar(1)), false},
		{"bound in pi", NewPi("x", nat, NewVar(0)), true},
		{"free in pi domain", NewPi("x", NewVar(0), nat), false},
		{"bound in let body", NewLet("x", nil, nat, NewVar(0)), true},
		{"free in let value", NewLet("x", nil, NewVar(0), nat), false},
		{"free in eq", NewEq(nat, NewVar(2)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Closed(tt.expr))
		})
	}
}

func TestLiftPreservesClosedNodes(t *testing.T) {
	nat := NewConst("Nat")
	lam := NewLambda("x", nat, NewVar(0))

	assert.Same(t, nat, Lift(nat, 5))
	assert.Same(t, lam, Lift(lam, 2), "closed terms lift to themselves")
}

func TestLift(t *testing.T) {
	nat := NewConst("Nat")

	lifted := Lift(NewVar(0), 2)
	require.IsType(t, &Var{}, lifted)
	assert.Equal(t, 2, lifted.(*Var).Idx)

	// The bound variable stays, the free one moves.
	lam := NewLambda("x", nat, NewApp(NewVar(0), NewVar(1)))
	got := Lift(lam, 3)
	want := NewLambda("x", nat, NewApp(NewVar(0), NewVar(4)))
	assert.True(t, Eqv(want, got), "got %s, want %s", got, want)
}

func TestLiftAboveThreshold(t *testing.T) {
	e := NewApp(NewVar(0), NewVar(1), NewVar(2))
	got := LiftAbove(e, 2, 10)
	want := NewApp(NewVar(0), NewVar(1), NewVar(12))
	assert.True(t, Eqv(want, got), "got %s, want %s", got, want)
}

func TestInstantiateSingle(t *testing.T) {
	zero := NewConst("zero")

	// #0 is replaced by the substituted term itself.
	got := Instantiate(NewVar(0), []Expr{zero})
	assert.Same(t, zero, got)

	// Variables above the substituted range shift down: one binder is gone.
	got = Instantiate(NewVar(3), []Expr{zero})
	require.IsType(t, &Var{}, got)
	assert.Equal(t, 2, got.(*Var).Idx)
}

func TestInstantiateOutermostFirst(t *testing.T) {
	g := NewConst("g")
	a1 := NewConst("a1")
	a2 := NewConst("a2")

	// Body as peeled from Pi(x, Pi(y, ...)): x is #1, y is #0.
	body := NewApp(g, NewVar(1), NewVar(0))
	got := Instantiate(body, []Expr{a1, a2})
	want := NewApp(g, a1, a2)
	assert.True(t, Eqv(want, got), "got %s, want %s", got, want)
}

func TestInstantiateLiftsUnderBinders(t *testing.T) {
	nat := NewConst("Nat")

	// (fun y : Nat, #1)[#0 := free] — the substituted term crosses a binder.
	lam := NewLambda("y", nat, NewVar(1))
	got := Instantiate(lam, []Expr{NewVar(0)})
	want := NewLambda("y", nat, NewVar(1))
	assert.True(t, Eqv(want, got), "got %s, want %s", got, want)

	// Same, with a closed term: no lift visible.
	zero := NewConst("zero")
	got = Instantiate(lam, []Expr{zero})
	want = NewLambda("y", nat, zero)
	assert.True(t, Eqv(want, got), "got %s, want %s", got, want)
}

func TestInstantiateClosedIsIdentity(t *testing.T) {
	nat := NewConst("Nat")
	pi := NewPi("x", nat, nat)
	assert.Same(t, pi, Instantiate(pi, []Expr{NewConst("zero")}))
}
