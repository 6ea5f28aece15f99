// Package dialect defines the immutable per-file flag set resolved from the
// prologue directive. One Dialect value is threaded through scanner, parser,
// transforms and emitter; two compilations with different flag sets never
// share state.
package dialect

// Dialect is the resolved flag set for one file. The zero value is not
// valid; use Default().
type Dialect struct {
	// TabWidth is the number of columns a tab advances when measuring
	// indentation. `tab=N` in the prologue.
	TabWidth int

	// CoffeeComment enables '#' line comments (re-spelled as '//').
	CoffeeComment bool
	// CoffeeInterpolation enables '#{expr}' string interpolation.
	CoffeeInterpolation bool
	// CoffeeEq makes '==' emit as '===' and '!=' as '!=='.
	CoffeeEq bool
	// AutoVar declares assigned-but-undeclared names with 'var' at the top
	// of the enclosing function.
	AutoVar bool
	// JSX enables JSX element parsing in expression position.
	JSX bool
}

// Default returns the flag set used when no prologue directive is present.
func Default() Dialect {
	return Dialect{
		TabWidth: 1,
		JSX:      true,
	}
}

// WithCoffeeCompat returns a copy with the coffee-compatibility umbrella
// applied: comments, interpolation and loose-equality conventions together.
func (d Dialect) WithCoffeeCompat(on bool) Dialect {
	d.CoffeeComment = on
	d.CoffeeInterpolation = on
	d.CoffeeEq = on
	return d
}
