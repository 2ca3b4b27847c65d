package syntax

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var structural = cmp.Options{
	cmpopts.IgnoreTypes(Span{}),
	cmpopts.EquateEmpty(),
}

// Equal reports whether a and b are structurally equal. Source spans are
// ignored, and a nil slice equals an empty one.
func Equal(a, b Node) bool {
	return cmp.Equal(a, b, structural)
}

// Diff returns a human-readable report of the structural differences
// between a and b, or "" when they are Equal.
func Diff(a, b Node) string {
	return cmp.Diff(a, b, structural)
}
