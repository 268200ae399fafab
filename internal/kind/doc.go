// Package kind enumerates the primitive numeric kinds known to the widening
// relation.
//
// A Kind names a Go predeclared numeric type. The set is closed: there are
// exactly ten kinds and no way to add one at runtime.
package kind
