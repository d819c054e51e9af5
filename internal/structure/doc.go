// Package structure builds the collection tree of a workspace and selects
// the collections to render.
//
// The workspace declaration lists dotted collection paths:
//
//	collections:
//	  - teamA
//	  - teamB.payments
//
// The first component of each path names a root directory next to the
// declaration file. Every root is loaded together with all of its
// sub-directories, recursively, whether or not they are declared. A
// collection is rendered when a declared path is a component-wise prefix of
// its name, so declaring "teamA" renders "teamA" and "teamA.sub" but not
// "teamAB".
package structure
