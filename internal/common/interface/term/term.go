// Released under an MIT license. See LICENSE.

// Package term defines the interface for all abc term nodes.
package term

// I (term) is a node in abc's shared term graph. Terms are immutable;
// everything else about them is learned through a container.
type I interface {
	Equal(t I) bool
	Name() string
}
