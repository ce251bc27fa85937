// Package viewnode defines the generic serializable value tree that the
// mapping layer produces and template renderers consume. A node is one of
// Object, Array, String, Number, Bool, or Null. Object keys distinguish
// between "absent" (key missing) and "explicitly null" (key maps to Null),
// which the constraint view schema relies on.
package viewnode

// Node is implemented by every value kind that can appear in a view tree.
type Node interface {
	node()
}

// Object is an unordered mapping of field names to child nodes.
type Object map[string]Node

// Array is an ordered sequence of child nodes.
type Array []Node

// String is a text leaf.
type String string

// Number is a numeric leaf.
type Number float64

// Bool is a boolean leaf.
type Bool bool

// Null is an explicit null leaf, distinct from an absent object key.
type Null struct{}

func (Object) node() {}
func (Array) node()  {}
func (String) node() {}
func (Number) node() {}
func (Bool) node()   {}
func (Null) node()   {}

// MarshalJSON renders the explicit null leaf as a JSON null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Plain converts a node tree into plain Go values (map[string]any, []any,
// string, float64, bool, nil) so reflection-driven template engines can walk
// it without knowing about this package.
func Plain(n Node) any {
	switch v := n.(type) {
	case Object:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[key] = Plain(child)
		}
		return out
	case Array:
		out := make([]any, 0, len(v))
		for _, child := range v {
			out = append(out, Plain(child))
		}
		return out
	case String:
		return string(v)
	case Number:
		return float64(v)
	case Bool:
		return bool(v)
	default:
		// Null and untyped nils both flatten to nil.
		return nil
	}
}
