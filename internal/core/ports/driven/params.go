package driven

// ParameterStore provides read-only access to node parameters, keyed by item
// index. Each item in a workflow batch carries its own immutable parameter
// snapshot; implementations must not share mutable state between indices.
type ParameterStore interface {
	// GetParameter returns the raw value of a parameter for the given item.
	// Returns an error wrapping domain.ErrParameterNotFound when the
	// parameter is absent.
	GetParameter(name string, itemIndex int) (any, error)
}
