package domain

// Positions inside an ArgumentVector.
const (
	PositionPlugin  = 1
	PositionAction  = 2
	PositionTargets = 3
)

// ArgumentVector is the raw argument list of one invocation:
// [0] program path, [1] plugin or meta command, [2] action, [3..] action arguments.
//
// Accessors never hand out the backing array so a vector forwarded to a plugin
// reaches its help action unchanged.
type ArgumentVector []string

// NewArgumentVector copies args into a new vector.
func NewArgumentVector(args ...string) ArgumentVector {
	return append(ArgumentVector(nil), args...)
}

// At returns the element at position i and whether it exists.
func (a ArgumentVector) At(i int) (string, bool) {
	if i < 0 || i >= len(a) {
		return "", false
	}
	return a[i], true
}

// Plugin returns the plugin identifier or meta command.
func (a ArgumentVector) Plugin() (string, bool) {
	return a.At(PositionPlugin)
}

// Action returns the requested action name.
func (a ArgumentVector) Action() (string, bool) {
	return a.At(PositionAction)
}

// Tail returns a copy of the free-form arguments after plugin and action.
func (a ArgumentVector) Tail() []string {
	if len(a) <= PositionTargets {
		return nil
	}
	return append([]string(nil), a[PositionTargets:]...)
}

// Contains reports whether token appears anywhere in the vector.
func (a ArgumentVector) Contains(token string) bool {
	for _, arg := range a {
		if arg == token {
			return true
		}
	}
	return false
}
