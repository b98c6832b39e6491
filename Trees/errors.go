package Trees

import "github.com/pkg/errors"

// ErrNoSuchElement is returned by Ancestor when the value isn't in the tree
// or is held by the root.
var ErrNoSuchElement = errors.New("no such element")
