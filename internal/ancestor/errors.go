package ancestor

import (
	"errors"
	"fmt"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

var (
	// ErrKernelInconsistency is the sentinel behind KernelInconsistencyError.
	ErrKernelInconsistency = errors.New("kernel inconsistency")

	// errNotIndexed reports a shape reached during a build that the caller
	// never indexed.
	errNotIndexed = errors.New("shape reached during ancestor build is not indexed")
)

// KernelInconsistencyError reports topology whose types contradict their
// position in a containment traversal.
type KernelInconsistencyError struct {
	Parent     shape.Key
	ParentType shape.Type
	Child      shape.Key
	ChildType  shape.Type
	Reason     string
}

func (e *KernelInconsistencyError) Error() string {
	return fmt.Sprintf("kernel inconsistency: %s %d -> %s %d: %s",
		e.ParentType, e.Parent, e.ChildType, e.Child, e.Reason)
}

func (e *KernelInconsistencyError) Unwrap() error { return ErrKernelInconsistency }
