package mesh

import (
	"errors"
	"fmt"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/internal/ancestor"
	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

var (
	// ErrNotIndexed is returned when a shape has no index and cannot be
	// synthesized as a compound.
	ErrNotIndexed = errors.New("shape is not indexed")

	// ErrInvalidState is returned when an operation does not fit the
	// registry's lifecycle.
	ErrInvalidState = errors.New("invalid registry state")

	// ErrKernelInconsistency is returned when the geometry kernel reports
	// topology whose types contradict their containment. The registry
	// should be rebuilt from scratch with SetRootShape.
	ErrKernelInconsistency = ancestor.ErrKernelInconsistency

	// ErrNotCompound is returned when compound synthesis is asked for a
	// shape that is not a compound.
	ErrNotCompound = errors.New("shape is not a compound")

	// ErrInvalidLimit is returned for a limit that is not a shape type.
	ErrInvalidLimit = errors.New("invalid sub-shape limit")
)

// KernelInconsistencyError carries the offending parent and child.
type KernelInconsistencyError = ancestor.KernelInconsistencyError

// ErrRootConflict indicates an attempt to replace one non-compound root
// with another without clearing the registry first.
//
// It unwraps to ErrInvalidState.
type ErrRootConflict struct {
	Current   shape.Key
	Requested shape.Key
}

func (e *ErrRootConflict) Error() string {
	return fmt.Sprintf("root shape %d is set; clear the registry before setting %d", e.Current, e.Requested)
}

func (e *ErrRootConflict) Unwrap() error { return ErrInvalidState }
