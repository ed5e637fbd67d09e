package conv

import (
	"fmt"
	"math"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToInt32 converts int to int32 safely.
func IntToInt32(v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32", v)
	}
	return int32(v), nil
}

// IntToIndex converts a table position to a shape index.
func IntToIndex(v int) (shape.Index, error) {
	i, err := IntToInt32(v)
	if err != nil {
		return shape.NoIndex, err
	}
	if i < 0 {
		return shape.NoIndex, fmt.Errorf("integer overflow: %d cannot be converted to index (negative)", v)
	}
	return shape.Index(i), nil
}

// IndexToUint32 converts a shape index to a bitmap member.
func IndexToUint32(i shape.Index) (uint32, error) {
	if i < 0 {
		return 0, fmt.Errorf("integer overflow: index %d cannot be converted to uint32 (negative)", i)
	}
	return uint32(i), nil
}

// Uint32ToIndex converts a bitmap member back to a shape index.
func Uint32ToIndex(v uint32) (shape.Index, error) {
	if v > math.MaxInt32 {
		return shape.NoIndex, fmt.Errorf("integer overflow: %d cannot be converted to index (too large)", v)
	}
	return shape.Index(v), nil
}
