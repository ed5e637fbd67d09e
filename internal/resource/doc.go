// Package resource bounds the memory and bandwidth used while exporting
// submeshes.
//
//	th := resource.NewThrottle(resource.Limits{
//	    BufferBytes: 64 << 20,  // encoded blobs held at once
//	    BytesPerSec: 50 << 20,  // upload bandwidth
//	})
//
//	if err := th.AcquireBuffer(ctx, n); err != nil {
//	    return err
//	}
//	defer th.ReleaseBuffer(n)
//	if err := th.WaitIO(ctx, n); err != nil {
//	    return err
//	}
//
// A nil *Throttle is valid and never blocks.
package resource
