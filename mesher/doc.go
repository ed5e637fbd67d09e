// Package mesher connects meshing algorithms to a mesh registry.
//
// A Mesher fills the element storage of the submeshes below a target shape.
// Run drives one Mesher call together with a progress poller and joins the
// poller before it returns, so the registry may be mutated afterwards.
//
// Parameters are plain values and can be loaded from TOML:
//
//	algorithm = "surface"
//	max_size  = 0.25
//	min_size  = 0.01
//	order     = 1
//	optimize  = true
package mesher
