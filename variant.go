package microbench

// Variant pairs a display name with the code under measurement.
//
// Run is treated as a black box: it must be callable repeatedly
// without external setup, should not accumulate unbounded state
// across calls, and must not do its own timing.
type Variant struct {
	Name string
	Run  func()
}
