// Package graphics wraps driver-side GPU objects in ownership-safe
// resource types. Every wrapper acquires its handles on construction
// and releases them exactly once through Destroy; meaningful handle
// values never exist outside a wrapper.
package graphics

// Handle identifies a driver-side object.
type Handle uint32

// Index returns the raw driver index of the handle.
func (h Handle) Index() uint32 {
	return uint32(h)
}
