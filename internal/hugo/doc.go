// Package hugo probes the external Hugo binary that the site tasks wrap.
//
// Rendering itself is entirely Hugo's business; this package only locates the
// executable and reads its version banner for diagnostics.
package hugo
