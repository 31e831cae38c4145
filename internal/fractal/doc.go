// Package fractal computes escape-time scans of the Mandelbrot set.
//
// An [Engine] owns a fixed-resolution [Grid] of per-pixel results and
// produces one [Scan] at a time. Scans run cooperatively: the host calls
// [Scan.Resume] from its event loop and the scan yields control back
// after roughly one time budget of whole rows, so a terminal UI stays
// responsive while deep regions compute. [Scan.Run] drives the same row
// loop to completion for one-shot rendering.
//
// # Example
//
//	eng := fractal.NewEngine(640, 480)
//	scan := eng.Begin(view.Home(640.0/480.0), 0)
//	for scan.Resume() {
//		// handle input, repaint the partial grid
//	}
//
// # Thread Safety
//
// Engines, grids, and scans are NOT thread-safe. The engine is built for
// a single cooperative event loop; nothing else may touch the grid while
// a scan is in flight.
package fractal
