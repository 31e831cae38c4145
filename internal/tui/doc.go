// Package tui implements the interactive terminal explorer.
//
// The explorer hosts the scan engine on Bubble Tea's single event loop:
// each tick resumes the in-flight scan for one time budget and the next
// frame paints whatever rows landed, so deep regions fill in
// progressively while the keyboard and mouse stay live. No goroutine
// other than the event loop ever touches the pixel grid.
//
// Each terminal cell shows two vertically stacked pixels via the upper
// half block in true color, so a cell area of R rows carries a scan of
// 2R pixel rows at full column width.
//
// # Key Bindings
//
//	i/+  - Zoom in (halve the view)
//	o/-  - Zoom out (pop the zoom history)
//	r    - Reset to the home view
//	p    - Rescan the current view
//	c    - Cancel the in-flight scan
//	g    - Cycle color schemes
//	s    - Save a PNG snapshot with a metadata sidecar
//	1-6  - Jump to a named landmark
//	?    - Toggle the full help footer
//	q    - Quit
//
// Mouse: drag a rectangle to zoom into it, wheel up/down to zoom
// in/out.
package tui
