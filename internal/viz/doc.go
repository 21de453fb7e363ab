// Package viz draws composed figures in the terminal.
//
// Charts are plotted with asciigraph on a fixed column grid spanning each
// spec's x-range, so the three stacked charts line up column for column:
//
//   - [RenderSpec]: one chart with its title and optional dashed marker
//   - [RenderFigure]: the three charts stacked top to bottom
//   - [Slider]: Bubble Tea model driving the reveal limit
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	h/l, ←/→  - Move the slider one step
//	g/G       - Jump to the lower/upper bound
//	0-9       - Jump to that value when it is in range
//	t         - Cycle color themes
//	q         - Quit
//
// Values outside a chart's y-range are left blank rather than drawn at the
// frame edge.
package viz
