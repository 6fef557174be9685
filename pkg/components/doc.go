// Package components holds the pieces shared by every spark component.
//
// Each component lives in its own subpackage and follows the same shape:
//
//   - use cases: pure functions from a [theme.Theme] and the component's
//     configuration (intent, variant, shape) to derived values such as
//     colors, spacings and borders,
//   - a view model that owns the configuration, calls the use cases and
//     publishes the results through [core.Observable] properties,
//   - views (see package render and the showcase) that Bind to those
//     properties and redraw.
//
// View models are not safe for concurrent mutation. Hosts drive them from a
// single loop; published values may be read from any goroutine.
package components
