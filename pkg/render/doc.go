// Package render draws spark components in a terminal with lipgloss.
//
// Every view Binds to its view model's published properties, mirrors the
// values it needs and redraws lazily on the next call to View. Views are
// driven from the host's UI loop and are not safe for concurrent use. Call
// Close to drop the bindings.
//
// Component metrics are expressed in points. [Cells] converts them to
// terminal columns.
package render
