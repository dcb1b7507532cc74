// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the panels.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight and BorderWidth are the rows and columns a rounded border takes.
	BorderHeight = 2
	BorderWidth  = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	PanelOverhead = BorderHeight + HeaderHeight
)
