package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TitleHeight is the number of lines a panel title takes
	TitleHeight = 1

	// SidebarWidthRatio is the denominator for sidebar width (1/3 of total width)
	SidebarWidthRatio = 3

	// MinTerminalWidth and MinTerminalHeight keep layout math positive
	MinTerminalWidth  = 40
	MinTerminalHeight = 8

	// DefaultTextWidth is the add-task input width before the first resize
	DefaultTextWidth = 60
)

// Region names inside the root attachment point
const (
	RootID        = "app"
	SidebarRegion = "sidebar"
	DetailRegion  = "detail"
)

// Input limits
const (
	// TaskNameCharLimit is the character limit for the add-task input
	TaskNameCharLimit = 200
)
