// Package ui provides the rendering side of the taches TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │                                   │
//	│   sidebar       │         detail                    │
//	│   (1/3 width)   │         (2/3 width)               │
//	│                 │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Surfaces
//
// A surface accepts Reset(regions...) and Render(region, description).
// Screen is the interactive surface: each Region keeps the last description
// rendered into it and tracks a cursor that survives re-renders as long as
// the row under it keeps its key. TextSurface formats the same descriptions
// as plain text.
//
// Regions never look at repository data. Activating a row only invokes the
// callback attached to it by the view builders.
//
// # Components
//
// ViewContext: singleton holding terminal size and pane widths. All size
// calculations go through it.
//
// Header: application title plus the selected list name and pending count.
//
// Footer: context-aware key hints and flash messages.
//
// # Styles
//
// Styles live in styles.go and are rebuilt from the active Theme whenever
// SetTheme is called.
package ui
