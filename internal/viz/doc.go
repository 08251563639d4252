// Package viz renders the simulation in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [LiveModel]: the ring-escape session, rendered at the frame rate
//   - [ArenaModel]: the free-bounce arena, driven by mouse clicks
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart the session
//	T     - Cycle color themes
//	C     - Clear the arena (arena view only)
//	Q     - Quit
package viz
