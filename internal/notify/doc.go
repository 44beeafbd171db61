// Package notify formats leveled status messages for the user.
//
// Messages are built with the host's "&" color markup (&6 gold, &4 dark red,
// ...), with any literal "&" in the text doubled so it cannot inject
// formatting. A Renderer turns the markup into the final line (section-sign
// codes for in-game chat, lipgloss styles for a terminal, or plain text) and
// a Sink emits it.
package notify
