// Package ui contains the Bubble Tea program that hosts the popup menu.
// The Model stands in for the page the menu lives on: it owns the input
// router, renders a plain background and overlays the menu box at the
// menu's position.
//
// Message flow:
//   - Key presses go to the router first. While the menu is visible it has
//     keyboard capture bound there, so navigation keys never reach the page.
//     Keys nobody consumed are matched against the page bindings.
//   - Mouse motion over an item hovers it. A left press on an item runs the
//     item's click path and stops there; any other left press is a page
//     click, which the router fans out (the menu hides itself). A right
//     press opens the menu at the pointer.
//   - The menu's "select" notification records the selection and, when
//     configured, ends the program.
package ui
