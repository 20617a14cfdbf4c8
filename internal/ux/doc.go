// Package ux persists viewer preferences for the portfolio carousel:
// the reduced-motion choice and the colour theme. Preferences live in a
// small JSON file and are reloaded when it changes on disk, so another
// process (or a hand edit) can flip them while the carousel runs.
package ux
