// Package carousel implements the positioning and interaction engine behind the
// portfolio's 3D project carousel.
//
// The engine is host-agnostic. A Controller owns the navigation state and is
// the only thing that mutates it; hosts feed it keyboard, drag, hover, resize
// and motion-preference input, and read back either State snapshots (via
// Subscribe) or a fully composed Frame (via Compose).
//
// Geometry is a pure function of (card index, active index, card count): cards
// sit evenly around a circle and the card at circular offset zero is the focal
// card. Autoplay and the accessibility announcement are the only scheduled
// work; both run on an injectable Clock and are cancelled by Controller.Close.
package carousel
