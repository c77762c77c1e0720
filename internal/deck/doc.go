// Package deck loads card decks from JSON files.
//
// A deck is an ordered sequence of typed cards (text, image,
// translation, finance). The type tag is consumed only at render time;
// the presentation engine works purely with the deck's length and an
// index, so new card kinds never touch the core.
package deck
