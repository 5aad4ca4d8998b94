// Package listview provides a windowed list component for Bubble Tea.
//
// Only the rows inside the viewport are drawn, so a demo view stays
// responsive regardless of its size. The model also tracks the overscan
// window, the viewport widened by a configurable margin, which mirrors the
// rows a browser virtualizer keeps mounted off-screen.
package listview
