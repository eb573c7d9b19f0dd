// Package ui draws the control panel and debug overlay of the ebiten front
// end. Everything except this file requires the ebiten build tag.
package ui
