// Package pixel implements the monochrome pixel stores used by SSD1306 style displays.
//
// The types in this package are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
