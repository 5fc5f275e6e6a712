// Package subtitle turns SRT, ASS and VTT files into one flat block of
// dialogue text. Formats are selected by file extension.
package subtitle
