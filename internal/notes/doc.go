// Package notes turns extracted subtitle text into study notes with a
// language model and persists them under the notes directory.
package notes
