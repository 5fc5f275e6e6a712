// Package downloader wraps the external downloader CLI. It runs the binary,
// scrapes its "Saving to:" announcements and reports which video and
// subtitle files were produced. Everything that depends on the wording of
// the downloader's log lines lives here.
package downloader
