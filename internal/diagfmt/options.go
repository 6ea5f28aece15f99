// Package diagfmt renders diagnostics and token dumps for the host
// terminal. It is presentation only: the compiler never depends on it.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows the path the file was loaded with.
	PathModeAuto PathMode = iota
	// PathModeBasename strips directories.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color       bool
	PathMode    PathMode
	ShowNotes   bool
	ShowPreview bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode     PathMode
	IncludeNotes bool
	// Max truncates the output list; 0 means everything in the bag.
	Max int
}
