// Package engine wraps the external mastering engine binary.
//
// The engine performs the actual audio transform and is opaque to the rest
// of the system. This package shells out to the configured binary, streams
// its JSON progress lines, and reports the rendition paths it produced.
package engine
