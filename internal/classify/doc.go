// Package classify resolves raw user inputs into typed mastering jobs.
//
// An input may be a single audio file, a directory, a zip archive, a
// playlist file, a search token, or a URL-like string. Classification is
// ordered and first match wins; directories are further split into album or
// batch jobs by a filename heuristic.
package classify
