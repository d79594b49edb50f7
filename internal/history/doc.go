// Package history persists completed mastering runs.
//
// The store keeps at most the newest 100 records (configurable), evicting
// oldest first on append. A workspace file lock enforces the single-writer
// assumption across processes.
package history
