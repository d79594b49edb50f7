// Package preset holds the static registry of mastering presets and the
// typed configuration records derived from them.
//
// The catalog is constructed once at process start from a literal table and
// is read-only afterwards. Configuration overrides are applied by producing a
// fresh Settings value per work item; shared Preset values are never mutated.
package preset
