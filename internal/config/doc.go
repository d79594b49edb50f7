// Package config loads, validates, and normalizes remaster's TOML
// configuration.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/remaster/config.toml, then remaster.toml in the working
// directory. Missing files are not an error: defaults apply and commands can
// run without any configuration present. All path fields are expanded to
// absolute paths before the config is handed to other packages.
package config
