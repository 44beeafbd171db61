// Package config manages the tool's own settings stored at
// ~/.scriptsync/config.yaml: which repository to watch, where the
// version-tracking document lives, indentation, timeouts and an optional
// download mirror. Every key can be overridden with a SCRIPTSYNC_* variable.
package config
