// Package cli defines the Cobra command tree for the scriptsync CLI. Each
// file registers one top-level command (update, check, config, version) with
// the root command. Commands only resolve settings, wire the updater and
// format output; the update flow itself lives in internal/updater.
package cli
