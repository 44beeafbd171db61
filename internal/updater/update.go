package updater

import (
	"context"
	"errors"
	"fmt"

	"github.com/scriptsync/scriptsync/internal/store"
)

// DefaultVersion is recorded for scripts that were never updated.
const DefaultVersion = "0.0.0"

const updaterKey = "updater"

// Messages reported by UpdateScript.
const (
	msgReleaseFailed  = "[Updater] Failed to get latest release info"
	msgMetadataFailed = "[Updater] Failed to get metadata"
	msgNoScriptInfo   = "[Updater] Metadata does not contain script info"
	msgConfigFailed   = "[Updater] Failed to read config"
	msgNoScriptAsset  = "[Updater] Failed to find script asset"
	msgDownloadFailed = "[Updater] Failed to download the latest version"
	msgWriteFailed    = "[Updater] Failed to write the latest version"
	msgSaveFailed     = "[Updater] Updated the script but failed to save config"
)

// UpdateScript brings the script at filePath up to the version listed in the
// latest release, or in the pinned one when WithTag is set. It returns true only when the file was replaced. Failures
// are reported through the notifier, never returned.
func (u *Updater) UpdateScript(ctx context.Context, filePath string) bool {
	file := ScriptFile(filePath)
	name := ScriptName(filePath)
	logger := u.logger.With("script", name)

	release, err := u.Release(ctx)
	if err != nil {
		logger.Debug("release lookup failed", "err", err)
		u.notifier.Error(msgReleaseFailed)
		return false
	}

	metadata, err := u.FetchMetadata(ctx, release)
	if err != nil {
		logger.Debug("metadata lookup failed", "err", err)
		u.notifier.Error(msgMetadataFailed)
		return false
	}
	info, err := metadata.Script(name)
	if errors.Is(err, ErrScriptNotListed) {
		u.notifier.Error(msgNoScriptInfo)
		return false
	}
	if err != nil {
		logger.Debug("metadata entry invalid", "err", err)
		u.notifier.Error(msgMetadataFailed)
		return false
	}
	latest := info.Version

	doc, err := u.store.Read(u.configPath, defaultDocument(name))
	if err != nil {
		logger.Debug("config read failed", "path", u.configPath, "err", err)
		u.notifier.Error(msgConfigFailed)
		return false
	}
	current := installedVersion(doc, name)

	if !NeedsUpdate(current, latest) {
		logger.Debug("already up to date", "version", current)
		return false
	}

	asset, err := FindAsset(release.Assets, file)
	if err != nil {
		u.notifier.Error(msgNoScriptAsset)
		return false
	}

	content, err := u.DownloadAsset(ctx, asset)
	if err != nil {
		logger.Debug("script download failed", "err", err)
		u.notifier.Error(msgDownloadFailed)
		return false
	}

	if err := WriteScript(filePath, content); err != nil {
		logger.Debug("script write failed", "path", filePath, "err", err)
		u.notifier.Error(msgWriteFailed)
		return false
	}

	previous := current
	if previous == "" {
		previous = "unknown"
	}
	u.notifier.Success(fmt.Sprintf("[Updater] Updated %s from %s to %s", name, previous, latest))

	setInstalledVersion(doc, name, latest)
	if err := u.store.Write(u.configPath, doc); err != nil {
		logger.Debug("config write failed", "path", u.configPath, "err", err)
		u.notifier.Warn(msgSaveFailed)
	}

	return true
}

// Status is the read-only view returned by Check.
type Status struct {
	Release      string `json:"release"`
	Script       string `json:"script"`
	Asset        string `json:"asset"`
	Current      string `json:"current"`
	Latest       string `json:"latest"`
	UpdateNeeded bool   `json:"update_needed"`
	// Relation is one of the Relation* constants, for display only.
	Relation string `json:"relation"`
	// AssetFound is false when the release has no asset for the script.
	AssetFound bool `json:"asset_found"`
}

// Check reports what UpdateScript would do without downloading the script
// or writing anything. A missing config document counts as DefaultVersion;
// a corrupt one is an error wrapping store.ErrCorrupt and is left in place.
func (u *Updater) Check(ctx context.Context, filePath string) (*Status, error) {
	file := ScriptFile(filePath)
	name := ScriptName(filePath)

	release, err := u.Release(ctx)
	if err != nil {
		return nil, err
	}
	metadata, err := u.FetchMetadata(ctx, release)
	if err != nil {
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}
	info, err := metadata.Script(name)
	if err != nil {
		return nil, err
	}
	latest := info.Version

	doc, err := store.Peek(u.configPath, defaultDocument(name))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	current := installedVersion(doc, name)

	_, assetErr := FindAsset(release.Assets, file)
	return &Status{
		Release:      release.Version,
		Script:       name,
		Asset:        file,
		Current:      current,
		Latest:       latest,
		UpdateNeeded: NeedsUpdate(current, latest),
		Relation:     Relation(current, latest),
		AssetFound:   assetErr == nil,
	}, nil
}

func defaultDocument(name string) store.Document {
	return store.Document{
		updaterKey: map[string]any{
			name: map[string]any{"version": DefaultVersion},
		},
	}
}

// installedVersion returns the recorded version of name, or "" when the
// entry holds something other than a string.
func installedVersion(doc store.Document, name string) string {
	entry, ok := doc.Object(updaterKey)[name].(map[string]any)
	if !ok {
		return ""
	}
	v, _ := entry["version"].(string)
	return v
}

func setInstalledVersion(doc store.Document, name, version string) {
	scripts := doc.Object(updaterKey)
	entry, ok := scripts[name].(map[string]any)
	if !ok {
		entry = map[string]any{}
		scripts[name] = entry
	}
	entry["version"] = version
}
