package updater

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAssetNotFound is returned when a release has no asset with the
// requested name.
var ErrAssetNotFound = errors.New("asset not found")

// FindAsset returns the asset whose name is exactly name.
func FindAsset(assets []Asset, name string) (*Asset, error) {
	for i := range assets {
		if assets[i].Name == name {
			return &assets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
}

// ScriptFile returns the file name part of path. Both "/" and "\" count as
// separators because the host may hand us either.
func ScriptFile(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ScriptName returns the file name of path without its trailing extension.
// It is the key used in the release metadata and the config document.
func ScriptName(path string) string {
	file := ScriptFile(path)
	if i := strings.LastIndexByte(file, '.'); i > 0 {
		return file[:i]
	}
	return file
}
