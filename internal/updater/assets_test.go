package updater

import (
	"errors"
	"testing"
)

func TestFindAsset(t *testing.T) {
	assets := []Asset{
		{Name: "foo.js", DownloadURL: "https://example.com/foo.js"},
		{Name: "foo.js.map", DownloadURL: "https://example.com/foo.js.map"},
		{Name: MetadataAssetName, DownloadURL: "https://example.com/metadata.json"},
	}

	asset, err := FindAsset(assets, "foo.js")
	if err != nil {
		t.Fatalf("FindAsset failed: %v", err)
	}
	if asset.DownloadURL != "https://example.com/foo.js" {
		t.Errorf("selected %q", asset.DownloadURL)
	}

	if _, err := FindAsset(assets, "Foo.js"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("matching should be exact, got err %v", err)
	}
	if _, err := FindAsset(nil, "foo.js"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound for empty list, got %v", err)
	}
}

func TestScriptName(t *testing.T) {
	tests := []struct {
		path string
		file string
		name string
	}{
		{"./scripts/foo.js", "foo.js", "foo"},
		{`C:\macros\scripts\foo.js`, "foo.js", "foo"},
		{"foo.js", "foo.js", "foo"},
		{"scripts/auto-fish.min.js", "auto-fish.min.js", "auto-fish.min"},
		{"scripts/noext", "noext", "noext"},
		{"scripts/.hidden", ".hidden", ".hidden"},
		{`mixed/dirs\bar.ts`, "bar.ts", "bar"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ScriptFile(tt.path); got != tt.file {
				t.Errorf("ScriptFile(%q) = %q, want %q", tt.path, got, tt.file)
			}
			if got := ScriptName(tt.path); got != tt.name {
				t.Errorf("ScriptName(%q) = %q, want %q", tt.path, got, tt.name)
			}
		})
	}
}
