package updater

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// MetadataAssetName is the release asset that lists script versions.
const MetadataAssetName = "metadata.json"

// LegacyMetadataIndex is the asset position older releases relied on for
// metadata.json.
const LegacyMetadataIndex = 1

//go:embed schema/metadata.schema.json
var metadataSchemaBytes []byte

var (
	metadataSchema     *jsonschema.Schema
	metadataSchemaOnce sync.Once
	metadataSchemaErr  error
)

// ErrInvalidMetadata is returned when the metadata document, or the entry of
// the requested script, does not have the expected shape.
var ErrInvalidMetadata = errors.New("invalid metadata")

// ErrScriptNotListed is returned when the metadata has no version for a script.
var ErrScriptNotListed = errors.New("script not listed in metadata")

// ScriptInfo is one script's entry in the release metadata.
type ScriptInfo struct {
	Version string `json:"version"`
}

// Metadata maps script names to their raw entries. Entries are only decoded
// on lookup, so a malformed entry affects nothing but its own script.
type Metadata map[string]json.RawMessage

// Script validates and decodes the entry for name.
func (m Metadata) Script(name string) (ScriptInfo, error) {
	raw, ok := m[name]
	if !ok {
		return ScriptInfo{}, fmt.Errorf("%w: %s", ErrScriptNotListed, name)
	}

	schema, err := getMetadataSchema()
	if err != nil {
		return ScriptInfo{}, fmt.Errorf("loading schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return ScriptInfo{}, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, name, err)
	}
	if err := schema.Validate(inst); err != nil {
		return ScriptInfo{}, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, name, err)
	}

	var info ScriptInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return ScriptInfo{}, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, name, err)
	}
	if info.Version == "" {
		return ScriptInfo{}, fmt.Errorf("%w: %s has no version", ErrScriptNotListed, name)
	}
	return info, nil
}

// MetadataSelection decides which release asset is downloaded as metadata.
// Either way the release must contain an asset named metadata.json.
type MetadataSelection struct {
	byPosition bool
	index      int
}

// SelectByName downloads the asset named metadata.json.
func SelectByName() MetadataSelection {
	return MetadataSelection{}
}

// SelectByPosition downloads whichever asset sits at index, regardless of its
// name. Asset order is not guaranteed by GitHub; this exists only for feeds
// that depend on the old positional lookup.
func SelectByPosition(index int) MetadataSelection {
	return MetadataSelection{byPosition: true, index: index}
}

// String describes the selection for logs.
func (s MetadataSelection) String() string {
	if s.byPosition {
		return fmt.Sprintf("position %d", s.index)
	}
	return "name " + MetadataAssetName
}

func (s MetadataSelection) pick(assets []Asset) (*Asset, error) {
	named, err := FindAsset(assets, MetadataAssetName)
	if err != nil {
		return nil, err
	}
	if !s.byPosition {
		return named, nil
	}
	if s.index < 0 || s.index >= len(assets) {
		return nil, fmt.Errorf("metadata asset index %d out of range (%d assets)", s.index, len(assets))
	}
	return &assets[s.index], nil
}

// getMetadataSchema compiles the embedded entry schema once and returns it.
func getMetadataSchema() (*jsonschema.Schema, error) {
	metadataSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(metadataSchemaBytes))
		if err != nil {
			metadataSchemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("metadata.schema.json", doc); err != nil {
			metadataSchemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		metadataSchema, metadataSchemaErr = c.Compile("metadata.schema.json")
		if metadataSchemaErr != nil {
			metadataSchemaErr = fmt.Errorf("compiling schema: %w", metadataSchemaErr)
		}
	})
	return metadataSchema, metadataSchemaErr
}

// ParseMetadata decodes the top level of a metadata document, which must be
// a JSON object. Entries are validated by Script.
func ParseMetadata(data []byte) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: document is null", ErrInvalidMetadata)
	}
	return m, nil
}

// FetchMetadata locates, downloads and parses the release metadata.
func (u *Updater) FetchMetadata(ctx context.Context, release *Release) (Metadata, error) {
	asset, err := u.selection.pick(release.Assets)
	if err != nil {
		return nil, err
	}
	u.logger.Debug("selected metadata asset", "by", u.selection, "asset", asset.Name)

	body, err := u.DownloadAsset(ctx, asset)
	if err != nil {
		return nil, err
	}
	return ParseMetadata(body)
}
