package updater

import (
	"context"
	"fmt"
)

// DownloadAsset fetches the full body of a release asset.
func (u *Updater) DownloadAsset(ctx context.Context, asset *Asset) ([]byte, error) {
	body, err := u.get(ctx, asset.DownloadURL, "application/octet-stream")
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", asset.Name, err)
	}
	u.logger.Debug("downloaded asset", "name", asset.Name, "bytes", len(body))
	return body, nil
}
