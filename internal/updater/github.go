package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/scriptsync/scriptsync/internal/branding"
)

// StatusError is returned when a request completes with a status other
// than 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	switch e.StatusCode {
	case http.StatusNotFound:
		return fmt.Sprintf("%s: not found", e.URL)
	case http.StatusForbidden:
		return fmt.Sprintf("%s: forbidden (GitHub API rate limit? set a token for higher limits)", e.URL)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.URL, e.StatusCode)
}

// Release fetches the pinned release when a tag is set, the latest otherwise.
func (u *Updater) Release(ctx context.Context) (*Release, error) {
	if u.tag != "" {
		return u.ReleaseByTag(ctx, u.tag)
	}
	return u.LatestRelease(ctx)
}

// LatestRelease fetches the latest release of the configured repository.
func (u *Updater) LatestRelease(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", u.apiBase, u.repo)
	return u.fetchRelease(ctx, url)
}

// ReleaseByTag fetches a release by tag. A missing "v" prefix is added.
func (u *Updater) ReleaseByTag(ctx context.Context, tag string) (*Release, error) {
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	url := fmt.Sprintf("%s/repos/%s/releases/tags/%s", u.apiBase, u.repo, tag)
	return u.fetchRelease(ctx, url)
}

func (u *Updater) fetchRelease(ctx context.Context, url string) (*Release, error) {
	body, err := u.get(ctx, url, "application/vnd.github+json")
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}

	// If a mirror is configured, rewrite asset download URLs.
	if u.mirror != "" {
		for i := range release.Assets {
			release.Assets[i].DownloadURL = strings.TrimRight(u.mirror, "/") + "/" + release.Assets[i].Name
		}
	}

	u.logger.Debug("fetched release", "tag", release.Version, "assets", len(release.Assets))
	return &release, nil
}

// get performs a single GET and returns the body of a 200 response.
func (u *Updater) get(ctx context.Context, url, accept string) ([]byte, error) {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", branding.UserAgent())
	if u.token != "" && strings.HasPrefix(url, u.apiBase) {
		req.Header.Set("Authorization", "token "+u.token)
	}

	u.logger.Debug("GET", "url", url)
	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		u.logger.Debug("unexpected status", "url", url, "status", resp.StatusCode)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
