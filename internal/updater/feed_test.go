package updater

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const testRepo = "owner/scripts"

// fakeFeed serves a GitHub-like releases/latest endpoint plus asset downloads.
type fakeFeed struct {
	mu            sync.Mutex
	releaseStatus int
	assetNames    []string
	bodies        map[string]string
	assetStatus   map[string]int
	hits          map[string]int
	headers       map[string]http.Header
	// beforeServe runs before an asset body is sent.
	beforeServe map[string]func()
}

func newFakeFeed(assets ...string) *fakeFeed {
	return &fakeFeed{
		releaseStatus: http.StatusOK,
		assetNames:    assets,
		bodies:        map[string]string{},
		assetStatus:   map[string]int{},
		hits:          map[string]int{},
		headers:       map[string]http.Header{},
		beforeServe:   map[string]func(){},
	}
}

func (f *fakeFeed) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.hits[r.URL.Path]++
		f.headers[r.URL.Path] = r.Header.Clone()

		tagPrefix := "/repos/" + testRepo + "/releases/tags/"
		switch {
		case r.URL.Path == "/repos/"+testRepo+"/releases/latest" || strings.HasPrefix(r.URL.Path, tagPrefix):
			if f.releaseStatus != http.StatusOK {
				w.WriteHeader(f.releaseStatus)
				return
			}
			release := Release{Version: "v9.9.9"}
			if tag, ok := strings.CutPrefix(r.URL.Path, tagPrefix); ok {
				release.Version = tag
			}
			for _, name := range f.assetNames {
				release.Assets = append(release.Assets, Asset{
					Name:        name,
					DownloadURL: "http://" + r.Host + "/download/" + name,
				})
			}
			if err := json.NewEncoder(w).Encode(release); err != nil {
				t.Errorf("encoding release: %v", err)
			}
		case strings.HasPrefix(r.URL.Path, "/download/"):
			name := strings.TrimPrefix(r.URL.Path, "/download/")
			if status, ok := f.assetStatus[name]; ok {
				w.WriteHeader(status)
				return
			}
			if hook, ok := f.beforeServe[name]; ok {
				hook()
			}
			body, ok := f.bodies[name]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(body))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (f *fakeFeed) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeFeed) serve(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(f.handler(t))
	t.Cleanup(server.Close)
	return server
}

// messages records reported outcomes by level.
type messages struct {
	infos, warnings, errors, successes []string
}

func (m *messages) Info(msg string)    { m.infos = append(m.infos, msg) }
func (m *messages) Warn(msg string)    { m.warnings = append(m.warnings, msg) }
func (m *messages) Error(msg string)   { m.errors = append(m.errors, msg) }
func (m *messages) Success(msg string) { m.successes = append(m.successes, msg) }

func (m *messages) total() int {
	return len(m.infos) + len(m.warnings) + len(m.errors) + len(m.successes)
}
