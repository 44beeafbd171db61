package updater

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/scriptsync/scriptsync/internal/branding"
	"github.com/scriptsync/scriptsync/internal/notify"
	"github.com/scriptsync/scriptsync/internal/store"
)

const (
	// DefaultAPIBase is the GitHub REST API root.
	DefaultAPIBase = "https://api.github.com"
	// DefaultTimeout bounds each outbound request.
	DefaultTimeout = 30 * time.Second
)

// Release represents a GitHub release.
type Release struct {
	Version   string    `json:"tag_name"`
	Assets    []Asset   `json:"assets"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Asset represents a downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Updater checks a repository's latest release and replaces local scripts.
type Updater struct {
	httpClient *http.Client
	apiBase    string
	repo       string
	tag        string
	mirror     string
	token      string
	timeout    time.Duration
	configPath string
	store      *store.Store
	notifier   notify.Reporter
	logger     *log.Logger
	selection  MetadataSelection
}

// Option configures an Updater.
type Option func(*Updater)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(u *Updater) {
		u.httpClient = c
	}
}

// WithAPIBase points release lookups at a different API root.
func WithAPIBase(base string) Option {
	return func(u *Updater) {
		u.apiBase = strings.TrimRight(base, "/")
	}
}

// WithRepo sets the "owner/repo" whose releases carry the scripts.
func WithRepo(repo string) Option {
	return func(u *Updater) {
		u.repo = repo
	}
}

// WithTag pins lookups to the release tagged tag instead of the latest one.
func WithTag(tag string) Option {
	return func(u *Updater) {
		u.tag = tag
	}
}

// WithMirror sets a mirror URL for downloading release assets.
func WithMirror(mirror string) Option {
	return func(u *Updater) {
		u.mirror = mirror
	}
}

// WithToken sets a GitHub token for higher API rate limits.
func WithToken(token string) Option {
	return func(u *Updater) {
		u.token = token
	}
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(u *Updater) {
		u.timeout = d
	}
}

// WithConfigPath sets where installed versions are recorded.
func WithConfigPath(path string) Option {
	return func(u *Updater) {
		u.configPath = path
	}
}

// WithStore sets the store used to read and write the config document.
func WithStore(s *store.Store) Option {
	return func(u *Updater) {
		u.store = s
	}
}

// WithNotifier sets where user-facing outcomes are reported.
func WithNotifier(n notify.Reporter) Option {
	return func(u *Updater) {
		u.notifier = n
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(u *Updater) {
		u.logger = l
	}
}

// WithMetadataSelection controls which asset is downloaded as metadata.
func WithMetadataSelection(s MetadataSelection) Option {
	return func(u *Updater) {
		u.selection = s
	}
}

// New creates an Updater with the given options.
func New(opts ...Option) *Updater {
	u := &Updater{
		httpClient: http.DefaultClient,
		apiBase:    DefaultAPIBase,
		repo:       branding.GitHubRepo(),
		timeout:    DefaultTimeout,
		configPath: branding.ConfigPath(),
		notifier:   notify.Discard(),
		selection:  SelectByName(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.store == nil {
		u.store = store.New(store.WithReporter(u.notifier))
	}
	if u.logger == nil {
		u.logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "updater"})
	}
	return u
}
