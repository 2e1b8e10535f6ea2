package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/leolwelter/2eTools-scraper/internal/config"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

var (
	// ErrUnsupportedKind is returned for kinds without a page source.
	ErrUnsupportedKind = errors.New("unsupported kind")

	// ErrNotCached is returned by Index in cache-only mode when the page
	// is not in the cache.
	ErrNotCached = errors.New("page not cached")

	// ErrEmptyPage is returned when the site answers with an empty body.
	ErrEmptyPage = errors.New("empty page")

	// ErrStatus is returned when the site answers with an error status.
	ErrStatus = errors.New("unexpected status")
)

// indexDir is the cache subdirectory of auxiliary pages.
const indexDir = "index"

// Page is one fetched detail page.
type Page struct {
	// ID is the record id of the page, starting at 1.
	ID int
	// URL is the address the page was or would be fetched from.
	URL string
	// Body is the page markup, empty for a placeholder.
	Body string
	// Cached reports whether the body came from the cache.
	Cached bool
}

// Placeholder reports whether the page could not be retrieved.
func (p Page) Placeholder() bool { return p.Body == "" }

// Bodies returns the markup of each page in order.
func Bodies(pages []Page) []string {
	bodies := make([]string, len(pages))
	for i, p := range pages {
		bodies[i] = p.Body
	}
	return bodies
}

// Fetcher retrieves pages through the cache.
type Fetcher struct {
	client      *resty.Client
	limiter     *rate.Limiter
	cacheDir    string
	sources     map[model.Kind]config.Source
	concurrency int
	cacheOnly   bool
	logger      *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithConcurrency sets the number of requests in flight at once.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// WithRate sets the request rate in requests per second.
// Non-positive values are ignored.
func WithRate(perSecond float64) Option {
	return func(f *Fetcher) {
		if perSecond > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.client.SetHeader("User-Agent", ua)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.SetTimeout(d)
	}
}

// WithCacheOnly disables network access for every request.
func WithCacheOnly(cacheOnly bool) Option {
	return func(f *Fetcher) {
		f.cacheOnly = cacheOnly
	}
}

// WithCloudflareBypass wraps the transport so requests look like a browser
// to Cloudflare's bot check. The wrapper sets its own browser headers.
func WithCloudflareBypass(enabled bool) Option {
	return func(f *Fetcher) {
		if enabled {
			f.client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(f.client.GetClient().Transport)
		}
	}
}

// New creates a Fetcher caching under cacheDir.
func New(cacheDir string, sources map[model.Kind]config.Source, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      resty.New(),
		limiter:     rate.NewLimiter(rate.Limit(config.DefaultRate), 1),
		cacheDir:    cacheDir,
		sources:     sources,
		concurrency: config.DefaultConcurrency,
	}
	f.client.SetHeader("User-Agent", config.DefaultUserAgent)
	f.client.SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	f.client.SetTimeout(config.DefaultTimeout)

	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}

	f.client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return f.limiter.Wait(req.Context())
	})
	return f
}

// NewFromConfig creates a Fetcher from the run configuration.
func NewFromConfig(cfg *config.Config, opts ...Option) *Fetcher {
	base := []Option{
		WithConcurrency(cfg.Concurrency),
		WithRate(cfg.Rate),
		WithUserAgent(cfg.UserAgent),
		WithTimeout(cfg.Timeout),
		WithCacheOnly(cfg.CacheOnly),
		WithCloudflareBypass(cfg.CloudflareBypass),
	}
	return New(cfg.CacheDir, cfg.Sources, append(base, opts...)...)
}

// Pages returns the pages 1..MaxID of kind. Cached pages are read from
// disk; the rest are fetched unless cacheOnly is set. A page that cannot be
// retrieved is returned as a placeholder. The only errors are an unknown
// kind, an unusable cache directory and cancellation.
func (f *Fetcher) Pages(ctx context.Context, kind model.Kind, cacheOnly bool) ([]Page, error) {
	src, ok := f.sources[kind]
	if !ok || !kind.Supported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	dir := filepath.Join(f.cacheDir, string(kind))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	offline := cacheOnly || f.cacheOnly

	f.logger.Info("retrieving pages",
		"kind", kind,
		"max_id", src.MaxID,
		"cache_only", offline,
	)

	pages := make([]Page, src.MaxID)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i := range pages {
		id := i + 1
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := f.page(ctx, filepath.Join(dir, strconv.Itoa(id)+".html"), src.PageURL(id), offline)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				f.logger.Warn("page unavailable, using placeholder",
					"kind", kind,
					"id", id,
					"error", err,
				)
			}
			page.ID = id
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

// Index returns an auxiliary page such as a trait index, cached under
// the given name.
func (f *Fetcher) Index(ctx context.Context, name, url string) (string, error) {
	dir := filepath.Join(f.cacheDir, indexDir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	page, err := f.page(ctx, filepath.Join(dir, name+".html"), url, f.cacheOnly)
	if err != nil {
		return "", fmt.Errorf("index %s: %w", name, err)
	}
	return page.Body, nil
}

// page reads path from the cache or fetches url into it. On failure the
// returned page is a placeholder.
func (f *Fetcher) page(ctx context.Context, path, url string, offline bool) (Page, error) {
	page := Page{URL: url}
	if body, ok := readCache(path); ok {
		page.Body = body
		page.Cached = true
		return page, nil
	}
	if offline {
		return page, ErrNotCached
	}

	body, err := f.get(ctx, url)
	if err != nil {
		return page, err
	}
	if err := writeCache(path, body); err != nil {
		f.logger.Warn("failed to cache page", "path", path, "error", err)
	}
	page.Body = string(body)
	return page, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: %s", ErrStatus, url, resp.Status())
	}
	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPage, url)
	}
	f.logger.Debug("fetched page", "url", url, "bytes", len(body))
	return body, nil
}
