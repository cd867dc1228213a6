package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/repository"
	"golang.org/x/sync/singleflight"
)

var _ repository.ResourceRepository = (*CachingResourceRepository)(nil)

const defaultFetchTimeout = 30 * time.Second

// CachingResourceRepository reads overlay resources from disk or over http(s)
// and keeps successful results for the lifetime of the process. Concurrent
// fetches of the same location share one request, which outlives any single
// caller and is bounded by the client timeout instead.
type CachingResourceRepository struct {
	baseDir string
	client  *http.Client
	timeout time.Duration

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string][]byte
}

func NewCachingResourceRepository(baseDir string, client *http.Client) *CachingResourceRepository {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}

	timeout := client.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &CachingResourceRepository{
		baseDir: baseDir,
		client:  client,
		timeout: timeout,
		cache:   make(map[string][]byte),
	}
}

func (r *CachingResourceRepository) Fetch(ctx context.Context, location string) ([]byte, error) {
	r.mu.RLock()
	data, ok := r.cache[location]
	r.mu.RUnlock()
	if ok {
		return data, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := r.group.DoChan(location, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(shared, r.timeout)
		defer cancel()

		data, err := r.fetch(fetchCtx, location)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[location] = data
		r.mu.Unlock()

		return data, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to fetch resource %s: %w", location, ctx.Err())
	}
}

func (r *CachingResourceRepository) fetch(ctx context.Context, location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return r.fetchHTTP(ctx, location)
	}

	path := location
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", path, err)
	}

	return data, nil
}

func (r *CachingResourceRepository) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resource %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch resource %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", url, err)
	}

	return data, nil
}
