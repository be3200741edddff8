// Package ncbi downloads nucleotide FASTA data from the NCBI efetch
// endpoint, with a TTL'd JSON file cache so repeated lookups of the same
// accession stay off the network.
package ncbi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// httpClient performs requests; tests may replace it with a mock transport.
var httpClient = &http.Client{Timeout: 20 * time.Second}

// Cache structures
type cachedEntry struct {
	Fasta       string `json:"fasta"`
	RetrievedAt int64  `json:"retrieved_at"`
}

var (
	cacheMu       sync.RWMutex
	cache         map[string]cachedEntry
	cacheLoaded   bool
	cacheFilePath string
	cacheTTLSecs  int64
)

// SetCacheFilePath overrides the location of the on-disk cache file.
func SetCacheFilePath(path string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cacheFilePath = path
	cache = nil
	cacheLoaded = false
}

// SetCacheTTLSeconds overrides the cache entry lifetime. Zero restores the
// default (NCBI_CACHE_TTL_SECONDS or 7 days); a negative value keeps entries
// forever.
func SetCacheTTLSeconds(secs int64) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cacheTTLSecs = secs
}

// FlushCache writes the in-memory cache to disk. Safe to call at exit.
func FlushCache() {
	saveCache()
}

// cache TTL in seconds (default 7 days)
func cacheTTL() int64 {
	cacheMu.RLock()
	ttl := cacheTTLSecs
	cacheMu.RUnlock()
	if ttl != 0 {
		return ttl
	}
	if s := os.Getenv("NCBI_CACHE_TTL_SECONDS"); s != "" {
		if v, err := time.ParseDuration(s + "s"); err == nil {
			return int64(v.Seconds())
		}
	}
	return int64(7 * 24 * 3600)
}

func defaultCachePath() string {
	if cacheFilePath != "" {
		return cacheFilePath
	}
	if dir, err := os.UserCacheDir(); err == nil {
		p := filepath.Join(dir, "gxseq")
		_ = os.MkdirAll(p, 0o755)
		return filepath.Join(p, "ncbi_cache.json")
	}
	return filepath.Join(os.TempDir(), "gxseq_ncbi_cache.json")
}

func loadCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cacheLoaded {
		return
	}
	path := defaultCachePath()
	cache = make(map[string]cachedEntry)
	data, err := os.ReadFile(path)
	if err != nil {
		cacheLoaded = true
		return
	}
	_ = json.Unmarshal(data, &cache)
	cacheLoaded = true
}

func saveCache() {
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	if cache == nil {
		return
	}
	path := defaultCachePath()
	b, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, b, 0o644)
}

func getCached(acc string) (string, bool) {
	loadCache()
	ttl := cacheTTL()
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	e, ok := cache[acc]
	if !ok {
		return "", false
	}
	if ttl > 0 && time.Now().Unix()-e.RetrievedAt > ttl {
		return "", false
	}
	return e.Fasta, true
}

func setCached(acc, fa string) {
	if acc == "" || fa == "" {
		return
	}
	loadCache()
	cacheMu.Lock()
	cache[acc] = cachedEntry{Fasta: fa, RetrievedAt: time.Now().Unix()}
	cacheMu.Unlock()
	saveCache()
}

// FetchFasta fetches the nucleotide FASTA text for the given accession
// from NCBI efetch and returns it raw; callers parse it with the fasta
// package. An NCBI_API_KEY in the environment is forwarded so the higher
// request quota applies.
func FetchFasta(ctx context.Context, accession string) (string, error) {
	if accession == "" {
		return "", nil
	}

	// check cache first
	if v, ok := getCached(accession); ok {
		return v, nil
	}

	base := "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi?db=nuccore&id=%s&rettype=fasta&retmode=text"
	apiKey := os.Getenv("NCBI_API_KEY")
	if apiKey != "" {
		base += "&api_key=" + apiKey
	}
	url := fmt.Sprintf(base, accession)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", err
		}
		req.Header.Set("User-Agent", "gxseq-fetcher/1.0 (https://example)")
		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
		} else {
			body, rerr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if resp.StatusCode == 200 {
				if rerr != nil {
					return "", rerr
				}
				text := string(body)
				// save to cache (synchronous)
				setCached(accession, text)
				return text, nil
			}
			if resp.StatusCode == 429 {
				lastErr = fmt.Errorf("ncbi efetch returned 429")
				time.Sleep(time.Duration(attempt*500) * time.Millisecond)
				continue
			}
			return "", fmt.Errorf("ncbi efetch returned status %d: %s", resp.StatusCode, string(body))
		}
		time.Sleep(time.Duration(attempt*300) * time.Millisecond)
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", nil
}
