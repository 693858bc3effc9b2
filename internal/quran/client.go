package quran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	// DefaultTextEdition is the script edition used for reading views.
	DefaultTextEdition = "quran-uthmani"
	// DefaultSearchEdition is the translation corpus searched by default.
	DefaultSearchEdition = "id.indonesian"
	// ArabicSearchEdition is the plain (tashkeel-free) Arabic corpus, the best
	// target for diacritic-stripped Arabic keywords.
	ArabicSearchEdition = "quran-simple-clean"

	listTTL   = 24 * time.Hour
	detailTTL = 10 * time.Minute
)

var (
	// ErrSurahOutOfRange is returned before any remote call when a surah
	// number falls outside [1,114].
	ErrSurahOutOfRange = errors.New("surah number must be between 1 and 114")
	// ErrUnavailable is the generic failure surfaced when the Quran API cannot
	// be reached or returns a malformed or non-OK envelope.
	ErrUnavailable = errors.New("quran api unavailable")

	errNotFound = errors.New("quran api: not found")
)

// Client talks to the Quran REST API (alquran.cloud compatible). Surah list
// and detail responses are cached in-process; search is never cached.
type Client struct {
	baseURL string
	client  *http.Client
	cache   *ristretto.Cache[string, any]
}

// envelope is the API's uniform response wrapper.
type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// NewClient creates a Quran API client rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: 10_000,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cache:   cache,
	}, nil
}

// ListSurahs retrieves the 114-surah catalog, ordered by surah number.
func (c *Client) ListSurahs(ctx context.Context) ([]SurahMeta, error) {
	const cacheKey = "surah-list"
	if cached, ok := c.cache.Get(cacheKey); ok {
		if surahs, ok := cached.([]SurahMeta); ok {
			return surahs, nil
		}
	}

	var surahs []SurahMeta
	if err := c.getJSON(ctx, "/surah", &surahs); err != nil {
		return nil, err
	}

	c.cache.SetWithTTL(cacheKey, surahs, 1, listTTL)
	c.cache.Wait()
	return surahs, nil
}

// GetSurahDetail retrieves one surah with its verses in the given edition.
// The surah number is validated locally; invalid numbers never reach the API.
func (c *Client) GetSurahDetail(ctx context.Context, number int, edition string) (*SurahDetail, error) {
	if number < 1 || number > 114 {
		return nil, ErrSurahOutOfRange
	}
	if edition == "" {
		edition = DefaultTextEdition
	}

	cacheKey := fmt.Sprintf("surah-detail:%d:%s", number, edition)
	if cached, ok := c.cache.Get(cacheKey); ok {
		if detail, ok := cached.(*SurahDetail); ok {
			return detail, nil
		}
	}

	var detail SurahDetail
	path := fmt.Sprintf("/surah/%d/%s", number, url.PathEscape(edition))
	if err := c.getJSON(ctx, path, &detail); err != nil {
		return nil, err
	}

	c.cache.SetWithTTL(cacheKey, &detail, 1, detailTTL)
	c.cache.Wait()
	return &detail, nil
}

// Search queries the verse search endpoint. scope is "all" or a surah number
// as a string. A 404 from the API means "no matches" and yields an empty
// payload, not an error.
func (c *Client) Search(ctx context.Context, keyword, scope, edition string) (*SearchPayload, error) {
	if edition == "" {
		edition = DefaultSearchEdition
	}

	path := fmt.Sprintf("/search/%s/%s/%s",
		url.PathEscape(keyword), url.PathEscape(scope), url.PathEscape(edition))

	var payload SearchPayload
	err := c.getJSON(ctx, path, &payload)
	if errors.Is(err, errNotFound) {
		return &SearchPayload{Count: 0, Matches: []SearchMatch{}}, nil
	}
	if err != nil {
		return nil, err
	}

	return &payload, nil
}

// getJSON performs a GET against the API and decodes the envelope's data
// field into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d for %s", ErrUnavailable, resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: malformed envelope for %s", ErrUnavailable, path)
	}
	if !strings.EqualFold(env.Status, "ok") {
		return fmt.Errorf("%w: non-OK status %q for %s", ErrUnavailable, env.Status, path)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: malformed payload for %s", ErrUnavailable, path)
	}

	return nil
}
