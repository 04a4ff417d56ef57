package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	cinehttp "github.com/jshim/cinesync/pkg/http"
)

var (
	// ErrNotFound means the catalog has no entry for the requested id
	ErrNotFound = errors.New("tmdb: not found")
	// ErrRateLimited means the retry budget for 429 responses was spent
	ErrRateLimited = errors.New("tmdb: rate limited")
	// ErrMalformedResponse means the response body could not be decoded
	ErrMalformedResponse = errors.New("tmdb: malformed response")
)

const DefaultTimeout = time.Second * 10

// ITmdb is the catalog provider surface the pipeline consumes. Calls are
// synchronous and never retry beyond the shared 429 backoff.
type ITmdb interface {
	SearchMovie(ctx context.Context, query string) (*SearchResponse, error)
	MovieDetails(ctx context.Context, id int) (*MovieDetails, error)
	MovieCredits(ctx context.Context, id int) (*Credits, error)
	MovieImages(ctx context.Context, id int) (*Images, error)
	MovieVideos(ctx context.Context, id int) (*Videos, error)
	MovieWatchProviders(ctx context.Context, id int) (*WatchProviders, error)
}

type SearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type SearchResult struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    *string `json:"poster_path"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	GenreIDs      []int   `json:"genre_ids"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MovieDetails struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	Status        string  `json:"status"`
	ReleaseDate   string  `json:"release_date"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	PosterPath    *string `json:"poster_path"`
	Genres        []Genre `json:"genres"`
}

type Credits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	Order       int     `json:"order"`
	ProfilePath *string `json:"profile_path"`
}

type CrewMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Job         string  `json:"job"`
	ProfilePath *string `json:"profile_path"`
}

type Images struct {
	ID        int     `json:"id"`
	Posters   []Image `json:"posters"`
	Backdrops []Image `json:"backdrops"`
}

type Image struct {
	FilePath    string  `json:"file_path"`
	ISO6391     *string `json:"iso_639_1"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	VoteAverage float64 `json:"vote_average"`
}

type Videos struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

type Video struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
}

type WatchProviders struct {
	ID      int                     `json:"id"`
	Results map[string]RegionOffers `json:"results"`
}

type RegionOffers struct {
	Link     *string         `json:"link"`
	Flatrate []ProviderOffer `json:"flatrate"`
	Rent     []ProviderOffer `json:"rent"`
	Buy      []ProviderOffer `json:"buy"`
}

type ProviderOffer struct {
	ProviderID      int     `json:"provider_id"`
	ProviderName    string  `json:"provider_name"`
	LogoPath        *string `json:"logo_path"`
	DisplayPriority int     `json:"display_priority"`
}

type Client struct {
	client  cinehttp.HTTPClient
	baseURL string
	apiKey  string
	timeout time.Duration
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(client cinehttp.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithTimeout bounds each request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// New creates a catalog client against the given base URL
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		client:  cinehttp.NewRateLimitedHTTPClient(),
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) SearchMovie(ctx context.Context, query string) (*SearchResponse, error) {
	out := new(SearchResponse)
	err := c.get(ctx, "/3/search/movie", url.Values{"query": []string{query}}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	out := new(MovieDetails)
	err := c.get(ctx, "/3/movie/"+strconv.Itoa(id), nil, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MovieCredits(ctx context.Context, id int) (*Credits, error) {
	out := new(Credits)
	err := c.get(ctx, "/3/movie/"+strconv.Itoa(id)+"/credits", nil, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MovieImages(ctx context.Context, id int) (*Images, error) {
	out := new(Images)
	err := c.get(ctx, "/3/movie/"+strconv.Itoa(id)+"/images", nil, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MovieVideos(ctx context.Context, id int) (*Videos, error) {
	out := new(Videos)
	err := c.get(ctx, "/3/movie/"+strconv.Itoa(id)+"/videos", nil, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MovieWatchProviders(ctx context.Context, id int) (*WatchProviders, error) {
	out := new(WatchProviders)
	err := c.get(ctx, "/3/movie/"+strconv.Itoa(id)+"/watch/providers", nil, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, cinehttp.ErrRateLimited) {
			return ErrRateLimited
		}
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("tmdb: unexpected status %s for %s", resp.Status, path)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(b, out); err != nil {
		// keep the raw payload around for diagnosis
		return fmt.Errorf("%w: %s: %s", ErrMalformedResponse, err, truncate(b, 512))
	}

	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
