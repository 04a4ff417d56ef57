package kobis

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
	// ErrRateLimited means the retry budget for 429 responses was spent
	ErrRateLimited = errors.New("kobis: rate limited")
	// ErrMalformedResponse means the response body could not be decoded
	ErrMalformedResponse = errors.New("kobis: malformed response")
	// ErrFault means the reporting service rejected the request
	ErrFault = errors.New("kobis: fault response")
)

const DefaultTimeout = time.Second * 10

// TargetDateFormat is the reporting service's request date layout
const TargetDateFormat = "20060102"

// IBoxOffice is the box office provider surface the pipeline consumes
type IBoxOffice interface {
	DailyBoxOffice(ctx context.Context, targetDate string) (*DailyBoxOffice, error)
}

// DailyBoxOffice is one day's ranked attendance report
type DailyBoxOffice struct {
	BoxOfficeType string
	ShowRange     string
	Entries       []Entry
}

// Entry is one ranked movie in a report, parsed out of the provider's
// all-strings wire format
type Entry struct {
	Rank          int32
	RankChange    int32
	NewEntry      bool
	MovieCode     string
	Name          string
	OpenDate      string
	AudienceCount int64
	AudienceTotal int64
	ScreenCount   int32
	ShowCount     int32
}

// wire shapes; every numeric field arrives as a string
type dailyResponse struct {
	BoxOfficeResult *struct {
		BoxofficeType      string      `json:"boxofficeType"`
		ShowRange          string      `json:"showRange"`
		DailyBoxOfficeList []wireEntry `json:"dailyBoxOfficeList"`
	} `json:"boxOfficeResult"`
	FaultInfo *struct {
		Message   string `json:"message"`
		ErrorCode string `json:"errorCode"`
	} `json:"faultInfo"`
}

type wireEntry struct {
	Rank          string `json:"rank"`
	RankInten     string `json:"rankInten"`
	RankOldAndNew string `json:"rankOldAndNew"`
	MovieCd       string `json:"movieCd"`
	MovieNm       string `json:"movieNm"`
	OpenDt        string `json:"openDt"`
	AudiCnt       string `json:"audiCnt"`
	AudiAcc       string `json:"audiAcc"`
	ScrnCnt       string `json:"scrnCnt"`
	ShowCnt       string `json:"showCnt"`
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

// New creates a box office client against the given base URL
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

// DailyBoxOffice fetches the ranked report for one target date (yyyyMMdd)
func (c *Client) DailyBoxOffice(ctx context.Context, targetDate string) (*DailyBoxOffice, error) {
	if _, err := time.Parse(TargetDateFormat, targetDate); err != nil {
		return nil, fmt.Errorf("kobis: invalid target date %q: %w", targetDate, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := url.Values{
		"key":      []string{c.apiKey},
		"targetDt": []string{targetDate},
	}
	u := c.baseURL + "/kobisopenapi/webservice/rest/boxoffice/searchDailyBoxOfficeList.json?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, cinehttp.ErrRateLimited) {
			return nil, ErrRateLimited
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kobis: unexpected status %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var decoded dailyResponse
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrMalformedResponse, err, truncate(b, 512))
	}

	if decoded.FaultInfo != nil {
		return nil, fmt.Errorf("%w: %s (%s)", ErrFault, decoded.FaultInfo.Message, decoded.FaultInfo.ErrorCode)
	}

	if decoded.BoxOfficeResult == nil {
		return nil, fmt.Errorf("%w: missing boxOfficeResult: %s", ErrMalformedResponse, truncate(b, 512))
	}

	result := &DailyBoxOffice{
		BoxOfficeType: decoded.BoxOfficeResult.BoxofficeType,
		ShowRange:     decoded.BoxOfficeResult.ShowRange,
		Entries:       make([]Entry, 0, len(decoded.BoxOfficeResult.DailyBoxOfficeList)),
	}

	for _, w := range decoded.BoxOfficeResult.DailyBoxOfficeList {
		entry, err := w.parse()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q: %s", ErrMalformedResponse, w.MovieCd, err)
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func (w wireEntry) parse() (Entry, error) {
	var entry Entry

	rank, err := strconv.ParseInt(w.Rank, 10, 32)
	if err != nil {
		return entry, fmt.Errorf("rank: %w", err)
	}

	rankChange, err := strconv.ParseInt(w.RankInten, 10, 32)
	if err != nil {
		return entry, fmt.Errorf("rankInten: %w", err)
	}

	audiCnt, err := strconv.ParseInt(w.AudiCnt, 10, 64)
	if err != nil {
		return entry, fmt.Errorf("audiCnt: %w", err)
	}

	audiAcc, err := strconv.ParseInt(w.AudiAcc, 10, 64)
	if err != nil {
		return entry, fmt.Errorf("audiAcc: %w", err)
	}

	scrnCnt, err := strconv.ParseInt(w.ScrnCnt, 10, 32)
	if err != nil {
		return entry, fmt.Errorf("scrnCnt: %w", err)
	}

	showCnt, err := strconv.ParseInt(w.ShowCnt, 10, 32)
	if err != nil {
		return entry, fmt.Errorf("showCnt: %w", err)
	}

	if w.MovieCd == "" || w.MovieNm == "" {
		return entry, errors.New("missing movie code or name")
	}

	return Entry{
		Rank:          int32(rank),
		RankChange:    int32(rankChange),
		NewEntry:      w.RankOldAndNew == "NEW",
		MovieCode:     w.MovieCd,
		Name:          w.MovieNm,
		OpenDate:      w.OpenDt,
		AudienceCount: audiCnt,
		AudienceTotal: audiAcc,
		ScreenCount:   int32(scrnCnt),
		ShowCount:     int32(showCnt),
	}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
