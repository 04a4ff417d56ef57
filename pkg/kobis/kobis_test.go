package kobis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailyPayload = `{
	"boxOfficeResult": {
		"boxofficeType": "일별 박스오피스",
		"showRange": "20231117~20231117",
		"dailyBoxOfficeList": [
			{
				"rnum": "1",
				"rank": "1",
				"rankInten": "0",
				"rankOldAndNew": "OLD",
				"movieCd": "20231234",
				"movieNm": "Example Title",
				"openDt": "2023-11-15",
				"audiCnt": "351042",
				"audiAcc": "1203001",
				"scrnCnt": "1932",
				"showCnt": "8210"
			},
			{
				"rnum": "2",
				"rank": "2",
				"rankInten": "-1",
				"rankOldAndNew": "NEW",
				"movieCd": "20230042",
				"movieNm": "Second Feature",
				"openDt": "2023-11-17",
				"audiCnt": "120034",
				"audiAcc": "120034",
				"scrnCnt": "845",
				"showCnt": "3100"
			}
		]
	}
}`

func TestDailyBoxOffice(t *testing.T) {
	t.Run("parses a ranked report", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "/kobisopenapi/webservice/rest/boxoffice/searchDailyBoxOfficeList.json", req.URL.Path)
			assert.Equal(t, "test-key", req.URL.Query().Get("key"))
			assert.Equal(t, "20231117", req.URL.Query().Get("targetDt"))
			rw.Write([]byte(dailyPayload))
		}))
		defer server.Close()

		c := New(server.URL, "test-key", WithHTTPClient(server.Client()))
		report, err := c.DailyBoxOffice(context.Background(), "20231117")
		require.NoError(t, err)
		require.Len(t, report.Entries, 2)

		first := report.Entries[0]
		assert.Equal(t, int32(1), first.Rank)
		assert.Equal(t, int32(0), first.RankChange)
		assert.False(t, first.NewEntry)
		assert.Equal(t, "20231234", first.MovieCode)
		assert.Equal(t, "Example Title", first.Name)
		assert.Equal(t, int64(351042), first.AudienceCount)
		assert.Equal(t, int64(1203001), first.AudienceTotal)
		assert.Equal(t, int32(1932), first.ScreenCount)
		assert.Equal(t, int32(8210), first.ShowCount)

		second := report.Entries[1]
		assert.True(t, second.NewEntry)
		assert.Equal(t, int32(-1), second.RankChange)
	})

	t.Run("rejects a bad target date", func(t *testing.T) {
		c := New("http://localhost", "test-key")
		_, err := c.DailyBoxOffice(context.Background(), "2023-11-17")
		assert.Error(t, err)
	})

	t.Run("surfaces a fault response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.Write([]byte(`{"faultInfo": {"message": "Invalid key", "errorCode": "320010"}}`))
		}))
		defer server.Close()

		c := New(server.URL, "bad-key", WithHTTPClient(server.Client()))
		_, err := c.DailyBoxOffice(context.Background(), "20231117")
		assert.ErrorIs(t, err, ErrFault)
	})

	t.Run("flags a non numeric count", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.Write([]byte(`{"boxOfficeResult": {"dailyBoxOfficeList": [{"rank": "one", "rankInten": "0", "movieCd": "1", "movieNm": "x", "audiCnt": "1", "audiAcc": "1", "scrnCnt": "1", "showCnt": "1"}]}}`))
		}))
		defer server.Close()

		c := New(server.URL, "test-key", WithHTTPClient(server.Client()))
		_, err := c.DailyBoxOffice(context.Background(), "20231117")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("flags invalid json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.Write([]byte(`<html>not json</html>`))
		}))
		defer server.Close()

		c := New(server.URL, "test-key", WithHTTPClient(server.Client()))
		_, err := c.DailyBoxOffice(context.Background(), "20231117")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("flags a missing result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.Write([]byte(`{}`))
		}))
		defer server.Close()

		c := New(server.URL, "test-key", WithHTTPClient(server.Client()))
		_, err := c.DailyBoxOffice(context.Background(), "20231117")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("maps 429 to rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		c := New(server.URL, "test-key", WithHTTPClient(server.Client()))
		_, err := c.DailyBoxOffice(context.Background(), "20231117")
		assert.ErrorIs(t, err, ErrRateLimited)
	})
}
