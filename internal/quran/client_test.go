package quran

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const surahListJSON = `{
	"code": 200,
	"status": "OK",
	"data": [
		{"number": 1, "name": "الفاتحة", "englishName": "Al-Faatiha", "englishNameTranslation": "The Opening", "revelationType": "Meccan", "numberOfAyahs": 7},
		{"number": 2, "name": "البقرة", "englishName": "Al-Baqara", "englishNameTranslation": "The Cow", "revelationType": "Medinan", "numberOfAyahs": 286}
	]
}`

const surahDetailJSON = `{
	"code": 200,
	"status": "OK",
	"data": {
		"number": 1,
		"name": "الفاتحة",
		"englishName": "Al-Faatiha",
		"englishNameTranslation": "The Opening",
		"revelationType": "Meccan",
		"numberOfAyahs": 7,
		"ayahs": [
			{"number": 1, "numberInSurah": 1, "text": "بسم الله الرحمن الرحيم"},
			{"number": 2, "numberInSurah": 2, "text": "الحمد لله رب العالمين"}
		]
	}
}`

const searchJSON = `{
	"code": 200,
	"status": "OK",
	"data": {
		"count": 1,
		"matches": [
			{"number": 42, "numberInSurah": 3, "text": "a match", "surah": {"number": 2, "englishName": "Al-Baqara"}}
		]
	}
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, 5*time.Second)
	require.NoError(t, err)
	return client, server
}

func TestListSurahs(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/surah", r.URL.Path)
		w.Write([]byte(surahListJSON))
	}))

	surahs, err := client.ListSurahs(context.Background())
	require.NoError(t, err)
	require.Len(t, surahs, 2)
	assert.Equal(t, "Al-Faatiha", surahs[0].EnglishName)
	assert.Equal(t, 286, surahs[1].NumberOfAyahs)

	// Second call is served from the session cache.
	_, err = client.ListSurahs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), requests.Load())
}

func TestGetSurahDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah/1/quran-uthmani", r.URL.Path)
		w.Write([]byte(surahDetailJSON))
	}))

	detail, err := client.GetSurahDetail(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Number)
	require.Len(t, detail.Ayahs, 2)
	assert.Equal(t, 2, detail.Ayahs[1].NumberInSurah)
}

func TestGetSurahDetailOutOfRangeIsLocal(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	for _, number := range []int{0, -1, 115, 999} {
		_, err := client.GetSurahDetail(context.Background(), number, "")
		assert.ErrorIs(t, err, ErrSurahOutOfRange)
	}
	assert.Equal(t, int32(0), requests.Load(), "invalid surah numbers must never reach the API")
}

func TestSearch(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/mercy/all/id.indonesian", r.URL.Path)
		w.Write([]byte(searchJSON))
	}))

	payload, err := client.Search(context.Background(), "mercy", "all", "")
	require.NoError(t, err)
	assert.Equal(t, 1, payload.Count)
	assert.Equal(t, 42, payload.Matches[0].Number)
}

func TestSearchNotFoundIsEmptySuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":404,"status":"RESOURCE_NOT_FOUND","data":"Nothing matching your search was found."}`, http.StatusNotFound)
	}))

	payload, err := client.Search(context.Background(), "xyzzy", "all", "")
	require.NoError(t, err)
	assert.Equal(t, 0, payload.Count)
	assert.Empty(t, payload.Matches)
}

func TestNonOKEnvelopeStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 500, "status": "ERROR", "data": null}`))
	}))

	_, err := client.ListSurahs(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestServerErrorStatusCode(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.ListSurahs(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMalformedEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))

	_, err := client.ListSurahs(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
