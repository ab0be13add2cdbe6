package navi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dm-server/api"
	"dm-server/models"
	"dm-server/util"

	"github.com/stretchr/testify/assert"
)

const routeFixture = `{
	"trans_id": "abc123",
	"routes": [
		{
			"result_code": 0,
			"result_msg": "길찾기 성공",
			"sections": [
				{
					"duration": 600,
					"distance": 1500,
					"roads": [
						{"name": "세종대로", "distance": 1500, "vertexes": [126.9, 37.5, 127.0, 37.6]}
					],
					"guides": [
						{"name": "출발지", "type": 16, "distance": 0}
					]
				}
			]
		}
	]
}`

func TestNaviApiClient_RequestRoute(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(routeFixture))
	}))
	defer server.Close()

	client := NewNaviApiClient(api.NewHTTPClient(server.URL))
	client.SetCredentials("test-key")

	origin := models.Point{Lat: 37.5665, Lng: 126.978}
	destination := models.Point{Lat: 37.5512, Lng: 126.9882}

	response, err := client.RequestRoute(origin, destination)
	assert.NoError(t, err)

	// wire format is "lng,lat"
	assert.Equal(t, "/directions", gotPath)
	assert.Equal(t, "126.978000,37.566500", gotQuery["origin"][0])
	assert.Equal(t, "126.988200,37.551200", gotQuery["destination"][0])
	assert.Equal(t, "KakaoAK test-key", gotAuth)

	section := response.Section()
	assert.NotNil(t, section)
	assert.Equal(t, 600, section.Duration)
	assert.Equal(t, 1500, section.Distance)
	assert.Len(t, section.Roads, 1)
}

func TestNaviApiClient_RequestRoute_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewNaviApiClient(api.NewHTTPClient(server.URL))
	client.SetCredentials("test-key")

	_, err := client.RequestRoute(models.Point{Lat: 1, Lng: 2}, models.Point{Lat: 3, Lng: 4})
	assert.True(t, errors.Is(err, util.ErrRouteRequestFailed))
}
