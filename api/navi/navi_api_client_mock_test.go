package navi

import (
	"testing"

	"dm-server/models"

	"github.com/stretchr/testify/assert"
)

func TestNaviApiClientMock_ServesFixture(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "../..")

	client := NewNaviApiClientMock()
	response, err := client.RequestRoute(
		models.Point{Lat: 37.5665, Lng: 126.978},
		models.Point{Lat: 37.5512, Lng: 126.9882},
	)
	assert.NoError(t, err)

	section := response.Section()
	assert.NotNil(t, section)
	assert.Greater(t, section.Duration, 0)
	assert.NotEmpty(t, section.Roads)
	assert.NotEmpty(t, section.Guides)
}
