package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rexfordessilfie/react-navigation"
)

const screensYAML = `
Profile: profile/:id
Feed:
  path: feed
  screens:
    Latest: latest
Catalog:
  - path: catalog/:section
  - path: legacy-catalog
    exact: true
`

func TestScreensFromYAML(t *testing.T) {
	screens, err := navigation.ScreensFromYAML([]byte(screensYAML))
	require.NoError(t, err)

	state := &navigation.NavigationState{
		Routes: []navigation.Route{
			{Name: "Feed", State: &navigation.NavigationState{
				Routes: []navigation.Route{{Name: "Latest"}},
			}},
		},
	}

	path, err := navigation.PathFromState(state, &navigation.Options{Screens: screens})
	require.NoError(t, err)
	assert.Equal(t, "/feed/latest", path)
}

func TestScreensFromYAML_Alternatives(t *testing.T) {
	screens, err := navigation.ScreensFromYAML([]byte(screensYAML))
	require.NoError(t, err)

	state := &navigation.NavigationState{
		Routes: []navigation.Route{
			{Name: "Catalog", Path: "legacy-catalog"},
		},
	}

	path, err := navigation.PathFromState(state, &navigation.Options{Screens: screens})
	require.NoError(t, err)
	assert.Equal(t, "/legacy-catalog", path)
}

func TestScreensFromYAML_OverlayDocuments(t *testing.T) {
	overlay := []byte("Profile: p/:id\n")

	screens, err := navigation.ScreensFromYAML([]byte(screensYAML), overlay)
	require.NoError(t, err)

	state := &navigation.NavigationState{
		Routes: []navigation.Route{
			{Name: "Profile", Params: navigation.Params{{Key: "id", Value: 42}}},
		},
	}

	path, err := navigation.PathFromState(state, &navigation.Options{Screens: screens})
	require.NoError(t, err)
	assert.Equal(t, "/p/42", path)
}

func TestScreensFromYAML_ExactWithoutPath(t *testing.T) {
	_, err := navigation.ScreensFromYAML([]byte("Legacy:\n  exact: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exact")
}

func TestScreensFromYAML_UnknownKey(t *testing.T) {
	_, err := navigation.ScreensFromYAML([]byte("Feed:\n  route: feed\n"))
	require.Error(t, err)
}

func TestScreensFromYAML_InvalidDocument(t *testing.T) {
	_, err := navigation.ScreensFromYAML([]byte("- just\n- a\n- list\n"))
	require.Error(t, err)
}

func TestScreensFromYAML_NonMappingAlternative(t *testing.T) {
	_, err := navigation.ScreensFromYAML([]byte("Foo:\n  - bare-string\n"))
	require.Error(t, err)
}
