package geocode

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosort/ecosort-api/internal/types"
)

type failingProvider struct{}

func (failingProvider) Locate(context.Context) (types.Coordinates, error) {
	return types.Coordinates{}, errors.New("position unavailable")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCurrentCoordinates_FallsBackOnProviderFailure(t *testing.T) {
	service := NewServiceImpl(failingProvider{}, testLogger())

	coords := service.CurrentCoordinates(context.Background())
	assert.Equal(t, FallbackCoordinates, coords)
}

func TestCurrentCoordinates_UsesProviderResult(t *testing.T) {
	provider := NewStaticProvider(types.Coordinates{Latitude: 51.5074, Longitude: -0.1278})
	service := NewServiceImpl(provider, testLogger())

	coords := service.CurrentCoordinates(context.Background())
	assert.Equal(t, 51.5074, coords.Latitude)
	assert.Equal(t, -0.1278, coords.Longitude)
}

func TestHTTPProvider_Locate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			io.WriteString(w, `{"status":"success","lat":40.7128,"lon":-74.006}`)
		}))
		t.Cleanup(server.Close)

		coords, err := NewHTTPProvider(server.URL).Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 40.7128, coords.Latitude)
		assert.Equal(t, -74.006, coords.Longitude)
	})

	t.Run("rejected lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			io.WriteString(w, `{"status":"fail"}`)
		}))
		t.Cleanup(server.Close)

		_, err := NewHTTPProvider(server.URL).Locate(context.Background())
		require.Error(t, err)
	})

	t.Run("non-2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(server.Close)

		_, err := NewHTTPProvider(server.URL).Locate(context.Background())
		require.Error(t, err)
	})
}
