package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
	"github.com/clinicdir/directory-data-service/internal/system/config"
)

func TestLookupCoordinates(t *testing.T) {

	candidate := matchmodel.CandidateRecord{
		Address: "742 Evergreen Ter",
		City:    "Lake Mary",
		State:   "FL",
	}

	t.Run("DisabledWithoutEndpoint", func(t *testing.T) {
		client := NewGeocodeClient(config.GeocodeConfig{})
		coords, err := client.LookupCoordinates(candidate)
		assert.NoError(t, err)
		assert.Nil(t, coords)
	})

	t.Run("EmptyAddressSkipsLookup", func(t *testing.T) {
		client := NewGeocodeClient(config.GeocodeConfig{Endpoint: "http://geocoder.invalid"})
		coords, err := client.LookupCoordinates(matchmodel.CandidateRecord{})
		assert.NoError(t, err)
		assert.Nil(t, coords)
	})

	t.Run("ResolvesAndCaches", func(t *testing.T) {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			assert.NotEmpty(t, r.URL.Query().Get("address"))
			_ = json.NewEncoder(w).Encode(Coordinates{Latitude: 28.7589, Longitude: -81.3178})
		}))
		defer server.Close()

		client := NewGeocodeClient(config.GeocodeConfig{Endpoint: server.URL})
		coords, err := client.LookupCoordinates(candidate)
		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.Equal(t, 28.7589, coords.Latitude)

		// Second lookup for the same address is served from cache.
		_, err = client.LookupCoordinates(candidate)
		require.NoError(t, err)
		assert.Equal(t, 1, hits)
	})

	t.Run("NotFoundMeansUnplaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewGeocodeClient(config.GeocodeConfig{Endpoint: server.URL})
		coords, err := client.LookupCoordinates(candidate)
		assert.NoError(t, err)
		assert.Nil(t, coords)
	})

	t.Run("ServerErrorSurfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewGeocodeClient(config.GeocodeConfig{Endpoint: server.URL})
		_, err := client.LookupCoordinates(candidate)
		assert.Error(t, err)
	})
}
