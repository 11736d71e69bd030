package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GeocodingServiceSuite struct {
	suite.Suite
}

func TestGeocodingServiceSuite(t *testing.T) {
	suite.Run(t, new(GeocodingServiceSuite))
}

func (s *GeocodingServiceSuite) newService(handler http.HandlerFunc) (*GeocodingService, *httptest.Server) {
	server := httptest.NewServer(handler)
	s.T().Setenv("GEOCODER_URL", server.URL)
	return NewGeocodingService(), server
}

func (s *GeocodingServiceSuite) TestResolveSuccess() {
	service, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("1600 Amphitheatre Parkway, Mountain View, CA", r.URL.Query().Get("q"))
		s.NotEmpty(r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"37.4224","lon":"-122.0842"}]`))
	})
	defer server.Close()

	coords := service.Resolve("1600 Amphitheatre Parkway, Mountain View, CA")
	s.Require().NotNil(coords)
	s.InDelta(37.4224, coords.Latitud, 0.001)
	s.InDelta(-122.0842, coords.Longitud, 0.001)
}

func (s *GeocodingServiceSuite) TestResolveEmptyAddress() {
	service, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		s.Fail("the provider must not be called for an empty address")
	})
	defer server.Close()

	s.Nil(service.Resolve(""))
	s.Nil(service.Resolve("   "))
}

func (s *GeocodingServiceSuite) TestResolveNoMatch() {
	service, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	s.Nil(service.Resolve("xyzzy plugh nowhere"))
}

func (s *GeocodingServiceSuite) TestResolveProviderError() {
	service, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	s.Nil(service.Resolve("Calle Principal 123"))
}

func (s *GeocodingServiceSuite) TestResolveMalformedBody() {
	service, server := s.newService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	defer server.Close()

	s.Nil(service.Resolve("Calle Principal 123"))
}

func (s *GeocodingServiceSuite) TestResolveProviderDown() {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on
	s.T().Setenv("GEOCODER_URL", server.URL)

	service := NewGeocodingService()
	s.Nil(service.Resolve("Calle Principal 123"))
}
