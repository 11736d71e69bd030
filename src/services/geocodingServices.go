package services

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PortalCiudadano/Gestiones-Backend/src/dtos"
)

// Geocoder resolves a free-text address into coordinates, best effort.
type Geocoder interface {
	Resolve(direccion string) *dtos.Coordenadas
}

type GeocodingService struct {
	client  *http.Client
	baseURL string
}

// NewGeocodingService creates a Nominatim-backed geocoder. The original
// portal had no timeout on this call; 5 seconds is imposed here so a slow
// provider can never hang a form submission.
func NewGeocodingService() *GeocodingService {
	baseURL := os.Getenv("GEOCODER_URL")
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &GeocodingService{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Resolve looks up a free-text address. Every failure mode (empty input,
// provider down, no match, malformed response) collapses to nil: the map
// marker is an enrichment, never a requirement.
func (s *GeocodingService) Resolve(direccion string) *dtos.Coordenadas {
	direccion = strings.TrimSpace(direccion)
	if direccion == "" {
		return nil
	}

	query := url.Values{}
	query.Set("q", direccion)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		log.Printf("[GEOCODER] request build failed: %v\n", err)
		return nil
	}
	// Nominatim rejects requests without an identifying User-Agent
	req.Header.Set("User-Agent", "PortalGestionesCiudadanas/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[GEOCODER] lookup failed for %q: %v\n", direccion, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[GEOCODER] lookup for %q answered %d\n", direccion, resp.StatusCode)
		return nil
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Printf("[GEOCODER] invalid response for %q: %v\n", direccion, err)
		return nil
	}
	if len(results) == 0 {
		return nil
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		log.Printf("[GEOCODER] invalid coordinates for %q\n", direccion)
		return nil
	}

	return &dtos.Coordenadas{Latitud: lat, Longitud: lon}
}
