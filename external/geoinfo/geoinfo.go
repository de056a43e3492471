package geoinfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/kizuna-community/kizuna-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

// ErrNoGeocodingResult indicates google maps returned nothing for a
// coordinate pair.
var ErrNoGeocodingResult = fmt.Errorf("no geocoding result for coordinates")

// GeoInfo resolves coordinates into human readable addresses.
type GeoInfo interface {
	ReverseGeocode(schema.Location) (string, error)
}

type geoInfo struct {
	client *maps.Client
}

// ReverseGeocode returns the formatted address of the best match for a
// coordinate pair. Request creation uses it to fill in an address when
// the client omits one.
func (g geoInfo) ReverseGeocode(loc schema.Location) (string, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Info("reverse geocode")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
	})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", ErrNoGeocodingResult
	}

	return results[0].FormattedAddress, nil
}

func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
