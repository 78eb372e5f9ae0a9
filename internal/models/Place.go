package models

import (
	"encoding/binary"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// WGS84 is the SRID stored with place geometries.
const WGS84 = 4326

// Place is the point of interest a schedule refers to. Geometry keeps the
// coordinates as a WKB point so postgres can index it.
type Place struct {
	PlaceID   string  `gorm:"column:place_id" json:"place_id"`
	PlaceName string  `gorm:"column:place_name" json:"place_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geometry  []byte  `gorm:"type:bytea" json:"-"`
}

// NewPlace encodes the coordinates of a place.
func NewPlace(id, name string, lat, lng float64) (Place, error) {
	p := Place{PlaceID: id, PlaceName: name, Latitude: lat, Longitude: lng}
	point := geom.NewPointFlat(geom.XY, []float64{lng, lat}).SetSRID(WGS84)
	b, err := wkb.Marshal(point, binary.LittleEndian)
	if err != nil {
		return Place{}, err
	}
	p.Geometry = b
	return p, nil
}

// GeoJSON renders the stored geometry, empty when none is set.
func (p Place) GeoJSON() (string, error) {
	if len(p.Geometry) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(p.Geometry)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
