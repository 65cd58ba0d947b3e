package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type State struct {
	ID   int64
	Name string
	Code string
}

type City struct {
	ID      int64
	StateID int64
	Name    string
	IsUrban bool
}

type Area struct {
	ID        int64
	CityID    int64
	Name      string
	Pincode   string
	Latitude  *float64
	Longitude *float64
}

type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressOther AddressType = "other"
)

func (t AddressType) Valid() bool {
	switch t {
	case AddressHome, AddressWork, AddressOther:
		return true
	}
	return false
}

type Address struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          AddressType
	StateID       *int64
	CityID        *int64
	AreaID        *int64
	StreetAddress string
	Landmark      string
	Pincode       string
	IsPrimary     bool
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AddressPatch is a partial update of an address. Nil fields are left
// untouched; links into the location hierarchy can be replaced but not cleared.
type AddressPatch struct {
	Type          *AddressType
	StateID       *int64
	CityID        *int64
	AreaID        *int64
	StreetAddress *string
	Landmark      *string
	Pincode       *string
	IsPrimary     *bool
	Latitude      *float64
	Longitude     *float64
}

// Apply validates the patched address before changing a.
func (a *Address) Apply(patch AddressPatch, at time.Time) error {
	next := *a
	if patch.Type != nil {
		next.Type = *patch.Type
	}
	if patch.StateID != nil {
		next.StateID = patch.StateID
	}
	if patch.CityID != nil {
		next.CityID = patch.CityID
	}
	if patch.AreaID != nil {
		next.AreaID = patch.AreaID
	}
	if patch.StreetAddress != nil {
		next.StreetAddress = *patch.StreetAddress
	}
	if patch.Landmark != nil {
		next.Landmark = *patch.Landmark
	}
	if patch.Pincode != nil {
		next.Pincode = *patch.Pincode
	}
	if patch.IsPrimary != nil {
		next.IsPrimary = *patch.IsPrimary
	}
	if (patch.Latitude == nil) != (patch.Longitude == nil) {
		return NewInvalidArgumentError("latitude", "latitude and longitude must be set together")
	}
	if patch.Latitude != nil {
		next.Latitude, next.Longitude = patch.Latitude, patch.Longitude
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.UpdatedAt = at
	*a = next
	return nil
}

// ValidateCoordinates rejects latitude/longitude outside the WGS84 ranges.
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return NewInvalidArgumentError("latitude", "must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return NewInvalidArgumentError("longitude", "must be between -180 and 180")
	}
	return nil
}

func (a Address) Validate() error {
	if !a.Type.Valid() {
		return NewInvalidArgumentError("address_type", fmt.Sprintf("unknown value %q", a.Type))
	}
	if a.StreetAddress == "" {
		return NewInvalidArgumentError("street_address", "must not be empty")
	}
	if (a.Latitude == nil) != (a.Longitude == nil) {
		return NewInvalidArgumentError("latitude", "latitude and longitude must be set together")
	}
	if a.Latitude != nil {
		return ValidateCoordinates(*a.Latitude, *a.Longitude)
	}
	return nil
}

// CheckHierarchy verifies that the referenced city lies in the state and the
// area lies in the city. Nil arguments are links that were not set.
func CheckHierarchy(state *State, city *City, area *Area, areaCity *City) error {
	if state != nil && city != nil && city.StateID != state.ID {
		return NewInvalidArgumentError("city", fmt.Sprintf("city %d is not in state %d", city.ID, state.ID))
	}
	if area == nil {
		return nil
	}
	if city != nil {
		if area.CityID != city.ID {
			return NewInvalidArgumentError("area", fmt.Sprintf("area %d is not in city %d", area.ID, city.ID))
		}
		return nil
	}
	if state != nil && areaCity != nil && areaCity.StateID != state.ID {
		return NewInvalidArgumentError("area", fmt.Sprintf("area %d is not in state %d", area.ID, state.ID))
	}
	return nil
}

// GeocodedAddress is the free-text answer of a reverse geocoder.
type GeocodedAddress struct {
	State       string
	City        string
	Postcode    string
	DisplayName string
}

// AddressFromLocation creates an address whose links are resolved from coordinates.
type AddressFromLocation struct {
	Latitude      float64
	Longitude     float64
	Type          AddressType
	StreetAddress string
	Landmark      string
	IsPrimary     bool
}

type ResolvedLocation struct {
	State      State
	City       *City
	Pincode    string
	RawAddress string
}

// MatchState returns the first state whose name contains name, ignoring case.
func MatchState(states []State, name string) (State, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return State{}, false
	}
	for _, s := range states {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			return s, true
		}
	}
	return State{}, false
}

// MatchCity returns the first city whose name contains name, ignoring case.
func MatchCity(cities []City, name string) (City, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return City{}, false
	}
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return c, true
		}
	}
	return City{}, false
}
