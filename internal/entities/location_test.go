package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHierarchy(t *testing.T) {
	karnataka := &entities.State{ID: 1, Name: "Karnataka"}
	kerala := &entities.State{ID: 2, Name: "Kerala"}
	bengaluru := &entities.City{ID: 10, StateID: 1, Name: "Bengaluru"}
	kochi := &entities.City{ID: 20, StateID: 2, Name: "Kochi"}
	indiranagar := &entities.Area{ID: 100, CityID: 10, Name: "Indiranagar"}

	testCases := []struct {
		name      string
		state     *entities.State
		city      *entities.City
		area      *entities.Area
		areaCity  *entities.City
		wantField string
	}{
		{name: "nothing set"},
		{name: "consistent state and city", state: karnataka, city: bengaluru},
		{name: "city in another state", state: kerala, city: bengaluru, wantField: "city"},
		{name: "consistent full chain", state: karnataka, city: bengaluru, area: indiranagar},
		{name: "area in another city", state: kerala, city: kochi, area: indiranagar, wantField: "area"},
		{name: "area and state only, consistent", state: karnataka, area: indiranagar, areaCity: bengaluru},
		{name: "area and state only, mismatch", state: kerala, area: indiranagar, areaCity: bengaluru, wantField: "area"},
		{name: "city only", city: kochi},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := entities.CheckHierarchy(tc.state, tc.city, tc.area, tc.areaCity)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, entities.ErrInvalidArgument)
			assert.Equal(t, tc.wantField, entities.FieldOf(err))
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, entities.ValidateCoordinates(12.97, 77.59))
	assert.NoError(t, entities.ValidateCoordinates(-90, 180))
	assert.ErrorIs(t, entities.ValidateCoordinates(91, 0), entities.ErrInvalidArgument)
	assert.ErrorIs(t, entities.ValidateCoordinates(0, -180.5), entities.ErrInvalidArgument)
}

func TestAddress_Apply(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	state, city := int64(1), int64(10)
	base := entities.Address{
		Type:          entities.AddressHome,
		StateID:       &state,
		CityID:        &city,
		StreetAddress: "12 CMH Road",
	}
	work := entities.AddressWork
	lat, lon, badLat := 12.97, 77.64, 95.0
	empty := ""
	bogus := entities.AddressType("garage")

	testCases := []struct {
		name      string
		patch     entities.AddressPatch
		wantField string
		check     func(t *testing.T, a entities.Address)
	}{
		{
			name:  "type and coordinates",
			patch: entities.AddressPatch{Type: &work, Latitude: &lat, Longitude: &lon},
			check: func(t *testing.T, a entities.Address) {
				assert.Equal(t, entities.AddressWork, a.Type)
				assert.Equal(t, lat, *a.Latitude)
				assert.Equal(t, &state, a.StateID)
			},
		},
		{
			name:  "empty patch only touches the timestamp",
			patch: entities.AddressPatch{},
			check: func(t *testing.T, a entities.Address) {
				want := base
				want.UpdatedAt = at
				assert.Equal(t, want, a)
			},
		},
		{name: "latitude alone", patch: entities.AddressPatch{Latitude: &lat}, wantField: "latitude"},
		{name: "latitude out of range", patch: entities.AddressPatch{Latitude: &badLat, Longitude: &lon}, wantField: "latitude"},
		{name: "blank street", patch: entities.AddressPatch{StreetAddress: &empty}, wantField: "street_address"},
		{name: "unknown type", patch: entities.AddressPatch{Type: &bogus}, wantField: "address_type"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := base
			err := a.Apply(tc.patch, at)
			if tc.wantField != "" {
				assert.ErrorIs(t, err, entities.ErrInvalidArgument)
				assert.Equal(t, tc.wantField, entities.FieldOf(err))
				assert.Equal(t, base, a, "failed patch must leave the address untouched")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, at, a.UpdatedAt)
			tc.check(t, a)
		})
	}
}

func TestMatchState(t *testing.T) {
	states := []entities.State{
		{ID: 1, Name: "Andhra Pradesh"},
		{ID: 2, Name: "Tamil Nadu"},
		{ID: 3, Name: "Uttar Pradesh"},
	}

	got, ok := entities.MatchState(states, "tamil nadu")
	assert.True(t, ok)
	assert.Equal(t, int64(2), got.ID)

	got, ok = entities.MatchState(states, "PRADESH")
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.ID, "first match wins")

	_, ok = entities.MatchState(states, "Goa")
	assert.False(t, ok)

	_, ok = entities.MatchState(states, "  ")
	assert.False(t, ok, "blank names never match")
}

func TestMatchCity(t *testing.T) {
	cities := []entities.City{{ID: 1, Name: "Chennai"}, {ID: 2, Name: "Coimbatore"}}

	got, ok := entities.MatchCity(cities, "chenn")
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.ID)

	_, ok = entities.MatchCity(cities, "Madurai")
	assert.False(t, ok)
}
