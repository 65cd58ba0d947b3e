package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/handler"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountHandler_RegisterUser(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		callMock   bool
		mockErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "OK",
			body:       `{"username":"asha","email":"asha@example.com","phone_number":"9000000001"}`,
			callMock:   true,
			wantStatus: http.StatusCreated,
			wantBody:   `"username":"asha"`,
		},
		{
			name:       "invalid email",
			body:       `{"username":"asha","email":"asha","phone_number":"9000000001"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"email":"email"`,
		},
		{
			name:       "duplicate username",
			body:       `{"username":"asha","email":"asha@example.com","phone_number":"9000000001"}`,
			callMock:   true,
			mockErr:    entities.NewConflictError("username", "already taken"),
			wantStatus: http.StatusConflict,
			wantBody:   `"field":"username"`,
		},
		{
			name:       "role escalation",
			body:       `{"username":"asha","email":"asha@example.com","phone_number":"9000000001","role":"admin"}`,
			callMock:   true,
			mockErr:    entities.NewPermissionDeniedError("only staff may assign roles"),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService(t)
			if tc.callMock {
				svc.EXPECT().
					RegisterUser(mock.Anything, entities.Caller{}, mock.AnythingOfType("entities.RegisterUser")).
					Return(entities.User{ID: uuid.New(), Username: "asha", Role: entities.RoleCustomer}, tc.mockErr)
			}

			r := newRouter(handler.NewAccountHandler(newLogger(), svc))
			rec := serve(r, http.MethodPost, "/users", tc.body, nil)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAccountHandler_GetUser(t *testing.T) {
	caller := entities.Caller{UserID: uuid.New(), Role: entities.RoleCustomer}

	t.Run("me", func(t *testing.T) {
		svc := mocks.NewMockAccountService(t)
		svc.EXPECT().GetUser(mock.Anything, caller, caller.UserID).Return(entities.User{ID: caller.UserID, Username: "asha"}, nil)

		r := newRouter(handler.NewAccountHandler(newLogger(), svc))
		rec := serve(r, http.MethodGet, "/users/me", "", &caller)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), caller.UserID.String())
	})

	t.Run("someone else", func(t *testing.T) {
		other := uuid.New()
		svc := mocks.NewMockAccountService(t)
		svc.EXPECT().GetUser(mock.Anything, caller, other).Return(entities.User{}, entities.NewNotFoundError("user_id", other))

		r := newRouter(handler.NewAccountHandler(newLogger(), svc))
		rec := serve(r, http.MethodGet, "/users/"+other.String(), "", &caller)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := mocks.NewMockAccountService(t)

		r := newRouter(handler.NewAccountHandler(newLogger(), svc))
		rec := serve(r, http.MethodGet, "/users/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAccountHandler_CreateAddress(t *testing.T) {
	caller := entities.Caller{UserID: uuid.New(), Role: entities.RoleCustomer}

	testCases := []struct {
		name       string
		body       string
		callMock   bool
		mockErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "OK",
			body:       `{"address_type":"home","state_id":1,"city_id":2,"street_address":"12 MG Road","is_primary":true}`,
			callMock:   true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "city outside state",
			body:       `{"address_type":"home","state_id":1,"city_id":9,"street_address":"12 MG Road"}`,
			callMock:   true,
			mockErr:    entities.NewInvalidArgumentError("city", "city 9 is not in state 1"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"city"`,
		},
		{
			name:       "missing street",
			body:       `{"address_type":"home"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"street_address":"required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService(t)
			if tc.callMock {
				svc.EXPECT().
					CreateAddress(mock.Anything, caller, mock.AnythingOfType("entities.Address")).
					Return(entities.Address{ID: uuid.New(), Type: entities.AddressHome}, tc.mockErr)
			}

			r := newRouter(handler.NewAccountHandler(newLogger(), svc))
			rec := serve(r, http.MethodPost, "/addresses", tc.body, &caller)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAccountHandler_CreateAddressFromLocation(t *testing.T) {
	caller := entities.Caller{UserID: uuid.New(), Role: entities.RoleCustomer}

	svc := mocks.NewMockAccountService(t)
	svc.EXPECT().
		CreateAddressFromLocation(mock.Anything, caller, entities.AddressFromLocation{
			Latitude:  12.97,
			Longitude: 77.59,
			Type:      entities.AddressWork,
		}).
		Return(entities.Address{ID: uuid.New(), Type: entities.AddressWork, StreetAddress: "MG Road, Bengaluru"}, nil)

	r := newRouter(handler.NewAccountHandler(newLogger(), svc))
	rec := serve(r, http.MethodPost, "/addresses/from-location", `{"latitude":12.97,"longitude":77.59,"address_type":"work"}`, &caller)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "MG Road, Bengaluru")
}

func TestAccountHandler_Locations(t *testing.T) {
	t.Run("states", func(t *testing.T) {
		svc := mocks.NewMockAccountService(t)
		svc.EXPECT().ListStates(mock.Anything).Return([]entities.State{{ID: 1, Name: "Karnataka", Code: "KA"}}, nil)

		r := newRouter(handler.NewAccountHandler(newLogger(), svc))
		rec := serve(r, http.MethodGet, "/locations/states", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Karnataka","code":"KA"}]`, rec.Body.String())
	})

	t.Run("cities", func(t *testing.T) {
		svc := mocks.NewMockAccountService(t)
		svc.EXPECT().ListCities(mock.Anything, int64(1)).Return([]entities.City{{ID: 2, StateID: 1, Name: "Bengaluru", IsUrban: true}}, nil)

		r := newRouter(handler.NewAccountHandler(newLogger(), svc))
		rec := serve(r, http.MethodGet, "/locations/states/1/cities", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Bengaluru")
	})

	t.Run("areas of bad city", func(t *testing.T) {
		svc := mocks.NewMockAccountService(t)

		r := newRouter(handler.NewAccountHandler(newLogger(), svc))
		rec := serve(r, http.MethodGet, "/locations/cities/x/areas", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccountHandler_ResolveLocation(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		callMock   bool
		mockReturn entities.ResolvedLocation
		mockErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:     "OK",
			body:     `{"latitude":12.97,"longitude":77.59}`,
			callMock: true,
			mockReturn: entities.ResolvedLocation{
				State:      entities.State{ID: 1, Name: "Karnataka"},
				Pincode:    "560001",
				RawAddress: "MG Road, Bengaluru",
			},
			wantStatus: http.StatusOK,
			wantBody:   `"pincode":"560001"`,
		},
		{
			name:       "missing longitude",
			body:       `{"latitude":12.97}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"longitude":"required"`,
		},
		{
			name:       "no geocoder",
			body:       `{"latitude":12.97,"longitude":77.59}`,
			callMock:   true,
			mockErr:    entities.ErrGeocoderUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown state",
			body:       `{"latitude":12.97,"longitude":77.59}`,
			callMock:   true,
			mockErr:    entities.NewNotFoundError("state", `"Atlantis"`),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService(t)
			if tc.callMock {
				svc.EXPECT().ResolveLocation(mock.Anything, 12.97, 77.59).Return(tc.mockReturn, tc.mockErr)
			}

			r := newRouter(handler.NewAccountHandler(newLogger(), svc))
			rec := serve(r, http.MethodPost, "/locations/resolve", tc.body, nil)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAccountHandler_UpdateMe(t *testing.T) {
	caller := entities.Caller{UserID: uuid.New(), Role: entities.RoleCustomer}
	hindi := entities.LanguageHindi

	testCases := []struct {
		name       string
		body       string
		caller     *entities.Caller
		callMock   bool
		wantPatch  entities.UserPatch
		mockErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "OK",
			body:       `{"preferred_language":"hi","whatsapp_notifications":true}`,
			caller:     &caller,
			callMock:   true,
			wantPatch:  entities.UserPatch{PreferredLanguage: &hindi, WhatsappNotifications: ptr(true)},
			wantStatus: http.StatusOK,
			wantBody:   `"preferred_language":"hi"`,
		},
		{
			name:       "invalid email",
			body:       `{"email":"asha"}`,
			caller:     &caller,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"email":"email"`,
		},
		{
			name:       "unknown language",
			body:       `{"preferred_language":"fr"}`,
			caller:     &caller,
			callMock:   true,
			wantPatch:  entities.UserPatch{PreferredLanguage: ptr(entities.Language("fr"))},
			mockErr:    entities.NewInvalidArgumentError("preferred_language", `unknown value "fr"`),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"preferred_language"`,
		},
		{
			name:       "anonymous",
			body:       `{"notification_enabled":false}`,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService(t)
			if tc.callMock {
				svc.EXPECT().
					UpdateProfile(mock.Anything, caller, tc.wantPatch).
					Return(entities.User{ID: caller.UserID, PreferredLanguage: entities.LanguageHindi, WhatsappNotifications: true}, tc.mockErr)
			}

			r := newRouter(handler.NewAccountHandler(newLogger(), svc))
			rec := serve(r, http.MethodPatch, "/users/me", tc.body, tc.caller)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAccountHandler_GetAddress(t *testing.T) {
	caller := entities.Caller{UserID: uuid.New(), Role: entities.RoleCustomer}
	id := uuid.New()

	testCases := []struct {
		name       string
		path       string
		callMock   bool
		mockErr    error
		wantStatus int
	}{
		{name: "OK", path: "/addresses/" + id.String(), callMock: true, wantStatus: http.StatusOK},
		{
			name:       "not the owner",
			path:       "/addresses/" + id.String(),
			callMock:   true,
			mockErr:    entities.NewNotFoundError("address_id", id),
			wantStatus: http.StatusNotFound,
		},
		{name: "bad id", path: "/addresses/home", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService(t)
			if tc.callMock {
				svc.EXPECT().
					GetAddress(mock.Anything, caller, id).
					Return(entities.Address{ID: id, Type: entities.AddressHome, StreetAddress: "12 MG Road"}, tc.mockErr)
			}

			r := newRouter(handler.NewAccountHandler(newLogger(), svc))
			rec := serve(r, http.MethodGet, tc.path, "", &caller)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestAccountHandler_UpdateAddress(t *testing.T) {
	caller := entities.Caller{UserID: uuid.New(), Role: entities.RoleCustomer}
	id := uuid.New()
	work := entities.AddressWork

	testCases := []struct {
		name       string
		body       string
		callMock   bool
		wantPatch  entities.AddressPatch
		mockErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "OK",
			body:       `{"address_type":"work","city_id":2,"is_primary":true}`,
			callMock:   true,
			wantPatch:  entities.AddressPatch{Type: &work, CityID: ptr(int64(2)), IsPrimary: ptr(true)},
			wantStatus: http.StatusOK,
			wantBody:   `"street_address":"12 MG Road"`,
		},
		{
			name:       "city outside state",
			body:       `{"city_id":9}`,
			callMock:   true,
			wantPatch:  entities.AddressPatch{CityID: ptr(int64(9))},
			mockErr:    entities.NewInvalidArgumentError("city", "city 9 is not in state 1"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"city"`,
		},
		{
			name:       "landmark too long",
			body:       `{"landmark":"` + strings.Repeat("x", 201) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"landmark":"max"`,
		},
		{
			name:       "someone else's address",
			body:       `{"landmark":"gate 2"}`,
			callMock:   true,
			wantPatch:  entities.AddressPatch{Landmark: ptr("gate 2")},
			mockErr:    entities.NewNotFoundError("address_id", id),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService(t)
			if tc.callMock {
				svc.EXPECT().
					UpdateAddress(mock.Anything, caller, id, tc.wantPatch).
					Return(entities.Address{ID: id, Type: entities.AddressWork, StreetAddress: "12 MG Road", IsPrimary: true}, tc.mockErr)
			}

			r := newRouter(handler.NewAccountHandler(newLogger(), svc))
			rec := serve(r, http.MethodPatch, "/addresses/"+id.String(), tc.body, &caller)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAccountHandler_DeleteAddress(t *testing.T) {
	caller := entities.Caller{UserID: uuid.New(), Role: entities.RoleCustomer}
	id := uuid.New()

	testCases := []struct {
		name       string
		caller     *entities.Caller
		callMock   bool
		mockErr    error
		wantStatus int
	}{
		{name: "OK", caller: &caller, callMock: true, wantStatus: http.StatusNoContent},
		{
			name:       "not the owner",
			caller:     &caller,
			callMock:   true,
			mockErr:    entities.NewNotFoundError("address_id", id),
			wantStatus: http.StatusNotFound,
		},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService(t)
			if tc.callMock {
				svc.EXPECT().DeleteAddress(mock.Anything, caller, id).Return(tc.mockErr)
			}

			r := newRouter(handler.NewAccountHandler(newLogger(), svc))
			rec := serve(r, http.MethodDelete, "/addresses/"+id.String(), "", tc.caller)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
