package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/trm"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var locationCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "delivery_service",
	Subsystem: "location_cache",
	Name:      "requests_total",
	Help:      "Location list lookups by cache result.",
}, []string{"result"})

type AccountRepo interface {
	GetUser(ctx context.Context, id uuid.UUID) (entities.User, error)
	GetUserForUpdate(ctx context.Context, id uuid.UUID) (entities.User, error)
	CreateUser(ctx context.Context, u entities.User) error
	UpdateProfile(ctx context.Context, u entities.User) error
	GetAddress(ctx context.Context, id uuid.UUID) (entities.Address, error)
	GetAddressForUpdate(ctx context.Context, id uuid.UUID) (entities.Address, error)
	CreateAddress(ctx context.Context, a entities.Address) error
	UpdateAddress(ctx context.Context, a entities.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID) error
	ClearPrimaryAddress(ctx context.Context, userID uuid.UUID) error
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]entities.Address, error)
}

type LocationRepo interface {
	ListStates(ctx context.Context) ([]entities.State, error)
	ListCities(ctx context.Context, stateID int64) ([]entities.City, error)
	ListAreas(ctx context.Context, cityID int64) ([]entities.Area, error)
	GetState(ctx context.Context, id int64) (entities.State, error)
	GetCity(ctx context.Context, id int64) (entities.City, error)
	GetArea(ctx context.Context, id int64) (entities.Area, error)
}

// Geocoder turns coordinates into a free-text postal address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (entities.GeocodedAddress, error)
}

type accountService struct {
	logger    *slog.Logger
	txManager trm.Manager
	accounts  AccountRepo
	locations LocationRepo
	cache     Cache
	geocoder  Geocoder
}

// NewAccountService builds the account directory. geocoder may be nil, in
// which case location resolution reports entities.ErrGeocoderUnavailable.
func NewAccountService(
	logger *slog.Logger,
	txManager trm.Manager,
	accounts AccountRepo,
	locations LocationRepo,
	cache Cache,
	geocoder Geocoder,
) *accountService {
	return &accountService{
		logger:    logger.With(slog.String("service", "account")),
		txManager: txManager,
		accounts:  accounts,
		locations: locations,
		cache:     cache,
		geocoder:  geocoder,
	}
}

func (s *accountService) RegisterUser(ctx context.Context, caller entities.Caller, req entities.RegisterUser) (entities.User, error) {
	switch {
	case strings.TrimSpace(req.Username) == "":
		return entities.User{}, entities.NewInvalidArgumentError("username", "is required")
	case strings.TrimSpace(req.Email) == "":
		return entities.User{}, entities.NewInvalidArgumentError("email", "is required")
	case strings.TrimSpace(req.PhoneNumber) == "":
		return entities.User{}, entities.NewInvalidArgumentError("phone_number", "is required")
	}

	if req.Role == "" {
		req.Role = entities.RoleCustomer
	}
	if !req.Role.Valid() {
		return entities.User{}, entities.NewInvalidArgumentError("role", fmt.Sprintf("unknown value %q", req.Role))
	}
	if req.Role != entities.RoleCustomer && !caller.Elevated() {
		return entities.User{}, entities.NewPermissionDeniedError("only staff may assign roles")
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		return entities.User{}, entities.NewInvalidArgumentError("latitude", "latitude and longitude must be set together")
	}
	if req.Latitude != nil {
		if err := entities.ValidateCoordinates(*req.Latitude, *req.Longitude); err != nil {
			return entities.User{}, err
		}
	}
	if req.PreferredLanguage == "" {
		req.PreferredLanguage = entities.LanguageEnglish
	}
	if !req.PreferredLanguage.Valid() {
		return entities.User{}, entities.NewInvalidArgumentError("preferred_language", fmt.Sprintf("unknown value %q", req.PreferredLanguage))
	}

	at := now()
	u := entities.User{
		ID:                  uuid.New(),
		Username:            req.Username,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		Role:                req.Role,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		PreferredLanguage:   req.PreferredLanguage,
		NotificationEnabled: true,
		EmailNotifications:  true,
		CreatedAt:           at,
		UpdatedAt:           at,
	}
	if err := s.accounts.CreateUser(ctx, u); err != nil {
		return entities.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", slog.String("user_id", u.ID.String()), slog.String("role", string(u.Role)))
	return u, nil
}

func (s *accountService) GetUser(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.User, error) {
	if !caller.Elevated() && !caller.Owns(id) {
		return entities.User{}, entities.NewNotFoundError("user_id", id)
	}
	u, err := s.accounts.GetUser(ctx, id)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// UpdateProfile changes the caller's own profile.
func (s *accountService) UpdateProfile(ctx context.Context, caller entities.Caller, patch entities.UserPatch) (entities.User, error) {
	var u entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.accounts.GetUserForUpdate(ctx, caller.UserID)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if err := current.Apply(patch, now()); err != nil {
			return err
		}
		if err := s.accounts.UpdateProfile(ctx, current); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		u = current
		return nil
	})
	if err != nil {
		return entities.User{}, err
	}

	s.logger.Debug("profile updated", slog.String("user_id", u.ID.String()))
	return u, nil
}

// ValidateAddress checks that every referenced location exists and that the
// links form a consistent state, city, area chain.
func (s *accountService) ValidateAddress(ctx context.Context, stateID, cityID, areaID *int64) error {
	var (
		state    *entities.State
		city     *entities.City
		area     *entities.Area
		areaCity *entities.City
	)

	if stateID != nil {
		st, err := s.locations.GetState(ctx, *stateID)
		if err != nil {
			return fmt.Errorf("failed to get state: %w", err)
		}
		state = &st
	}
	if cityID != nil {
		c, err := s.locations.GetCity(ctx, *cityID)
		if err != nil {
			return fmt.Errorf("failed to get city: %w", err)
		}
		city = &c
	}
	if areaID != nil {
		a, err := s.locations.GetArea(ctx, *areaID)
		if err != nil {
			return fmt.Errorf("failed to get area: %w", err)
		}
		area = &a

		if city == nil && state != nil {
			c, err := s.locations.GetCity(ctx, a.CityID)
			if err != nil {
				return fmt.Errorf("failed to get city of area: %w", err)
			}
			areaCity = &c
		}
	}

	return entities.CheckHierarchy(state, city, area, areaCity)
}

// CreateAddress stores a new address of the caller. A primary address takes
// the flag over from the previous one in the same transaction.
func (s *accountService) CreateAddress(ctx context.Context, caller entities.Caller, a entities.Address) (entities.Address, error) {
	a.ID = uuid.New()
	a.UserID = caller.UserID
	a.CreatedAt = now()
	a.UpdatedAt = a.CreatedAt
	if err := a.Validate(); err != nil {
		return entities.Address{}, err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.ValidateAddress(ctx, a.StateID, a.CityID, a.AreaID); err != nil {
			return err
		}
		if a.IsPrimary {
			if err := s.accounts.ClearPrimaryAddress(ctx, a.UserID); err != nil {
				return fmt.Errorf("failed to clear primary address: %w", err)
			}
		}
		if err := s.accounts.CreateAddress(ctx, a); err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Address{}, err
	}

	s.logger.Debug("address created", slog.String("address_id", a.ID.String()), slog.String("user_id", a.UserID.String()))
	return a, nil
}

// GetAddress returns an address of the caller. Addresses of other users are
// reported as missing, staff included.
func (s *accountService) GetAddress(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.Address, error) {
	a, err := s.accounts.GetAddress(ctx, id)
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	if !caller.Owns(a.UserID) {
		return entities.Address{}, entities.NewNotFoundError("address_id", id)
	}
	return a, nil
}

// UpdateAddress re-validates the patched links against the location hierarchy
// and moves the primary flag in the same transaction.
func (s *accountService) UpdateAddress(ctx context.Context, caller entities.Caller, id uuid.UUID, patch entities.AddressPatch) (entities.Address, error) {
	var a entities.Address
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.lockOwnAddress(ctx, caller, id)
		if err != nil {
			return err
		}
		wasPrimary := current.IsPrimary

		if err := current.Apply(patch, now()); err != nil {
			return err
		}
		if err := s.ValidateAddress(ctx, current.StateID, current.CityID, current.AreaID); err != nil {
			return err
		}
		if current.IsPrimary && !wasPrimary {
			if err := s.accounts.ClearPrimaryAddress(ctx, current.UserID); err != nil {
				return fmt.Errorf("failed to clear primary address: %w", err)
			}
		}
		if err := s.accounts.UpdateAddress(ctx, current); err != nil {
			return fmt.Errorf("failed to update address: %w", err)
		}
		a = current
		return nil
	})
	if err != nil {
		return entities.Address{}, err
	}

	s.logger.Debug("address updated", slog.String("address_id", a.ID.String()))
	return a, nil
}

func (s *accountService) DeleteAddress(ctx context.Context, caller entities.Caller, id uuid.UUID) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.lockOwnAddress(ctx, caller, id); err != nil {
			return err
		}
		if err := s.accounts.DeleteAddress(ctx, id); err != nil {
			return fmt.Errorf("failed to delete address: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("address deleted", slog.String("address_id", id.String()))
	return nil
}

func (s *accountService) lockOwnAddress(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.Address, error) {
	a, err := s.accounts.GetAddressForUpdate(ctx, id)
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	if !caller.Owns(a.UserID) {
		return entities.Address{}, entities.NewNotFoundError("address_id", id)
	}
	return a, nil
}

func (s *accountService) ListAddresses(ctx context.Context, caller entities.Caller) ([]entities.Address, error) {
	addresses, err := s.accounts.ListAddresses(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

func (s *accountService) ListStates(ctx context.Context) ([]entities.State, error) {
	return cached(s, "states", func() ([]entities.State, error) {
		return s.locations.ListStates(ctx)
	})
}

func (s *accountService) ListCities(ctx context.Context, stateID int64) ([]entities.City, error) {
	return cached(s, fmt.Sprintf("cities:%d", stateID), func() ([]entities.City, error) {
		return s.locations.ListCities(ctx, stateID)
	})
}

func (s *accountService) ListAreas(ctx context.Context, cityID int64) ([]entities.Area, error) {
	return cached(s, fmt.Sprintf("areas:%d", cityID), func() ([]entities.Area, error) {
		return s.locations.ListAreas(ctx, cityID)
	})
}

// cached serves a location list from the cache, loading and storing it on a
// miss. A corrupt entry is treated as a miss.
func cached[T any](s *accountService, key string, load func() ([]T, error)) ([]T, error) {
	if data, ok := s.cache.Get(key); ok {
		var items []T
		err := json.Unmarshal(data, &items)
		if err == nil {
			locationCacheRequests.WithLabelValues("hit").Inc()
			return items, nil
		}
		s.logger.Warn("failed to decode cached locations", slog.String("key", key), slog.Any("error", err))
	}

	locationCacheRequests.WithLabelValues("miss").Inc()
	items, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Error("failed to encode locations", slog.String("key", key), slog.Any("error", err))
		return items, nil
	}
	s.cache.Set(key, data)
	return items, nil
}

// ResolveLocation maps coordinates onto the local state and city records.
// The state must match. The city is optional.
func (s *accountService) ResolveLocation(ctx context.Context, lat, lon float64) (entities.ResolvedLocation, error) {
	if s.geocoder == nil {
		return entities.ResolvedLocation{}, entities.ErrGeocoderUnavailable
	}
	if err := entities.ValidateCoordinates(lat, lon); err != nil {
		return entities.ResolvedLocation{}, err
	}

	geo, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return entities.ResolvedLocation{}, fmt.Errorf("failed to reverse geocode: %w", err)
	}

	states, err := s.ListStates(ctx)
	if err != nil {
		return entities.ResolvedLocation{}, err
	}
	state, ok := entities.MatchState(states, geo.State)
	if !ok {
		return entities.ResolvedLocation{}, entities.NewNotFoundError("state", fmt.Sprintf("%q", geo.State))
	}

	res := entities.ResolvedLocation{
		State:      state,
		Pincode:    geo.Postcode,
		RawAddress: geo.DisplayName,
	}

	cities, err := s.ListCities(ctx, state.ID)
	if err != nil {
		return entities.ResolvedLocation{}, err
	}
	if city, ok := entities.MatchCity(cities, geo.City); ok {
		res.City = &city
	}
	return res, nil
}

func (s *accountService) CreateAddressFromLocation(ctx context.Context, caller entities.Caller, req entities.AddressFromLocation) (entities.Address, error) {
	loc, err := s.ResolveLocation(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return entities.Address{}, err
	}

	street := req.StreetAddress
	if street == "" {
		street = loc.RawAddress
	}
	lat, lon := req.Latitude, req.Longitude
	stateID := loc.State.ID

	a := entities.Address{
		Type:          req.Type,
		StateID:       &stateID,
		StreetAddress: street,
		Landmark:      req.Landmark,
		Pincode:       loc.Pincode,
		IsPrimary:     req.IsPrimary,
		Latitude:      &lat,
		Longitude:     &lon,
	}
	if loc.City != nil {
		cityID := loc.City.ID
		a.CityID = &cityID
	}
	return s.CreateAddress(ctx, caller, a)
}
