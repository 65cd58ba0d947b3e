package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/middleware"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AccountService interface {
	RegisterUser(ctx context.Context, caller entities.Caller, req entities.RegisterUser) (entities.User, error)
	GetUser(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.User, error)
	UpdateProfile(ctx context.Context, caller entities.Caller, patch entities.UserPatch) (entities.User, error)
	GetAddress(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.Address, error)
	UpdateAddress(ctx context.Context, caller entities.Caller, id uuid.UUID, patch entities.AddressPatch) (entities.Address, error)
	DeleteAddress(ctx context.Context, caller entities.Caller, id uuid.UUID) error
	CreateAddress(ctx context.Context, caller entities.Caller, a entities.Address) (entities.Address, error)
	CreateAddressFromLocation(ctx context.Context, caller entities.Caller, req entities.AddressFromLocation) (entities.Address, error)
	ListAddresses(ctx context.Context, caller entities.Caller) ([]entities.Address, error)
	ListStates(ctx context.Context) ([]entities.State, error)
	ListCities(ctx context.Context, stateID int64) ([]entities.City, error)
	ListAreas(ctx context.Context, cityID int64) ([]entities.Area, error)
	ResolveLocation(ctx context.Context, lat, lon float64) (entities.ResolvedLocation, error)
}

type accountHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	accounts AccountService
}

func NewAccountHandler(logger *slog.Logger, accounts AccountService) *accountHandler {
	return &accountHandler{
		logger:   logger.With(slog.String("handler", "account")),
		validate: utils.NewValidator(),
		accounts: accounts,
	}
}

func (h *accountHandler) Init(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		// Анонимный вызов регистрирует покупателя
		r.Post("/", h.RegisterUser)
		r.With(middleware.RequireCaller).Get("/me", h.GetMe)
		r.With(middleware.RequireCaller).Patch("/me", h.UpdateMe)
		r.With(middleware.RequireCaller).Get("/{id}", h.GetUser)
	})

	r.Route("/addresses", func(r chi.Router) {
		r.Use(middleware.RequireCaller)
		r.Get("/", h.ListAddresses)
		r.Post("/", h.CreateAddress)
		r.Post("/from-location", h.CreateAddressFromLocation)
		r.Get("/{id}", h.GetAddress)
		r.Patch("/{id}", h.UpdateAddress)
		r.Delete("/{id}", h.DeleteAddress)
	})

	r.Route("/locations", func(r chi.Router) {
		r.Get("/states", h.ListStates)
		r.Get("/states/{id}/cities", h.ListCities)
		r.Get("/cities/{id}/areas", h.ListAreas)
		r.Post("/resolve", h.ResolveLocation)
	})
}

func (h *accountHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	caller, _ := middleware.CallerFrom(r.Context())
	u, err := h.accounts.RegisterUser(r.Context(), caller, RegisterUserJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to register user")
		return
	}
	utils.WriteJSON(w, UserEntityToJSON(u), http.StatusCreated)
}

func (h *accountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	caller := callerOf(r)
	h.writeUser(w, r, caller, caller.UserID)
}

func (h *accountHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	u, err := h.accounts.UpdateProfile(r.Context(), callerOf(r), UpdateProfileJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to update profile")
		return
	}
	utils.WriteJSON(w, UserEntityToJSON(u), http.StatusOK)
}

func (h *accountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid user id")
		return
	}
	h.writeUser(w, r, callerOf(r), id)
}

func (h *accountHandler) writeUser(w http.ResponseWriter, r *http.Request, caller entities.Caller, id uuid.UUID) {
	u, err := h.accounts.GetUser(r.Context(), caller, id)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to get user")
		return
	}
	utils.WriteJSON(w, UserEntityToJSON(u), http.StatusOK)
}

func (h *accountHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.accounts.ListAddresses(r.Context(), callerOf(r))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to list addresses")
		return
	}
	utils.WriteJSON(w, mapSlice(addresses, AddressEntityToJSON), http.StatusOK)
}

func (h *accountHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var req CreateAddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	a, err := h.accounts.CreateAddress(r.Context(), callerOf(r), CreateAddressJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to create address")
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(a), http.StatusCreated)
}

func (h *accountHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid address id")
		return
	}

	a, err := h.accounts.GetAddress(r.Context(), callerOf(r), id)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to get address")
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(a), http.StatusOK)
}

func (h *accountHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid address id")
		return
	}

	var req UpdateAddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	a, err := h.accounts.UpdateAddress(r.Context(), callerOf(r), id, UpdateAddressJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to update address")
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(a), http.StatusOK)
}

func (h *accountHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid address id")
		return
	}

	if err := h.accounts.DeleteAddress(r.Context(), callerOf(r), id); err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to delete address")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *accountHandler) CreateAddressFromLocation(w http.ResponseWriter, r *http.Request) {
	var req AddressFromLocationRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	a, err := h.accounts.CreateAddressFromLocation(r.Context(), callerOf(r), AddressFromLocationJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to create address from location")
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(a), http.StatusCreated)
}

func (h *accountHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.accounts.ListStates(r.Context())
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to list states")
		return
	}
	utils.WriteJSON(w, mapSlice(states, StateEntityToJSON), http.StatusOK)
}

func (h *accountHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	stateID, err := int64Param(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid state id")
		return
	}

	cities, err := h.accounts.ListCities(r.Context(), stateID)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to list cities")
		return
	}
	utils.WriteJSON(w, mapSlice(cities, CityEntityToJSON), http.StatusOK)
}

func (h *accountHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	cityID, err := int64Param(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid city id")
		return
	}

	areas, err := h.accounts.ListAreas(r.Context(), cityID)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to list areas")
		return
	}
	utils.WriteJSON(w, mapSlice(areas, AreaEntityToJSON), http.StatusOK)
}

func (h *accountHandler) ResolveLocation(w http.ResponseWriter, r *http.Request) {
	var req ResolveLocationRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	loc, err := h.accounts.ResolveLocation(r.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to resolve location")
		return
	}
	utils.WriteJSON(w, ResolvedLocationEntityToJSON(loc), http.StatusOK)
}
