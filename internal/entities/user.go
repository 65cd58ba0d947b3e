package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleDelivery, RoleCustomer:
		return true
	}
	return false
}

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageHindi
}

type User struct {
	ID                    uuid.UUID
	Username              string
	Email                 string
	PhoneNumber           string
	Role                  Role
	IsStaff               bool
	Latitude              *float64
	Longitude             *float64
	PreferredLanguage     Language
	NotificationEnabled   bool
	EmailNotifications    bool
	WhatsappNotifications bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// UserPatch holds the profile fields a user may change on their own account.
// Nil fields are left untouched. Role, username and phone are not editable.
type UserPatch struct {
	Email                 *string
	PreferredLanguage     *Language
	NotificationEnabled   *bool
	EmailNotifications    *bool
	WhatsappNotifications *bool
	Latitude              *float64
	Longitude             *float64
}

func (u *User) Apply(patch UserPatch, at time.Time) error {
	next := *u
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email == "" {
			return NewInvalidArgumentError("email", "must not be empty")
		}
		next.Email = email
	}
	if patch.PreferredLanguage != nil {
		if !patch.PreferredLanguage.Valid() {
			return NewInvalidArgumentError("preferred_language", fmt.Sprintf("unknown value %q", *patch.PreferredLanguage))
		}
		next.PreferredLanguage = *patch.PreferredLanguage
	}
	if patch.NotificationEnabled != nil {
		next.NotificationEnabled = *patch.NotificationEnabled
	}
	if patch.EmailNotifications != nil {
		next.EmailNotifications = *patch.EmailNotifications
	}
	if patch.WhatsappNotifications != nil {
		next.WhatsappNotifications = *patch.WhatsappNotifications
	}

	if (patch.Latitude == nil) != (patch.Longitude == nil) {
		return NewInvalidArgumentError("latitude", "latitude and longitude must be set together")
	}
	if patch.Latitude != nil {
		if err := ValidateCoordinates(*patch.Latitude, *patch.Longitude); err != nil {
			return err
		}
		next.Latitude, next.Longitude = patch.Latitude, patch.Longitude
	}

	next.UpdatedAt = at
	*u = next
	return nil
}

// Caller is the identity on whose behalf an operation runs. Every query and
// mutation is scoped by it.
type Caller struct {
	UserID  uuid.UUID
	Role    Role
	IsStaff bool
}

// SystemCaller is used by internal consumers that act with administrative rights.
var SystemCaller = Caller{Role: RoleAdmin, IsStaff: true}

// Elevated reports whether the caller sees and mutates every record.
func (c Caller) Elevated() bool {
	return c.IsStaff || c.Role == RoleAdmin || c.Role == RoleOwner
}

// Owns reports whether the caller is the given user.
func (c Caller) Owns(userID uuid.UUID) bool {
	return c.UserID != uuid.Nil && c.UserID == userID
}

type RegisterUser struct {
	Username          string
	Email             string
	PhoneNumber       string
	Role              Role
	PreferredLanguage Language
	Latitude          *float64
	Longitude         *float64
}
