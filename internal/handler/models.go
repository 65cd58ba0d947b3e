package handler

import (
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order представляет заказ
type Order struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Items         []OrderLine     `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderLine позиция заказа с зафиксированной ценой
type OrderLine struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CreateOrderRequest struct {
	UserID        uuid.UUID          `json:"user_id"`
	PaymentMethod string             `json:"payment_method" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,dive"`
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"`
}

type TransitionOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, OrderLine{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price,
			Subtotal:  l.Subtotal(),
		})
	}
	return Order{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func CreateOrderJSONToEntity(r CreateOrderRequest) entities.CreateOrder {
	lines := make([]entities.LineRequest, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, entities.LineRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return entities.CreateOrder{
		UserID:        r.UserID,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		Lines:         lines,
	}
}

// Delivery назначение заказа курьеру
type Delivery struct {
	ID                    uuid.UUID  `json:"id"`
	OrderID               uuid.UUID  `json:"order_id"`
	AgentID               *uuid.UUID `json:"agent_id,omitempty"`
	Status                string     `json:"status"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time `json:"actual_delivery_time,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// AssignDeliveryRequest приходит и по HTTP, и из топика назначений
type AssignDeliveryRequest struct {
	OrderID               uuid.UUID  `json:"order_id" validate:"required"`
	AgentID               *uuid.UUID `json:"agent_id,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
	Notes                 string     `json:"notes,omitempty" validate:"max=1000"`
}

type UpdateDeliveryRequest struct {
	Status                string     `json:"status"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time"`
	ActualDeliveryTime    *time.Time `json:"actual_delivery_time"`
	Notes                 *string    `json:"notes" validate:"omitempty,max=1000"`
}

func DeliveryEntityToJSON(a entities.DeliveryAssignment) Delivery {
	return Delivery{
		ID:                    a.ID,
		OrderID:               a.OrderID,
		AgentID:               a.AgentID,
		Status:                string(a.Status),
		EstimatedDeliveryTime: a.EstimatedDeliveryTime,
		ActualDeliveryTime:    a.ActualDeliveryTime,
		Notes:                 a.Notes,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func AssignDeliveryJSONToEntity(r AssignDeliveryRequest) entities.AssignDelivery {
	return entities.AssignDelivery{
		OrderID:               r.OrderID,
		AgentID:               r.AgentID,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		Notes:                 r.Notes,
	}
}

func UpdateDeliveryJSONToEntity(r UpdateDeliveryRequest) entities.DeliveryUpdate {
	return entities.DeliveryUpdate{
		Status:                entities.DeliveryStatus(r.Status),
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		ActualDeliveryTime:    r.ActualDeliveryTime,
		Notes:                 r.Notes,
	}
}

// Product товар каталога
type Product struct {
	ID             uuid.UUID           `json:"id"`
	CategoryID     *int64              `json:"category_id,omitempty"`
	Name           string              `json:"name"`
	Description    string              `json:"description,omitempty"`
	Price          decimal.Decimal     `json:"price"`
	DiscountPrice  decimal.NullDecimal `json:"discount_price"`
	EffectivePrice decimal.Decimal     `json:"effective_price"`
	Weight         int                 `json:"weight"`
	Availability   string              `json:"availability"`
	IsFeatured     bool                `json:"is_featured"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type CreateProductRequest struct {
	CategoryID    *int64              `json:"category_id"`
	Name          string              `json:"name" validate:"required,max=200"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discount_price"`
	Weight        int                 `json:"weight"`
	Availability  string              `json:"availability"`
	IsFeatured    bool                `json:"is_featured"`
}

// UpdateProductRequest частичное обновление, отсутствующие поля не меняются
type UpdateProductRequest struct {
	CategoryID    *int64               `json:"category_id"`
	Name          *string              `json:"name" validate:"omitempty,max=200"`
	Description   *string              `json:"description"`
	Price         *decimal.Decimal     `json:"price"`
	DiscountPrice *decimal.NullDecimal `json:"discount_price"`
	Weight        *int                 `json:"weight"`
	Availability  *string              `json:"availability"`
	IsFeatured    *bool                `json:"is_featured"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:             p.ID,
		CategoryID:     p.CategoryID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		EffectivePrice: p.EffectivePrice(),
		Weight:         p.WeightGrams,
		Availability:   string(p.Availability),
		IsFeatured:     p.IsFeatured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func CreateProductJSONToEntity(r CreateProductRequest) entities.Product {
	return entities.Product{
		CategoryID:    r.CategoryID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
		WeightGrams:   r.Weight,
		Availability:  entities.Availability(r.Availability),
		IsFeatured:    r.IsFeatured,
	}
}

func UpdateProductJSONToEntity(r UpdateProductRequest) entities.ProductPatch {
	patch := entities.ProductPatch{
		CategoryID:    r.CategoryID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
		WeightGrams:   r.Weight,
		IsFeatured:    r.IsFeatured,
	}
	if r.Availability != nil {
		a := entities.Availability(*r.Availability)
		patch.Availability = &a
	}
	return patch
}

func CategoryEntityToJSON(c entities.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Description: c.Description}
}

// User пользователь сервиса
type User struct {
	ID                    uuid.UUID `json:"id"`
	Username              string    `json:"username"`
	Email                 string    `json:"email"`
	PhoneNumber           string    `json:"phone_number"`
	Role                  string    `json:"role"`
	IsStaff               bool      `json:"is_staff"`
	Latitude              *float64  `json:"latitude,omitempty"`
	Longitude             *float64  `json:"longitude,omitempty"`
	PreferredLanguage     string    `json:"preferred_language"`
	NotificationEnabled   bool      `json:"notification_enabled"`
	EmailNotifications    bool      `json:"email_notifications"`
	WhatsappNotifications bool      `json:"whatsapp_notifications"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type RegisterUserRequest struct {
	Username          string   `json:"username" validate:"required,max=150"`
	Email             string   `json:"email" validate:"required,email"`
	PhoneNumber       string   `json:"phone_number" validate:"required,max=15"`
	Role              string   `json:"role"`
	PreferredLanguage string   `json:"preferred_language" validate:"omitempty,max=10"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
}

// UpdateProfileRequest частичное обновление профиля текущего пользователя
type UpdateProfileRequest struct {
	Email                 *string  `json:"email" validate:"omitempty,email,max=254"`
	PreferredLanguage     *string  `json:"preferred_language"`
	NotificationEnabled   *bool    `json:"notification_enabled"`
	EmailNotifications    *bool    `json:"email_notifications"`
	WhatsappNotifications *bool    `json:"whatsapp_notifications"`
	Latitude              *float64 `json:"latitude"`
	Longitude             *float64 `json:"longitude"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:                    u.ID,
		Username:              u.Username,
		Email:                 u.Email,
		PhoneNumber:           u.PhoneNumber,
		Role:                  string(u.Role),
		IsStaff:               u.IsStaff,
		Latitude:              u.Latitude,
		Longitude:             u.Longitude,
		PreferredLanguage:     string(u.PreferredLanguage),
		NotificationEnabled:   u.NotificationEnabled,
		EmailNotifications:    u.EmailNotifications,
		WhatsappNotifications: u.WhatsappNotifications,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func UpdateProfileJSONToEntity(r UpdateProfileRequest) entities.UserPatch {
	patch := entities.UserPatch{
		Email:                 r.Email,
		NotificationEnabled:   r.NotificationEnabled,
		EmailNotifications:    r.EmailNotifications,
		WhatsappNotifications: r.WhatsappNotifications,
		Latitude:              r.Latitude,
		Longitude:             r.Longitude,
	}
	if r.PreferredLanguage != nil {
		l := entities.Language(*r.PreferredLanguage)
		patch.PreferredLanguage = &l
	}
	return patch
}

func RegisterUserJSONToEntity(r RegisterUserRequest) entities.RegisterUser {
	return entities.RegisterUser{
		Username:          r.Username,
		Email:             r.Email,
		PhoneNumber:       r.PhoneNumber,
		Role:              entities.Role(r.Role),
		PreferredLanguage: entities.Language(r.PreferredLanguage),
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
	}
}

// Address адрес доставки пользователя
type Address struct {
	ID            uuid.UUID `json:"id"`
	AddressType   string    `json:"address_type"`
	StateID       *int64    `json:"state_id,omitempty"`
	CityID        *int64    `json:"city_id,omitempty"`
	AreaID        *int64    `json:"area_id,omitempty"`
	StreetAddress string    `json:"street_address"`
	Landmark      string    `json:"landmark,omitempty"`
	Pincode       string    `json:"pincode,omitempty"`
	IsPrimary     bool      `json:"is_primary"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateAddressRequest struct {
	AddressType   string   `json:"address_type" validate:"required"`
	StateID       *int64   `json:"state_id"`
	CityID        *int64   `json:"city_id"`
	AreaID        *int64   `json:"area_id"`
	StreetAddress string   `json:"street_address" validate:"required"`
	Landmark      string   `json:"landmark" validate:"max=200"`
	Pincode       string   `json:"pincode" validate:"max=10"`
	IsPrimary     bool     `json:"is_primary"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// UpdateAddressRequest частичное обновление адреса, связи можно заменить, но не сбросить
type UpdateAddressRequest struct {
	AddressType   *string  `json:"address_type"`
	StateID       *int64   `json:"state_id"`
	CityID        *int64   `json:"city_id"`
	AreaID        *int64   `json:"area_id"`
	StreetAddress *string  `json:"street_address"`
	Landmark      *string  `json:"landmark" validate:"omitempty,max=200"`
	Pincode       *string  `json:"pincode" validate:"omitempty,max=10"`
	IsPrimary     *bool    `json:"is_primary"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type AddressFromLocationRequest struct {
	Latitude      *float64 `json:"latitude" validate:"required"`
	Longitude     *float64 `json:"longitude" validate:"required"`
	AddressType   string   `json:"address_type" validate:"required"`
	StreetAddress string   `json:"street_address"`
	Landmark      string   `json:"landmark" validate:"max=200"`
	IsPrimary     bool     `json:"is_primary"`
}

type ResolveLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		ID:            a.ID,
		AddressType:   string(a.Type),
		StateID:       a.StateID,
		CityID:        a.CityID,
		AreaID:        a.AreaID,
		StreetAddress: a.StreetAddress,
		Landmark:      a.Landmark,
		Pincode:       a.Pincode,
		IsPrimary:     a.IsPrimary,
		Latitude:      a.Latitude,
		Longitude:     a.Longitude,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func UpdateAddressJSONToEntity(r UpdateAddressRequest) entities.AddressPatch {
	patch := entities.AddressPatch{
		StateID:       r.StateID,
		CityID:        r.CityID,
		AreaID:        r.AreaID,
		StreetAddress: r.StreetAddress,
		Landmark:      r.Landmark,
		Pincode:       r.Pincode,
		IsPrimary:     r.IsPrimary,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
	if r.AddressType != nil {
		t := entities.AddressType(*r.AddressType)
		patch.Type = &t
	}
	return patch
}

func CreateAddressJSONToEntity(r CreateAddressRequest) entities.Address {
	return entities.Address{
		Type:          entities.AddressType(r.AddressType),
		StateID:       r.StateID,
		CityID:        r.CityID,
		AreaID:        r.AreaID,
		StreetAddress: r.StreetAddress,
		Landmark:      r.Landmark,
		Pincode:       r.Pincode,
		IsPrimary:     r.IsPrimary,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
}

func AddressFromLocationJSONToEntity(r AddressFromLocationRequest) entities.AddressFromLocation {
	return entities.AddressFromLocation{
		Latitude:      *r.Latitude,
		Longitude:     *r.Longitude,
		Type:          entities.AddressType(r.AddressType),
		StreetAddress: r.StreetAddress,
		Landmark:      r.Landmark,
		IsPrimary:     r.IsPrimary,
	}
}

// State, City и Area справочник локаций
type State struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type City struct {
	ID      int64  `json:"id"`
	StateID int64  `json:"state_id"`
	Name    string `json:"name"`
	IsUrban bool   `json:"is_urban"`
}

type Area struct {
	ID        int64    `json:"id"`
	CityID    int64    `json:"city_id"`
	Name      string   `json:"name"`
	Pincode   string   `json:"pincode"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type ResolvedLocation struct {
	State      State  `json:"state"`
	City       *City  `json:"city,omitempty"`
	Pincode    string `json:"pincode,omitempty"`
	RawAddress string `json:"raw_address"`
}

func StateEntityToJSON(s entities.State) State {
	return State{ID: s.ID, Name: s.Name, Code: s.Code}
}

func CityEntityToJSON(c entities.City) City {
	return City{ID: c.ID, StateID: c.StateID, Name: c.Name, IsUrban: c.IsUrban}
}

func AreaEntityToJSON(a entities.Area) Area {
	return Area{
		ID:        a.ID,
		CityID:    a.CityID,
		Name:      a.Name,
		Pincode:   a.Pincode,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}

func ResolvedLocationEntityToJSON(l entities.ResolvedLocation) ResolvedLocation {
	res := ResolvedLocation{
		State:      StateEntityToJSON(l.State),
		Pincode:    l.Pincode,
		RawAddress: l.RawAddress,
	}
	if l.City != nil {
		c := CityEntityToJSON(*l.City)
		res.City = &c
	}
	return res
}

func mapSlice[E, J any](items []E, f func(E) J) []J {
	out := make([]J, 0, len(items))
	for _, it := range items {
		out = append(out, f(it))
	}
	return out
}
