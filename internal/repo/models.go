package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID                    uuid.UUID       `db:"id"`
	Username              string          `db:"username"`
	Email                 string          `db:"email"`
	PhoneNumber           string          `db:"phone_number"`
	Role                  string          `db:"role"`
	IsStaff               bool            `db:"is_staff"`
	Latitude              sql.NullFloat64 `db:"latitude"`
	Longitude             sql.NullFloat64 `db:"longitude"`
	PreferredLanguage     string          `db:"preferred_language"`
	NotificationEnabled   bool            `db:"notification_enabled"`
	EmailNotifications    bool            `db:"email_notifications"`
	WhatsappNotifications bool            `db:"whatsapp_notifications"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}

var userColumns = []string{
	"id", "username", "email", "phone_number", "role", "is_staff",
	"latitude", "longitude", "preferred_language",
	"notification_enabled", "email_notifications", "whatsapp_notifications",
	"created_at", "updated_at",
}

type State struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Code string `db:"code"`
}

type City struct {
	ID      int64  `db:"id"`
	StateID int64  `db:"state_id"`
	Name    string `db:"name"`
	IsUrban bool   `db:"is_urban"`
}

type Area struct {
	ID        int64           `db:"id"`
	CityID    int64           `db:"city_id"`
	Name      string          `db:"name"`
	Pincode   string          `db:"pincode"`
	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`
}

type Address struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Type          string          `db:"address_type"`
	StateID       sql.NullInt64   `db:"state_id"`
	CityID        sql.NullInt64   `db:"city_id"`
	AreaID        sql.NullInt64   `db:"area_id"`
	StreetAddress string          `db:"street_address"`
	Landmark      sql.NullString  `db:"landmark"`
	Pincode       sql.NullString  `db:"pincode"`
	IsPrimary     bool            `db:"is_primary"`
	Latitude      sql.NullFloat64 `db:"latitude"`
	Longitude     sql.NullFloat64 `db:"longitude"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

var addressColumns = []string{
	"id", "user_id", "address_type", "state_id", "city_id", "area_id", "street_address",
	"landmark", "pincode", "is_primary", "latitude", "longitude", "created_at", "updated_at",
}

type Category struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
}

type Product struct {
	ID            uuid.UUID           `db:"id"`
	CategoryID    sql.NullInt64       `db:"category_id"`
	Name          string              `db:"name"`
	Description   sql.NullString      `db:"description"`
	Price         decimal.Decimal     `db:"price"`
	DiscountPrice decimal.NullDecimal `db:"discount_price"`
	WeightGrams   int                 `db:"weight_grams"`
	Availability  string              `db:"availability"`
	IsFeatured    bool                `db:"is_featured"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
}

var productColumns = []string{
	"id", "category_id", "name", "description", "price", "discount_price",
	"weight_grams", "availability", "is_featured", "created_at", "updated_at",
}

type Order struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

var orderColumns = []string{
	"id", "user_id", "total_amount", "status", "payment_method", "created_at", "updated_at",
}

type OrderLine struct {
	ID        uuid.UUID       `db:"id"`
	OrderID   uuid.UUID       `db:"order_id"`
	Position  int             `db:"position"`
	ProductID uuid.UUID       `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

var orderLineColumns = []string{"id", "order_id", "position", "product_id", "quantity", "price"}

type DeliveryAssignment struct {
	ID                    uuid.UUID      `db:"id"`
	OrderID               uuid.UUID      `db:"order_id"`
	AgentID               uuid.NullUUID  `db:"agent_id"`
	Status                string         `db:"status"`
	EstimatedDeliveryTime sql.NullTime   `db:"estimated_delivery_time"`
	ActualDeliveryTime    sql.NullTime   `db:"actual_delivery_time"`
	Notes                 sql.NullString `db:"delivery_notes"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
}

var assignmentColumns = []string{
	"id", "order_id", "agent_id", "status", "estimated_delivery_time",
	"actual_delivery_time", "delivery_notes", "created_at", "updated_at",
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:                    u.ID,
		Username:              u.Username,
		Email:                 u.Email,
		PhoneNumber:           u.PhoneNumber,
		Role:                  entities.Role(u.Role),
		IsStaff:               u.IsStaff,
		Latitude:              nullFloat64ToPtr(u.Latitude),
		Longitude:             nullFloat64ToPtr(u.Longitude),
		PreferredLanguage:     entities.Language(u.PreferredLanguage),
		NotificationEnabled:   u.NotificationEnabled,
		EmailNotifications:    u.EmailNotifications,
		WhatsappNotifications: u.WhatsappNotifications,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func StateToEntity(s State) entities.State {
	return entities.State{ID: s.ID, Name: s.Name, Code: s.Code}
}

func CityToEntity(c City) entities.City {
	return entities.City{ID: c.ID, StateID: c.StateID, Name: c.Name, IsUrban: c.IsUrban}
}

func AreaToEntity(a Area) entities.Area {
	return entities.Area{
		ID:        a.ID,
		CityID:    a.CityID,
		Name:      a.Name,
		Pincode:   a.Pincode,
		Latitude:  nullFloat64ToPtr(a.Latitude),
		Longitude: nullFloat64ToPtr(a.Longitude),
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:            a.ID,
		UserID:        a.UserID,
		Type:          entities.AddressType(a.Type),
		StateID:       nullInt64ToPtr(a.StateID),
		CityID:        nullInt64ToPtr(a.CityID),
		AreaID:        nullInt64ToPtr(a.AreaID),
		StreetAddress: a.StreetAddress,
		Landmark:      nullStringToString(a.Landmark),
		Pincode:       nullStringToString(a.Pincode),
		IsPrimary:     a.IsPrimary,
		Latitude:      nullFloat64ToPtr(a.Latitude),
		Longitude:     nullFloat64ToPtr(a.Longitude),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func CategoryToEntity(c Category) entities.Category {
	return entities.Category{ID: c.ID, Name: c.Name, Description: nullStringToString(c.Description)}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:            p.ID,
		CategoryID:    nullInt64ToPtr(p.CategoryID),
		Name:          p.Name,
		Description:   nullStringToString(p.Description),
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		WeightGrams:   p.WeightGrams,
		Availability:  entities.Availability(p.Availability),
		IsFeatured:    p.IsFeatured,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		UserID:        o.UserID,
		TotalAmount:   o.TotalAmount,
		Status:        entities.OrderStatus(o.Status),
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Lines:         make([]entities.OrderLine, 0, len(lines)),
	}
	for _, l := range lines {
		order.Lines = append(order.Lines, entities.OrderLine{
			ID:        l.ID,
			OrderID:   l.OrderID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}
	return order
}

func AssignmentToEntity(a DeliveryAssignment) entities.DeliveryAssignment {
	res := entities.DeliveryAssignment{
		ID:                    a.ID,
		OrderID:               a.OrderID,
		Status:                entities.DeliveryStatus(a.Status),
		EstimatedDeliveryTime: nullTimeToPtr(a.EstimatedDeliveryTime),
		ActualDeliveryTime:    nullTimeToPtr(a.ActualDeliveryTime),
		Notes:                 nullStringToString(a.Notes),
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
	if a.AgentID.Valid {
		id := a.AgentID.UUID
		res.AgentID = &id
	}
	return res
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt64ToPtr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

func nullFloat64ToPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	v := nf.Float64
	return &v
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	v := nt.Time
	return &v
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
