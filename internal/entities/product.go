package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Availability string

const (
	InStock    Availability = "in_stock"
	Limited    Availability = "limited"
	OutOfStock Availability = "out_of_stock"
)

func (a Availability) Valid() bool {
	switch a {
	case InStock, Limited, OutOfStock:
		return true
	}
	return false
}

// MaxAmount is the largest money value that fits a NUMERIC(10,2) column.
var MaxAmount = decimal.RequireFromString("99999999.99")

// CheckAmount rejects money values with more than two decimal places or above MaxAmount.
func CheckAmount(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(2)) {
		return NewInvalidArgumentError(field, "must have at most 2 decimal places")
	}
	if d.GreaterThan(MaxAmount) {
		return NewInvalidArgumentError(field, fmt.Sprintf("must not exceed %s", MaxAmount.StringFixed(2)))
	}
	return nil
}

type Category struct {
	ID          int64
	Name        string
	Description string
}

type Product struct {
	ID            uuid.UUID
	CategoryID    *int64
	Name          string
	Description   string
	Price         decimal.Decimal
	DiscountPrice decimal.NullDecimal
	WeightGrams   int
	Availability  Availability
	IsFeatured    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePrice is the discount price when one is set, otherwise the unit price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice.Valid {
		return p.DiscountPrice.Decimal
	}
	return p.Price
}

// Validate checks pricing and availability of a product before it is stored.
func (p Product) Validate() error {
	if p.Name == "" {
		return NewInvalidArgumentError("name", "must not be empty")
	}
	if !p.Price.IsPositive() {
		return NewInvalidArgumentError("price", "must be greater than zero")
	}
	if err := CheckAmount("price", p.Price); err != nil {
		return err
	}
	if p.DiscountPrice.Valid {
		if !p.DiscountPrice.Decimal.IsPositive() {
			return NewInvalidArgumentError("discount_price", "must be greater than zero")
		}
		if err := CheckAmount("discount_price", p.DiscountPrice.Decimal); err != nil {
			return err
		}
		if !p.DiscountPrice.Decimal.LessThan(p.Price) {
			return NewInvalidArgumentError("discount_price", "must be less than price")
		}
	}
	if !p.Availability.Valid() {
		return NewInvalidArgumentError("availability", "unknown value "+string(p.Availability))
	}
	if p.WeightGrams < 0 {
		return NewInvalidArgumentError("weight", "must not be negative")
	}
	return nil
}

// ProductPatch holds the fields of a product that may be changed. Nil fields
// are left untouched.
type ProductPatch struct {
	CategoryID    *int64
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	DiscountPrice *decimal.NullDecimal
	WeightGrams   *int
	Availability  *Availability
	IsFeatured    *bool
}

func (p *Product) Apply(patch ProductPatch, at time.Time) error {
	next := *p
	if patch.CategoryID != nil {
		next.CategoryID = patch.CategoryID
	}
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Price != nil {
		next.Price = *patch.Price
	}
	if patch.DiscountPrice != nil {
		next.DiscountPrice = *patch.DiscountPrice
	}
	if patch.WeightGrams != nil {
		next.WeightGrams = *patch.WeightGrams
	}
	if patch.Availability != nil {
		next.Availability = *patch.Availability
	}
	if patch.IsFeatured != nil {
		next.IsFeatured = *patch.IsFeatured
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.UpdatedAt = at
	*p = next
	return nil
}

type ProductOrdering string

const (
	OrderByPriceAsc      ProductOrdering = "price"
	OrderByPriceDesc     ProductOrdering = "-price"
	OrderByCreatedAtAsc  ProductOrdering = "created_at"
	OrderByCreatedAtDesc ProductOrdering = "-created_at"
)

func (o ProductOrdering) Valid() bool {
	switch o {
	case OrderByPriceAsc, OrderByPriceDesc, OrderByCreatedAtAsc, OrderByCreatedAtDesc:
		return true
	}
	return false
}

type ProductFilter struct {
	CategoryID   *int64
	Availability *Availability
	IsFeatured   *bool
	Search       string
	Ordering     ProductOrdering
	Limit        uint64
	Offset       uint64
}
