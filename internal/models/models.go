package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Deal struct {
	ID              int64           `json:"id"`
	Store           string          `json:"store"`
	Category        string          `json:"category"`
	Offer           string          `json:"offer"`
	Description     string          `json:"description"`
	Address         string          `json:"address"`
	Lat             float64         `json:"lat"`
	Lng             float64         `json:"lng"`
	Validity        string          `json:"validity"`
	FullDescription string          `json:"fullDescription"`
	Badge           string          `json:"badge,omitempty"`
	Savings         string          `json:"savings"`
	Popularity      float64         `json:"popularity"`
	Rating          float64         `json:"rating"`
	PeopleViewed    int             `json:"peopleViewed"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Stock           int             `json:"stock"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

// DealFields is the writable subset of a Deal. Nil fields are left untouched
// when merged into an existing record.
type DealFields struct {
	Store           *string          `json:"store"`
	Category        *string          `json:"category"`
	Offer           *string          `json:"offer"`
	Description     *string          `json:"description"`
	Address         *string          `json:"address"`
	Lat             *float64         `json:"lat"`
	Lng             *float64         `json:"lng"`
	Validity        *string          `json:"validity"`
	FullDescription *string          `json:"fullDescription"`
	Badge           *string          `json:"badge"`
	Savings         *string          `json:"savings"`
	Popularity      *float64         `json:"popularity"`
	Rating          *float64         `json:"rating"`
	BasePrice       *decimal.Decimal `json:"basePrice"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	Stock           *int             `json:"stock"`
}

func (f DealFields) ApplyTo(d *Deal) {
	if f.Store != nil {
		d.Store = *f.Store
	}
	if f.Category != nil {
		d.Category = *f.Category
	}
	if f.Offer != nil {
		d.Offer = *f.Offer
	}
	if f.Description != nil {
		d.Description = *f.Description
	}
	if f.Address != nil {
		d.Address = *f.Address
	}
	if f.Lat != nil {
		d.Lat = *f.Lat
	}
	if f.Lng != nil {
		d.Lng = *f.Lng
	}
	if f.Validity != nil {
		d.Validity = *f.Validity
	}
	if f.FullDescription != nil {
		d.FullDescription = *f.FullDescription
	}
	if f.Badge != nil {
		d.Badge = *f.Badge
	}
	if f.Savings != nil {
		d.Savings = *f.Savings
	}
	if f.Popularity != nil {
		d.Popularity = *f.Popularity
	}
	if f.Rating != nil {
		d.Rating = *f.Rating
	}
	if f.BasePrice != nil {
		d.BasePrice = *f.BasePrice
	}
	if f.DiscountPercent != nil {
		d.DiscountPercent = *f.DiscountPercent
	}
	if f.Stock != nil {
		d.Stock = *f.Stock
	}
}

func (d *Deal) Clone() *Deal {
	c := *d
	if d.UpdatedAt != nil {
		t := *d.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordSalt string    `json:"-"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	Favorites    []int64   `json:"favorites"`
	Orders       []string  `json:"orders"`
}

func (u *User) Clone() *User {
	c := *u
	c.Favorites = append(make([]int64, 0, len(u.Favorites)), u.Favorites...)
	c.Orders = append(make([]string, 0, len(u.Orders)), u.Orders...)
	return &c
}

// PublicUser is what a client may see of any account, including its own.
type PublicUser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Avatar: u.Avatar,
	}
}

type Profile struct {
	PublicUser
	Favorites   []int64   `json:"favorites"`
	OrderCount  int       `json:"orderCount"`
	MemberSince time.Time `json:"memberSince"`
}

func (u *User) Profile() Profile {
	favorites := u.Favorites
	if favorites == nil {
		favorites = []int64{}
	}
	return Profile{
		PublicUser:  u.Public(),
		Favorites:   favorites,
		OrderCount:  len(u.Orders),
		MemberSince: u.CreatedAt,
	}
}

type Session struct {
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          int64           `json:"userId"`
	DealID          int64           `json:"dealId"`
	Deal            string          `json:"deal"`
	Store           string          `json:"store"`
	Category        string          `json:"category"`
	Quantity        int             `json:"quantity"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	Savings         decimal.Decimal `json:"savings"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	ScheduledDate   string          `json:"scheduledDate"`
	ScheduledTime   string          `json:"scheduledTime"`
	SpecialRequests string          `json:"specialRequests"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	PaymentID       string          `json:"paymentId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	// Seq is the insertion position, used to order orders created within the
	// same clock tick.
	Seq int64 `json:"-"`
}

func (o *Order) Clone() *Order {
	c := *o
	return &c
}

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status change is allowed.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}

type Payment struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"orderId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transactionId"`
	ProcessedAt   time.Time       `json:"processedAt"`
}

const PaymentStatusSuccess = "success"

type Stats struct {
	TotalDeals   int    `json:"totalDeals"`
	TotalOrders  int    `json:"totalOrders"`
	TotalRevenue string `json:"totalRevenue"`
	TotalSavings string `json:"totalSavings"`
	TotalUsers   int    `json:"totalUsers"`
}

type HealthStats struct {
	Deals  int `json:"deals"`
	Users  int `json:"users"`
	Orders int `json:"orders"`
}
