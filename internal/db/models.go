package db

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string    `gorm:"size:255" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Company struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Industry    string    `gorm:"size:255" json:"industry,omitempty"`
	Website     string    `gorm:"size:255" json:"website,omitempty"`
	Phone       string    `gorm:"size:64" json:"phone,omitempty"`
	Email       string    `gorm:"size:255" json:"email,omitempty"`
	Address     string    `gorm:"size:512" json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Phone     string    `gorm:"size:64" json:"phone,omitempty"`
	Position  string    `gorm:"size:255" json:"position,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CompanyID *uint     `gorm:"index" json:"companyId,omitempty"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Deal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `json:"description,omitempty"`
	Value       float64   `json:"value"`
	Stage       string    `gorm:"size:64;not null;default:lead" json:"stage"`
	CompanyID   *uint     `gorm:"index" json:"companyId,omitempty"`
	Company     *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Contacts    []Contact `gorm:"many2many:deal_contacts" json:"contacts,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Claims is the token payload: identity fields plus the registered claim set
// (sub, iat, exp, jti). It exists only inside the signed token string.
type Claims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}
