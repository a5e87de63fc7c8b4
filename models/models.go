package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// StringSlice stores an ordered list of strings in a PostgreSQL jsonb column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, s)
}

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Core Models ---

// User represents a registered account. The password hash is never serialized.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Basic is the site configuration document: branding images, navbar items,
// four display counters and the landing copy.
type Basic struct {
	ID          string      `json:"id"`
	Logo        *string     `json:"logo,omitempty"`
	HeroImage   *string     `json:"heroImage,omitempty"`
	Navbar      StringSlice `json:"navbar"`
	CountTitle1 *string     `json:"count_title1,omitempty"`
	CountValue1 *string     `json:"count_value1,omitempty"`
	CountTitle2 *string     `json:"count_title2,omitempty"`
	CountValue2 *string     `json:"count_value2,omitempty"`
	CountTitle3 *string     `json:"count_title3,omitempty"`
	CountValue3 *string     `json:"count_value3,omitempty"`
	CountTitle4 *string     `json:"count_title4,omitempty"`
	CountValue4 *string     `json:"count_value4,omitempty"`
	Headline    *string     `json:"headline,omitempty"`
	Desc        *string     `json:"desc,omitempty"`
}

// BasicInput carries the full field set written by a create or update. Image
// paths left nil clear the stored columns: writes are full replaces, never
// partial patches.
type BasicInput struct {
	Logo        *string
	HeroImage   *string
	Navbar      StringSlice
	CountTitle1 *string
	CountValue1 *string
	CountTitle2 *string
	CountValue2 *string
	CountTitle3 *string
	CountValue3 *string
	CountTitle4 *string
	CountValue4 *string
	Headline    *string
	Desc        *string
}
