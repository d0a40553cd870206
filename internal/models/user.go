package models

import (
	"time"
)

// Address represents a single address entry for a user.
type Address struct {
	Street     string `bson:"street" json:"street" validate:"required"`
	City       string `bson:"city" json:"city" validate:"required"`
	State      string `bson:"state" json:"state" validate:"required"`
	PostalCode string `bson:"postalCode" json:"postalCode" validate:"required"`
	Country    string `bson:"country" json:"country" validate:"required"`
}

// User represents the application user account. IDs are numeric and
// allocated by the store from a counter sequence.
type User struct {
	ID           int64     `bson:"_id,omitempty" json:"id"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Gender       string    `bson:"gender" json:"gender"`
	PhoneNo      string    `bson:"phoneNo" json:"phoneNo"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"password" json:"-"`
	DOB          string    `bson:"dob" json:"dob"`
	Address      []Address `bson:"address" json:"address"`
	IsLogin      bool      `bson:"isLogin" json:"isLogin"`
	RefreshToken string    `bson:"refreshToken" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TokenPair is the access/refresh token pair issued on login and refresh.
// It is handed to the client and never persisted beyond the refreshToken
// mirror on the user document.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
