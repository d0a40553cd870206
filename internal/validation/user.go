package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"userbase/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures under the json field names the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Error is the body-level shape returned for a rejected request. The
// statusCode field is part of the response body contract, not just the
// transport status.
type Error struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// CreateUserRequest is the schema for user registration. All fields are
// mandatory.
type CreateUserRequest struct {
	FirstName string           `json:"firstName" validate:"required,min=3,max=12"`
	LastName  string           `json:"lastName" validate:"required,min=1,max=12"`
	Gender    string           `json:"gender" validate:"required,min=3,max=12"`
	PhoneNo   string           `json:"phoneNo" validate:"required,min=3,max=12"`
	Email     string           `json:"email" validate:"required,email,min=6,max=30"`
	Password  string           `json:"password" validate:"required,min=8,max=10"`
	DOB       string           `json:"dob" validate:"required,max=80"`
	Address   []models.Address `json:"address" validate:"required,min=1,dive"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,min=6,max=30"`
	Password string `json:"password" validate:"required,min=8,max=10"`
}

// SessionRequest is shared by logout and token refresh: a numeric user id
// plus the currently held refresh token.
type SessionRequest struct {
	ID    *int64 `json:"id" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// UpdateUserRequest requires the id; every other field is optional but,
// when present, constrained exactly like on creation.
type UpdateUserRequest struct {
	ID        *int64            `json:"id" validate:"required"`
	FirstName *string           `json:"firstName" validate:"omitempty,min=3,max=12"`
	LastName  *string           `json:"lastName" validate:"omitempty,min=1,max=12"`
	Gender    *string           `json:"gender" validate:"omitempty,min=3,max=12"`
	PhoneNo   *string           `json:"phoneNo" validate:"omitempty,min=3,max=12"`
	Email     *string           `json:"email" validate:"omitempty,email,min=6,max=30"`
	DOB       *string           `json:"dob" validate:"omitempty,max=80"`
	Address   *[]models.Address `json:"address" validate:"omitempty,min=1,dive"`
}

type DeleteUserRequest struct {
	ID *int64 `json:"id" validate:"required"`
}

// CheckCreateUser validates a registration body.
func CheckCreateUser(body []byte) *Error {
	var req CreateUserRequest
	return checkInto(body, &req)
}

// CheckLogin validates a login body.
func CheckLogin(body []byte) *Error {
	var req LoginRequest
	return checkInto(body, &req)
}

// CheckSession validates a logout or refresh body.
func CheckSession(body []byte) *Error {
	var req SessionRequest
	return checkInto(body, &req)
}

// CheckUpdateUser validates a partial update body.
func CheckUpdateUser(body []byte) *Error {
	var req UpdateUserRequest
	return checkInto(body, &req)
}

// CheckDeleteUser validates a delete body.
func CheckDeleteUser(body []byte) *Error {
	var req DeleteUserRequest
	return checkInto(body, &req)
}

func checkInto(body []byte, target any) *Error {
	dec := json.NewDecoder(bytes.NewReader(body))
	// Keys outside the schema are rejected, not silently dropped.
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return &Error{StatusCode: http.StatusBadRequest, Message: name + " is not allowed"}
		}
		return &Error{StatusCode: http.StatusBadRequest, Message: "invalid request body"}
	}
	if err := validate.Struct(target); err != nil {
		return &Error{StatusCode: http.StatusBadRequest, Message: firstMessage(err)}
	}
	return nil
}

// firstMessage renders the first validation failure as a human-readable
// message.
func firstMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "invalid request body"
	}

	fe := fieldErrors[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "min":
		if field == "address" {
			return fmt.Sprintf("%q must contain at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
