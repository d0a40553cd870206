package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePayload() map[string]any {
	return map[string]any{
		"firstName": "Alice",
		"lastName":  "Smith",
		"gender":    "female",
		"phoneNo":   "5551234567",
		"email":     "alice@example.com",
		"password":  "password1",
		"dob":       "1990-01-01",
		"address": []map[string]any{
			{
				"street":     "1 Main St",
				"city":       "Springfield",
				"state":      "IL",
				"postalCode": "62701",
				"country":    "USA",
			},
		},
	}
}

func marshal(t *testing.T, payload any) []byte {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return body
}

func TestCheckCreateUserValid(t *testing.T) {
	verr := CheckCreateUser(marshal(t, validCreatePayload()))
	assert.Nil(t, verr)
}

func TestCheckCreateUserPasswordBoundaries(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"1234567", false},
		{"12345678", true},
		{"1234567890", true},
		{"12345678901", false},
	}

	for _, tt := range tests {
		payload := validCreatePayload()
		payload["password"] = tt.password
		verr := CheckCreateUser(marshal(t, payload))
		if tt.valid {
			assert.Nilf(t, verr, "password of length %d should pass", len(tt.password))
		} else {
			require.NotNilf(t, verr, "password of length %d should fail", len(tt.password))
			assert.Equal(t, 400, verr.StatusCode)
			assert.Contains(t, verr.Message, "password")
		}
	}
}

func TestCheckCreateUserMissingFields(t *testing.T) {
	for _, field := range []string{
		"firstName", "lastName", "gender", "phoneNo", "email", "password", "dob", "address",
	} {
		payload := validCreatePayload()
		delete(payload, field)
		verr := CheckCreateUser(marshal(t, payload))
		require.NotNilf(t, verr, "missing %s should fail", field)
		assert.Contains(t, verr.Message, field)
	}
}

func TestCheckCreateUserIncompleteAddress(t *testing.T) {
	for _, field := range []string{"street", "city", "state", "postalCode", "country"} {
		payload := validCreatePayload()
		address := payload["address"].([]map[string]any)[0]
		delete(address, field)
		verr := CheckCreateUser(marshal(t, payload))
		require.NotNilf(t, verr, "address missing %s should fail", field)
		assert.Contains(t, verr.Message, field)
	}
}

func TestCheckCreateUserEmptyAddressList(t *testing.T) {
	payload := validCreatePayload()
	payload["address"] = []map[string]any{}
	verr := CheckCreateUser(marshal(t, payload))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "address")
}

func TestCheckCreateUserNumericPhoneRejected(t *testing.T) {
	payload := validCreatePayload()
	payload["phoneNo"] = 5551234567
	verr := CheckCreateUser(marshal(t, payload))
	require.NotNil(t, verr)
	assert.Equal(t, "invalid request body", verr.Message)
}

func TestCheckCreateUserBadEmail(t *testing.T) {
	payload := validCreatePayload()
	payload["email"] = "not-an-email"
	verr := CheckCreateUser(marshal(t, payload))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "email")
}

func TestCheckLogin(t *testing.T) {
	verr := CheckLogin(marshal(t, map[string]any{
		"email":    "alice@example.com",
		"password": "password1",
	}))
	assert.Nil(t, verr)

	verr = CheckLogin(marshal(t, map[string]any{"email": "alice@example.com"}))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "password")
}

func TestCheckSession(t *testing.T) {
	verr := CheckSession(marshal(t, map[string]any{"id": 1, "token": "abc"}))
	assert.Nil(t, verr)

	verr = CheckSession(marshal(t, map[string]any{"token": "abc"}))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "id")

	verr = CheckSession(marshal(t, map[string]any{"id": 1}))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "token")

	// id must be numeric
	verr = CheckSession(marshal(t, map[string]any{"id": "1", "token": "abc"}))
	require.NotNil(t, verr)
	assert.Equal(t, "invalid request body", verr.Message)
}

func TestCheckUpdateUser(t *testing.T) {
	verr := CheckUpdateUser(marshal(t, map[string]any{"id": 1}))
	assert.Nil(t, verr, "id alone is a valid update")

	verr = CheckUpdateUser(marshal(t, map[string]any{"id": 1, "firstName": "Bo"}))
	require.NotNil(t, verr, "optional fields keep their constraints")
	assert.Contains(t, verr.Message, "firstName")

	verr = CheckUpdateUser(marshal(t, map[string]any{"firstName": "Alice"}))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "id")
}

func TestCheckDeleteUser(t *testing.T) {
	verr := CheckDeleteUser(marshal(t, map[string]any{"id": 7}))
	assert.Nil(t, verr)

	verr = CheckDeleteUser(marshal(t, map[string]any{}))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "id")
}

func TestCheckRejectsUnknownFields(t *testing.T) {
	// password is not part of the update schema.
	verr := CheckUpdateUser(marshal(t, map[string]any{
		"id": 1, "password": "newpass12",
	}))
	require.NotNil(t, verr)
	assert.Equal(t, 400, verr.StatusCode)
	assert.Contains(t, verr.Message, "password")
	assert.Contains(t, verr.Message, "not allowed")

	payload := validCreatePayload()
	payload["role"] = "admin"
	verr = CheckCreateUser(marshal(t, payload))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "role")
}

func TestCheckRejectsGarbage(t *testing.T) {
	verr := CheckCreateUser([]byte("not json"))
	require.NotNil(t, verr)
	assert.Equal(t, 400, verr.StatusCode)
}
