package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful registration",
			body: map[string]interface{}{
				"username": "alice",
				"password": "Str0ng!pass",
				"role":     "Customer",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "role defaults when omitted",
			body: map[string]interface{}{
				"username": "bob",
				"password": "Str0ng!pass",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid role",
			body: map[string]interface{}{
				"username": "carol",
				"password": "Str0ng!pass",
				"role":     "Superuser",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "username too short",
			body: map[string]interface{}{
				"username": "ab",
				"password": "Str0ng!pass",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "password too short",
			body: map[string]interface{}{
				"username": "dave",
				"password": "S1!a",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "password missing uppercase",
			body: map[string]interface{}{
				"username": "dave",
				"password": "weak!pass1",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "password missing digit",
			body: map[string]interface{}{
				"username": "dave",
				"password": "Weak!passwd",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "password missing special character",
			body: map[string]interface{}{
				"username": "dave",
				"password": "Weakpass1",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newControllerFixture(t)

			w := f.do(t, http.MethodPost, "/api/v1/users/register", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, "body: %s", w.Body.String())
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorCode(t, w))
			} else {
				data := dataField(t, w)
				assert.Equal(t, tt.body["username"], data["username"])
				assert.NotZero(t, data["id"])
			}
		})
	}
}

func TestRegisterDuplicateUsernameEndpoint(t *testing.T) {
	f := newControllerFixture(t)
	body := map[string]interface{}{
		"username": "alice",
		"password": "Str0ng!pass",
	}

	w := f.do(t, http.MethodPost, "/api/v1/users/register", body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/users/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User.Exists", errorCode(t, w))
}

func TestLoginEndpoint(t *testing.T) {
	f := newControllerFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/users/register", map[string]interface{}{
		"username": "alice",
		"password": "Str0ng!pass",
		"role":     "Admin",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	registeredID := dataField(t, w)["id"].(float64)

	w = f.do(t, http.MethodPost, "/api/v1/users/login", map[string]interface{}{
		"username": "alice",
		"password": "Str0ng!pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "controller-test-token", data["token"])
	assert.Equal(t, "Admin", data["role"])
	assert.Equal(t, registeredID, data["user_id"])
}

func TestLoginFailuresShareOneError(t *testing.T) {
	f := newControllerFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/users/register", map[string]interface{}{
		"username": "alice",
		"password": "Str0ng!pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	wrongPassword := f.do(t, http.MethodPost, "/api/v1/users/login", map[string]interface{}{
		"username": "alice",
		"password": "not-the-password",
	})
	unknownUser := f.do(t, http.MethodPost, "/api/v1/users/login", map[string]interface{}{
		"username": "mallory",
		"password": "Str0ng!pass",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownUser.Code)
	assert.Equal(t, "Auth.Invalid", errorCode(t, wrongPassword))
	assert.Equal(t, "Auth.Invalid", errorCode(t, unknownUser))
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}
