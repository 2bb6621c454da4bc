package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imagineapp/imagine-server/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john-doe-1","password":"secret-pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john-doe-1", "secret-pass").
					Return("token123", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"token": "token123"},
		},
		{
			name: "username already taken",
			body: `{"username":"alice-dup","password":"secret-pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice-dup", "secret-pass").
					Return("", services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]string{"error": "Username already taken"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob-unlucky","password":"secret-pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob-unlucky", "secret-pass").
					Return("", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{"username": "broken"`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Bad request"},
		},
		{
			name:         "username too short",
			body:         `{"username":"short","password":"secret-pass"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Bad request"},
		},
		{
			name:         "password too short",
			body:         `{"username":"john-doe-1","password":"short"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Bad request"},
		},
		{
			name:         "non printable characters rejected",
			body:         `{"username":"john\tdoex","password":"secret-pass"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Bad request"},
		},
		{
			name:         "username too long",
			body:         `{"username":"` + strings.Repeat("a", 513) + `","password":"secret-pass"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Bad request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
