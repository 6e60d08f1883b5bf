package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/condo/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type registerRequest struct {
		Email  string `json:"email" binding:"required,email"`
		Number int    `json:"number" binding:"required,min=1"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("returns validation errors for invalid input", func(t *testing.T) {
		body := strings.NewReader(`{"email": "invalid", "number": 0}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		assert.Len(t, resp.Error.Details, 2)
	})

	t.Run("uses json tag names in details", func(t *testing.T) {
		body := strings.NewReader(`{"email": "invalid", "number": 5}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "email", resp.Error.Details[0].Field)
		assert.Equal(t, "Invalid email format", resp.Error.Details[0].Message)
	})

	t.Run("returns success for valid input", func(t *testing.T) {
		body := strings.NewReader(`{"email": "owner@example.com", "number": 12}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type input struct {
		Required string `validate:"required"`
		Email    string `validate:"omitempty,email"`
		Min      string `validate:"omitempty,min=5"`
		OneOf    string `validate:"omitempty,oneof=PERMANENT TEMPORARY"`
	}

	v := validator.New()

	tests := []struct {
		name     string
		obj      input
		field    string
		expected string
	}{
		{"required", input{}, "Required", "This field is required"},
		{"email", input{Required: "x", Email: "bad"}, "Email", "Invalid email format"},
		{"min", input{Required: "x", Min: "ab"}, "Min", "Must be at least 5 characters"},
		{"oneof", input{Required: "x", OneOf: "FOREVER"}, "OneOf", "Must be one of: PERMANENT TEMPORARY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.obj)
			require.Error(t, err)
			validationErrs := err.(validator.ValidationErrors)
			for _, e := range validationErrs {
				if e.Field() == tt.field {
					assert.Equal(t, tt.expected, getValidationMessage(e))
					return
				}
			}
			t.Fatalf("no validation error for field %s", tt.field)
		})
	}
}

func TestHandleValidationError_IncludesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type input struct {
		Name string `json:"name" binding:"required"`
	}

	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var in input
		if err := c.ShouldBindJSON(&in); err != nil {
			HandleValidationError(c, err)
			return
		}
	})

	req := httptest.NewRequest("POST", "/test", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "req-42", resp.Error.RequestID)
}
