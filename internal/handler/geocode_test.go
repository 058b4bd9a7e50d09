package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"saarthi-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGeoCodeHandler_GeoCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		mockLocation   models.Location
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameter 'q'"},
		},
		{
			name:  "successful geocoding",
			query: "Bandra West",
			mockLocation: models.Location{
				Latitude:  19.0596,
				Longitude: 72.8295,
				Address:   "Bandra West, Mumbai, Maharashtra",
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"latitude":  19.0596,
				"longitude": 72.8295,
				"address":   "Bandra West, Mumbai, Maharashtra",
			},
		},
		{
			name:           "no results",
			query:          "nonexistent address",
			mockError:      models.ErrNoResults,
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "no results found, try a more specific address"},
		},
		{
			name:           "service error",
			query:          "Dadar",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockGeoCodeService)
			handler := NewGeoCodeHandler(mockSvc)

			if tt.query != "" {
				mockSvc.On("Geocode", mock.Anything, tt.query).Return(tt.mockLocation, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/geocode", nil)
			if tt.query != "" {
				q := req.URL.Query()
				q.Add("q", tt.query)
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.GeoCode(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}
