package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"saarthi-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSafetyHandler_Safety(t *testing.T) {
	gin.SetMode(gin.TestMode)

	factors := models.SafetyFactors{
		Lighting: 90, PopulationDensity: 90, PoliceStations: 3, Hospitals: 1,
		RoadType: 80, TrafficIncidents: 2, AreaSafety: 100,
	}

	tests := []struct {
		name           string
		rawQuery       string
		lat            float64
		lon            float64
		callsService   bool
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameters",
			rawQuery:       "lat=19.05",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameters 'lat' and 'lon'"},
		},
		{
			name:           "invalid latitude",
			rawQuery:       "lat=north&lon=72.8",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid latitude format"},
		},
		{
			name:           "invalid longitude",
			rawQuery:       "lat=19.05&lon=east",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid longitude format"},
		},
		{
			name:           "out of range coordinate",
			rawQuery:       "lat=95&lon=72.8",
			lat:            95,
			lon:            72.8,
			callsService:   true,
			mockError:      fmt.Errorf("service: invalid latitude: 95.000000: %w", models.ErrInvalidInput),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "service: invalid latitude: 95.000000: invalid input"},
		},
		{
			name:           "successful collection",
			rawQuery:       "lat=19.0596&lon=72.8295",
			lat:            19.0596,
			lon:            72.8295,
			callsService:   true,
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"lighting":           float64(90),
				"population_density": float64(90),
				"police_stations":    float64(3),
				"hospitals":          float64(1),
				"road_type":          float64(80),
				"traffic_incidents":  float64(2),
				"area_safety":        float64(100),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockPointSafetyService)
			handler := NewSafetyHandler(mockSvc)

			if tt.callsService {
				mockSvc.On("Factors", mock.Anything, tt.lat, tt.lon).Return(factors, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/safety?"+tt.rawQuery, nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Safety(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}
