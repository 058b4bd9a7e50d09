package service

import (
	"context"
	"testing"

	"saarthi-api/internal/models"
	"saarthi-api/internal/safety"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "Safest"},
		{1, "Balanced"},
		{2, "Fastest"},
		{3, "Alternative 4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RouteLabel(tt.index))
	}
}

func TestSafetyLabel(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "Very Safe"},
		{80, "Very Safe"},
		{79, "Moderately Safe"},
		{60, "Moderately Safe"},
		{59, "Use Caution"},
		{0, "Use Caution"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SafetyLabel(tt.score), "score %d", tt.score)
	}
}

func TestSafetyDescription(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "Very Safe Route"},
		{85, "Very Safe Route"},
		{84, "Safe Route"},
		{70, "Safe Route"},
		{69, "Moderately Safe"},
		{55, "Moderately Safe"},
		{54, "Use Caution"},
		{0, "Use Caution"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SafetyDescription(tt.score), "score %d", tt.score)
	}
}

func TestAdvantages(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		index    int
		expected []string
	}{
		{
			name:  "high score first route",
			score: 80, index: 0,
			expected: []string{
				"Well-lit areas throughout", "Frequent police patrols", "Good CCTV coverage",
				"Most popular route", "Well-maintained roads",
				"Adequate street lighting", "Busy main roads",
			},
		},
		{
			name:  "just below patrol threshold",
			score: 79, index: 1,
			expected: []string{"Adequate street lighting", "Busy main roads"},
		},
		{
			name:  "low score first route",
			score: 50, index: 0,
			expected: []string{"Most popular route", "Well-maintained roads"},
		},
		{
			name:  "nothing applies",
			score: 69, index: 2,
			expected: []string{"Direct route available"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Advantages(tt.score, tt.index))
		})
	}
}

func TestDisadvantages(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		index    int
		expected []string
	}{
		{
			name:  "low score third route",
			score: 59, index: 2,
			expected: []string{
				"Some poorly lit areas", "Less crowded streets",
				"May pass through isolated areas",
				"Limited surveillance in some sections",
			},
		},
		{
			name:  "at lighting threshold",
			score: 60, index: 1,
			expected: []string{"Limited surveillance in some sections"},
		},
		{
			name:  "safe third route",
			score: 70, index: 2,
			expected: []string{"May pass through isolated areas"},
		},
		{
			name:  "safe first route",
			score: 70, index: 0,
			expected: []string{"Standard route precautions apply"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Disadvantages(tt.score, tt.index))
		})
	}
}

func TestEncodePolyline(t *testing.T) {
	coords := []models.Location{
		{Latitude: 38.5, Longitude: -120.2},
		{Latitude: 40.7, Longitude: -120.95},
		{Latitude: 43.252, Longitude: -126.453},
	}

	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", EncodePolyline(coords))
	assert.Equal(t, "", EncodePolyline(nil))
}

func TestNewRouteOption(t *testing.T) {
	sr := models.ScoredRoute{
		Route:  straightRoute(3, 5000, 900),
		Safety: models.RouteSafetyScore{OverallScore: 72, DataSources: safety.DataSources()},
	}

	option := NewRouteOption(1, sr)

	assert.Equal(t, "route-1", option.ID)
	assert.Equal(t, "Balanced", option.Label)
	assert.Equal(t, "Balanced Route", option.Description)
	assert.Equal(t, "Moderately Safe", option.SafetyLabel)
	assert.Equal(t, "Safe Route", option.SafetyDescription)
	assert.Equal(t, []string{"Adequate street lighting", "Busy main roads"}, option.Advantages)
	assert.Equal(t, []string{"Standard route precautions apply"}, option.Disadvantages)
	assert.Equal(t, "5.0 km", option.Distance)
	assert.Equal(t, "15 mins", option.Duration)
	assert.NotEmpty(t, option.EncodedPolyline)
	assert.Equal(t, sr.Route, option.Route)
	assert.Equal(t, sr.Safety, option.Safety)
}

func TestRouteSearchService_SearchRoutes(t *testing.T) {
	scored := []models.ScoredRoute{
		{Route: straightRoute(10, 5000, 900), Safety: models.RouteSafetyScore{OverallScore: 85}},
		{Route: straightRoute(10, 6400, 1290), Safety: models.RouteSafetyScore{OverallScore: 55}},
	}

	tests := []struct {
		name        string
		from        string
		to          string
		startErr    error
		endErr      error
		scoreErr    error
		expectedErr error
		callsEnd    bool
		callsScorer bool
	}{
		{
			name:        "successful search",
			from:        "Bandra",
			to:          "Dadar",
			callsEnd:    true,
			callsScorer: true,
		},
		{
			name:        "start not found",
			from:        "Atlantis",
			to:          "Dadar",
			startErr:    models.ErrNoResults,
			expectedErr: models.ErrNoResults,
		},
		{
			name:        "destination rate limited",
			from:        "Bandra",
			to:          "Dadar",
			endErr:      &models.ProviderError{Op: "tomtom: geocode", StatusCode: 429},
			expectedErr: models.ErrRateLimited,
			callsEnd:    true,
		},
		{
			name:        "routing fails",
			from:        "Bandra",
			to:          "Dadar",
			scoreErr:    &RoutingError{Start: bandra, End: dadar, Err: models.ErrNoResults},
			expectedErr: models.ErrNoResults,
			callsEnd:    true,
			callsScorer: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := new(MockGeocoder)
			scorer := new(MockRouteScorer)
			svc := NewRouteSearchService(geocoder, scorer)

			geocoder.On("Geocode", mock.Anything, tt.from).Return(bandra, tt.startErr)
			if tt.callsEnd {
				geocoder.On("Geocode", mock.Anything, tt.to).Return(dadar, tt.endErr)
			}
			if tt.callsScorer {
				var result []models.ScoredRoute
				if tt.scoreErr == nil {
					result = scored
				}
				scorer.On("CalculateRoutes", mock.Anything, bandra, dadar).Return(result, tt.scoreErr)
			}

			result, err := svc.SearchRoutes(context.Background(), tt.from, tt.to)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, bandra, result.Start)
				assert.Equal(t, dadar, result.End)
				require.Len(t, result.Options, 2)
				assert.Equal(t, "Safest", result.Options[0].Label)
				assert.Equal(t, "Very Safe", result.Options[0].SafetyLabel)
				assert.Equal(t, "Balanced", result.Options[1].Label)
				assert.Equal(t, "6.4 km", result.Options[1].Distance)
				assert.Equal(t, "22 mins", result.Options[1].Duration)
			}

			geocoder.AssertExpectations(t)
			scorer.AssertExpectations(t)
		})
	}
}

func TestRouteSearchService_PlanRoutes_InvalidCoordinates(t *testing.T) {
	scorer := new(MockRouteScorer)
	svc := NewRouteSearchService(new(MockGeocoder), scorer)

	_, err := svc.PlanRoutes(context.Background(), models.Location{Latitude: 91, Longitude: 72.8}, dadar)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.PlanRoutes(context.Background(), bandra, models.Location{Latitude: 19, Longitude: 181})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	scorer.AssertNotCalled(t, "CalculateRoutes", mock.Anything, mock.Anything, mock.Anything)
}
