package engine

import (
	"context"

	"github.com/jengzang/traffic-backend-go/internal/models"
	"github.com/jengzang/traffic-backend-go/internal/repository"
)

// Subset tags for the two historical patterns.
const (
	SubsetNormal  = "normal"
	SubsetHoliday = "holiday"
)

// Subset is one tagged batch of readings selected for a request. A subset
// may be empty; downstream components handle that without failing.
type Subset struct {
	Tag      string
	Readings []models.Reading
}

// Matcher selects the historical readings relevant to a prediction
// request. For normal and holiday requests it produces one subset; for
// special events it produces both, to be blended downstream.
type Matcher struct {
	readings *repository.ReadingRepository
}

// NewMatcher creates a new matcher backed by the given reading repository.
func NewMatcher(readings *repository.ReadingRepository) *Matcher {
	return &Matcher{readings: readings}
}

// Match runs the historical-match query (or queries) for the request.
func (m *Matcher) Match(ctx context.Context, req models.PredictionRequest) ([]Subset, error) {
	switch req.DayType {
	case models.DayTypeHoliday:
		holiday, err := m.readings.MatchHoliday(ctx, req.Hour)
		if err != nil {
			return nil, err
		}
		return []Subset{{Tag: SubsetHoliday, Readings: holiday}}, nil

	case models.DayTypeSpecialEvent:
		// The two subsets are independent; they are fetched sequentially
		// and merged by the blender.
		normal, err := m.readings.MatchNormal(ctx, req.DayOfWeek, req.Hour)
		if err != nil {
			return nil, err
		}
		holiday, err := m.readings.MatchHoliday(ctx, req.Hour)
		if err != nil {
			return nil, err
		}
		return []Subset{
			{Tag: SubsetNormal, Readings: normal},
			{Tag: SubsetHoliday, Readings: holiday},
		}, nil

	default:
		normal, err := m.readings.MatchNormal(ctx, req.DayOfWeek, req.Hour)
		if err != nil {
			return nil, err
		}
		return []Subset{{Tag: SubsetNormal, Readings: normal}}, nil
	}
}
