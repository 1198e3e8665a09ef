package meal

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/entities"
	"FoodTracker-Backend/pkg/nutrition"
	"FoodTracker-Backend/pkg/pattern"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type (
	MealService interface {
		LogMeal(ctx context.Context, req domain.LogMealRequest, deviceID string) (domain.MealResponse, error)
		GetMeals(ctx context.Context, query domain.DayQuery, deviceID string) ([]domain.MealResponse, error)
		DeleteMeal(ctx context.Context, id string, deviceID string) error
		GetDailySummary(ctx context.Context, query domain.DailySummaryQuery, deviceID string) (domain.DailySummaryResponse, error)
		GetDailyPatterns(ctx context.Context, query domain.DayQuery, deviceID string) (domain.PatternSummaryResponse, error)
	}

	mealService struct {
		mealRepository MealRepository
		patternService pattern.PatternService
		now            func() time.Time
	}
)

func NewMealService(mealRepository MealRepository, patternService pattern.PatternService) MealService {
	return &mealService{
		mealRepository: mealRepository,
		patternService: patternService,
		now:            time.Now,
	}
}

func (s *mealService) LogMeal(ctx context.Context, req domain.LogMealRequest, deviceID string) (domain.MealResponse, error) {
	eatenAt := s.now()
	if strings.TrimSpace(req.Timestamp) != "" {
		eatenAt = domain.ParseTimestamp(req.Timestamp)
		if eatenAt.IsZero() {
			return domain.MealResponse{}, domain.ErrInvalidTimestamp
		}
	}

	var analysisID *uuid.UUID
	if req.AnalysisID != "" {
		parsed, err := uuid.Parse(req.AnalysisID)
		if err != nil {
			return domain.MealResponse{}, domain.ErrParseUUID
		}
		analysisID = &parsed
	}

	profile := domain.MacroProfile{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Fiber:    req.Fiber,
	}

	meal := &entities.MealLog{
		ID:          uuid.New(),
		DeviceID:    deviceID,
		Name:        strings.TrimSpace(req.Name),
		EatenAt:     eatenAt.UTC(),
		MealType:    orDefault(req.MealType, domain.DefaultMealType),
		Location:    orDefault(req.Location, domain.DefaultLocation),
		Cuisine:     strings.TrimSpace(req.Cuisine),
		PortionSize: orDefault(req.PortionSize, domain.DefaultPortionSize),
		MacroGuess:  string(pattern.ClassifyMacro(req.MacroGuess)),
		Ingredients: cleanIngredients(req.Ingredients),
		Calories:    profile.Calories,
		Protein:     profile.Protein,
		Carbs:       profile.Carbs,
		Fat:         profile.Fat,
		Fiber:       profile.Fiber,
		HealthScore: nutrition.HealthScore(req.Name, profile),
		Verified:    req.Verified,
		AnalysisID:  analysisID,
	}

	if err := s.mealRepository.CreateMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}
	return toMealResponse(meal), nil
}

func (s *mealService) GetMeals(ctx context.Context, query domain.DayQuery, deviceID string) ([]domain.MealResponse, error) {
	meals, _, err := s.mealsForDay(ctx, query, deviceID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		res = append(res, toMealResponse(m))
	}
	return res, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, id string, deviceID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	meal, err := s.mealRepository.GetMealByID(ctx, id)
	if err != nil {
		return err
	}
	if meal.DeviceID != deviceID {
		return domain.ErrUnauthorizedAccess
	}

	return s.mealRepository.DeleteMeal(ctx, id)
}

func (s *mealService) GetDailySummary(ctx context.Context, query domain.DailySummaryQuery, deviceID string) (domain.DailySummaryResponse, error) {
	meals, date, err := s.mealsForDay(ctx, query.Day(), deviceID)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	items := make([]domain.EnrichedFoodItem, 0, len(meals))
	entries := make([]nutrition.MealEntry, 0, len(meals))
	for _, m := range meals {
		item := toFoodItem(m)
		items = append(items, item)
		entries = append(entries, nutrition.MealEntry{MealType: m.MealType, Item: item})
	}

	goals := query.Goals()
	progress := nutrition.Summarize(items, goals)
	breakdown := nutrition.MealBreakdowns(entries)

	return domain.DailySummaryResponse{
		Date:                   date,
		Progress:               progress,
		MealBreakdown:          breakdown,
		HealthScoreDescription: nutrition.HealthScoreDescription(progress.AverageHealthScore),
		Suggestions:            nutrition.DailySuggestions(progress, goals, breakdown),
	}, nil
}

func (s *mealService) GetDailyPatterns(ctx context.Context, query domain.DayQuery, deviceID string) (domain.PatternSummaryResponse, error) {
	meals, _, err := s.mealsForDay(ctx, query, deviceID)
	if err != nil {
		return domain.PatternSummaryResponse{}, err
	}

	records := make([]domain.MealRecord, 0, len(meals))
	for _, m := range meals {
		records = append(records, domain.MealRecord{
			Timestamp:   m.EatenAt,
			Ingredients: nonNil(m.Ingredients),
			Cuisine:     m.Cuisine,
			PortionSize: m.PortionSize,
			MealType:    m.MealType,
			Location:    m.Location,
			MacroGuess:  m.MacroGuess,
			Calories:    m.Calories,
			Carbs:       m.Carbs,
			Protein:     m.Protein,
			Fat:         m.Fat,
		})
	}

	return s.patternService.Summarize(ctx, records), nil
}

func (s *mealService) mealsForDay(ctx context.Context, query domain.DayQuery, deviceID string) ([]*entities.MealLog, string, error) {
	start, end, err := DayRange(query, s.now())
	if err != nil {
		return nil, "", err
	}

	meals, err := s.mealRepository.GetMealsByRange(ctx, deviceID, start, end)
	if err != nil {
		return nil, "", err
	}
	return meals, start.Format(dateLayout), nil
}

// DayRange resolves a calendar day in the requested timezone to a half-open
// [start, end) interval. An empty date means today in that timezone; an empty
// timezone means UTC.
func DayRange(query domain.DayQuery, now time.Time) (time.Time, time.Time, error) {
	loc := time.UTC
	if query.Timezone != "" {
		l, err := time.LoadLocation(query.Timezone)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidTimezone
		}
		loc = l
	}

	var start time.Time
	if query.Date == "" {
		n := now.In(loc)
		start = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	} else {
		d, err := time.ParseInLocation(dateLayout, query.Date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidDate
		}
		start = d
	}

	return start, start.AddDate(0, 0, 1), nil
}

func toFoodItem(m *entities.MealLog) domain.EnrichedFoodItem {
	item := domain.EnrichedFoodItem{
		ID:          m.ID.String(),
		Verified:    m.Verified,
		HealthScore: m.HealthScore,
	}
	item.Name = m.Name
	item.Calories = m.Calories
	item.Protein = m.Protein
	item.Carbs = m.Carbs
	item.Fat = m.Fat
	item.Fiber = m.Fiber
	item.Ingredients = nonNil(m.Ingredients)
	item.PortionSize = domain.PortionSize(m.PortionSize)
	item.MacroGuess = domain.MacroGuess(m.MacroGuess)
	return item
}

func toMealResponse(m *entities.MealLog) domain.MealResponse {
	res := domain.MealResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Timestamp:   m.EatenAt,
		MealType:    m.MealType,
		Location:    m.Location,
		Cuisine:     m.Cuisine,
		PortionSize: m.PortionSize,
		MacroGuess:  m.MacroGuess,
		Ingredients: nonNil(m.Ingredients),
		Calories:    m.Calories,
		Protein:     m.Protein,
		Carbs:       m.Carbs,
		Fat:         m.Fat,
		Fiber:       m.Fiber,
		HealthScore: m.HealthScore,
		Verified:    m.Verified,
	}
	if m.AnalysisID != nil {
		res.AnalysisID = m.AnalysisID.String()
	}
	return res
}

func orDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}

func cleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, ing := range in {
		if s := strings.TrimSpace(ing); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
