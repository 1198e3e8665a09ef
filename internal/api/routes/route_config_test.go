package routes

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/entities"
	"FoodTracker-Backend/internal/api/handlers"
	"FoodTracker-Backend/internal/api/presenters"
	"FoodTracker-Backend/internal/middleware"
	"FoodTracker-Backend/pkg/jwt"
	"FoodTracker-Backend/pkg/meal"
	"FoodTracker-Backend/pkg/nutrition"
	"FoodTracker-Backend/pkg/pattern"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalysisService struct {
	err error
}

func (f *fakeAnalysisService) AnalyzeFood(ctx context.Context, req domain.AnalyzeFoodRequest) (domain.AnalyzeFoodResponse, error) {
	if f.err != nil {
		return domain.AnalyzeFoodResponse{}, f.err
	}
	return domain.AnalyzeFoodResponse{
		Success:    true,
		AnalysisID: "analysis-1",
		Analysis:   domain.FoodAnalysis{Enriched: true, ImageDescription: req.Image.Filename},
	}, nil
}

func (f *fakeAnalysisService) GetAnalysis(ctx context.Context, id string) (domain.AnalyzeFoodResponse, error) {
	return domain.AnalyzeFoodResponse{}, domain.ErrAnalysisNotFound
}

type fakeNarrative struct{}

func (fakeNarrative) SummarizePattern(ctx context.Context, meals []domain.MealRecord, features domain.PatternFeatures) domain.PatternSummary {
	return domain.PatternSummary{
		Summary: domain.PatternSummaryName,
		Bullets: []string{fmt.Sprintf("%d meals", len(meals))},
		Overall: "steady",
	}
}

type memoryMealRepository struct {
	meals map[string]*entities.MealLog
}

func (r *memoryMealRepository) CreateMeal(ctx context.Context, m *entities.MealLog) error {
	r.meals[m.ID.String()] = m
	return nil
}

func (r *memoryMealRepository) GetMealByID(ctx context.Context, id string) (*entities.MealLog, error) {
	if m, ok := r.meals[id]; ok {
		return m, nil
	}
	return nil, domain.ErrMealNotFound
}

func (r *memoryMealRepository) DeleteMeal(ctx context.Context, id string) error {
	delete(r.meals, id)
	return nil
}

func (r *memoryMealRepository) GetMealsByRange(ctx context.Context, deviceID string, start, end time.Time) ([]*entities.MealLog, error) {
	var out []*entities.MealLog
	for _, m := range r.meals {
		if m.DeviceID == deviceID && !m.EatenAt.Before(start) && m.EatenAt.Before(end) {
			out = append(out, m)
		}
	}
	return out, nil
}

func newTestApp(t *testing.T, analysisService *fakeAnalysisService) *fiber.App {
	t.Helper()
	validate := validator.New()
	jwtService := jwt.NewJWTService("test-secret")
	patternService := pattern.NewPatternService(fakeNarrative{})
	mealService := meal.NewMealService(&memoryMealRepository{meals: map[string]*entities.MealLog{}}, patternService)

	app := fiber.New(fiber.Config{ErrorHandler: presenters.ErrorHandler})
	cfg := Config{
		App:              app,
		AnalysisHandler:  handlers.NewAnalysisHandler(analysisService, validate),
		NutritionHandler: handlers.NewNutritionHandler(nutrition.NewNutritionService(), validate),
		PatternHandler:   handlers.NewPatternHandler(patternService),
		MealHandler:      handlers.NewMealHandler(mealService, validate),
		DeviceHandler:    handlers.NewDeviceHandler(jwtService),
		Middleware:       middleware.NewMiddleware(""),
		JWTService:       jwtService,
	}
	cfg.Setup()
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return resp.StatusCode, body
}

func jsonRequest(method, target, body, token string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func imageRequest(t *testing.T, contentType string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="lunch.jpg"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-food", body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, &fakeAnalysisService{})

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, Version, body["version"])
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t, &fakeAnalysisService{})

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, domain.CodeNotFound, body["code"])
}

func TestAnalyzeFood(t *testing.T) {
	app := newTestApp(t, &fakeAnalysisService{})

	status, body := do(t, app, imageRequest(t, "image/jpeg"))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "analysis-1", body["analysisId"])
	assert.Equal(t, "lunch.jpg", body["analysis"].(map[string]any)["imageDescription"])

	status, body = do(t, app, jsonRequest(http.MethodPost, "/api/analyze-food", "{}", ""))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.CodeNoImage, body["code"])
}

func TestAnalyzeFood_ErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"bad type", fmt.Errorf("%w: text/plain", domain.ErrInvalidImageFormat), fiber.StatusBadRequest, domain.CodeInvalidFileType},
		{"too large", domain.ErrImageTooLarge, fiber.StatusBadRequest, domain.CodeFileTooLarge},
		{"model failure", domain.ErrGeminiRateLimited, fiber.StatusInternalServerError, domain.CodeAnalysisFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &fakeAnalysisService{err: tt.err})

			status, body := do(t, app, imageRequest(t, "image/jpeg"))

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body["code"])
		})
	}
}

func TestGetAnalysis_NotFound(t *testing.T) {
	app := newTestApp(t, &fakeAnalysisService{})

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/analyses/123", nil))

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, domain.CodeNotFound, body["code"])
}

func TestNutritionSuggestions(t *testing.T) {
	app := newTestApp(t, &fakeAnalysisService{})

	status, body := do(t, app, jsonRequest(http.MethodPost, "/api/nutrition-suggestions", `{}`, ""))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.CodeInvalidFoodItems, body["code"])

	status, body = do(t, app, jsonRequest(http.MethodPost, "/api/nutrition-suggestions",
		`{"foodItems":[{"name":"salad","calories":"450","protein":25,"carbs":40,"fat":15,"fiber":6}],"userGoals":{"dailyCalories":2000}}`, ""))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	suggestions := body["suggestions"].(map[string]any)
	assert.NotEmpty(t, suggestions["suggestions"])
	assert.NotEmpty(t, suggestions["nextMealAdvice"])
	assert.Contains(t, suggestions, "mealScore")
}

func TestCalculateGoals(t *testing.T) {
	app := newTestApp(t, &fakeAnalysisService{})

	status, body := do(t, app, jsonRequest(http.MethodPost, "/api/v1/goals/calculate",
		`{"age":30,"gender":"male","height_cm":180,"weight_kg":80,"activity_level":"moderate"}`, ""))
	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.InDelta(t, 1780, data["basal_metabolic_rate"], 0.5)

	status, body = do(t, app, jsonRequest(http.MethodPost, "/api/v1/goals/calculate", `{"age":30}`, ""))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.CodeInvalidRequest, body["code"])
}

func TestPatternSummary(t *testing.T) {
	app := newTestApp(t, &fakeAnalysisService{})

	status, body := do(t, app, jsonRequest(http.MethodPost, "/api/pattern-summary",
		`{"meals":[{"timestamp":"2026-03-14T08:00:00Z","mealType":"breakfast","ingredients":["egg"],"calories":"300"}]}`, ""))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	summary := body["summary"].(map[string]any)
	assert.Equal(t, domain.PatternSummaryName, summary["summary"])
	patterns := body["patterns"].(map[string]any)
	assert.Equal(t, map[string]any{"egg": float64(1)}, patterns["ingredient_frequency"])
}

func TestMeals_RequireToken(t *testing.T) {
	app := newTestApp(t, &fakeAnalysisService{})

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/meals", nil))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, domain.CodeUnauthorized, body["code"])

	status, body = do(t, app, jsonRequest(http.MethodGet, "/api/v1/meals", "", "not-a-token"))
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, domain.CodeUnauthorized, body["code"])
}

func TestMeals_Flow(t *testing.T) {
	app := newTestApp(t, &fakeAnalysisService{})

	issue := func() string {
		status, body := do(t, app, httptest.NewRequest(http.MethodPost, "/api/v1/devices/token", nil))
		require.Equal(t, fiber.StatusCreated, status)
		return body["data"].(map[string]any)["token"].(string)
	}
	owner, other := issue(), issue()

	status, body := do(t, app, jsonRequest(http.MethodPost, "/api/v1/meals",
		`{"name":"oatmeal","meal_type":"breakfast","calories":300,"protein":10}`, owner))
	require.Equal(t, fiber.StatusCreated, status)
	mealID := body["data"].(map[string]any)["id"].(string)

	status, body = do(t, app, jsonRequest(http.MethodPost, "/api/v1/meals", `{"meal_type":"brunch"}`, owner))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.CodeInvalidRequest, body["code"])

	status, body = do(t, app, jsonRequest(http.MethodGet, "/api/v1/meals", "", owner))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = do(t, app, jsonRequest(http.MethodGet, "/api/v1/meals/daily-summary?daily_calories=2000", "", owner))
	assert.Equal(t, fiber.StatusOK, status)
	progress := body["data"].(map[string]any)["progress"].(map[string]any)
	assert.InDelta(t, 0.15, progress["progress"].(map[string]any)["calories"], 1e-9)

	status, body = do(t, app, jsonRequest(http.MethodGet, "/api/v1/meals/patterns", "", owner))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{"1 meals"}, body["summary"].(map[string]any)["bullets"])

	status, body = do(t, app, jsonRequest(http.MethodGet, "/api/v1/meals?date=2026-13-40", "", owner))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.CodeInvalidRequest, body["code"])

	status, body = do(t, app, jsonRequest(http.MethodDelete, "/api/v1/meals/"+mealID, "", other))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, domain.CodeUnauthorized, body["code"])

	status, _ = do(t, app, jsonRequest(http.MethodDelete, "/api/v1/meals/"+mealID, "", owner))
	assert.Equal(t, fiber.StatusOK, status)

	status, body = do(t, app, jsonRequest(http.MethodDelete, "/api/v1/meals/"+mealID, "", owner))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, domain.CodeNotFound, body["code"])
}
