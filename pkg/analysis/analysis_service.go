package analysis

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/entities"
	"FoodTracker-Backend/internal/utils/storage"
	"FoodTracker-Backend/pkg/nutrition"
	"FoodTracker-Backend/pkg/vision"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const photoFolder = "food-photos"

type (
	AnalysisService interface {
		AnalyzeFood(ctx context.Context, req domain.AnalyzeFoodRequest) (domain.AnalyzeFoodResponse, error)
		GetAnalysis(ctx context.Context, id string) (domain.AnalyzeFoodResponse, error)
	}

	analysisService struct {
		analysisRepository AnalysisRepository
		visionService      vision.VisionService
		s3                 storage.AwsS3
		maxImageBytes      int64
		now                func() time.Time
	}
)

// NewAnalysisService wires the photo pipeline. s3 may be nil, in which case photos are
// analyzed but not stored.
func NewAnalysisService(analysisRepository AnalysisRepository, visionService vision.VisionService, s3 storage.AwsS3, maxImageBytes int64) AnalysisService {
	return &analysisService{
		analysisRepository: analysisRepository,
		visionService:      visionService,
		s3:                 s3,
		maxImageBytes:      maxImageBytes,
		now:                time.Now,
	}
}

func (s *analysisService) AnalyzeFood(ctx context.Context, req domain.AnalyzeFoodRequest) (domain.AnalyzeFoodResponse, error) {
	if req.Image == nil {
		return domain.AnalyzeFoodResponse{}, domain.ErrNoImage
	}
	if s.maxImageBytes > 0 && req.Image.Size > s.maxImageBytes {
		return domain.AnalyzeFoodResponse{}, domain.ErrImageTooLarge
	}
	contentType := req.Image.Header.Get("Content-Type")
	if !storage.IsAllowedImage(contentType) {
		return domain.AnalyzeFoodResponse{}, fmt.Errorf("%w: %s", domain.ErrInvalidImageFormat, contentType)
	}

	data, err := readImage(req.Image)
	if err != nil {
		return domain.AnalyzeFoodResponse{}, err
	}
	if s.maxImageBytes > 0 && int64(len(data)) > s.maxImageBytes {
		return domain.AnalyzeFoodResponse{}, domain.ErrImageTooLarge
	}

	var (
		observed  domain.VisionAnalysis
		objectKey string
	)
	g, gctx := errgroup.WithContext(ctx)
	if s.s3 != nil {
		g.Go(func() error {
			key, err := s.s3.UploadFile(gctx, req.Image.Filename, data, contentType, photoFolder)
			if err != nil {
				log.Warnf("analysis: photo upload failed: %v", err)
				return nil
			}
			objectKey = key
			return nil
		})
	}
	g.Go(func() error {
		result, err := s.visionService.AnalyzeFoodImage(gctx, data, modelMimeType(contentType, data))
		if err != nil {
			return err
		}
		observed = result
		return nil
	})
	if err := g.Wait(); err != nil {
		if objectKey != "" {
			_ = s.s3.DeleteFile(context.WithoutCancel(ctx), objectKey)
		}
		return domain.AnalyzeFoodResponse{}, err
	}

	now := s.now().UTC()
	analysis := buildAnalysis(observed, now)
	if objectKey != "" {
		analysis.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	id := uuid.New()
	record := &entities.FoodAnalysis{
		ID:                id,
		ImageURL:          analysis.ImageURL,
		Enriched:          analysis.Enriched,
		OverallConfidence: analysis.OverallConfidence,
		Result:            analysis,
	}
	if analysis.Totals != nil {
		record.TotalCalories = analysis.Totals.Calories
	}
	if s.analysisRepository != nil {
		if err := s.analysisRepository.CreateAnalysis(ctx, record); err != nil {
			log.Warnf("analysis: failed to persist analysis %s: %v", id, err)
		}
	}

	return domain.AnalyzeFoodResponse{
		Success:    true,
		AnalysisID: id.String(),
		Timestamp:  now,
		Analysis:   analysis,
	}, nil
}

func (s *analysisService) GetAnalysis(ctx context.Context, id string) (domain.AnalyzeFoodResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.AnalyzeFoodResponse{}, domain.ErrParseUUID
	}

	record, err := s.analysisRepository.GetAnalysisByID(ctx, id)
	if err != nil {
		return domain.AnalyzeFoodResponse{}, err
	}

	return domain.AnalyzeFoodResponse{
		Success:    true,
		AnalysisID: record.ID.String(),
		Timestamp:  record.Result.Timestamp,
		Analysis:   record.Result,
	}, nil
}

// buildAnalysis runs enrichment over the vision output. When enrichment is refused the
// observations are returned as the model produced them, without totals or insights. The
// fallback analysis is not blended, so its placeholder keeps the fallback confidence.
func buildAnalysis(observed domain.VisionAnalysis, now time.Time) domain.FoodAnalysis {
	analysis := domain.FoodAnalysis{
		OverallConfidence: observed.OverallConfidence,
		ImageDescription:  observed.ImageDescription,
		Suggestions:       observed.Suggestions,
		Timestamp:         now,
	}

	var foods []domain.EnrichedFoodItem
	if observed.Fallback {
		foods = fallbackItems(observed.Foods)
	} else {
		result := nutrition.Enrich(observed.Foods)
		if !result.Enriched() {
			log.Warnf("analysis: enrichment skipped: %v", result.Err)
			analysis.Observations = result.Original
			return analysis
		}
		foods = result.Foods
	}

	totals := nutrition.CalculateTotals(foods)
	analysis.Enriched = true
	analysis.Foods = foods
	analysis.Totals = &totals
	analysis.Insights = nutrition.HealthInsights(totals)
	return analysis
}

func fallbackItems(observations []domain.FoodObservation) []domain.EnrichedFoodItem {
	items := make([]domain.EnrichedFoodItem, 0, len(observations))
	for _, obs := range observations {
		items = append(items, domain.EnrichedFoodItem{
			ID:              uuid.NewString(),
			FoodObservation: obs,
			Verified:        false,
			HealthScore:     nutrition.HealthScore(obs.Name, obs.MacroProfile),
		})
	}
	return items
}

func readImage(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// modelMimeType picks the type announced to the vision model. Uploads sent as
// application/octet-stream are sniffed and default to JPEG.
func modelMimeType(contentType string, data []byte) string {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	if ct == "image/jpg" {
		return "image/jpeg"
	}
	if strings.HasPrefix(ct, "image/") {
		return ct
	}
	if sniffed := http.DetectContentType(data); strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}
	return "image/jpeg"
}
