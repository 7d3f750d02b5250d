package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"
	"nutritrack-backend/internal/utils"
	"nutritrack-backend/internal/utils/storage"

	"github.com/google/uuid"
)

type (
	AnalysisService interface {
		AnalyzeFoodImage(ctx context.Context, req domain.AnalyzeFoodImageRequest, userID string) (domain.AnalyzeFoodImageResponse, error)
		GetRecentScans(ctx context.Context, userID string, limit int) ([]domain.FoodScanResponse, error)
	}

	analysisService struct {
		analysisRepository AnalysisRepository
		s3                 storage.AwsS3
		httpClient         *http.Client
	}

	analyzerResult struct {
		CalorieInfo string `json:"calorie_info"`
		Success     bool   `json:"success"`
		Error       string `json:"error"`
	}
)

func NewAnalysisService(analysisRepository AnalysisRepository, s3 storage.AwsS3) AnalysisService {
	return &analysisService{
		analysisRepository: analysisRepository,
		s3:                 s3,
		httpClient:         http.DefaultClient,
	}
}

// AnalyzeFoodImage stores the uploaded image and forwards it to the external
// analyzer service, persisting the result as a FoodScan. No retries on
// analyzer failure; the scan is kept with status Failed.
func (s *analysisService) AnalyzeFoodImage(ctx context.Context, req domain.AnalyzeFoodImageRequest, userID string) (domain.AnalyzeFoodImageResponse, error) {
	if req.Image == nil {
		return domain.AnalyzeFoodImageResponse{}, domain.ErrNoImageUploaded
	}
	if !strings.HasPrefix(req.Image.Header.Get("Content-Type"), "image/") {
		return domain.AnalyzeFoodImageResponse{}, domain.ErrInvalidImageFormat
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AnalyzeFoodImageResponse{}, domain.ErrParseUUID
	}

	scan := &entities.FoodScan{
		ID:     uuid.New(),
		UserID: userUUID,
		Status: "Pending",
	}

	fileName := fmt.Sprintf("food-scan-%s", scan.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "food-scans", storage.AllowImage...)
	if err != nil {
		return domain.AnalyzeFoodImageResponse{}, err
	}
	scan.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.analysisRepository.CreateFoodScan(ctx, scan); err != nil {
		return domain.AnalyzeFoodImageResponse{}, err
	}

	result, err := s.callAnalyzer(ctx, req.Image)
	if err != nil {
		scan.Status = "Failed"
		_ = s.analysisRepository.UpdateFoodScan(ctx, scan)
		return domain.AnalyzeFoodImageResponse{}, domain.ErrAnalyzerUnavailable
	}

	scan.CalorieInfo = result.CalorieInfo
	scan.Status = "Completed"
	if err := s.analysisRepository.UpdateFoodScan(ctx, scan); err != nil {
		return domain.AnalyzeFoodImageResponse{}, err
	}

	return domain.AnalyzeFoodImageResponse{
		ScanID:      scan.ID.String(),
		ImageURL:    scan.ImageURL,
		CalorieInfo: scan.CalorieInfo,
		Success:     true,
	}, nil
}

func (s *analysisService) callAnalyzer(ctx context.Context, image *multipart.FileHeader) (analyzerResult, error) {
	file, err := image.Open()
	if err != nil {
		return analyzerResult{}, err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		return analyzerResult{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return analyzerResult{}, err
	}
	if err := writer.Close(); err != nil {
		return analyzerResult{}, err
	}

	analyzerURL := utils.GetConfig("ANALYZER_URL")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, analyzerURL+"/analyze", &body)
	if err != nil {
		return analyzerResult{}, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return analyzerResult{}, err
	}
	defer resp.Body.Close()

	var result analyzerResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return analyzerResult{}, err
	}
	if resp.StatusCode != http.StatusOK || !result.Success {
		return analyzerResult{}, fmt.Errorf("analyzer returned status %d: %s", resp.StatusCode, result.Error)
	}

	return result, nil
}

func (s *analysisService) GetRecentScans(ctx context.Context, userID string, limit int) ([]domain.FoodScanResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	scans, err := s.analysisRepository.GetFoodScans(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodScanResponse, 0, len(scans))
	for _, scan := range scans {
		response = append(response, domain.FoodScanResponse{
			ID:          scan.ID.String(),
			ImageURL:    scan.ImageURL,
			CalorieInfo: scan.CalorieInfo,
			Status:      scan.Status,
			CreatedAt:   scan.CreatedAt,
		})
	}
	return response, nil
}
