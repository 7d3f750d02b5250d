package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAnalyzeImage = "food image analyzed successfully"
	MessageSuccessGetScans     = "food scans retrieved successfully"

	MessageFailedAnalyzeImage = "failed to analyze food image"
	MessageFailedGetScans     = "failed to retrieve food scans"

	ErrNoImageUploaded     = errors.New("no image file uploaded")
	ErrInvalidImageFormat  = errors.New("invalid file type, please upload an image")
	ErrAnalyzerUnavailable = errors.New("food analyzer service unavailable")
)

type (
	AnalyzeFoodImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	AnalyzeFoodImageResponse struct {
		ScanID      string `json:"scan_id"`
		ImageURL    string `json:"image_url"`
		CalorieInfo string `json:"calorie_info"`
		Success     bool   `json:"success"`
	}

	FoodScanResponse struct {
		ID          string    `json:"id"`
		ImageURL    string    `json:"image_url"`
		CalorieInfo string    `json:"calorie_info"`
		Status      string    `json:"status"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
