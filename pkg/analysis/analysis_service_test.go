package analysis

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalysisRepository struct {
	scans map[string]*entities.FoodScan
}

func newFakeAnalysisRepository() *fakeAnalysisRepository {
	return &fakeAnalysisRepository{scans: make(map[string]*entities.FoodScan)}
}

func (f *fakeAnalysisRepository) CreateFoodScan(_ context.Context, scan *entities.FoodScan) error {
	f.scans[scan.ID.String()] = scan
	return nil
}

func (f *fakeAnalysisRepository) UpdateFoodScan(_ context.Context, scan *entities.FoodScan) error {
	f.scans[scan.ID.String()] = scan
	return nil
}

func (f *fakeAnalysisRepository) GetFoodScans(_ context.Context, userID string, limit int) ([]*entities.FoodScan, error) {
	var out []*entities.FoodScan
	for _, scan := range f.scans {
		if scan.UserID.String() == userID {
			out = append(out, scan)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func fileHeaderWithType(contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "food.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestAnalyzeFoodImageRejectsMissingImage(t *testing.T) {
	svc := &analysisService{analysisRepository: newFakeAnalysisRepository()}

	_, err := svc.AnalyzeFoodImage(context.Background(), domain.AnalyzeFoodImageRequest{}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNoImageUploaded)
}

func TestAnalyzeFoodImageRejectsNonImageUpload(t *testing.T) {
	svc := &analysisService{analysisRepository: newFakeAnalysisRepository()}

	_, err := svc.AnalyzeFoodImage(context.Background(), domain.AnalyzeFoodImageRequest{
		Image: fileHeaderWithType("application/pdf"),
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
}

func TestAnalyzeFoodImageRejectsBadUserID(t *testing.T) {
	svc := &analysisService{analysisRepository: newFakeAnalysisRepository()}

	_, err := svc.AnalyzeFoodImage(context.Background(), domain.AnalyzeFoodImageRequest{
		Image: fileHeaderWithType("image/jpeg"),
	}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetRecentScans(t *testing.T) {
	repo := newFakeAnalysisRepository()
	svc := &analysisService{analysisRepository: repo}
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.CreateFoodScan(ctx, &entities.FoodScan{
		ID: uuid.New(), UserID: userID, CalorieInfo: "Total Calories: Total 450", Status: "Completed",
	}))
	require.NoError(t, repo.CreateFoodScan(ctx, &entities.FoodScan{
		ID: uuid.New(), UserID: uuid.New(), CalorieInfo: "someone else's scan", Status: "Completed",
	}))

	scans, err := svc.GetRecentScans(ctx, userID.String(), 20)
	require.NoError(t, err)
	require.Len(t, scans, 1)
	assert.Equal(t, "Total Calories: Total 450", scans[0].CalorieInfo)

	// out-of-range limit falls back to the default
	scans, err = svc.GetRecentScans(ctx, userID.String(), -5)
	require.NoError(t, err)
	assert.Len(t, scans, 1)
}
