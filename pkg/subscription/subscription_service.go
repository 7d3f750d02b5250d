package subscription

import (
	"context"
	"fmt"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"
	"nutritrack-backend/internal/utils"
	"nutritrack-backend/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// PremiumPriceIDR is the flat price of the premium tier.
const PremiumPriceIDR int64 = 49000

type (
	SubscriptionService interface {
		Subscribe(ctx context.Context, userID string) (domain.SubscribeResponse, error)
		HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
		snapClient             snap.Client
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, userRepository user.UserRepository) SubscriptionService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		snapClient:             client,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID string) (domain.SubscribeResponse, error) {
	u, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return domain.SubscribeResponse{}, err
	}
	if u == nil {
		return domain.SubscribeResponse{}, domain.ErrUserNotFound
	}
	if u.IsPremium {
		return domain.SubscribeResponse{}, domain.ErrUserAlreadyPremium
	}

	orderID := fmt.Sprintf("premium-%s", uuid.New().String())
	transaction := &entities.Transaction{
		ID:      uuid.New(),
		UserID:  u.ID,
		OrderID: orderID,
		Amount:  PremiumPriceIDR,
		Status:  "pending",
	}

	if err := s.subscriptionRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.SubscribeResponse{}, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: PremiumPriceIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: u.Name,
			Email: u.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.SubscribeResponse{}, domain.ErrCreateSnapFailed
	}

	return domain.SubscribeResponse{
		OrderID:     orderID,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification applies a payment-gateway status callback. Settlement
// (or an accepted capture) flips the user to premium; terminal failure states
// only update the transaction row.
func (s *subscriptionService) HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	transaction, err := s.subscriptionRepository.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return domain.ErrWebhookOrderMismatch
	}

	switch req.TransactionStatus {
	case "settlement":
		transaction.Status = "settlement"
	case "capture":
		if req.FraudStatus == "accept" {
			transaction.Status = "settlement"
		} else {
			transaction.Status = "pending"
		}
	case "deny", "cancel", "expire":
		transaction.Status = req.TransactionStatus
	default:
		transaction.Status = "pending"
	}

	if err := s.subscriptionRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	if transaction.Status == "settlement" {
		return s.userRepository.SetPremium(ctx, transaction.UserID.String(), true)
	}
	return nil
}
