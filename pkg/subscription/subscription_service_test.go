package subscription

import (
	"context"
	"testing"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriptionRepository struct {
	transactions map[string]*entities.Transaction // keyed by order id
}

func newFakeSubscriptionRepository() *fakeSubscriptionRepository {
	return &fakeSubscriptionRepository{transactions: make(map[string]*entities.Transaction)}
}

func (f *fakeSubscriptionRepository) CreateTransaction(_ context.Context, tx *entities.Transaction) error {
	f.transactions[tx.OrderID] = tx
	return nil
}

func (f *fakeSubscriptionRepository) FindByOrderID(_ context.Context, orderID string) (*entities.Transaction, error) {
	tx, ok := f.transactions[orderID]
	if !ok {
		return nil, nil
	}
	return tx, nil
}

func (f *fakeSubscriptionRepository) UpdateTransaction(_ context.Context, tx *entities.Transaction) error {
	f.transactions[tx.OrderID] = tx
	return nil
}

type fakeUserRepository struct {
	premium map[string]bool
	users   map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{premium: make(map[string]bool), users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) Create(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepository) Update(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepository) SetPremium(_ context.Context, id string, premium bool) error {
	f.premium[id] = premium
	return nil
}

func TestHandleNotificationSettlementActivatesPremium(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	users := newFakeUserRepository()
	svc := &subscriptionService{subscriptionRepository: repo, userRepository: users}
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.CreateTransaction(ctx, &entities.Transaction{
		ID:      uuid.New(),
		UserID:  userID,
		OrderID: "premium-1",
		Amount:  PremiumPriceIDR,
		Status:  "pending",
	}))

	err := svc.HandleNotification(ctx, domain.MidtransNotificationRequest{
		OrderID:           "premium-1",
		TransactionStatus: "settlement",
	})
	require.NoError(t, err)

	assert.Equal(t, "settlement", repo.transactions["premium-1"].Status)
	assert.True(t, users.premium[userID.String()])
}

func TestHandleNotificationCaptureRespectsFraudStatus(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	users := newFakeUserRepository()
	svc := &subscriptionService{subscriptionRepository: repo, userRepository: users}
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.CreateTransaction(ctx, &entities.Transaction{
		ID: uuid.New(), UserID: userID, OrderID: "premium-2", Status: "pending",
	}))

	require.NoError(t, svc.HandleNotification(ctx, domain.MidtransNotificationRequest{
		OrderID: "premium-2", TransactionStatus: "capture", FraudStatus: "challenge",
	}))
	assert.Equal(t, "pending", repo.transactions["premium-2"].Status)
	assert.False(t, users.premium[userID.String()])

	require.NoError(t, svc.HandleNotification(ctx, domain.MidtransNotificationRequest{
		OrderID: "premium-2", TransactionStatus: "capture", FraudStatus: "accept",
	}))
	assert.Equal(t, "settlement", repo.transactions["premium-2"].Status)
	assert.True(t, users.premium[userID.String()])
}

func TestHandleNotificationFailureStates(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	users := newFakeUserRepository()
	svc := &subscriptionService{subscriptionRepository: repo, userRepository: users}
	ctx := context.Background()

	require.NoError(t, repo.CreateTransaction(ctx, &entities.Transaction{
		ID: uuid.New(), UserID: uuid.New(), OrderID: "premium-3", Status: "pending",
	}))

	for _, status := range []string{"deny", "cancel", "expire"} {
		require.NoError(t, svc.HandleNotification(ctx, domain.MidtransNotificationRequest{
			OrderID: "premium-3", TransactionStatus: status,
		}))
		assert.Equal(t, status, repo.transactions["premium-3"].Status)
	}
}

func TestHandleNotificationUnknownOrder(t *testing.T) {
	svc := &subscriptionService{
		subscriptionRepository: newFakeSubscriptionRepository(),
		userRepository:         newFakeUserRepository(),
	}

	err := svc.HandleNotification(context.Background(), domain.MidtransNotificationRequest{
		OrderID: "missing", TransactionStatus: "settlement",
	})
	assert.ErrorIs(t, err, domain.ErrWebhookOrderMismatch)
}
