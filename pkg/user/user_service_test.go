package user

import (
	"context"
	"testing"
	"time"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"
	"nutritrack-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users map[string]*entities.User // keyed by id
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) Create(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
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

func (f *fakeUserRepository) Update(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) SetPremium(_ context.Context, id string, premium bool) error {
	if u, ok := f.users[id]; ok {
		u.IsPremium = premium
	}
	return nil
}

type fakeMailer struct {
	sentTo     []string
	sentTokens []string
}

func (f *fakeMailer) Send(toEmail, subject, body string) error {
	f.sentTo = append(f.sentTo, toEmail)
	return nil
}

func (f *fakeMailer) SendVerificationEmail(toEmail, token string) error {
	f.sentTo = append(f.sentTo, toEmail)
	f.sentTokens = append(f.sentTokens, token)
	return nil
}

func newTestUserService() (UserService, *fakeUserRepository, *fakeMailer, jwt.JWTService) {
	repo := newFakeUserRepository()
	mailer := &fakeMailer{}
	jwtService := jwt.NewJWTService()
	return NewUserService(repo, jwtService, mailer), repo, mailer, jwtService
}

func TestRegisterHashesPasswordAndSendsVerification(t *testing.T) {
	svc, repo, mailer, _ := newTestUserService()

	res, err := svc.Register(context.Background(), domain.UserRegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", res.Email)
	assert.NotEmpty(t, res.Token)

	stored, err := repo.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret")))

	require.Len(t, mailer.sentTo, 1)
	assert.Equal(t, "jane@example.com", mailer.sentTo[0])
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	svc, _, _, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.UserRegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.UserRegisterRequest{Name: "Janet", Email: "jane@example.com", Password: "othersecret"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.UserRegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "supersecret"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, domain.UserLoginRequest{Email: "jane@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)

	_, err = svc.Login(ctx, domain.UserLoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(ctx, domain.UserLoginRequest{Email: "unknown@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestVerifyEmail(t *testing.T) {
	svc, repo, mailer, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.UserRegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.Len(t, mailer.sentTokens, 1)

	require.NoError(t, svc.VerifyEmail(ctx, mailer.sentTokens[0]))

	stored, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)

	assert.Error(t, svc.VerifyEmail(ctx, "not-a-token"))
}

func TestUpdateProfile(t *testing.T) {
	svc, repo, _, _ := newTestUserService()
	ctx := context.Background()

	user := &entities.User{ID: uuid.New(), Name: "Jane", Email: "jane@example.com", Role: domain.RoleUser}
	require.NoError(t, repo.Create(ctx, user))

	err := svc.UpdateProfile(ctx, user.ID.String(), domain.UserUpdateRequest{
		Name:               "Jane D.",
		DailyCalorieTarget: 2100,
	})
	require.NoError(t, err)

	profile, err := svc.Me(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Jane D.", profile.Name)
	assert.Equal(t, float64(2100), profile.DailyCalorieTarget)

	assert.ErrorIs(t, svc.UpdateProfile(ctx, uuid.NewString(), domain.UserUpdateRequest{Name: "X"}), domain.ErrUserNotFound)
}

func TestVerifyTokenExpiry(t *testing.T) {
	_, _, _, jwtService := newTestUserService()

	token, err := jwtService.GenerateTokenVerifyEmail(uuid.NewString(), -time.Minute)
	require.NoError(t, err)

	_, err = jwtService.ValidateTokenVerifyEmail(token)
	assert.Error(t, err)
}
