package user

import (
	"context"
	"time"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"
	"nutritrack-backend/internal/utils/mailing"
	"nutritrack-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfileResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UserUpdateRequest) error
		VerifyEmail(ctx context.Context, token string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	existing, err := s.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		return domain.UserRegisterResponse{}, err
	}
	if existing != nil {
		return domain.UserRegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserRegisterResponse{}, domain.ErrHashPasswordFailed
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.UserRegisterResponse{}, err
	}

	verifyToken, err := s.jwtService.GenerateTokenVerifyEmail(user.ID.String(), 24*time.Hour)
	if err == nil {
		if mailErr := s.mailer.SendVerificationEmail(user.Email, verifyToken); mailErr != nil {
			log.Errorf("error sending verification email to %s: %v", user.Email, mailErr)
		}
	}

	return domain.UserRegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	user, err := s.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		return domain.UserLoginResponse{}, err
	}
	if user == nil {
		return domain.UserLoginResponse{}, domain.ErrCredentialsInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.UserLoginResponse{}, domain.ErrCredentialsInvalid
	}

	return domain.UserLoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return domain.UserProfileResponse{}, err
	}
	if user == nil {
		return domain.UserProfileResponse{}, domain.ErrUserNotFound
	}

	return domain.UserProfileResponse{
		ID:                 user.ID.String(),
		Name:               user.Name,
		Email:              user.Email,
		IsVerified:         user.IsVerified,
		IsPremium:          user.IsPremium,
		DailyCalorieTarget: user.DailyCalorieTarget,
		CreatedAt:          user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UserUpdateRequest) error {
	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.DailyCalorieTarget > 0 {
		user.DailyCalorieTarget = req.DailyCalorieTarget
	}

	return s.userRepository.Update(ctx, user)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	userID, err := s.jwtService.ValidateTokenVerifyEmail(token)
	if err != nil {
		return domain.ErrVerifyTokenInvalid
	}

	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	user.IsVerified = true
	return s.userRepository.Update(ctx, user)
}
