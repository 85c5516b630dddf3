package user

import (
	"Tastebook-Backend/domain"
	"Tastebook-Backend/entities"
	"Tastebook-Backend/internal/utils/mailing"
	"Tastebook-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.ProfileData, error)
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, email string) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         *mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer *mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

// Register creates the auth identity, then performs the companion profile
// insert. The profile leg is idempotent and best-effort: the account is
// considered created even if the profile write fails, which is only logged.
func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	profile := &entities.Profile{
		ID:       user.ID,
		Email:    user.Email,
		Username: req.Username,
		FullName: req.FullName,
	}
	if err := s.userRepository.CreateProfileIfAbsent(ctx, profile); err != nil {
		log.Errorf("profile insert after signup failed for %s: %v", user.ID, err)
	}

	// best-effort like the profile leg: a failed send is logged, never an error
	s.sendVerificationMail(user.Email)

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}, nil
}

// Login failures are normalized into one error so callers cannot distinguish
// an unknown email from a wrong password.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token, err := s.jwtService.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

// Me resolves the current session's user and its profile. A missing profile is
// not an error: the field stays null until the row exists.
func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.MeResponse{}, domain.ErrUserNotFound
	}

	res := domain.MeResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}

	profile, err := s.userRepository.GetProfileByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Errorf("error fetching profile for %s: %v", userID, err)
		}
		return res, nil
	}

	res.Profile = profileData(profile)
	return res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.ProfileData, error) {
	if userID == "" {
		return domain.ProfileData{}, domain.ErrNoUserLoggedIn
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	profile, err := s.userRepository.UpdateProfile(ctx, userID, updates)
	if err != nil {
		return domain.ProfileData{}, err
	}

	return *profileData(profile), nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	if _, err := s.userRepository.GetUserByEmail(ctx, email); err != nil {
		return domain.ErrUserNotFound
	}
	return s.sendVerificationMail(email)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateClaimToken(token)
	if err != nil {
		return err
	}

	email, ok := claims["email"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.userRepository.GetUserByEmail(ctx, email); err != nil {
		// do not reveal whether the email exists
		return nil
	}

	token, err := s.jwtService.GenerateClaimToken(map[string]any{"email": email}, time.Minute*30)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.mailer.AppURL(), token)
	body := fmt.Sprintf("<p>Reset your Tastebook password by following <a href=%q>this link</a>. The link expires in 30 minutes.</p>", link)
	return s.mailer.Send(email, "Reset your Tastebook password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateClaimToken(req.Token)
	if err != nil {
		return err
	}

	email, ok := claims["email"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) sendVerificationMail(email string) error {
	token, err := s.jwtService.GenerateClaimToken(map[string]any{"email": email}, time.Hour*24)
	if err != nil {
		log.Errorf("error generating verification token for %s: %v", email, err)
		return err
	}

	link := fmt.Sprintf("%s/verify?token=%s", s.mailer.AppURL(), token)
	body := fmt.Sprintf("<p>Welcome to Tastebook! Verify your email by following <a href=%q>this link</a>.</p>", link)
	if err := s.mailer.Send(email, "Verify your Tastebook account", body); err != nil {
		log.Errorf("error sending verification email to %s: %v", email, err)
		return err
	}
	return nil
}

func profileData(p *entities.Profile) *domain.ProfileData {
	return &domain.ProfileData{
		ID:        p.ID.String(),
		CreatedAt: p.CreatedAt,
		Email:     p.Email,
		Username:  p.Username,
		FullName:  p.FullName,
		Bio:       p.Bio,
	}
}
