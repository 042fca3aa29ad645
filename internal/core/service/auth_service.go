package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

const defaultTokenTTL = 120 * time.Hour

// AuthService implements registration and login with HS256 token issuance.
type AuthService struct {
	users     ports.UserRepository
	activity  ports.ActivityRecorder
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, activity ports.ActivityRecorder, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		users:     users,
		activity:  activity,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates an account. Email uniqueness is guaranteed by the store's
// unique index; the FindByEmail read is only a fast path and the
// duplicate-key translation from the repository is authoritative.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.UserSummary, error) {
	s.logger.Info().Str("email", input.Email).Msg("register attempt")

	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		s.logger.Warn().Str("email", input.Email).Msg("email already in use")
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("password hashing failed")
		return nil, domain.Internal("Error creating user")
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("register failed")
		return nil, domain.Internal("Error creating user")
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user created")
	s.activity.Record(ports.ActivityEvent{
		Resource:  "user",
		Action:    "created",
		EntityID:  created.ID,
		ActorID:   created.ID,
		Timestamp: now,
	})

	return &ports.UserSummary{ID: created.ID, Email: created.Email, Username: created.Username}, nil
}

// Login verifies the credentials and issues a bearer token. An unknown email
// and a wrong password fail differently on purpose: 404 for the former,
// 403 for the latter.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	s.logger.Info().Str("email", email).Msg("login attempt")

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Str("email", email).Msg("user not found")
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", email).Msg("login lookup failed")
		return nil, domain.Internal("Error logging in")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("email", email).Msg("invalid credentials")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID, user.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("token signing failed")
		return nil, domain.Internal("Error logging in")
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login successful")
	s.activity.Record(ports.ActivityEvent{
		Resource:  "user",
		Action:    "login",
		EntityID:  user.ID,
		ActorID:   user.ID,
		Timestamp: time.Now().UTC(),
	})

	return &ports.LoginResult{
		AccessToken: token,
		User:        ports.UserSummary{ID: user.ID, Email: user.Email, Username: user.Username},
	}, nil
}

// signToken issues an HS256 token carrying subject id and email only.
func (s *AuthService) signToken(id, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id,
		"email": email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
