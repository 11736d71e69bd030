package services

import (
	"errors"
	"strings"
	"time"

	"github.com/PortalCiudadano/Gestiones-Backend/src/middleware"
	"github.com/PortalCiudadano/Gestiones-Backend/src/models"
	"github.com/PortalCiudadano/Gestiones-Backend/src/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("el nombre de usuario ya existe")
	ErrMissingCredentials = errors.New("usuario y contraseña son obligatorios")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	db       *gorm.DB
	sessions *session.Manager
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB, sessions *session.Manager) *UserService {
	return &UserService{db: db, sessions: sessions}
}

// RegisterUser creates a new User record with the password stored as a
// bcrypt hash. Duplicate usernames are a normal outcome, not a fault.
func (s *UserService) RegisterUser(username, password string) (*models.UserModel, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var existing models.UserModel
	result := s.db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	// Hash the password before saving
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks user credentials and returns a JWT token if valid.
// The token's session ID is registered as active until logout.
func (s *UserService) AuthenticateUser(username, password string) (string, error) {
	// Registration trims the username, so login must compare the same way
	username = strings.TrimSpace(username)

	var user models.UserModel
	result := s.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", result.Error
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	claims := jwt.MapClaims{
		"id":       user.Id,
		"username": user.Username,
		"jti":      sessionID,
		"exp":      time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", err
	}

	s.sessions.Login(sessionID, user.Username)

	return tokenString, nil
}

// Logout deactivates the session; the JWT stops being accepted even if unexpired.
func (s *UserService) Logout(sessionID string) {
	s.sessions.Logout(sessionID)
}
