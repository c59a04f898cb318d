package service

import (
	"context"
	"errors"
	"os"
	"time"

	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/specification"
	"hostelnexus-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, studentId uuid.UUID) (*dto.StudentResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokenTTL   time.Duration
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokenTTL time.Duration) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokenTTL:   tokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.StudentRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	messPreference := req.MessPreference
	if messPreference == "" {
		messPreference = entity.MessPreferenceVegetarian
	}

	now := time.Now()
	student := &entity.Student{
		Id:             uuid.New(),
		Email:          req.Email,
		FullName:       req.FullName,
		Phone:          req.Phone,
		PasswordHash:   &hashStr,
		MessPreference: messPreference,
		JoinDate:       now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uow.StudentRepository().Create(ctx, student); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: student.Id, Email: student.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if student == nil || student.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*student.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"student_id": student.Id.String(),
		"email":      student.Email,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		Student:   *toStudentResponse(student),
	}, nil
}

func (s *authService) Me(ctx context.Context, studentId uuid.UUID) (*dto.StudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errors.New("student not found")
	}

	return toStudentResponse(student), nil
}

func toStudentResponse(student *entity.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		Id:             student.Id,
		Email:          student.Email,
		FullName:       student.FullName,
		Phone:          student.Phone,
		RoomNumber:     student.RoomNumber,
		HostelBlock:    student.HostelBlock,
		MessPreference: student.MessPreference,
		JoinDate:       student.JoinDate,
		DueAmount:      student.DueAmount,
		CreatedAt:      student.CreatedAt,
	}
}
