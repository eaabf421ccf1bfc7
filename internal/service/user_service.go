package service

import (
	"strings"

	"hospital-api/internal/apperr"
	"hospital-api/internal/core/auth"
	"hospital-api/internal/domain"
	"hospital-api/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer) *UserService {
	return &UserService{users: users, jwter: jwter}
}

type RegisterInput struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (s *UserService) Register(in RegisterInput) (*domain.User, error) {
	if in.Firstname == "" || in.Lastname == "" || in.Email == "" || in.Password == "" {
		return nil, apperr.BadRequest("Validation error.")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, apperr.Internal("Failed to create user", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already in use.")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal("Failed to create user", err)
	}
	u := &domain.User{
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RolePatient,
	}
	if err := s.users.Create(u); err != nil {
		return nil, apperr.Internal("Failed to create user", err)
	}
	return u, nil
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

// Login 查不到和密码错都回 401，但文案沿用老接口的两种说法
func (s *UserService) Login(email, plainPassword string) (*LoginResult, error) {
	if email == "" || plainPassword == "" {
		return nil, apperr.BadRequest("Validation error")
	}
	u, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperr.Internal("Failed to login", err)
	}
	if u == nil {
		return nil, apperr.Unauthorized("Failed to login")
	}
	if !utils.CheckPassword(plainPassword, u.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login attempt!")
	}
	token, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return nil, apperr.Internal("Failed to login", err)
	}
	return &LoginResult{User: u, AccessToken: token}, nil
}

func validRole(r string) bool {
	switch r {
	case domain.RoleAdmin, domain.RoleDoctor, domain.RolePatient:
		return true
	}
	return false
}

// ChangeRole 管理员给别人改角色；改自己必须在任何写之前被拦下
func (s *UserService) ChangeRole(actorID, targetID uint, role string) (*domain.User, error) {
	if actorID == targetID {
		return nil, apperr.BadRequest("You can't update your Role")
	}
	if !validRole(role) {
		return nil, apperr.BadRequest("Invalid role")
	}
	u, err := s.users.FindByID(targetID)
	if err != nil {
		return nil, apperr.Internal("Failed To Update the role", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User NOT Found")
	}
	u.Role = role
	if err := s.users.Update(u); err != nil {
		return nil, apperr.Internal("Failed To Update the role", err)
	}
	return u, nil
}

func (s *UserService) List(page, limit int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	users, total, err := s.users.List((page-1)*limit, limit)
	if err != nil {
		return nil, 0, apperr.Internal("Failed to list users", err)
	}
	return users, total, nil
}

type UserUpdateInput struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

func (s *UserService) Update(id uint, in UserUpdateInput) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to update user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}

	if in.Firstname != nil && *in.Firstname != "" {
		u.Firstname = *in.Firstname
	}
	if in.Lastname != nil && *in.Lastname != "" {
		u.Lastname = *in.Lastname
	}
	if in.Email != nil && *in.Email != "" {
		u.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, apperr.Internal("Failed to update user", err)
		}
		u.PasswordHash = hash
	}

	if err := s.users.Update(u); err != nil {
		return nil, apperr.Internal("Failed to update user", err)
	}
	return u, nil
}

func (s *UserService) Delete(id uint) error {
	u, err := s.users.FindByID(id)
	if err != nil {
		return apperr.Internal("Failed to delete user", err)
	}
	if u == nil {
		return apperr.NotFound("User not found")
	}
	if err := s.users.Delete(id); err != nil {
		return apperr.Internal("Failed to delete user", err)
	}
	return nil
}
