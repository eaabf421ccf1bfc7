package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hospital-api/internal/apperr"
	"hospital-api/internal/core/auth"
	"hospital-api/internal/domain"
)

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
}

func statusOf(t *testing.T, err error) (int, string) {
	t.Helper()
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apperr.Error, got %v", err)
	}
	return ae.Status, ae.Message
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testJWTer())

	_, err := svc.Register(RegisterInput{Firstname: "Jane", Email: "jane@x.com", Password: "pw"})
	assert.Error(t, err)
	status, msg := statusOf(t, err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Validation error.", msg)
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTer())

	u, err := svc.Register(RegisterInput{
		Firstname: "Jane", Lastname: "Doe", Email: "Jane@X.com", Password: "s3cret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "jane@x.com", u.Email)
	assert.Equal(t, domain.RolePatient, u.Role)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTer())

	_, err := svc.Register(RegisterInput{Firstname: "A", Lastname: "B", Email: "Foo@x.com", Password: "pw"})
	assert.NoError(t, err)

	_, err = svc.Register(RegisterInput{Firstname: "C", Lastname: "D", Email: "foo@x.com", Password: "pw"})
	assert.Error(t, err)
	status, msg := statusOf(t, err)
	assert.Equal(t, 409, status)
	assert.Equal(t, "Email already in use.", msg)
}

func TestLoginFlows(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTer())
	_, err := svc.Register(RegisterInput{Firstname: "A", Lastname: "B", Email: "a@x.com", Password: "right"})
	assert.NoError(t, err)

	// 正确密码拿到 token
	out, err := svc.Login("A@x.com", "right")
	assert.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "a@x.com", out.User.Email)

	// 密码错：401，文案固定
	_, err = svc.Login("a@x.com", "wrong")
	status, msg := statusOf(t, err)
	assert.Equal(t, 401, status)
	assert.Equal(t, "Invalid login attempt!", msg)

	// 账号不存在：同样 401，不暴露账号是否存在
	_, err = svc.Login("nobody@x.com", "whatever")
	status, msg = statusOf(t, err)
	assert.Equal(t, 401, status)
	assert.Equal(t, "Failed to login", msg)
}

func TestChangeRoleSelfRejectedBeforeWrite(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTer())
	admin, err := svc.Register(RegisterInput{Firstname: "Ad", Lastname: "Min", Email: "admin@x.com", Password: "pw"})
	assert.NoError(t, err)

	before := repo.updates
	_, err = svc.ChangeRole(admin.ID, admin.ID, domain.RoleDoctor)
	status, msg := statusOf(t, err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "You can't update your Role", msg)
	// 自改必须在任何写之前被拦下
	assert.Equal(t, before, repo.updates)
}

func TestChangeRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTer())
	admin, _ := svc.Register(RegisterInput{Firstname: "Ad", Lastname: "Min", Email: "admin@x.com", Password: "pw"})
	target, _ := svc.Register(RegisterInput{Firstname: "Ta", Lastname: "Rget", Email: "t@x.com", Password: "pw"})

	u, err := svc.ChangeRole(admin.ID, target.ID, domain.RoleDoctor)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleDoctor, u.Role)

	_, err = svc.ChangeRole(admin.ID, 999, domain.RoleDoctor)
	status, _ := statusOf(t, err)
	assert.Equal(t, 404, status)

	_, err = svc.ChangeRole(admin.ID, target.ID, "SUPERUSER")
	status, _ = statusOf(t, err)
	assert.Equal(t, 400, status)
}

func TestUpdateUserKeepsUnsetFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testJWTer())
	u, _ := svc.Register(RegisterInput{Firstname: "Jane", Lastname: "Doe", Email: "j@x.com", Password: "pw"})
	oldHash := u.PasswordHash

	first := "Janet"
	got, err := svc.Update(u.ID, UserUpdateInput{Firstname: &first})
	assert.NoError(t, err)
	assert.Equal(t, "Janet", got.Firstname)
	assert.Equal(t, "Doe", got.Lastname)
	assert.Equal(t, "j@x.com", got.Email)
	assert.Equal(t, oldHash, got.PasswordHash)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testJWTer())
	err := svc.Delete(42)
	status, _ := statusOf(t, err)
	assert.Equal(t, 404, status)
}
