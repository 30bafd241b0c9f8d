package user

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/internal/utils/storage"
	jwtservice "FoodBridge-Backend/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

var _ UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	f.byID[user.ID.String()] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *entities.User) error {
	f.byID[user.ID.String()] = user
	f.byEmail[user.Email] = user
	return nil
}

type fakeJWT struct{}

var _ jwtservice.JWTService = (*fakeJWT)(nil)

func (fakeJWT) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId + "-" + role
}
func (fakeJWT) ValidateTokenUser(string) (*jwtlib.Token, error) { return nil, nil }
func (fakeJWT) GetUserIDByToken(string) (string, string, error) { return "", "", nil }
func (fakeJWT) GenerateTokenForgetPassword(map[string]any, time.Duration) (string, error) {
	return "reset-token", nil
}
func (fakeJWT) ValidateTokenForgetPassword(string) (jwtlib.MapClaims, error) {
	return jwtlib.MapClaims{}, nil
}

type fakeAvatarStore struct {
	uploaded []string
}

var _ storage.AwsS3 = (*fakeAvatarStore)(nil)

func (f *fakeAvatarStore) UploadFile(filename string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + filename
	f.uploaded = append(f.uploaded, key)
	return key, nil
}
func (f *fakeAvatarStore) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.test/" + objectKey
}
func (f *fakeAvatarStore) GetObjectKeyFromLink(link string) string { return link }
func (f *fakeAvatarStore) DeleteFile(string) error                 { return nil }

func newTestService() (UserService, *fakeUserRepo, *fakeAvatarStore) {
	repo := newFakeUserRepo()
	s3 := &fakeAvatarStore{}
	return NewUserService(repo, &fakeJWT{}, s3), repo, s3
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Email:    "donor@example.test",
		Password: "sup3r-secret",
		Name:     "Aisha",
		Role:     domain.RoleDonor,
	}
}

func TestRegister_OnlyDonorOrReceiver(t *testing.T) {
	t.Parallel()
	service, _, _ := newTestService()

	req := registerRequest()
	req.Role = domain.RoleAdmin

	_, err := service.Register(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrRoleNotAllowed)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = service.Register(ctx, registerRequest())
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()
	service, repo, _ := newTestService()

	res, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	stored := repo.byID[res.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "sup3r-secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("sup3r-secret")))
}

func TestLogin(t *testing.T) {
	t.Parallel()
	service, _, _ := newTestService()
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "nobody@example.test", Password: "whatever"})
	require.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "donor@example.test", Password: "wrong-password"})
	require.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	login, err := service.Login(ctx, domain.LoginRequest{Email: "donor@example.test", Password: "sup3r-secret"})
	require.NoError(t, err)
	assert.Equal(t, "token-"+res.ID+"-"+domain.RoleDonor, login.Token)
	assert.Equal(t, domain.RoleDonor, login.Role)
}

func TestMe(t *testing.T) {
	t.Parallel()
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Me(ctx, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	res, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	me, err := service.Me(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aisha", me.Name)
	assert.Equal(t, domain.RoleDonor, me.Role)
	assert.False(t, me.IsVerified)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	t.Parallel()
	service, repo, _ := newTestService()
	ctx := context.Background()

	res, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	require.NoError(t, service.UpdateUser(ctx, domain.UpdateUserRequest{Phone: "+6581234567"}, res.ID))

	stored := repo.byID[res.ID]
	assert.Equal(t, "+6581234567", stored.Phone)
	assert.Equal(t, "Aisha", stored.Name, "unset fields must not be cleared")
}

func TestForgotPassword_SilentOnUnknownEmail(t *testing.T) {
	t.Parallel()
	service, _, _ := newTestService()

	err := service.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{Email: "ghost@example.test"})
	require.NoError(t, err)
}
