package verification

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	accountRepo "bookwise/database/repository/account"
	"bookwise/models"
	"bookwise/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	svc      *DefaultVerificationService
	accounts *mockAccountRepo
	notifier *recordingNotifier
	clock    *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	f := &fixture{
		accounts: new(mockAccountRepo),
		notifier: &recordingNotifier{},
		clock:    clock,
	}
	f.svc = &DefaultVerificationService{
		Accounts:   f.accounts,
		Codec:      utils.NewTokenCodec("test-secret").WithClock(clock.Now),
		OTP:        utils.NewOTPGenerator(6),
		Hasher:     utils.NewBcryptHasher(bcrypt.MinCost),
		Notifier:   f.notifier,
		Logger:     zap.NewNop(),
		OTPTTL:     5 * time.Minute,
		SessionTTL: 48 * time.Hour,
	}
	require.NoError(t, f.svc.Validate())
	return f
}

func ada() models.PendingIdentity {
	return models.PendingIdentity{Name: "Ada", Email: "Ada@Example.com", Password: "s3cret-pass", Role: models.RoleUser}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestRegistrationRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ada@example.com").Return(nil, nil).Once()
	var created *models.Account
	f.accounts.On("Create", mock.Anything, mock.AnythingOfType("*models.Account")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*models.Account) }).
		Return(nil).Once()

	token, err := f.svc.RequestVerification(ctx, ada())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	code := f.notifier.last()
	require.Len(t, code, 6)

	resp, err := f.svc.ConfirmVerification(ctx, models.RoleUser, token, code)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, models.RoleUser, resp.Role)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)

	f.accounts.On("FindByID", mock.Anything, models.RoleUser, created.ID).Return(created, nil).Once()
	principal, err := f.svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, principal.ID)
	f.accounts.AssertExpectations(t)
}

func TestRequestVerification_ExistingAccount(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ada@example.com").
		Return(&models.Account{ID: "a1"}, nil)

	token, err := f.svc.RequestVerification(context.Background(), ada())
	assertCode(t, err, CodeAccountExists)
	assert.Empty(t, token)
	assert.Empty(t, f.notifier.codes, "no otp may be sent for a taken email")
}

func TestRequestVerification_DeliveryFailure(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("smtp down")
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ada@example.com").Return(nil, nil)

	token, err := f.svc.RequestVerification(context.Background(), ada())
	assertCode(t, err, CodeDeliveryFailed)
	assert.Equal(t, http.StatusServiceUnavailable, utils.HTTPStatus(err))
	assert.Empty(t, token)
}

func TestRequestVerification_InvalidInput(t *testing.T) {
	f := newFixture(t)
	cases := map[string]func(p *models.PendingIdentity){
		"no name":      func(p *models.PendingIdentity) { p.Name = " " },
		"bad email":    func(p *models.PendingIdentity) { p.Email = "not-an-email" },
		"short pass":   func(p *models.PendingIdentity) { p.Password = "short" },
		"unknown role": func(p *models.PendingIdentity) { p.Role = "admin" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			identity := ada()
			mutate(&identity)
			_, err := f.svc.RequestVerification(context.Background(), identity)
			assert.True(t, utils.IsKind(err, utils.KindValidation))
		})
	}
}

func TestConfirmVerification_Mismatch(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ada@example.com").Return(nil, nil)

	token, err := f.svc.RequestVerification(context.Background(), ada())
	require.NoError(t, err)

	wrong := "000000"
	if f.notifier.last() == wrong {
		wrong = "111111"
	}
	_, err = f.svc.ConfirmVerification(context.Background(), models.RoleUser, token, wrong)
	assertCode(t, err, CodeOTPMismatch)
	f.accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConfirmVerification_Replay(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ada@example.com").Return(nil, nil)
	f.accounts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.accounts.On("Create", mock.Anything, mock.Anything).Return(accountRepo.ErrDuplicateAccount).Once()

	token, err := f.svc.RequestVerification(context.Background(), ada())
	require.NoError(t, err)
	code := f.notifier.last()

	_, err = f.svc.ConfirmVerification(context.Background(), models.RoleUser, token, code)
	require.NoError(t, err)

	_, err = f.svc.ConfirmVerification(context.Background(), models.RoleUser, token, code)
	assertCode(t, err, CodeAccountExists)
	assert.True(t, utils.IsKind(err, utils.KindConflict))
}

func TestConfirmVerification_ExpiredToken(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ada@example.com").Return(nil, nil)

	token, err := f.svc.RequestVerification(context.Background(), ada())
	require.NoError(t, err)

	f.clock.Advance(6 * time.Minute)
	_, err = f.svc.ConfirmVerification(context.Background(), models.RoleUser, token, f.notifier.last())
	assertCode(t, err, CodeInvalidToken)
}

func TestConfirmVerification_RejectsSessionToken(t *testing.T) {
	f := newFixture(t)
	session, err := f.svc.Codec.Encode(utils.TokenPayload{Kind: utils.TokenSession, PrincipalID: "a1", Role: models.RoleUser}, time.Hour)
	require.NoError(t, err)

	_, err = f.svc.ConfirmVerification(context.Background(), models.RoleUser, session, "123456")
	assertCode(t, err, CodeInvalidToken)
}

func TestConfirmVerification_RoleMismatch(t *testing.T) {
	f := newFixture(t)
	provider := ada()
	provider.Role = models.RoleProvider
	f.accounts.On("FindByEmail", mock.Anything, models.RoleProvider, "ada@example.com").Return(nil, nil)

	token, err := f.svc.RequestVerification(context.Background(), provider)
	require.NoError(t, err)

	resp, err := f.svc.ConfirmVerification(context.Background(), models.RoleUser, token, f.notifier.last())
	assertCode(t, err, CodeInvalidToken)
	assert.Nil(t, resp)
	f.accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	_, err = f.svc.ResendVerification(context.Background(), models.RoleUser, token)
	assertCode(t, err, CodeInvalidToken)
	assert.Len(t, f.notifier.codes, 1, "no otp is resent across roles")
}

func TestResendVerification(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ada@example.com").Return(nil, nil)

	first, err := f.svc.RequestVerification(context.Background(), ada())
	require.NoError(t, err)

	second, err := f.svc.ResendVerification(context.Background(), models.RoleUser, first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	require.Len(t, f.notifier.codes, 2)

	payload, err := f.svc.Codec.Decode(second)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", payload.Pending.Email)
	assert.Equal(t, f.notifier.codes[1], payload.OTP)
}

func TestResendVerification_Expired(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ada@example.com").Return(nil, nil)

	token, err := f.svc.RequestVerification(context.Background(), ada())
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	_, err = f.svc.ResendVerification(context.Background(), models.RoleUser, token)
	assertCode(t, err, CodeInvalidToken)
	assert.Len(t, f.notifier.codes, 1)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	digest, err := f.svc.Hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	active := &models.Account{ID: "a1", Role: models.RoleUser, Email: "ada@example.com", PasswordHash: digest}
	blocked := &models.Account{ID: "a2", Role: models.RoleUser, Email: "bob@example.com", PasswordHash: digest, IsBlocked: true}
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ada@example.com").Return(active, nil)
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "bob@example.com").Return(blocked, nil)
	f.accounts.On("FindByEmail", mock.Anything, models.RoleUser, "ghost@example.com").Return(nil, nil)

	resp, err := f.svc.Login(context.Background(), models.RoleUser, "ada@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "a1", resp.ID)

	_, err = f.svc.Login(context.Background(), models.RoleUser, "ada@example.com", "wrong-pass")
	assertCode(t, err, CodePasswordMismatch)

	_, err = f.svc.Login(context.Background(), models.RoleUser, "ghost@example.com", "s3cret-pass")
	assertCode(t, err, CodeAccountNotFound)

	_, err = f.svc.Login(context.Background(), models.RoleUser, "bob@example.com", "s3cret-pass")
	assertCode(t, err, CodeAccountBlocked)
	assert.Equal(t, http.StatusForbidden, utils.HTTPStatus(err))
}

func TestAuthenticate_BlockedAfterIssue(t *testing.T) {
	f := newFixture(t)
	session, err := f.svc.Codec.Encode(utils.TokenPayload{Kind: utils.TokenSession, PrincipalID: "a1", Role: models.RoleProvider}, time.Hour)
	require.NoError(t, err)
	f.accounts.On("FindByID", mock.Anything, models.RoleProvider, "a1").
		Return(&models.Account{ID: "a1", Role: models.RoleProvider, IsBlocked: true}, nil)

	_, err = f.svc.Authenticate(context.Background(), session)
	assertCode(t, err, CodeAccountBlocked)
}
