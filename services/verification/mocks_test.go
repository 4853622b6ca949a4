package verification

import (
	"context"
	"sync"
	"time"

	accountRepo "bookwise/database/repository/account"
	"bookwise/models"

	"github.com/stretchr/testify/mock"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, role models.Role, email string) (*models.Account, error) {
	args := m.Called(ctx, role, email)
	acc, _ := args.Get(0).(*models.Account)
	return acc, args.Error(1)
}

func (m *mockAccountRepo) FindByID(ctx context.Context, role models.Role, id string) (*models.Account, error) {
	args := m.Called(ctx, role, id)
	acc, _ := args.Get(0).(*models.Account)
	return acc, args.Error(1)
}

func (m *mockAccountRepo) Create(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockAccountRepo) ListApprovedProviders(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	accs, _ := args.Get(0).([]models.Account)
	return accs, args.Error(1)
}

func (m *mockAccountRepo) SetApproval(ctx context.Context, providerID string, approved bool) (bool, error) {
	args := m.Called(ctx, providerID, approved)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) SetBlocked(ctx context.Context, role models.Role, id string, blocked bool) (bool, error) {
	args := m.Called(ctx, role, id, blocked)
	return args.Bool(0), args.Error(1)
}

var _ accountRepo.AccountRepository = (*mockAccountRepo)(nil)

// recordingNotifier keeps every code it was asked to deliver.
type recordingNotifier struct {
	mu    sync.Mutex
	err   error
	codes []string
}

func (n *recordingNotifier) Send(ctx context.Context, name, email, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.codes = append(n.codes, code)
	return nil
}

func (n *recordingNotifier) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.codes) == 0 {
		return ""
	}
	return n.codes[len(n.codes)-1]
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
