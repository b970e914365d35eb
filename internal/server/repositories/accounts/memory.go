package accounts

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/cryptox"
	"github.com/slugmart/slugmart/internal/server/models"
)

type memoryRecord struct {
	account models.Account
	hash    []byte
}

// MemoryRepository keeps accounts in process memory. Passwords are stored as
// argon2id(password, secret) and compared in constant time.
type MemoryRepository struct {
	mu      sync.RWMutex
	secret  []byte
	byID    map[string]*memoryRecord
	byEmail map[string]string
}

func NewMemoryRepository(secret string) *MemoryRepository {
	return &MemoryRepository{
		secret:  []byte(secret),
		byID:    make(map[string]*memoryRecord),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryRepository) hash(password string) []byte {
	return cryptox.HashPassword([]byte(password), r.secret)
}

func (r *MemoryRepository) VerifyCredentials(ctx context.Context, email, password string) (*models.AccountSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	rec := r.byID[id]
	if rec.account.Restricted || !cryptox.VerifyPassword(rec.hash, []byte(password), r.secret) {
		return nil, common.ErrorNotFound
	}

	return &models.AccountSummary{
		ID:    rec.account.ID,
		Name:  rec.account.Name,
		Roles: slices.Clone(rec.account.Roles),
	}, nil
}

func (r *MemoryRepository) Create(ctx context.Context, info models.NewAccount) (*models.Account, error) {
	hash := r.hash(info.Password)

	roles := slices.Clone(info.Roles)
	if roles == nil {
		roles = []string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[info.Email]; exists {
		return nil, common.ErrDuplicateEmail
	}

	acc := models.Account{
		ID:         uuid.NewString(),
		Email:      info.Email,
		Name:       models.Name{First: info.FirstName, Last: info.LastName},
		Roles:      roles,
		Restricted: info.Restricted(),
		Profile:    models.Profile{Username: info.Username, Bio: info.Bio},
	}
	r.byID[acc.ID] = &memoryRecord{account: acc, hash: hash}
	r.byEmail[acc.Email] = acc.ID

	out := cloneAccount(acc)
	return &out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := cloneAccount(rec.account)
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Account, error) {
	return r.filter(func(models.Account) bool { return true }), nil
}

func (r *MemoryRepository) ListRestrictedVendors(ctx context.Context) ([]models.Account, error) {
	return r.filter(func(a models.Account) bool {
		return a.Restricted && slices.Contains(a.Roles, models.RoleVendor)
	}), nil
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	delete(r.byEmail, rec.account.Email)
	delete(r.byID, id)
	return true, nil
}

func (r *MemoryRepository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return r.DeleteByID(ctx, id)
}

func (r *MemoryRepository) SetRestrictedByID(ctx context.Context, id string, restricted bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	rec.account.Restricted = restricted
	return true, nil
}

func (r *MemoryRepository) SetRestrictedByEmail(ctx context.Context, email string, restricted bool) (bool, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return r.SetRestrictedByID(ctx, id, restricted)
}

func (r *MemoryRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	rec.account.Profile = rec.account.Profile.Merge(update)
	p := rec.account.Profile
	return &p, nil
}

func (r *MemoryRepository) filter(keep func(models.Account) bool) []models.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Account{}
	for _, rec := range r.byID {
		if keep(rec.account) {
			result = append(result, cloneAccount(rec.account))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Email < result[j].Email })
	return result
}

func cloneAccount(a models.Account) models.Account {
	a.Roles = slices.Clone(a.Roles)
	return a
}
