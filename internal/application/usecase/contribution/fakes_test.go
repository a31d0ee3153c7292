package contribution

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// fakeContributionRepo is an in-memory ContributionRepository for use case
// tests. Users attached to records are resolved from the users map.
type fakeContributionRepo struct {
	contributions map[uuid.UUID]*entity.Contribution
	users         map[uuid.UUID]*entity.User
}

func newFakeContributionRepo(users ...*entity.User) *fakeContributionRepo {
	repo := &fakeContributionRepo{
		contributions: make(map[uuid.UUID]*entity.Contribution),
		users:         make(map[uuid.UUID]*entity.User),
	}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeContributionRepo) withUser(contribution *entity.Contribution) *entity.ContributionWithUser {
	return &entity.ContributionWithUser{
		Contribution: contribution,
		User:         r.users[contribution.UserID],
	}
}

func (r *fakeContributionRepo) Create(_ context.Context, contribution *entity.Contribution) error {
	r.contributions[contribution.ID] = contribution
	return nil
}

func (r *fakeContributionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ContributionWithUser, error) {
	contribution, ok := r.contributions[id]
	if !ok {
		return nil, domainerror.ErrContributionNotFound
	}
	return r.withUser(contribution), nil
}

func (r *fakeContributionRepo) FindByFilter(_ context.Context, filter adapter.ContributionFilter) ([]*entity.ContributionWithUser, error) {
	var result []*entity.ContributionWithUser
	for _, contribution := range r.contributions {
		if filter.UserID != nil && contribution.UserID != *filter.UserID {
			continue
		}
		if filter.DateFrom != nil && contribution.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && contribution.Date.After(*filter.DateTo) {
			continue
		}
		result = append(result, r.withUser(contribution))
	}
	return result, nil
}

func (r *fakeContributionRepo) FindByYear(_ context.Context, year int, userID *uuid.UUID) ([]*entity.ContributionWithUser, error) {
	var result []*entity.ContributionWithUser
	for _, contribution := range r.contributions {
		if contribution.Date.Year() != year {
			continue
		}
		if userID != nil && contribution.UserID != *userID {
			continue
		}
		result = append(result, r.withUser(contribution))
	}
	return result, nil
}

func (r *fakeContributionRepo) FindByDateRange(_ context.Context, from, to time.Time) ([]*entity.Contribution, error) {
	var result []*entity.Contribution
	for _, contribution := range r.contributions {
		if !contribution.Date.Before(from) && !contribution.Date.After(to) {
			result = append(result, contribution)
		}
	}
	return result, nil
}

func (r *fakeContributionRepo) SumByUser(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, contribution := range r.contributions {
		if contribution.UserID == userID {
			total = total.Add(contribution.Value)
		}
	}
	return total, nil
}

func (r *fakeContributionRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, contribution := range r.contributions {
		if contribution.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeContributionRepo) Update(_ context.Context, contribution *entity.Contribution) error {
	r.contributions[contribution.ID] = contribution
	return nil
}

func (r *fakeContributionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.contributions, id)
	return nil
}

// fakeUserRepo holds a fixed set of users.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) FindByFilter(_ context.Context, _ adapter.UserFilter) ([]*entity.User, error) {
	result := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, user)
	}
	return result, nil
}

func (r *fakeUserRepo) FindActiveInvestors(_ context.Context) ([]*entity.User, error) {
	var result []*entity.User
	for _, user := range r.users {
		if user.Active && user.Role == entity.UserRoleInvestor {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) CountActiveInvestors(ctx context.Context) (int64, error) {
	investors, _ := r.FindActiveInvestors(ctx)
	return int64(len(investors)), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

// fakeSummaryCache records invalidations.
type fakeSummaryCache struct {
	invalidations int
}

func (c *fakeSummaryCache) Get(_ context.Context, _ string, _ any) (bool, error) {
	return false, nil
}

func (c *fakeSummaryCache) Set(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context) error {
	c.invalidations++
	return nil
}
