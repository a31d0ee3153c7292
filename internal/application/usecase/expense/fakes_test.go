package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// fakeExpenseRepo is an in-memory ExpenseRepository for use case tests.
type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepo) CreateWithChildren(_ context.Context, parent *entity.Expense, children []*entity.Expense) error {
	if parent != nil {
		r.expenses[parent.ID] = parent
	}
	for _, child := range children {
		r.expenses[child.ID] = child
	}
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return expense, nil
}

func (r *fakeExpenseRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithRelations, error) {
	expense, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.ExpenseWithRelations{Expense: expense}, nil
}

func (r *fakeExpenseRepo) FindByFilter(_ context.Context, _ adapter.ExpenseFilter) ([]*entity.ExpenseWithRelations, error) {
	records := make([]*entity.ExpenseWithRelations, 0, len(r.expenses))
	for _, expense := range r.expenses {
		records = append(records, &entity.ExpenseWithRelations{Expense: expense})
	}
	return records, nil
}

func (r *fakeExpenseRepo) FindByCardAndWindow(_ context.Context, cardID uuid.UUID, after, until time.Time) ([]*entity.Expense, error) {
	var result []*entity.Expense
	for _, expense := range r.expenses {
		if expense.CardID == nil || *expense.CardID != cardID {
			continue
		}
		if expense.PurchaseDate.After(after) && !expense.PurchaseDate.After(until) {
			result = append(result, expense)
		}
	}
	return result, nil
}

func (r *fakeExpenseRepo) FindByDueDateRange(_ context.Context, from, to time.Time) ([]*entity.ExpenseWithRelations, error) {
	var result []*entity.ExpenseWithRelations
	for _, expense := range r.expenses {
		if !expense.DueDate.Before(from) && !expense.DueDate.After(to) {
			result = append(result, &entity.ExpenseWithRelations{Expense: expense})
		}
	}
	return result, nil
}

func (r *fakeExpenseRepo) FindChildren(_ context.Context, parentID uuid.UUID, status *entity.ExpenseStatus) ([]*entity.Expense, error) {
	var result []*entity.Expense
	for _, expense := range r.expenses {
		if expense.ParentID == nil || *expense.ParentID != parentID {
			continue
		}
		if status != nil && expense.Status != *status {
			continue
		}
		result = append(result, expense)
	}
	return result, nil
}

func (r *fakeExpenseRepo) CountChildren(ctx context.Context, parentID uuid.UUID, status *entity.ExpenseStatus) (int64, error) {
	children, _ := r.FindChildren(ctx, parentID, status)
	return int64(len(children)), nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepo) UpdateWithChildren(_ context.Context, parent *entity.Expense, children []*entity.Expense) error {
	r.expenses[parent.ID] = parent
	for _, child := range children {
		r.expenses[child.ID] = child
	}
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepo) DeleteWithChildren(ctx context.Context, parentID uuid.UUID) (int64, error) {
	children, _ := r.FindChildren(ctx, parentID, nil)
	for _, child := range children {
		delete(r.expenses, child.ID)
	}
	delete(r.expenses, parentID)
	return int64(len(children)) + 1, nil
}

func (r *fakeExpenseRepo) CountByCard(_ context.Context, cardID uuid.UUID) (int64, error) {
	var count int64
	for _, expense := range r.expenses {
		if expense.CardID != nil && *expense.CardID == cardID {
			count++
		}
	}
	return count, nil
}

func (r *fakeExpenseRepo) CountByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, expense := range r.expenses {
		if expense.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeExpenseRepo) CountPaidBy(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, expense := range r.expenses {
		if expense.PaidByID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeExpenseRepo) SumDividedPaid(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, expense := range r.expenses {
		if expense.Status == entity.ExpenseStatusPaid {
			total = total.Add(expense.DividedValue)
		}
	}
	return total, nil
}

func (r *fakeExpenseRepo) SumTotalPaidBy(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, expense := range r.expenses {
		if expense.Status == entity.ExpenseStatusPaid && expense.PaidByID == userID {
			total = total.Add(expense.TotalValue)
		}
	}
	return total, nil
}

// fakeCategoryRepo holds a fixed set of categories.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, category := range categories {
		repo.categories[category.ID] = category
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, category := range r.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	result := make([]*entity.Category, 0, len(r.categories))
	for _, category := range r.categories {
		result = append(result, category)
	}
	return result, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

// fakeCardRepo holds a fixed set of cards.
type fakeCardRepo struct {
	cards map[uuid.UUID]*entity.Card
}

func newFakeCardRepo(cards ...*entity.Card) *fakeCardRepo {
	repo := &fakeCardRepo{cards: make(map[uuid.UUID]*entity.Card)}
	for _, card := range cards {
		repo.cards[card.ID] = card
	}
	return repo
}

func (r *fakeCardRepo) Create(_ context.Context, card *entity.Card) error {
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Card, error) {
	card, ok := r.cards[id]
	if !ok {
		return nil, domainerror.ErrCardNotFound
	}
	return card, nil
}

func (r *fakeCardRepo) FindAll(_ context.Context, userID *uuid.UUID) ([]*entity.CardWithUser, error) {
	var result []*entity.CardWithUser
	for _, card := range r.cards {
		if userID != nil && card.UserID != *userID {
			continue
		}
		result = append(result, &entity.CardWithUser{Card: card})
	}
	return result, nil
}

func (r *fakeCardRepo) Update(_ context.Context, card *entity.Card) error {
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.cards, id)
	return nil
}

func (r *fakeCardRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, card := range r.cards {
		if card.UserID == userID {
			count++
		}
	}
	return count, nil
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

func (r *fakeUserRepo) FindByFilter(_ context.Context, filter adapter.UserFilter) ([]*entity.User, error) {
	var result []*entity.User
	for _, user := range r.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		if filter.Active != nil && user.Active != *filter.Active {
			continue
		}
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
