package dashboard

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
)

// The fakes embed the adapter interfaces so only the methods the summary
// path touches need implementations.

type fakeExpenseRepo struct {
	adapter.ExpenseRepository
	records []*entity.ExpenseWithRelations
}

func (r *fakeExpenseRepo) FindByDueDateRange(_ context.Context, from, to time.Time) ([]*entity.ExpenseWithRelations, error) {
	var result []*entity.ExpenseWithRelations
	for _, record := range r.records {
		if !record.Expense.DueDate.Before(from) && !record.Expense.DueDate.After(to) {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeExpenseRepo) SumDividedPaid(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, record := range r.records {
		if record.Expense.Status == entity.ExpenseStatusPaid {
			total = total.Add(record.Expense.DividedValue)
		}
	}
	return total, nil
}

type fakeContributionRepo struct {
	adapter.ContributionRepository
	contributions []*entity.Contribution
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

type fakeUserRepo struct {
	adapter.UserRepository
	investors []*entity.User
}

func (r *fakeUserRepo) FindActiveInvestors(_ context.Context) ([]*entity.User, error) {
	return r.investors, nil
}

// recordingCache keeps the raw JSON of everything written to it.
type recordingCache struct {
	entries map[string][]byte
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string][]byte)}
}

func (c *recordingCache) Get(_ context.Context, key string, value any) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, value)
}

func (c *recordingCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *recordingCache) Invalidate(_ context.Context) error {
	c.entries = make(map[string][]byte)
	return nil
}

func TestGetSummaryCachesNoCredentials(t *testing.T) {
	investor := entity.NewUser("ana", "ana@example.com", "bcrypt-segredo", entity.UserRoleInvestor)
	category := entity.NewCategory("Mercado", "", entity.DefaultCategoryColor)

	expense := entity.NewExpense(
		"", "Compra do mês", category.ID,
		decimal.NewFromInt(300), decimal.NewFromInt(300),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		"débito", nil, investor.ID,
		entity.ExpenseStatusPaid, entity.ExpenseKindSingle,
	)

	cache := newRecordingCache()
	uc := NewGetSummaryUseCase(
		&fakeExpenseRepo{records: []*entity.ExpenseWithRelations{{Expense: expense, Category: category}}},
		&fakeContributionRepo{contributions: []*entity.Contribution{
			entity.NewContribution(investor.ID, decimal.NewFromInt(1000), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ""),
		}},
		&fakeUserRepo{investors: []*entity.User{investor}},
		nil,
		cache,
	)

	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	output, err := uc.Execute(context.Background(), GetSummaryInput{Month: 3, Year: 2025, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Balances) != 1 {
		t.Fatalf("expected 1 balance, got %d", len(output.Balances))
	}
	balance := output.Balances[0]
	if balance.UserID != investor.ID || balance.UserName != "ana" {
		t.Errorf("balance identifies %s/%q, want %s/%q", balance.UserID, balance.UserName, investor.ID, "ana")
	}
	if want := decimal.NewFromInt(700); !balance.Balance.Equal(want) {
		t.Errorf("balance: got %s, want %s", balance.Balance, want)
	}

	cached, ok := cache.entries["summary:2025-03"]
	if !ok {
		t.Fatal("expected the summary to be cached")
	}
	if strings.Contains(string(cached), "bcrypt-segredo") {
		t.Error("cached summary must not carry the password hash")
	}
	if strings.Contains(string(cached), "ana@example.com") {
		t.Error("cached summary must not carry the investor email")
	}

	// A second call is served from cache with the same balances.
	again, err := uc.Execute(context.Background(), GetSummaryInput{Month: 3, Year: 2025, Now: now})
	if err != nil {
		t.Fatalf("unexpected error on cached read: %v", err)
	}
	if len(again.Balances) != 1 || again.Balances[0].UserName != "ana" {
		t.Errorf("cached summary lost the balance entries: %+v", again.Balances)
	}
}
