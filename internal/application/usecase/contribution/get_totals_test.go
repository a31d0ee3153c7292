package contribution

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestGetTotalsAggregatesByUserAndMonth(t *testing.T) {
	ana := entity.NewUser("Ana", "ana@example.com", "hash", entity.UserRoleInvestor)
	bia := entity.NewUser("Bia", "bia@example.com", "hash", entity.UserRoleInvestor)

	repo := newFakeContributionRepo(ana, bia)
	repo.Create(context.Background(), entity.NewContribution(ana.ID, decimal.NewFromInt(1000), date(2024, time.January, 10), ""))
	repo.Create(context.Background(), entity.NewContribution(ana.ID, decimal.NewFromInt(500), date(2024, time.April, 20), ""))
	repo.Create(context.Background(), entity.NewContribution(bia.ID, decimal.NewFromInt(700), date(2024, time.January, 15), ""))
	// Outside the requested year.
	repo.Create(context.Background(), entity.NewContribution(ana.ID, decimal.NewFromInt(999), date(2023, time.December, 31), ""))

	uc := NewGetTotalsUseCase(repo)
	output, err := uc.Execute(context.Background(), GetTotalsInput{Year: 2024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Year != 2024 {
		t.Errorf("year: got %d, want 2024", output.Year)
	}
	if want := decimal.NewFromInt(2200); !output.GrandTotal.Equal(want) {
		t.Errorf("grand total: got %s, want %s", output.GrandTotal, want)
	}

	if len(output.ByUser) != 2 {
		t.Fatalf("expected 2 user totals, got %d", len(output.ByUser))
	}
	// Ordered by name.
	if output.ByUser[0].User.Name != "Ana" {
		t.Errorf("first user: got %s, want Ana", output.ByUser[0].User.Name)
	}
	if want := decimal.NewFromInt(1500); !output.ByUser[0].Total.Equal(want) {
		t.Errorf("Ana total: got %s, want %s", output.ByUser[0].Total, want)
	}
	if want := decimal.NewFromInt(700); !output.ByUser[1].Total.Equal(want) {
		t.Errorf("Bia total: got %s, want %s", output.ByUser[1].Total, want)
	}

	// Only months with contributions appear, ascending.
	if len(output.ByMonth) != 2 {
		t.Fatalf("expected 2 month totals, got %d", len(output.ByMonth))
	}
	if output.ByMonth[0].Month != 1 || !output.ByMonth[0].Total.Equal(decimal.NewFromInt(1700)) {
		t.Errorf("january total: got month %d value %s", output.ByMonth[0].Month, output.ByMonth[0].Total)
	}
	if output.ByMonth[1].Month != 4 || !output.ByMonth[1].Total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("april total: got month %d value %s", output.ByMonth[1].Month, output.ByMonth[1].Total)
	}
}

func TestGetTotalsFiltersByUser(t *testing.T) {
	ana := entity.NewUser("Ana", "ana@example.com", "hash", entity.UserRoleInvestor)
	bia := entity.NewUser("Bia", "bia@example.com", "hash", entity.UserRoleInvestor)

	repo := newFakeContributionRepo(ana, bia)
	repo.Create(context.Background(), entity.NewContribution(ana.ID, decimal.NewFromInt(1000), date(2024, time.January, 10), ""))
	repo.Create(context.Background(), entity.NewContribution(bia.ID, decimal.NewFromInt(700), date(2024, time.January, 15), ""))

	uc := NewGetTotalsUseCase(repo)
	output, err := uc.Execute(context.Background(), GetTotalsInput{Year: 2024, UserID: &ana.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := decimal.NewFromInt(1000); !output.GrandTotal.Equal(want) {
		t.Errorf("grand total: got %s, want %s", output.GrandTotal, want)
	}
	if len(output.ByUser) != 1 || output.ByUser[0].User.Name != "Ana" {
		t.Fatalf("expected only Ana in user totals, got %d entries", len(output.ByUser))
	}
}

func TestGetTotalsDefaultsToCurrentYear(t *testing.T) {
	ana := entity.NewUser("Ana", "ana@example.com", "hash", entity.UserRoleInvestor)

	repo := newFakeContributionRepo(ana)
	repo.Create(context.Background(), entity.NewContribution(ana.ID, decimal.NewFromInt(300), date(2025, time.June, 1), ""))

	uc := NewGetTotalsUseCase(repo)
	output, err := uc.Execute(context.Background(), GetTotalsInput{Now: date(2025, time.August, 15)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Year != 2025 {
		t.Errorf("year: got %d, want 2025", output.Year)
	}
	if want := decimal.NewFromInt(300); !output.GrandTotal.Equal(want) {
		t.Errorf("grand total: got %s, want %s", output.GrandTotal, want)
	}
}
