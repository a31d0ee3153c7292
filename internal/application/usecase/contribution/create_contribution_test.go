package contribution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

func TestCreateContribution(t *testing.T) {
	ana := entity.NewUser("Ana", "ana@example.com", "hash", entity.UserRoleInvestor)

	repo := newFakeContributionRepo(ana)
	cache := &fakeSummaryCache{}
	uc := NewCreateContributionUseCase(repo, newFakeUserRepo(ana), cache)

	output, err := uc.Execute(context.Background(), CreateContributionInput{
		UserID: ana.ID,
		Value:  decimal.NewFromInt(1500),
		Date:   date(2024, time.March, 1),
		Note:   "  aporte de março  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Contribution.Note != "aporte de março" {
		t.Errorf("note not trimmed: %q", output.Contribution.Note)
	}
	if _, err := repo.FindByID(context.Background(), output.Contribution.ID); err != nil {
		t.Errorf("contribution not persisted: %v", err)
	}
	if cache.invalidations != 1 {
		t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
	}
}

func TestCreateContributionValidation(t *testing.T) {
	ana := entity.NewUser("Ana", "ana@example.com", "hash", entity.UserRoleInvestor)

	tests := []struct {
		name     string
		input    CreateContributionInput
		wantCode domainerror.ContributionErrorCode
	}{
		{
			name: "zero value",
			input: CreateContributionInput{
				UserID: ana.ID,
				Value:  decimal.Zero,
				Date:   date(2024, time.March, 1),
			},
			wantCode: domainerror.ErrCodeInvalidContributionValue,
		},
		{
			name: "negative value",
			input: CreateContributionInput{
				UserID: ana.ID,
				Value:  decimal.NewFromInt(-10),
				Date:   date(2024, time.March, 1),
			},
			wantCode: domainerror.ErrCodeInvalidContributionValue,
		},
		{
			name: "missing date",
			input: CreateContributionInput{
				UserID: ana.ID,
				Value:  decimal.NewFromInt(100),
			},
			wantCode: domainerror.ErrCodeMissingContributionFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateContributionUseCase(newFakeContributionRepo(ana), newFakeUserRepo(ana), &fakeSummaryCache{})
			_, err := uc.Execute(context.Background(), tt.input)

			var contribErr *domainerror.ContributionError
			if !errors.As(err, &contribErr) {
				t.Fatalf("expected ContributionError, got %v", err)
			}
			if contribErr.Code != tt.wantCode {
				t.Errorf("code: got %s, want %s", contribErr.Code, tt.wantCode)
			}
		})
	}
}

func TestCreateContributionUnknownUser(t *testing.T) {
	uc := NewCreateContributionUseCase(newFakeContributionRepo(), newFakeUserRepo(), &fakeSummaryCache{})

	_, err := uc.Execute(context.Background(), CreateContributionInput{
		UserID: entity.NewUser("ghost", "ghost@example.com", "hash", entity.UserRoleInvestor).ID,
		Value:  decimal.NewFromInt(100),
		Date:   date(2024, time.March, 1),
	})

	var contribErr *domainerror.ContributionError
	if !errors.As(err, &contribErr) {
		t.Fatalf("expected ContributionError, got %v", err)
	}
	if contribErr.Code != domainerror.ErrCodeContributionUserMissing {
		t.Errorf("code: got %s, want %s", contribErr.Code, domainerror.ErrCodeContributionUserMissing)
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound in chain, got %v", err)
	}
}
