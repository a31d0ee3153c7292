package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
	"github.com/controle-financeiro/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.CardModel{},
		&model.ExpenseModel{},
		&model.ContributionModel{},
		&model.RefreshTokenModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUserAndCategory(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID) {
	t.Helper()

	user := &model.UserModel{
		ID:           uuid.New(),
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "x",
		Role:         string(entity.UserRoleInvestor),
		Active:       true,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	category := &model.CategoryModel{
		ID:        uuid.New(),
		Name:      "Mercado",
		Color:     "#4285F4",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	return user.ID, category.ID
}

func testExpense(categoryID, payerID uuid.UUID, due time.Time) *entity.Expense {
	return &entity.Expense{
		ID:           uuid.New(),
		Description:  "Compra do mês",
		CategoryID:   categoryID,
		TotalValue:   decimal.NewFromInt(300),
		DividedValue: decimal.NewFromInt(150),
		PurchaseDate: due.AddDate(0, 0, -5),
		DueDate:      due,
		PaidByID:     payerID,
		Status:       entity.ExpenseStatusPending,
		Kind:         entity.ExpenseKindSingle,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

func TestExpenseRepositoryCreateWithChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	userID, categoryID := seedUserAndCategory(t, db)

	parent := testExpense(categoryID, userID, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	parent.Kind = entity.ExpenseKindInstallment
	parent.InstallmentTotal = 3
	parent.InstallmentCurrent = 1

	children := make([]*entity.Expense, 0, 2)
	for i := 2; i <= 3; i++ {
		child := testExpense(categoryID, userID, parent.DueDate.AddDate(0, 0, 30*(i-1)))
		child.Kind = entity.ExpenseKindInstallment
		child.InstallmentTotal = 3
		child.InstallmentCurrent = i
		child.ParentID = &parent.ID
		children = append(children, child)
	}

	if err := repo.CreateWithChildren(ctx, parent, children); err != nil {
		t.Fatalf("CreateWithChildren returned error: %v", err)
	}

	count, err := repo.CountChildren(ctx, parent.ID, nil)
	if err != nil {
		t.Fatalf("CountChildren returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("got %d children, want 2", count)
	}

	// Nil parent inserts only children, for generation on an existing record.
	extra := testExpense(categoryID, userID, parent.DueDate.AddDate(0, 0, 90))
	extra.ParentID = &parent.ID
	if err := repo.CreateWithChildren(ctx, nil, []*entity.Expense{extra}); err != nil {
		t.Fatalf("CreateWithChildren with nil parent returned error: %v", err)
	}

	count, err = repo.CountChildren(ctx, parent.ID, nil)
	if err != nil {
		t.Fatalf("CountChildren returned error: %v", err)
	}
	if count != 3 {
		t.Errorf("got %d children after generation, want 3", count)
	}
}

func TestExpenseRepositoryFindByCardAndWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	userID, categoryID := seedUserAndCategory(t, db)

	card := &model.CardModel{
		ID:         uuid.New(),
		Name:       "Nubank",
		ClosingDay: 10,
		DueDay:     17,
		UserID:     userID,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to seed card: %v", err)
	}

	after := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	purchases := []time.Time{
		after,                     // on the lower bound, excluded
		after.AddDate(0, 0, 1),    // inside
		until,                     // on the upper bound, included
		until.AddDate(0, 0, 1),    // outside
		after.AddDate(0, 0, 15),   // inside
	}
	for _, purchase := range purchases {
		expense := testExpense(categoryID, userID, purchase.AddDate(0, 1, 0))
		expense.PurchaseDate = purchase
		expense.CardID = &card.ID
		if err := repo.Create(ctx, expense); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	got, err := repo.FindByCardAndWindow(ctx, card.ID, after, until)
	if err != nil {
		t.Fatalf("FindByCardAndWindow returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d expenses in window, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].PurchaseDate.Before(got[i-1].PurchaseDate) {
			t.Errorf("expenses not ordered by purchase date at index %d", i)
		}
	}
}

func TestExpenseRepositoryFindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	userID, categoryID := seedUserAndCategory(t, db)

	january := testExpense(categoryID, userID, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	january.Description = "Internet fibra"
	february := testExpense(categoryID, userID, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	february.Description = "Luz"
	february.Status = entity.ExpenseStatusPaid

	for _, e := range []*entity.Expense{january, february} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	got, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{Month: 1, Year: 2024})
	if err != nil {
		t.Fatalf("FindByFilter returned error: %v", err)
	}
	if len(got) != 1 || got[0].Expense.Description != "Internet fibra" {
		t.Fatalf("month filter: got %d expenses, want only the January one", len(got))
	}
	if got[0].Category == nil || got[0].Category.Name != "Mercado" {
		t.Error("expected the category relation to be loaded")
	}

	paid := entity.ExpenseStatusPaid
	got, err = repo.FindByFilter(ctx, adapter.ExpenseFilter{Status: &paid})
	if err != nil {
		t.Fatalf("FindByFilter returned error: %v", err)
	}
	if len(got) != 1 || got[0].Expense.Description != "Luz" {
		t.Fatalf("status filter: got %d expenses, want only the paid one", len(got))
	}

	got, err = repo.FindByFilter(ctx, adapter.ExpenseFilter{Search: "FIBRA"})
	if err != nil {
		t.Fatalf("FindByFilter returned error: %v", err)
	}
	if len(got) != 1 || got[0].Expense.Description != "Internet fibra" {
		t.Fatalf("search filter: got %d expenses, want the case-insensitive match", len(got))
	}
}

func TestExpenseRepositoryDeleteWithChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	userID, categoryID := seedUserAndCategory(t, db)

	parent := testExpense(categoryID, userID, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	children := []*entity.Expense{
		testExpense(categoryID, userID, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		testExpense(categoryID, userID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
	}
	for _, child := range children {
		child.ParentID = &parent.ID
	}
	if err := repo.CreateWithChildren(ctx, parent, children); err != nil {
		t.Fatalf("CreateWithChildren returned error: %v", err)
	}

	removed, err := repo.DeleteWithChildren(ctx, parent.ID)
	if err != nil {
		t.Fatalf("DeleteWithChildren returned error: %v", err)
	}
	if removed != 3 {
		t.Errorf("got %d removed records, want 3", removed)
	}

	if _, err := repo.FindByID(ctx, parent.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("got %v, want ErrExpenseNotFound after cascade delete", err)
	}

	if _, err := repo.DeleteWithChildren(ctx, parent.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("got %v, want ErrExpenseNotFound for a missing parent", err)
	}
}

func TestExpenseRepositorySums(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	userID, categoryID := seedUserAndCategory(t, db)

	total, err := repo.SumDividedPaid(ctx)
	if err != nil {
		t.Fatalf("SumDividedPaid returned error: %v", err)
	}
	if !total.IsZero() {
		t.Errorf("got %s on an empty table, want 0", total)
	}

	paid := testExpense(categoryID, userID, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	paid.Status = entity.ExpenseStatusPaid
	paid.TotalValue = decimal.NewFromFloat(199.90)
	paid.DividedValue = decimal.NewFromFloat(99.95)
	pending := testExpense(categoryID, userID, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))

	for _, e := range []*entity.Expense{paid, pending} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	total, err = repo.SumDividedPaid(ctx)
	if err != nil {
		t.Fatalf("SumDividedPaid returned error: %v", err)
	}
	if !total.Equal(decimal.NewFromFloat(99.95)) {
		t.Errorf("got %s, want 99.95 (pending expenses excluded)", total)
	}

	byUser, err := repo.SumTotalPaidBy(ctx, userID)
	if err != nil {
		t.Fatalf("SumTotalPaidBy returned error: %v", err)
	}
	if !byUser.Equal(decimal.NewFromFloat(199.90)) {
		t.Errorf("got %s, want 199.90", byUser)
	}
}
