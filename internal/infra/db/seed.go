package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/controle-financeiro/backend/config"
	"github.com/controle-financeiro/backend/internal/application/adapter"
	"github.com/controle-financeiro/backend/internal/domain/entity"
	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// defaultCategories are created on first boot so expenses can be classified
// right away.
var defaultCategories = []struct {
	name        string
	description string
	color       string
}{
	{"Alimentação", "Gastos com alimentação", "#DB4437"},
	{"Transporte", "Gastos com transporte", "#F4B400"},
	{"Moradia", "Gastos com moradia", "#0F9D58"},
	{"Saúde", "Gastos com saúde", "#4285F4"},
	{"Educação", "Gastos com educação", "#AB47BC"},
	{"Lazer", "Gastos com lazer", "#00ACC1"},
	{"Serviços", "Gastos com serviços", "#FF7043"},
	{"Outros", "Outros gastos", "#9E9E9E"},
}

// Seed creates the default categories and the bootstrap admin user. It is
// idempotent: existing records are left untouched.
func Seed(
	ctx context.Context,
	cfg *config.SeedConfig,
	categoryRepo adapter.CategoryRepository,
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) error {
	for _, item := range defaultCategories {
		_, err := categoryRepo.FindByName(ctx, item.name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			return fmt.Errorf("failed to check category %q: %w", item.name, err)
		}

		category := entity.NewCategory(item.name, item.description, item.color)
		if err := categoryRepo.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", item.name, err)
		}
		slog.Info("Seeded default category", "name", item.name)
	}

	if cfg.AdminPassword == "" {
		return nil
	}

	_, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	passwordHash, err := passwordService.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.NewUser(cfg.AdminName, cfg.AdminEmail, passwordHash, entity.UserRoleAdmin)
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	slog.Info("Seeded admin user", "email", cfg.AdminEmail)

	return nil
}
