// Command createadmin bootstraps the shop administrator account. It is meant
// to be run once against a fresh database; rerunning with an existing
// username fails instead of overwriting credentials.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"printdesk/config"
	"printdesk/internal/domain/entity"
	"printdesk/internal/domain/repository"
	"printdesk/internal/infra/auth"
	logs "printdesk/internal/infra/log"
	"printdesk/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

func main() {
	username := flag.String("username", "admin", "admin login username")
	password := flag.String("password", "admin123", "admin login password")
	shopName := flag.String("shop-name", "College Xerox Shop", "shop display name, printed on payment QR codes")
	phone := flag.String("phone", "+919876543210", "shop contact number")
	upiID := flag.String("upi-id", "xeroxshop@upi", "shop UPI payment address")
	flag.Parse()

	if err := run(*username, *password, *shopName, *phone, *upiID); err != nil {
		slog.Error("Failed to create admin", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(username, password, shopName, phone, upiID string) error {
	ctx := context.Background()

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "init logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "open database")
	}

	adminRepo := postgres.NewAdminRepository(db)
	if _, err := adminRepo.FindByUsername(ctx, username); err == nil {
		return errors.Errorf("admin %q already exists", username)
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "check existing admin")
	}

	hasher := auth.NewBcryptHasher(cfg)
	hash, err := hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	admin := &entity.Admin{
		Username:     username,
		PasswordHash: hash,
		ShopName:     shopName,
		PhoneNumber:  phone,
		UPIID:        upiID,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "create admin")
	}

	logger.Info("Admin account created",
		slog.String("username", username),
		slog.String("shopName", shopName),
	)

	return nil
}
