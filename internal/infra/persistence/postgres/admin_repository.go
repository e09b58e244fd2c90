package postgres

import (
	"context"

	"printdesk/internal/domain/entity"
	domainerrors "printdesk/internal/domain/errors"
	"printdesk/internal/domain/repository"
	"printdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByID retrieves a single admin by their unique ID.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&adminM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	return toAdminDomain(&adminM), nil
}

// FindByUsername retrieves a single admin by their login username.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&adminM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return toAdminDomain(&adminM), nil
}

// FindShopAdmin retrieves the shop's admin account. When several admin
// records exist the oldest one wins, so payment QR codes stay stable.
func (repo *adminRepository) FindShopAdmin(ctx context.Context) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		First(&adminM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop admin")
	}

	return toAdminDomain(&adminM), nil
}

// Create persists a new admin entity to the database.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("username already exists")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// toAdminDomain maps a persistence model to the pure domain entity.
func toAdminDomain(adminM *model.AdminModel) *entity.Admin {
	return &entity.Admin{
		ID:           adminM.ID,
		Username:     adminM.Username,
		PasswordHash: adminM.PasswordHash,
		ShopName:     adminM.ShopName,
		PhoneNumber:  adminM.PhoneNumber,
		UPIID:        adminM.UPIID,
		CreatedAt:    adminM.CreatedAt,
		UpdatedAt:    adminM.UpdatedAt,
	}
}

// fromAdminDomain maps a domain entity to its persistence model.
func fromAdminDomain(admin *entity.Admin) *model.AdminModel {
	return &model.AdminModel{
		ID:           admin.ID,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
		ShopName:     admin.ShopName,
		PhoneNumber:  admin.PhoneNumber,
		UPIID:        admin.UPIID,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
}
