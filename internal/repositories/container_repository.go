package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "cargocal/internal/models/db_models"
)

// ContainerRepository reads shipment display data. Containers are
// owned by another part of the system; this subsystem never writes them.
type ContainerRepository interface {
	GetContainerByID(ctx context.Context, containerID uuid.UUID) (*dbm.Container, error)
	ListContainers(ctx context.Context) ([]dbm.Container, error)
}

type containerRepository struct {
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &containerRepository{db: db}
}

func (r *containerRepository) GetContainerByID(ctx context.Context, containerID uuid.UUID) (*dbm.Container, error) {
	var container dbm.Container
	err := r.db.WithContext(ctx).First(&container, "id = ?", containerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &container, nil
}

func (r *containerRepository) ListContainers(ctx context.Context) ([]dbm.Container, error) {
	var containers []dbm.Container
	err := r.db.WithContext(ctx).Order("codigo ASC").Find(&containers).Error
	if err != nil {
		return nil, err
	}
	return containers, nil
}
