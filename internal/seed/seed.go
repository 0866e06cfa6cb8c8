package seed

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/gorm"
)

// Run inserts the demo users and services on an empty database so a
// fresh install is immediately usable. A non-empty users table means
// the database was already initialized and seeding is skipped.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		slog.Info("database already initialized, skipping seed", "users", count)
		return nil
	}

	users := []models.User{
		{ID: uuid.New(), Name: "Иван Петров", Phone: "+79991112233", Role: models.RoleOperator},
		{ID: uuid.New(), Name: "Сергей Сидоров", Phone: "+79992223344", Role: models.RoleMaster},
		{ID: uuid.New(), Name: "Клиент Иванов", Phone: "+79993334455", Role: models.RoleClient},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	services := []models.Service{
		{ID: uuid.New(), Name: "Замена масла", Price: 2500},
		{ID: uuid.New(), Name: "Замена фильтров", Price: 1500},
		{ID: uuid.New(), Name: "Диагностика", Price: 500},
		{ID: uuid.New(), Name: "Полировка", Price: 5000},
	}
	if err := db.Create(&services).Error; err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}

	slog.Info("demo data seeded", "users", len(users), "services", len(services))
	return nil
}
