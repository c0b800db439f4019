package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/domain/models"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return db, nil
}

const taskOrderConstraint = "tasks_user_id_order_unique"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
	); err != nil {
		return err
	}

	// UNIQUE(user_id, "order") ต้องเป็น deferrable: the bulk move and
	// swap statements put a user's order values through transient
	// duplicates that only resolve at commit. AutoMigrate cannot
	// declare this, so it is raw DDL.
	if !db.Migrator().HasConstraint(&models.Task{}, taskOrderConstraint) {
		if err := db.Exec(
			`ALTER TABLE tasks ADD CONSTRAINT ` + taskOrderConstraint +
				` UNIQUE (user_id, "order") DEFERRABLE INITIALLY DEFERRED`,
		).Error; err != nil {
			return err
		}
	}

	return nil
}
