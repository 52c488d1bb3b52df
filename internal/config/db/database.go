package db

import (
	"fmt"

	"github.com/Techluminate-Academy/bsn-directory/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the postgres connection backing the schema store. The handle is
// passed into the repository container rather than held as a package global.
func Init() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return gormDB, nil
}
