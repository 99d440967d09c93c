package db

import (
	"github.com/carelink-dev/carelink/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDatabase opens the store through the given dialector and keeps the
// handle in the package-level DB. TranslateError is on so unique-index
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func ConnectDatabase(dialector gorm.Dialector) error {
	var err error

	DB, err = gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		return err
	}

	return nil
}

// MigrateDatabase creates the schema, including the partial unique index
// over active mappings that backs the one-active-mapping-per-pair rule.
func MigrateDatabase() error {
	entities := []interface{}{
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.PatientDoctorMapping{},
	}

	migrator := DB.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := DB.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
