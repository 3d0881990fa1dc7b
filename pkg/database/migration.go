package database

import (
	"errors"
	"fmt"
	"os"

	"github.com/Gobusters/ectologger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type MigrationLogger struct {
	ectologger.Logger
}

func (l MigrationLogger) Verbose() bool {
	return true
}

func (l MigrationLogger) Printf(format string, v ...any) {
	l.Infof(format, v...)
}

type MigrationConfig struct {
	// MigrationFolderPath is resolved relative to the working directory when
	// it does not exist as given.
	MigrationFolderPath string
	// Version pins the schema to a specific version; zero migrates to latest.
	Version uint
}

type MigrationService struct {
	config *MigrationConfig
	logger ectologger.Logger
}

func NewMigrationService(logger ectologger.Logger, config *MigrationConfig) *MigrationService {
	return &MigrationService{
		config: config,
		logger: logger,
	}
}

func (ms *MigrationService) resolveMigrationFolder() string {
	folder := ms.config.MigrationFolderPath
	if _, err := os.Stat(folder); err == nil {
		return folder
	}
	workingDirectory, _ := os.Getwd()
	return workingDirectory + "/" + folder
}

// Migrate applies pending migrations against the given database driver.
func (ms *MigrationService) Migrate(databaseName string, driver database.Driver) error {
	folder := ms.resolveMigrationFolder()
	if _, err := os.Stat(folder); err != nil {
		return fmt.Errorf("migration folder %s does not exist: %w", folder, err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+folder, databaseName, driver)
	if err != nil {
		ms.logger.WithError(err).Error("Failed to create migrate instance")
		return err
	}

	m.Log = MigrationLogger{Logger: ms.logger}

	if ms.config.Version != 0 {
		err = m.Migrate(ms.config.Version)
	} else {
		err = m.Up()
	}

	if errors.Is(err, migrate.ErrNoChange) {
		ms.logger.Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		version, dirty, versionErr := m.Version()
		if versionErr == nil {
			ms.logger.WithError(err).Errorf("Migration failed. Database dirty=%t at version %d", dirty, version)
		}
		return err
	}

	ms.logger.Info("Successfully applied migrations")
	return nil
}
