package storage

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
)

// CurrentVersion is the schema version this build reads and writes
const CurrentVersion = 2

// versionTableSince is the first version that records itself in app_info
const versionTableSince = 2

// migrationStep upgrades a store from version N to N+1 inside a transaction.
// A step may assume only that the store is at version N.
type migrationStep func(tx *gorm.DB) error

// migrationSteps[n] upgrades version n to n+1
var migrationSteps = []migrationStep{
	migrateCreateTables,
	migrateVersionTableAndSoftDelete,
}

// Migrate brings the store up to CurrentVersion. Each step runs in its own
// transaction; a failed step leaves the store at the last completed version
// and the error wraps domain.ErrMigration.
func Migrate(db *gorm.DB) error {
	version, err := DetectVersion(db)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMigration, err)
	}

	if version > CurrentVersion {
		return fmt.Errorf("%w: store is at version %d, this build supports %d", domain.ErrUnsupportedVersion, version, CurrentVersion)
	}

	for version < CurrentVersion {
		logging.Logger.Info("Migrating store schema", "from", version, "to", version+1)
		if err := ApplyStep(db, version); err != nil {
			logging.Logger.Error("Schema migration failed", "from", version, "error", err)
			return err
		}
		version++
	}

	return nil
}

// DetectVersion reads the recorded schema version. Stores older than the
// version table are recognised structurally: no time_blocks table means an
// empty store (0), otherwise a legacy store (1).
func DetectVersion(db *gorm.DB) (int, error) {
	migrator := db.Migrator()

	if migrator.HasTable(&AppInfoModel{}) {
		var info AppInfoModel
		err := db.Where("key = ?", "version").First(&info).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: app_info has no version record", domain.ErrIntegrity)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read version from app_info: %w", err)
		}

		version, err := strconv.Atoi(info.Value)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid version %q in app_info", domain.ErrIntegrity, info.Value)
		}
		return version, nil
	}

	if migrator.HasTable(&BlockModel{}) {
		return 1, nil
	}
	return 0, nil
}

// ApplyStep runs the single upgrade from version `from` to from+1
func ApplyStep(db *gorm.DB, from int) error {
	if from < 0 || from >= len(migrationSteps) {
		return fmt.Errorf("%w: no migration from version %d", domain.ErrMigration, from)
	}

	err := withRetry(func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			if err := migrationSteps[from](tx); err != nil {
				return err
			}
			if from+1 >= versionTableSince {
				return recordVersion(tx, from+1)
			}
			return nil
		})
	}, 3)
	if err != nil {
		return fmt.Errorf("%w: step %d -> %d: %w", domain.ErrMigration, from, from+1, err)
	}
	return nil
}

func recordVersion(tx *gorm.DB, version int) error {
	err := tx.Exec(
		`INSERT INTO app_info (key, value) VALUES ('version', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.Itoa(version),
	).Error
	if err != nil {
		return fmt.Errorf("failed to record version %d: %w", version, err)
	}
	return nil
}

func execAll(tx *gorm.DB, statements []string) error {
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("%w\n%s", err, stmt)
		}
	}
	return nil
}

// migrateCreateTables (0 -> 1) creates the original schema: a text "Y" sentinel
// marks protected tags and the running block, and UNIQUE on the running column
// allows only one row to carry it
func migrateCreateTables(tx *gorm.DB) error {
	return execAll(tx, []string{
		`CREATE TABLE "tags" (
			"id"        INTEGER NOT NULL,
			"name"      TEXT NOT NULL UNIQUE,
			"protected" TEXT CHECK("protected" = 'Y'),
			PRIMARY KEY("id")
		)`,
		`CREATE TABLE "time_blocks" (
			"id"      INTEGER,
			"start"   TEXT NOT NULL,
			"end"     TEXT NOT NULL,
			"running" TEXT CHECK("running" = 'Y') UNIQUE,
			"tag"     INTEGER,
			FOREIGN KEY("tag") REFERENCES "tags"("id"),
			PRIMARY KEY("id")
		)`,
	})
}

// migrateVersionTableAndSoftDelete (1 -> 2) adds app_info, swaps the tag
// "protected" marker for a "to_delete" soft-delete flag, and rebuilds
// time_blocks with a boolean running column guarded by a partial unique index.
// AUTOINCREMENT keeps deleted block ids from being reused.
func migrateVersionTableAndSoftDelete(tx *gorm.DB) error {
	return execAll(tx, []string{
		`CREATE TABLE "app_info" (
			"id"    INTEGER PRIMARY KEY,
			"key"   TEXT NOT NULL UNIQUE,
			"value" TEXT NOT NULL
		)`,
		`ALTER TABLE "tags" ADD COLUMN "to_delete" INTEGER NOT NULL DEFAULT 0 CHECK("to_delete" IN (0, 1))`,
		`ALTER TABLE "tags" DROP COLUMN "protected"`,
		`CREATE TABLE "time_blocks_v2" (
			"id"      INTEGER PRIMARY KEY AUTOINCREMENT,
			"start"   TEXT NOT NULL,
			"end"     TEXT NOT NULL,
			"running" INTEGER NOT NULL DEFAULT 0 CHECK("running" IN (0, 1)),
			"tag"     INTEGER REFERENCES "tags"("id")
		)`,
		`INSERT INTO "time_blocks_v2" ("id", "start", "end", "running", "tag")
			SELECT "id", "start", "end", CASE WHEN "running" = 'Y' THEN 1 ELSE 0 END, "tag"
			FROM "time_blocks"`,
		`DROP TABLE "time_blocks"`,
		`ALTER TABLE "time_blocks_v2" RENAME TO "time_blocks"`,
		`CREATE UNIQUE INDEX "idx_time_blocks_single_running" ON "time_blocks"("running") WHERE "running" = 1`,
		`CREATE INDEX "idx_time_blocks_start" ON "time_blocks"("start")`,
	})
}
