/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"fmt"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"moul.io/zapgorm2"

	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/config"
	"d7y.io/matcher/matcher/models"
)

type Database struct {
	DB *gorm.DB
}

// New opens the configured database, sqlite files default to dataDir.
func New(cfg *config.Config, dataDir string) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Type {
	case config.DatabaseTypeSQLite, "":
		db, err = newSQLite(cfg, dataDir)
	case config.DatabaseTypeMysql:
		db, err = newMysql(cfg)
	case config.DatabaseTypePostgres:
		db, err = newPostgres(cfg)
	default:
		return nil, fmt.Errorf("invalid database type %q", cfg.Database.Type)
	}
	if err != nil {
		return nil, err
	}

	return &Database{DB: db}, nil
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func gormConfig(verbose bool) *gorm.Config {
	// Initialize gorm logger.
	logLevel := gormlogger.Info
	if !verbose {
		logLevel = gormlogger.Warn
	}

	return &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   zapgorm2.New(logger.GormLogger.Desugar()).LogMode(logLevel),
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Dataset{},
		&models.Column{},
		&models.Model{},
	)
}
