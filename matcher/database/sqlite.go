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
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"d7y.io/matcher/matcher/config"
)

func newSQLite(cfg *config.Config, dataDir string) (*gorm.DB, error) {
	path := cfg.Database.SQLite.Path
	if path == "" {
		path = filepath.Join(dataDir, config.DefaultSQLiteFileName)
	}

	// Writers are serialized by sqlite, one connection avoids busy errors.
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), gormConfig(cfg.Verbose))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	// Run migration.
	if err := migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}
