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

package config

import "time"

const (
	// DatabaseTypeSQLite is the sqlite database type.
	DatabaseTypeSQLite = "sqlite"

	// DatabaseTypeMysql is the mysql database type.
	DatabaseTypeMysql = "mysql"

	// DatabaseTypePostgres is the postgres database type.
	DatabaseTypePostgres = "postgres"
)

const (
	// DefaultServerName is default server name.
	DefaultServerName = "matcher"

	// DefaultRESTAddr is default address for rest server.
	DefaultRESTAddr = ":8080"

	// DefaultMaxUploadSize is default limit of uploaded dataset files.
	DefaultMaxUploadSize = "64MB"
)

const (
	// DefaultLogRotateMaxSize is the default maximum size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is the default number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is the default number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DefaultSQLiteFileName is default file name of sqlite database under data dir.
	DefaultSQLiteFileName = "matcher.db"

	// DefaultMysqlPort is default port for mysql.
	DefaultMysqlPort = 3306

	// DefaultMysqlDBName is default db name for mysql.
	DefaultMysqlDBName = "matcher"

	// DefaultPostgresPort is default port for postgres.
	DefaultPostgresPort = 5432

	// DefaultPostgresDBName is default db name for postgres.
	DefaultPostgresDBName = "matcher"

	// DefaultPostgresSSLMode is default ssl mode for postgres.
	DefaultPostgresSSLMode = "disable"

	// DefaultPostgresTimezone is default timezone for postgres.
	DefaultPostgresTimezone = "UTC"
)

const (
	// DefaultDataSetSampleSize is default number of sampled values per column.
	DefaultDataSetSampleSize = 15
)

const (
	// DefaultTrainingConcurrency is default number of fits and inferences running at once.
	DefaultTrainingConcurrency = 2

	// DefaultTrainingNumBags is default number of trees in a model ensemble.
	DefaultTrainingNumBags = 10

	// DefaultTrainingSeed is default seed of resampling and bagging.
	DefaultTrainingSeed = 42

	// DefaultTrainingArtifactCacheTTL is default ttl of loaded classifiers.
	DefaultTrainingArtifactCacheTTL = 10 * time.Minute
)

const (
	// DefaultPredictionReportTTL is default ttl of prediction reports.
	DefaultPredictionReportTTL = 7 * 24 * time.Hour
)

const (
	// DefaultGCInterval is default interval of garbage collection.
	DefaultGCInterval = time.Hour

	// DefaultGCTimeout is default timeout of a garbage collection run.
	DefaultGCTimeout = 10 * time.Minute
)

const (
	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8000"
)
