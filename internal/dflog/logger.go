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

package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// CoreLogger logs datasets, models and the server.
	CoreLogger *zap.SugaredLogger

	// GinLogger logs REST requests.
	GinLogger *zap.SugaredLogger

	// GormLogger logs database statements.
	GormLogger *zap.SugaredLogger

	// TrainLogger logs training tasks.
	TrainLogger *zap.SugaredLogger

	// Loggers used by SugaredLoggerOnWith skip one more frame.
	coreWithLogger  *zap.SugaredLogger
	trainWithLogger *zap.SugaredLogger
)

func init() {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	log, err := config.Build(zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1))
	if err == nil {
		setSugaredLoggers(log.Sugar())
	}
	levels = append(levels, config.Level)
}

// SetLevel updates all log level.
func SetLevel(level zapcore.Level) {
	Infof("change log level to %s", level.String())
	for _, l := range levels {
		l.SetLevel(level)
	}
}

func setSugaredLoggers(log *zap.SugaredLogger) {
	SetCoreLogger(log)
	SetGinLogger(log)
	SetGormLogger(log)
	SetTrainLogger(log)
}

func SetCoreLogger(log *zap.SugaredLogger) {
	CoreLogger = log
	coreWithLogger = log.Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar()
}

func SetGinLogger(log *zap.SugaredLogger) {
	GinLogger = log
}

func SetGormLogger(log *zap.SugaredLogger) {
	GormLogger = log
}

func SetTrainLogger(log *zap.SugaredLogger) {
	TrainLogger = log
	trainWithLogger = log.Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// SugaredLoggerOnWith logs with the key-value pairs of its context.
type SugaredLoggerOnWith struct {
	withArgs []any
	train    bool
}

func With(args ...any) *SugaredLoggerOnWith {
	return &SugaredLoggerOnWith{withArgs: args}
}

func WithModel(modelID uint) *SugaredLoggerOnWith {
	return With("modelID", modelID)
}

func WithDataSet(dataSetID uint) *SugaredLoggerOnWith {
	return With("dataSetID", dataSetID)
}

func WithModelAndDataSet(modelID, dataSetID uint) *SugaredLoggerOnWith {
	return With("modelID", modelID, "dataSetID", dataSetID)
}

// WithTrainTask writes to the train logger.
func WithTrainTask(modelID uint, taskID string) *SugaredLoggerOnWith {
	return &SugaredLoggerOnWith{
		withArgs: []any{"modelID", modelID, "taskID", taskID},
		train:    true,
	}
}

func (log *SugaredLoggerOnWith) With(args ...any) *SugaredLoggerOnWith {
	return &SugaredLoggerOnWith{
		withArgs: append(append([]any{}, log.withArgs...), args...),
		train:    log.train,
	}
}

func (log *SugaredLoggerOnWith) Infof(template string, args ...any) {
	log.logw(zap.InfoLevel, func() string { return fmt.Sprintf(template, args...) })
}

func (log *SugaredLoggerOnWith) Info(args ...any) {
	log.logw(zap.InfoLevel, func() string { return fmt.Sprint(args...) })
}

func (log *SugaredLoggerOnWith) Warnf(template string, args ...any) {
	log.logw(zap.WarnLevel, func() string { return fmt.Sprintf(template, args...) })
}

func (log *SugaredLoggerOnWith) Warn(args ...any) {
	log.logw(zap.WarnLevel, func() string { return fmt.Sprint(args...) })
}

func (log *SugaredLoggerOnWith) Errorf(template string, args ...any) {
	log.logw(zap.ErrorLevel, func() string { return fmt.Sprintf(template, args...) })
}

func (log *SugaredLoggerOnWith) Error(args ...any) {
	log.logw(zap.ErrorLevel, func() string { return fmt.Sprint(args...) })
}

func (log *SugaredLoggerOnWith) Debugf(template string, args ...any) {
	log.logw(zap.DebugLevel, func() string { return fmt.Sprintf(template, args...) })
}

// logw formats the message only when level is enabled.
func (log *SugaredLoggerOnWith) logw(level zapcore.Level, msg func() string) {
	base := coreWithLogger
	if log.train {
		base = trainWithLogger
	}

	if !base.Desugar().Core().Enabled(level) {
		return
	}

	switch level {
	case zap.DebugLevel:
		base.Debugw(msg(), log.withArgs...)
	case zap.InfoLevel:
		base.Infow(msg(), log.withArgs...)
	case zap.WarnLevel:
		base.Warnw(msg(), log.withArgs...)
	default:
		base.Errorw(msg(), log.withArgs...)
	}
}

func Infof(template string, args ...any) {
	CoreLogger.Infof(template, args...)
}

func Info(args ...any) {
	CoreLogger.Info(args...)
}

func Warnf(template string, args ...any) {
	CoreLogger.Warnf(template, args...)
}

func Warn(args ...any) {
	CoreLogger.Warn(args...)
}

func Errorf(template string, args ...any) {
	CoreLogger.Errorf(template, args...)
}

func Error(args ...any) {
	CoreLogger.Error(args...)
}

func Debugf(template string, args ...any) {
	CoreLogger.Debugf(template, args...)
}

func Fatalf(template string, args ...any) {
	CoreLogger.Fatalf(template, args...)
}
