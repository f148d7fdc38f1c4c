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

package classifier

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	logger "d7y.io/matcher/internal/dflog"
)

// Loader loads artifacts from files, loaded artifacts are cached by path and modification time.
type Loader struct {
	runtime *Runtime
	cache   *cache.Cache
	group   singleflight.Group
}

// NewLoader returns a loader keeping artifacts for ttl after their last load.
func NewLoader(runtime *Runtime, ttl time.Duration) *Loader {
	return &Loader{
		runtime: runtime,
		cache:   cache.New(ttl, 2*ttl),
	}
}

// Load returns the artifact stored at path.
func (l *Loader) Load(ctx context.Context, path string) (*Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%d", path, info.ModTime().UnixNano())
	if v, ok := l.cache.Get(key); ok {
		return v.(*Artifact), nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		artifact, err := DecodeArtifact(ctx, f, l.runtime)
		if err != nil {
			return nil, err
		}

		logger.Debugf("artifact %s loaded with %d trees", path, artifact.Classifier.NumTrees())
		l.cache.Set(key, artifact, cache.DefaultExpiration)
		return artifact, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Artifact), nil
}

// Store caches an artifact just written to path.
func (l *Loader) Store(path string, artifact *Artifact) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	l.cache.Set(fmt.Sprintf("%s:%d", path, info.ModTime().UnixNano()), artifact, cache.DefaultExpiration)
}

// Evict drops every cached artifact.
func (l *Loader) Evict() {
	l.cache.Flush()
}
