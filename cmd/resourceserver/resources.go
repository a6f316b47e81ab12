// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/xmidt-org/resourceserver/resource"
	"github.com/xmidt-org/resourceserver/resource/resourcehttp"
	"github.com/xmidt-org/resourceserver/xmetrics"
	"github.com/xmidt-org/resourceserver/xviper"
	"go.uber.org/zap"
)

const (
	// ResourcesKey is the Viper key holding the Resources configuration
	ResourcesKey = "resources"

	DefaultLoadTimeout = 2 * time.Minute
)

// Resources describes where resources come from and how they are held
type Resources struct {
	// Sources are composed into a single filesystem, each mounted at its prefix
	Sources []resource.Factory `json:"sources"`

	// Lazy reads each resource from the sources at request time instead of loading everything
	// into memory at startup
	Lazy bool `json:"lazy"`

	// Classifications forces the classification of file extensions, e.g. {".conf": "text"}
	Classifications map[string]resource.Classification `json:"classifications"`

	// LoadTimeout bounds opening the sources and, unless Lazy, loading them
	LoadTimeout time.Duration `json:"loadTimeout"`
}

// NewResources unmarshals the Resources configuration
func NewResources(v *viper.Viper) (Resources, error) {
	r := Resources{LoadTimeout: DefaultLoadTimeout}
	if err := xviper.UnmarshalKey(v, ResourcesKey, &r); err != nil {
		return Resources{}, err
	}

	if r.LoadTimeout <= 0 {
		r.LoadTimeout = DefaultLoadTimeout
	}

	return r, nil
}

// classifier produces the Classifier with normalized extension keys
func (r Resources) classifier() *resource.Classifier {
	c := new(resource.Classifier)
	if len(r.Classifications) > 0 {
		c.Overrides = make(map[string]resource.Classification, len(r.Classifications))
		for ext, classification := range r.Classifications {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}

			c.Overrides[ext] = classification
		}
	}

	return c
}

// NewStore builds the Store from the configured sources
func NewStore(logger *zap.Logger, r Resources) (resource.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.LoadTimeout)
	defer cancel()

	fsys, err := resource.NewFS(ctx, r.Sources...)
	if err != nil {
		return nil, err
	}

	if r.Lazy {
		logger.Info("serving resources directly from sources", zap.Int("sources", len(r.Sources)))
		return resource.NewFSStore(fsys, r.classifier()), nil
	}

	ms, err := resource.Load(ctx, fsys, r.classifier())
	if err != nil {
		return nil, err
	}

	logger.Info("loaded resources", zap.Int("sources", len(r.Sources)), zap.Int("resources", ms.Len()))
	return ms, nil
}

// NewPrimaryHandler routes resource requests to the store
func NewPrimaryHandler(store resource.Store, registry xmetrics.Registry) http.Handler {
	return resourcehttp.NewRouter(
		resourcehttp.NewHandler(store, resourcehttp.NewMeasures(registry)),
	)
}
