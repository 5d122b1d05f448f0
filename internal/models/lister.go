package models

import (
	"context"
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// Lister filters the catalog of a Source by generation method
type Lister struct {
	source Source
	method string
	logger *zap.Logger
}

// NewLister creates a new model lister. An empty method means GenerateContent.
func NewLister(source Source, method string, logger *zap.Logger) *Lister {
	if method == "" {
		method = GenerateContent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lister{
		source: source,
		method: method,
		logger: logger,
	}
}

// Method returns the generation method the lister filters on
func (l *Lister) Method() string {
	return l.method
}

// List fetches the catalog once and returns the names of the models that
// support the configured method. Any failure is returned as *RequestFailure.
func (l *Lister) List(ctx context.Context, credential string) (iter.Seq[string], error) {
	name := l.source.Name()

	if credential == "" {
		err := fmt.Errorf("%w. Set %s environment variable or configure in .modelcheck.yaml",
			ErrMissingCredential, CredentialEnv(name))
		return nil, newRequestFailure(name, credential, err)
	}

	l.logger.Debug("listing models", zap.String("source", name), zap.String("method", l.method))

	descriptors, err := l.source.Fetch(ctx, credential)
	if err != nil {
		failure := newRequestFailure(name, credential, err)
		l.logger.Debug("listing failed", zap.String("source", name), zap.String("error", failure.Error()))
		return nil, failure
	}

	l.logger.Debug("model catalog received", zap.String("source", name), zap.Int("models", len(descriptors)))

	// Names are checked up front so output never stops halfway
	for i, d := range descriptors {
		if d.Supports(l.method) && !d.HasName() {
			err := fmt.Errorf("missing field %q in model entry %d", "name", i)
			return nil, newRequestFailure(name, credential, err)
		}
	}

	return filterByMethod(descriptors, l.method), nil
}

func filterByMethod(descriptors []Descriptor, method string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, d := range descriptors {
			if !d.Supports(method) {
				continue
			}
			if !yield(d.Name) {
				return
			}
		}
	}
}
