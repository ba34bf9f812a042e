package handler

import (
	"fmt"
	"sort"
	"sync"

	"github.com/caseflow/caseflow/internal/model"
	caseflowerrors "github.com/caseflow/caseflow/pkg/errors"
)

// Registry maps step kinds to handlers. Registration happens before a run
// starts; mutating a registry concurrently with an in-flight run that uses
// it is not supported.
type Registry struct {
	mu       sync.RWMutex
	handlers map[model.StepKind]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[model.StepKind]Handler)}
}

// Register adds a handler for its declared kind.
func (r *Registry) Register(h Handler) error {
	if h == nil {
		return caseflowerrors.NewValidationError("handler", "handler is nil", nil)
	}
	kind := h.Kind()
	if kind == "" {
		return caseflowerrors.NewValidationError("handler", "handler kind is empty", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[kind]; exists {
		return caseflowerrors.NewValidationError(string(kind),
			fmt.Sprintf("handler already registered for kind %q", kind), nil)
	}

	r.handlers[kind] = h
	return nil
}

// Get retrieves the handler for a kind.
func (r *Registry) Get(kind model.StepKind) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[kind]
	if !ok {
		return nil, caseflowerrors.NewHandlerNotFoundError(string(kind))
	}
	return h, nil
}

// Kinds lists the registered step kinds in sorted order.
func (r *Registry) Kinds() []model.StepKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]model.StepKind, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
