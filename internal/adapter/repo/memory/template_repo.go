// Package memory provides in-process stand-ins for the persistent repos,
// used when no database is configured and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"swarmdeck/internal/app/ports"
)

// DefaultTemplates is the built-in template catalog used when nothing else
// seeds the store.
func DefaultTemplates() map[string]string {
	return map[string]string{
		"standard patrol":   "patrol the assigned area along the standard route and report anomalies",
		"area surveillance": "maintain continuous surveillance over the assigned area",
		"target search":     "sweep the assigned area until the designated target is located",
		"emergency rescue":  "proceed to the incident location and extract personnel",
		"supply transport":  "deliver the assigned payload to the destination point",
	}
}

type TemplateRepo struct {
	mu        sync.RWMutex
	templates map[string]string
}

func NewTemplateRepo(templates map[string]string) *TemplateRepo {
	if templates == nil {
		templates = DefaultTemplates()
	}
	copied := make(map[string]string, len(templates))
	for k, v := range templates {
		copied[k] = v
	}
	return &TemplateRepo{templates: copied}
}

func (r *TemplateRepo) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *TemplateRepo) Content(ctx context.Context, name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	content, ok := r.templates[name]
	if !ok {
		return "", ports.ErrNotFound
	}
	return content, nil
}
