package roles

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"career-backend/internal/match"
)

const defaultRole = "Software Engineer"

// Registry maps role names to required-skill templates. Lookups are
// case-insensitive. It implements match.RoleRegistry and is plain
// configuration data: the gap analyzer reads it but does not own it.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]match.RoleTemplate
	fallback  match.RoleTemplate
}

// NewRegistry returns a registry preloaded with the built-in templates.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]match.RoleTemplate, len(builtinTemplates))}
	for _, t := range builtinTemplates {
		r.templates[normalizeRole(t.Role)] = t
	}
	r.fallback = r.templates[normalizeRole(defaultRole)]
	return r
}

// Template resolves a role name to its template.
func (r *Registry) Template(role string) (match.RoleTemplate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[normalizeRole(role)]
	return t, ok
}

// Default returns the fallback template used for unknown or unset roles.
func (r *Registry) Default() match.RoleTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Roles lists the registered role names.
func (r *Registry) Roles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t.Role)
	}
	return out
}

// Register adds or replaces a template. Empty roles or empty skill lists
// are rejected.
func (r *Registry) Register(t match.RoleTemplate) error {
	if strings.TrimSpace(t.Role) == "" {
		return fmt.Errorf("role template: role name is required")
	}
	if len(t.Skills) == 0 {
		return fmt.Errorf("role template %q: at least one skill is required", t.Role)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[normalizeRole(t.Role)] = t
	return nil
}

// LoadFile merges templates from a JSON file over the built-ins. The file
// holds an array of {role, skills:[{name, priority}]} objects.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load role templates %s: %w", path, err)
	}
	var templates []match.RoleTemplate
	if err := json.Unmarshal(data, &templates); err != nil {
		return fmt.Errorf("load role templates %s: %w", path, err)
	}
	for _, t := range templates {
		if err := r.Register(t); err != nil {
			return fmt.Errorf("load role templates %s: %w", path, err)
		}
	}
	return nil
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
