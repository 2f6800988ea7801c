package seed

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is the declarative access-control matrix. It ships embedded; an
// override path lets provisioning load a site-specific copy.
type Catalog struct {
	Version int           `yaml:"version"`
	Modules []ModuleEntry `yaml:"modules"`
	Roles   []RoleEntry   `yaml:"roles"`
	Users   []UserEntry   `yaml:"users"`
}

type ModuleEntry struct {
	Name        string   `yaml:"name"`
	Permissions []string `yaml:"permissions"`
}

type RoleEntry struct {
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	AllPermissions bool     `yaml:"all_permissions"`
	Permissions    []string `yaml:"permissions"`
}

type UserEntry struct {
	ID    int64    `yaml:"id"`
	Name  string   `yaml:"name"`
	Email string   `yaml:"email"`
	Roles []string `yaml:"roles"`
}

// LoadCatalog parses and validates the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	return parseCatalog(embeddedCatalog)
}

// LoadCatalogFile parses and validates a catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// AllPermissions returns every permission in the catalog, sorted, so the
// super-admin union is independent of module ordering.
func (c *Catalog) AllPermissions() []string {
	var all []string
	for _, m := range c.Modules {
		all = append(all, m.Permissions...)
	}
	sort.Strings(all)
	return all
}

// PermissionModule maps each permission to its owning module.
func (c *Catalog) PermissionModule() map[string]string {
	byModule := make(map[string]string)
	for _, m := range c.Modules {
		for _, p := range m.Permissions {
			byModule[p] = m.Name
		}
	}
	return byModule
}

// RolePermissions resolves a role entry to its effective permission set:
// the full catalog for all_permissions roles, the explicit list otherwise.
func (c *Catalog) RolePermissions(role RoleEntry) []string {
	if role.AllPermissions {
		return c.AllPermissions()
	}
	perms := append([]string(nil), role.Permissions...)
	sort.Strings(perms)
	return perms
}

func (c *Catalog) validate() error {
	if c.Version < 1 {
		return fmt.Errorf("catalog version missing")
	}

	known := make(map[string]struct{})
	for _, m := range c.Modules {
		if m.Name == "" {
			return fmt.Errorf("module with empty name")
		}
		if len(m.Permissions) == 0 {
			return fmt.Errorf("module %q has no permissions", m.Name)
		}
		for _, p := range m.Permissions {
			if _, dup := known[p]; dup {
				return fmt.Errorf("duplicate permission %q", p)
			}
			known[p] = struct{}{}
		}
	}
	if len(known) == 0 {
		return fmt.Errorf("catalog has no permissions")
	}

	roleNames := make(map[string]struct{})
	for _, r := range c.Roles {
		if r.Name == "" {
			return fmt.Errorf("role with empty name")
		}
		if _, dup := roleNames[r.Name]; dup {
			return fmt.Errorf("duplicate role %q", r.Name)
		}
		roleNames[r.Name] = struct{}{}
		if !r.AllPermissions && len(r.Permissions) == 0 {
			return fmt.Errorf("role %q has no permissions", r.Name)
		}
		for _, p := range r.Permissions {
			if _, ok := known[p]; !ok {
				return fmt.Errorf("role %q references unknown permission %q", r.Name, p)
			}
		}
	}

	userIDs := make(map[int64]struct{})
	for _, u := range c.Users {
		if u.Name == "" {
			return fmt.Errorf("user with empty name")
		}
		if _, dup := userIDs[u.ID]; dup {
			return fmt.Errorf("duplicate user id %d", u.ID)
		}
		userIDs[u.ID] = struct{}{}
		for _, role := range u.Roles {
			if _, ok := roleNames[role]; !ok {
				return fmt.Errorf("user %q references unknown role %q", u.Name, role)
			}
		}
	}
	return nil
}
