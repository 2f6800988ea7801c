package seed

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Embedded(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, c.Version, 1)
	assert.NotEmpty(t, c.Modules)
	assert.NotEmpty(t, c.Roles)
	assert.NotEmpty(t, c.Users)

	perms := c.AllPermissions()
	assert.NotEmpty(t, perms)
	assert.True(t, sort.StringsAreSorted(perms))
}

func TestSuperAdminGetsFullCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	var superAdmin *RoleEntry
	for i := range c.Roles {
		if c.Roles[i].Name == "super-admin" {
			superAdmin = &c.Roles[i]
			break
		}
	}
	require.NotNil(t, superAdmin, "catalog must define super-admin")
	assert.True(t, superAdmin.AllPermissions)
	assert.Empty(t, superAdmin.Permissions, "super-admin is a computed union, not an enumerated list")
	assert.Equal(t, c.AllPermissions(), c.RolePermissions(*superAdmin))
}

func TestSuperAdminUnion_OrderIndependent(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	// Reverse the module order; the effective permission set must not move.
	reversed := *c
	reversed.Modules = make([]ModuleEntry, len(c.Modules))
	for i, m := range c.Modules {
		reversed.Modules[len(c.Modules)-1-i] = m
	}
	assert.Equal(t, c.AllPermissions(), reversed.AllPermissions())
}

func TestExplicitRolesOnlyReferenceKnownPermissions(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	known := make(map[string]struct{})
	for _, p := range c.AllPermissions() {
		known[p] = struct{}{}
	}
	for _, r := range c.Roles {
		for _, p := range r.Permissions {
			_, ok := known[p]
			assert.True(t, ok, "role %q references unknown permission %q", r.Name, p)
		}
	}
}

func TestParseCatalog_Validation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			name: "duplicate permission",
			yaml: `
version: 1
modules:
  - name: a
    permissions: [x.view, x.view]
`,
		},
		{
			name: "unknown role permission",
			yaml: `
version: 1
modules:
  - name: a
    permissions: [x.view]
roles:
  - name: r
    permissions: [y.view]
`,
		},
		{
			name: "role with no permissions",
			yaml: `
version: 1
modules:
  - name: a
    permissions: [x.view]
roles:
  - name: r
`,
		},
		{
			name: "duplicate role",
			yaml: `
version: 1
modules:
  - name: a
    permissions: [x.view]
roles:
  - name: r
    permissions: [x.view]
  - name: r
    permissions: [x.view]
`,
		},
		{
			name: "unknown user role",
			yaml: `
version: 1
modules:
  - name: a
    permissions: [x.view]
users:
  - id: 1
    name: u
    roles: [ghost]
`,
		},
		{
			name: "missing version",
			yaml: `
modules:
  - name: a
    permissions: [x.view]
`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseCatalog([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPermissionModule(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	byModule := c.PermissionModule()
	assert.Equal(t, "transactions", byModule["transaction.view"])
	assert.Equal(t, "kyc", byModule["kyc.view"])
}
