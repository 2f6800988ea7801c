package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lbi-bank/ods-console/internal/models"
	"github.com/lbi-bank/ods-console/internal/observability"
	"github.com/lbi-bank/ods-console/internal/repository"
)

// Store is the transactional boundary the seeder runs inside.
type Store interface {
	RunInTx(ctx context.Context, fn func(r *repository.Repository) error) error
}

// Seeder provisions the access-control catalog. One shot: the whole batch
// runs in a single transaction and any duplicate name aborts it. There is
// no re-run contract; provisioning an already-seeded database is a
// models.ErrSeedConflict.
type Seeder struct {
	store   Store
	catalog *Catalog
	logger  *zap.Logger
}

func NewSeeder(store Store, catalog *Catalog, logger *zap.Logger) *Seeder {
	return &Seeder{store: store, catalog: catalog, logger: logger}
}

// Run inserts permissions, roles, role-permission links, users and
// user-role links.
func (s *Seeder) Run(ctx context.Context) error {
	runID := uuid.New().String()
	log := s.logger.With(zap.String("seed_run_id", runID))
	log.Info("provisioning access-control catalog",
		zap.Int("catalog_version", s.catalog.Version),
		zap.Int("permissions", len(s.catalog.AllPermissions())),
		zap.Int("roles", len(s.catalog.Roles)),
		zap.Int("users", len(s.catalog.Users)),
	)

	err := s.store.RunInTx(ctx, func(r *repository.Repository) error {
		permissionIDs, err := s.seedPermissions(ctx, r, log)
		if err != nil {
			return err
		}
		roleIDs, err := s.seedRoles(ctx, r, permissionIDs, log)
		if err != nil {
			return err
		}
		return s.seedUsers(ctx, r, roleIDs, log)
	})
	if err != nil {
		log.Error("provisioning aborted, batch rolled back", zap.Error(err))
		return fmt.Errorf("seed access-control catalog: %w", err)
	}

	log.Info("provisioning complete")
	return nil
}

func (s *Seeder) seedPermissions(ctx context.Context, r *repository.Repository, log *zap.Logger) (map[string]int64, error) {
	moduleOf := s.catalog.PermissionModule()
	ids := make(map[string]int64)
	for _, name := range s.catalog.AllPermissions() {
		p := &models.Permission{Name: name, Module: moduleOf[name]}
		if err := r.CreatePermission(ctx, p); err != nil {
			return nil, err
		}
		ids[name] = p.ID
	}
	observability.IncrementSeedRows("permission", len(ids))
	log.Info("permissions seeded", zap.Int("count", len(ids)))
	return ids, nil
}

func (s *Seeder) seedRoles(ctx context.Context, r *repository.Repository, permissionIDs map[string]int64, log *zap.Logger) (map[string]int64, error) {
	ids := make(map[string]int64)
	links := 0
	for _, entry := range s.catalog.Roles {
		role := &models.Role{Name: entry.Name, Description: entry.Description}
		if err := r.CreateRole(ctx, role); err != nil {
			return nil, err
		}
		ids[entry.Name] = role.ID

		for _, perm := range s.catalog.RolePermissions(entry) {
			permID, ok := permissionIDs[perm]
			if !ok {
				return nil, fmt.Errorf("role %q references unseeded permission %q", entry.Name, perm)
			}
			if err := r.AssignPermissionToRole(ctx, role.ID, permID); err != nil {
				return nil, err
			}
			links++
		}
	}
	observability.IncrementSeedRows("role", len(ids))
	observability.IncrementSeedRows("role_permission", links)
	log.Info("roles seeded", zap.Int("roles", len(ids)), zap.Int("links", links))
	return ids, nil
}

func (s *Seeder) seedUsers(ctx context.Context, r *repository.Repository, roleIDs map[string]int64, log *zap.Logger) error {
	links := 0
	for _, entry := range s.catalog.Users {
		u := &models.AdminUser{ID: entry.ID, Name: entry.Name, Email: entry.Email}
		if err := r.CreateAdminUser(ctx, u); err != nil {
			return err
		}
		for _, roleName := range entry.Roles {
			roleID, ok := roleIDs[roleName]
			if !ok {
				return fmt.Errorf("user %q references unseeded role %q", entry.Name, roleName)
			}
			if err := r.AssignRoleToUser(ctx, u.ID, roleID); err != nil {
				return err
			}
			links++
		}
	}
	observability.IncrementSeedRows("user", len(s.catalog.Users))
	observability.IncrementSeedRows("user_role", links)
	log.Info("users seeded", zap.Int("users", len(s.catalog.Users)), zap.Int("links", links))
	return nil
}
