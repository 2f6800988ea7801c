package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lbi-bank/ods-console/internal/models"
)

// Seed writes target the console's own access-control tables, never
// lbi_ods. Duplicate names surface as models.ErrSeedConflict so the
// provisioning batch can abort.

func (r *Repository) CreatePermission(ctx context.Context, p *models.Permission) error {
	defer observe("create_permission", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `INSERT INTO permissions (name, module, created_at) VALUES ($1, $2, NOW()) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, p.Name, p.Module).Scan(&p.ID, &p.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("permission %q: %w", p.Name, models.ErrSeedConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create permission: %w", err)
	}
	return nil
}

func (r *Repository) CreateRole(ctx context.Context, role *models.Role) error {
	defer observe("create_role", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `INSERT INTO roles (name, description, created_at) VALUES ($1, $2, NOW()) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, role.Name, role.Description).Scan(&role.ID, &role.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("role %q: %w", role.Name, models.ErrSeedConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *Repository) CreateAdminUser(ctx context.Context, u *models.AdminUser) error {
	defer observe("create_admin_user", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `INSERT INTO users (id, name, email, created_at) VALUES ($1, $2, $3, NOW()) RETURNING created_at`
	err := r.db.QueryRow(ctx, query, u.ID, u.Name, u.Email).Scan(&u.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %q: %w", u.Name, models.ErrSeedConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *Repository) AssignPermissionToRole(ctx context.Context, roleID, permissionID int64) error {
	defer observe("assign_permission_to_role", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, roleID, permissionID)
	if isUniqueViolation(err) {
		return fmt.Errorf("role %d permission %d: %w", roleID, permissionID, models.ErrSeedConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to assign permission to role: %w", err)
	}
	return nil
}

func (r *Repository) AssignRoleToUser(ctx context.Context, userID, roleID int64) error {
	defer observe("assign_role_to_user", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, userID, roleID)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %d role %d: %w", userID, roleID, models.ErrSeedConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to assign role to user: %w", err)
	}
	return nil
}

// ListRolePermissions returns the permission names attached to a role,
// used by provisioning verification and role administration.
func (r *Repository) ListRolePermissions(ctx context.Context, roleName string) ([]string, error) {
	defer observe("list_role_permissions", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `
		SELECT p.name
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		JOIN roles ro ON ro.id = rp.role_id
		WHERE ro.name = $1
		ORDER BY p.name
	`
	rows, err := r.db.Query(ctx, query, roleName)
	if err != nil {
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan permission name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
