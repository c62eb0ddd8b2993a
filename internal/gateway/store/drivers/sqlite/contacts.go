package sqlite

import (
	"context"
	"database/sql"

	"github.com/campuslink/wpsgate/internal/gateway/domain"
)

type contactsRepo struct {
	db *sql.DB
}

const contactColumns = `id, display_name, role, external_number, external_union_id,
	org_unit_name, major_name, class_name, created_at, updated_at`

func (r *contactsRepo) GetContactByUnionID(ctx context.Context, unionID string) (domain.Contact, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE external_union_id = ?`,
		unionID,
	)
	return scanContact(row)
}

func (r *contactsRepo) CreateContact(ctx context.Context, c domain.Contact) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (
			id, display_name, role, external_number, external_union_id,
			org_unit_name, major_name, class_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.DisplayName, c.Role, c.ExternalNumber, c.ExternalUnionID,
		mapStringNull(c.OrgUnitName), mapStringNull(c.MajorName), mapStringNull(c.ClassName),
	)
	return mapConstraint(err)
}

func (r *contactsRepo) DeleteContact(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	return err
}

func (r *contactsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanContact(row *sql.Row) (domain.Contact, error) {
	var (
		c                               domain.Contact
		orgUnitName, majorName, className sql.NullString
	)

	err := row.Scan(
		&c.ID, &c.DisplayName, &c.Role, &c.ExternalNumber, &c.ExternalUnionID,
		&orgUnitName, &majorName, &className, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Contact{}, mapNotFound(err)
	}

	c.OrgUnitName = mapNullString(orgUnitName)
	c.MajorName = mapNullString(majorName)
	c.ClassName = mapNullString(className)
	return c, nil
}
