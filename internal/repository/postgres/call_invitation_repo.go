package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"thestream/internal/domain"
)

// schema has no unique constraint on id: duplicate invitations coexist the
// same way they do in the in-memory registry. seq preserves insertion order.
const callInvitationsSchema = `
	CREATE TABLE IF NOT EXISTS call_invitations (
		seq        BIGSERIAL PRIMARY KEY,
		id         TEXT NOT NULL,
		from_user  TEXT NOT NULL,
		to_user    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS call_invitations_to_user_idx ON call_invitations (to_user);
	CREATE INDEX IF NOT EXISTS call_invitations_id_idx ON call_invitations (id);
`

type callInvitationRepository struct {
	DB *sql.DB
}

// NewCallInvitationRepository returns a CallRegistry backed by Postgres.
// Serialization of concurrent operations is left to the database.
func NewCallInvitationRepository(db *sql.DB) domain.CallRegistry {
	return &callInvitationRepository{DB: db}
}

// EnsureSchema creates the call_invitations table and its indexes if missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, callInvitationsSchema); err != nil {
		return fmt.Errorf("ensure call_invitations schema: %w", err)
	}
	return nil
}

func (r *callInvitationRepository) Start(ctx context.Context, inv *domain.CallInvitation) error {
	query := `
		INSERT INTO call_invitations (id, from_user, to_user)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, inv.ID, inv.From, inv.To)
	return err
}

func (r *callInvitationRepository) ListFor(ctx context.Context, user string) ([]*domain.CallInvitation, error) {
	query := `
		SELECT id, from_user, to_user
		FROM call_invitations
		WHERE to_user = $1
		ORDER BY seq ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invs := []*domain.CallInvitation{}
	for rows.Next() {
		inv := &domain.CallInvitation{}
		if err := rows.Scan(&inv.ID, &inv.From, &inv.To); err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invs, nil
}

func (r *callInvitationRepository) End(ctx context.Context, id string) error {
	query := `DELETE FROM call_invitations WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}
