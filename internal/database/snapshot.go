package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/store"
)

// Entity kinds stored in the entities table.
const (
	KindUser             = "user"
	KindSeller           = "seller"
	KindPost             = "post"
	KindEnterprise       = "enterprise"
	KindInboxItem        = "inbox_item"
	KindAccessConfig     = "access_config"
	KindMonetizationRule = "monetization_rule"
)

var ErrUserNotFound = errors.New("user not found")

type entityRow struct {
	kind     string
	id       string
	position int
	data     []byte
}

func encodeRows[T store.Record[T]](kind string, items []T) ([]entityRow, error) {
	out := make([]entityRow, 0, len(items))
	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s: %w", kind, item.GetID(), err)
		}
		out = append(out, entityRow{kind: kind, id: item.GetID(), position: i, data: data})
	}
	return out, nil
}

func snapshotRows(snap store.Snapshot) ([]entityRow, error) {
	var rows []entityRow
	add := func(r []entityRow, err error) error {
		if err != nil {
			return err
		}
		rows = append(rows, r...)
		return nil
	}
	if err := errors.Join(
		add(encodeRows(KindUser, snap.Users)),
		add(encodeRows(KindSeller, snap.Sellers)),
		add(encodeRows(KindPost, snap.Posts)),
		add(encodeRows(KindEnterprise, snap.Enterprises)),
		add(encodeRows(KindInboxItem, snap.Inbox)),
		add(encodeRows(KindAccessConfig, snap.AccessConfig)),
		add(encodeRows(KindMonetizationRule, snap.MonetizationRules)),
	); err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveSnapshot replaces the stored snapshot with snap in one transaction.
func (db *DB) SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	rows, err := snapshotRows(snap)
	if err != nil {
		return err
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM entities`); err != nil {
		return fmt.Errorf("failed to clear entities: %w", err)
	}
	for _, r := range rows {
		_, err := tx.Exec(ctx, `
			INSERT INTO entities (kind, id, position, data, updated_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (kind, id) DO UPDATE
			SET position = EXCLUDED.position, data = EXCLUDED.data, updated_at = NOW()
		`, r.kind, r.id, r.position, r.data)
		if err != nil {
			return fmt.Errorf("failed to save %s %s: %w", r.kind, r.id, err)
		}
	}

	return tx.Commit(ctx)
}

func decodeInto[T any](dst *[]T, kind string, data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", kind, err)
	}
	*dst = append(*dst, v)
	return nil
}

// LoadSnapshot reads the stored snapshot back in its saved order.
func (db *DB) LoadSnapshot(ctx context.Context) (store.Snapshot, error) {
	var snap store.Snapshot

	rows, err := db.Pool.Query(ctx, `SELECT kind, data FROM entities ORDER BY kind, position`)
	if err != nil {
		return snap, err
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var data []byte
		if err := rows.Scan(&kind, &data); err != nil {
			return snap, err
		}

		switch kind {
		case KindUser:
			err = decodeInto(&snap.Users, kind, data)
		case KindSeller:
			err = decodeInto(&snap.Sellers, kind, data)
		case KindPost:
			err = decodeInto(&snap.Posts, kind, data)
		case KindEnterprise:
			err = decodeInto(&snap.Enterprises, kind, data)
		case KindInboxItem:
			err = decodeInto(&snap.Inbox, kind, data)
		case KindAccessConfig:
			err = decodeInto(&snap.AccessConfig, kind, data)
		case KindMonetizationRule:
			err = decodeInto(&snap.MonetizationRules, kind, data)
		default:
			err = fmt.Errorf("unknown entity kind %q", kind)
		}
		if err != nil {
			return store.Snapshot{}, err
		}
	}

	return snap, rows.Err()
}

// PromoteToAdmin switches the stored user with email to the Admin persona.
func (db *DB) PromoteToAdmin(ctx context.Context, email string) error {
	result, err := db.Pool.Exec(ctx, `
		UPDATE entities
		SET data = jsonb_set(data, '{persona}', to_jsonb($1::text)), updated_at = NOW()
		WHERE kind = $2 AND lower(data->>'email') = lower($3)
	`, string(models.PersonaAdmin), KindUser, email)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
