package store

// SQL query constants. All SQL lives here — PostgresStore methods
// reference these constants.

const (
	queryGetItem = `
		SELECT status, sold_on, sold_at, cleanup
		FROM inventory_items
		WHERE item_id = $1`

	queryUpsertItem = `
		INSERT INTO inventory_items (item_id, status, sold_on, sold_at, cleanup, updated_at)
		VALUES (@item_id, @status, @sold_on, @sold_at, @cleanup, now())
		ON CONFLICT (item_id) DO UPDATE SET
			status = EXCLUDED.status,
			sold_on = EXCLUDED.sold_on,
			sold_at = EXCLUDED.sold_at,
			cleanup = EXCLUDED.cleanup,
			updated_at = now()`

	queryAppendAudit = `
		INSERT INTO audit_log (occurred_at, event, item_id, platform, mode)
		VALUES (@occurred_at, @event, @item_id, @platform, @mode)`
)
