package store

const (
	upsertProperty = `
		INSERT INTO config_properties (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	selectProperty = `
		SELECT value
		FROM config_properties
		WHERE key = ?;`

	selectAllKeys = `
		SELECT key
		FROM config_properties
		ORDER BY key;`

	deleteAllProperties = `
		DELETE FROM config_properties;`
)
