package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Ornaments table - the pickable photo ornaments hung on the tree
		`CREATE TABLE IF NOT EXISTS ornaments (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			image_path TEXT NOT NULL DEFAULT '',
			x REAL NOT NULL,
			y REAL NOT NULL,
			z REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Scene events table - transition and pick history
		`CREATE TABLE IF NOT EXISTS scene_events (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL CHECK(kind IN ('transition', 'pick')),
			from_state TEXT NOT NULL DEFAULT '',
			to_state TEXT NOT NULL DEFAULT '',
			ornament_id TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_scene_events_created_at ON scene_events(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
