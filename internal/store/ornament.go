package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/he824231-sketch/merry-christmas/internal/scene"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Ornament represents a photo ornament hung on the tree. Position is the
// ornament's resting spot in world space when the tree is formed.
type Ornament struct {
	ID        string
	Label     string
	ImagePath string
	Position  scene.Vec3
	CreatedAt time.Time
}

// OrnamentRepository provides CRUD operations for ornaments.
type OrnamentRepository struct {
	db *sql.DB
}

// Ornaments returns the ornament repository for this store.
func (s *Store) Ornaments() *OrnamentRepository {
	return &OrnamentRepository{db: s.db}
}

// Create inserts a new ornament into the database.
func (r *OrnamentRepository) Create(o *Ornament) error {
	o.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO ornaments (id, label, image_path, x, y, z, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Label, o.ImagePath, o.Position.X, o.Position.Y, o.Position.Z, o.CreatedAt,
	)
	return err
}

// GetByID retrieves an ornament by its ID.
func (r *OrnamentRepository) GetByID(id string) (*Ornament, error) {
	o := &Ornament{}

	err := r.db.QueryRow(
		`SELECT id, label, image_path, x, y, z, created_at
		 FROM ornaments WHERE id = ?`,
		id,
	).Scan(&o.ID, &o.Label, &o.ImagePath, &o.Position.X, &o.Position.Y, &o.Position.Z, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return o, nil
}

// List retrieves all ornaments in insertion order. The picker relies on
// this order being stable for tie-breaking.
func (r *OrnamentRepository) List() ([]*Ornament, error) {
	rows, err := r.db.Query(
		`SELECT id, label, image_path, x, y, z, created_at
		 FROM ornaments ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ornaments []*Ornament
	for rows.Next() {
		o := &Ornament{}
		err := rows.Scan(&o.ID, &o.Label, &o.ImagePath, &o.Position.X, &o.Position.Y, &o.Position.Z, &o.CreatedAt)
		if err != nil {
			return nil, err
		}
		ornaments = append(ornaments, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ornaments, nil
}

// Update updates an existing ornament in the database.
func (r *OrnamentRepository) Update(o *Ornament) error {
	result, err := r.db.Exec(
		`UPDATE ornaments SET label = ?, image_path = ?, x = ?, y = ?, z = ?
		 WHERE id = ?`,
		o.Label, o.ImagePath, o.Position.X, o.Position.Y, o.Position.Z, o.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an ornament from the database by its ID.
func (r *OrnamentRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM ornaments WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Candidates converts the full catalog into the picker's candidate list.
func (r *OrnamentRepository) Candidates() ([]scene.Candidate, error) {
	ornaments, err := r.List()
	if err != nil {
		return nil, err
	}

	candidates := make([]scene.Candidate, len(ornaments))
	for i, o := range ornaments {
		candidates[i] = scene.Candidate{ID: o.ID, Position: o.Position}
	}
	return candidates, nil
}
