package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SetItemImage stores an item's photo. Photos live in their own table
// rather than inside the inventory payload so every stock mutation
// doesn't re-serialize megabytes of image data.
func (s *Store) SetItemImage(ctx context.Context, itemID string, data []byte, mime string) error {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("setting image for item %s: %w", itemID, ErrNotFound)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO item_images (item_id, data, mime) VALUES (?, ?, ?)
		 ON CONFLICT (item_id) DO UPDATE SET data = excluded.data, mime = excluded.mime`,
		itemID, data, mime,
	)
	if err != nil {
		return fmt.Errorf("saving item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's photo and MIME type, or nil data if
// the item has none.
func (s *Store) GetItemImage(ctx context.Context, itemID string) ([]byte, string, error) {
	var data []byte
	var mime string
	err := s.db.QueryRowContext(ctx,
		`SELECT data, mime FROM item_images WHERE item_id = ?`, itemID,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return data, mime, nil
}

func (s *Store) deleteItemImage(ctx context.Context, itemID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM item_images WHERE item_id = ?`, itemID,
	)
	if err != nil {
		return fmt.Errorf("deleting item image: %w", err)
	}
	return nil
}
