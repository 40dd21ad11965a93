package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/obazhan/sportclub/internal/domain"
)

// MessageRepository implements domain.MessageRepository using SQLite.
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new SQLite-backed MessageRepository.
func NewMessageRepository(db *DB) *MessageRepository {
	return &MessageRepository{db: db.SqlDB}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	now := time.Now().UTC()

	// Attachment-less messages store NULL, not an empty string.
	var image sql.NullString
	if message.Image != "" {
		image = sql.NullString{String: message.Image, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (sender_id, receiver_id, text, image, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		message.SenderID, message.ReceiverID, message.Text, image, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	message.ID = id
	message.CreatedAt = now
	message.UpdatedAt = now
	return nil
}

func (r *MessageRepository) ListBetween(ctx context.Context, userA, userB int64) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sender_id, receiver_id, text, image, created_at, updated_at
		 FROM messages
		 WHERE (sender_id = ? AND receiver_id = ?)
		    OR (sender_id = ? AND receiver_id = ?)
		 ORDER BY created_at, id`,
		userA, userB, userB, userA,
	)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		var image sql.NullString
		err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Text, &image,
			&m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Image = image.String
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
