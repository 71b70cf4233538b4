package models

import (
	"context"
)

const createChatMessage = `
INSERT INTO chat_messages (id, project_id, user_id, body, created_at)
VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
RETURNING id, project_id, user_id, body, created_at
`

type CreateChatMessageParams struct {
	ID        string
	ProjectID string
	UserID    string
	Body      string
}

func (q *Queries) CreateChatMessage(ctx context.Context, arg CreateChatMessageParams) (ChatMessage, error) {
	row := q.db.QueryRowContext(ctx, createChatMessage, arg.ID, arg.ProjectID, arg.UserID, arg.Body)
	var m ChatMessage
	err := row.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Body, &m.CreatedAt)
	return m, err
}

const listChatMessages = `
SELECT id, project_id, user_id, body, created_at
FROM chat_messages WHERE project_id = ?
ORDER BY created_at DESC
LIMIT ?
`

type ListChatMessagesParams struct {
	ProjectID string
	Limit     int64
}

func (q *Queries) ListChatMessages(ctx context.Context, arg ListChatMessagesParams) ([]ChatMessage, error) {
	rows, err := q.db.QueryContext(ctx, listChatMessages, arg.ProjectID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []ChatMessage
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
