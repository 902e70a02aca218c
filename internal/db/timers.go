package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Timer is a reminder a user asked for with the timer command.
type Timer struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	ChannelID   string    `json:"channel_id"`
	GuildID     string    `json:"guild_id"`
	Description string    `json:"description"`
	DueAt       time.Time `json:"due_at"`
	CreatedAt   time.Time `json:"created_at"`
}

const timerColumns = `id, user_id, channel_id, guild_id, description, due_at, created_at`

func scanTimer(row pgx.Row) (Timer, error) {
	var t Timer
	err := row.Scan(&t.ID, &t.UserID, &t.ChannelID, &t.GuildID, &t.Description, &t.DueAt, &t.CreatedAt)
	return t, err
}

func (db *DB) AddTimer(ctx context.Context, userID, channelID, guildID, description string, dueAt time.Time) (*Timer, error) {
	t, err := scanTimer(db.pool.QueryRow(ctx,
		`INSERT INTO timers (user_id, channel_id, guild_id, description, due_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+timerColumns,
		userID, channelID, guildID, description, dueAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to add timer: %w", err)
	}
	return &t, nil
}

// DueTimers returns the timers whose due time is not after now, oldest first.
func (db *DB) DueTimers(ctx context.Context, now time.Time) ([]Timer, error) {
	return db.queryTimers(ctx,
		`SELECT `+timerColumns+` FROM timers WHERE due_at <= $1 ORDER BY due_at`,
		now,
	)
}

// ListTimersByUser returns the pending timers of a user, soonest first.
func (db *DB) ListTimersByUser(ctx context.Context, userID string) ([]Timer, error) {
	return db.queryTimers(ctx,
		`SELECT `+timerColumns+` FROM timers WHERE user_id = $1 ORDER BY due_at`,
		userID,
	)
}

func (db *DB) queryTimers(ctx context.Context, query string, args ...any) ([]Timer, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timers []Timer
	for rows.Next() {
		t, err := scanTimer(rows)
		if err != nil {
			return nil, err
		}
		timers = append(timers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return timers, nil
}

func (db *DB) DeleteTimer(ctx context.Context, id int64) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM timers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("timer not found")
	}
	return nil
}
