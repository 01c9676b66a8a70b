package events

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
	"github.com/clarasbuffet/CBF-BookingService/pkg/psqlbuilder"
)

// Repository хранилище событий в PostgreSQL. Self-hosted альтернатива
// Google Calendar: тот же интерфейс ListEvents / InsertEvent, выбирается
// через calendar.backend = "postgres".
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListEvents возвращает события, пересекающиеся с [from, to),
// отсортированные по началу.
func (r *Repository) ListEvents(ctx context.Context, from, to time.Time) ([]*domain.BookedEvent, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"description",
		"location",
		"start_time",
		"end_time",
	).
		From("events").
		Where(squirrel.And{
			squirrel.Lt{"start_time": to},
			squirrel.Gt{"end_time": from},
		}).
		OrderBy("start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.BookedEvent
	for rows.Next() {
		var evt domain.BookedEvent
		var id int64

		if err := rows.Scan(&id, &evt.Title, &evt.Description, &evt.Location, &evt.Start, &evt.End); err != nil {
			return nil, fmt.Errorf("%w: ListEvents - scan row: %v", ErrScanRow, err)
		}

		evt.ID = strconv.FormatInt(id, 10)
		result = append(result, &evt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEvents - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// InsertEvent сохраняет новое событие.
func (r *Repository) InsertEvent(ctx context.Context, evt *domain.BookedEvent) error {
	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"title",
			"description",
			"location",
			"start_time",
			"end_time",
		).
		Values(
			evt.Title,
			evt.Description,
			evt.Location,
			evt.Start,
			evt.End,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: InsertEvent - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return fmt.Errorf("%w: InsertEvent - execute insert: %v", ErrExecQuery, err)
	}

	evt.ID = strconv.FormatInt(id, 10)
	return nil
}
