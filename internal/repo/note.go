package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripweaver/backend/internal/domain"
)

// NoteRepo defines the persistence operations for trip notes.
type NoteRepo interface {
	// Create inserts a new note and returns the persisted record.
	Create(ctx context.Context, note domain.Note) (domain.Note, error)

	// ListByTrip returns notes of a trip ordered by update time descending,
	// then creation time descending.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error)
}

type pgNoteRepo struct {
	db db
}

// NewNoteRepo constructs a NoteRepo backed by the provided db connection.
func NewNoteRepo(db db) NoteRepo {
	return &pgNoteRepo{db: db}
}

func (r *pgNoteRepo) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	const q = `
		INSERT INTO notes (trip_id, destination_id, day_id, title, content)
		VALUES (@trip_id, @destination_id, @day_id, @title, @content)
		RETURNING id, trip_id, destination_id, day_id, title, content, created_at, updated_at`

	args := pgx.NamedArgs{
		"trip_id":        note.TripID,
		"destination_id": note.DestinationID,
		"day_id":         note.DayID,
		"title":          note.Title,
		"content":        note.Content,
	}

	result, err := scanNote(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgNoteRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error) {
	const q = `
		SELECT id, trip_id, destination_id, day_id, title, content, created_at, updated_at
		FROM notes
		WHERE trip_id = @trip_id
		ORDER BY updated_at DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.NoteRepo.ListByTrip: scan: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.NoteRepo.ListByTrip: rows: %w", err)
	}
	return notes, nil
}

// scanNote maps a single database row into a domain.Note.
func scanNote(s scanner) (domain.Note, error) {
	var (
		n      domain.Note
		id     pgtype.UUID
		tripID pgtype.UUID
		destID pgtype.UUID
		dayID  pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &destID, &dayID, &n.Title, &n.Content,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return domain.Note{}, mapError(err)
	}

	n.ID = uuid.UUID(id.Bytes)
	n.TripID = uuid.UUID(tripID.Bytes)
	if destID.Valid {
		did := uuid.UUID(destID.Bytes)
		n.DestinationID = &did
	}
	if dayID.Valid {
		did := uuid.UUID(dayID.Bytes)
		n.DayID = &did
	}
	return n, nil
}
