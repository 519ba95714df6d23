package usecase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"main/apperror"
	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"
)

// NoteService implements the owner-scoped note operations.
type NoteService struct {
	NoteRepo *repository.NoteRepo
}

// normalizeTags trims surrounding whitespace from each tag. Order and
// duplicates are preserved; a nil slice becomes an empty one.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized = append(normalized, strings.TrimSpace(tag))
	}
	return normalized
}

func parseOwnerID(userID string) (primitive.ObjectID, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// The subject of a token we issued is always a valid hex ID, so
		// this only fires for tokens signed with tampered claims.
		return primitive.NilObjectID, apperror.ErrInvalidToken
	}
	return ownerID, nil
}

// ListNotes returns all notes owned by userID, newest created first.
func (s *NoteService) ListNotes(ctx context.Context, userID string) ([]dto.NoteResponse, error) {
	ownerID, err := parseOwnerID(userID)
	if err != nil {
		return nil, err
	}

	notes, err := s.NoteRepo.GetUserNotes(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("list")
	return dto.ToNoteResponses(notes), nil
}

// CreateNote validates and stores a new note for userID.
func (s *NoteService) CreateNote(ctx context.Context, userID string, req dto.NoteRequest) (*dto.NoteResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("Title is required")
	}

	ownerID, err := parseOwnerID(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	note := &model.Note{
		UserID:    ownerID,
		Title:     title,
		Content:   req.Content,
		Tags:      normalizeTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.NoteRepo.CreateNote(ctx, note)
	if err != nil {
		return nil, err
	}
	note.ID = id

	utils.TrackNoteOperation("create")
	response := dto.ToNoteResponse(note)
	return &response, nil
}

// UpdateNote replaces title, content and tags of the caller's note. A
// failed validation leaves the stored note untouched; a note owned by
// another user yields the same not-found error as an absent one.
func (s *NoteService) UpdateNote(ctx context.Context, userID, noteID string, req dto.NoteRequest) (*dto.NoteResponse, error) {
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, apperror.ErrInvalidNoteID
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("Title is required")
	}

	ownerID, err := parseOwnerID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.NoteRepo.UpdateNote(ctx, id, ownerID, title, req.Content, normalizeTags(req.Tags), time.Now().UTC()); err != nil {
		return nil, err
	}

	updated, err := s.NoteRepo.GetNote(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("update")
	response := dto.ToNoteResponse(updated)
	return &response, nil
}

// DeleteNote removes the caller's note under the same ownership condition
// as UpdateNote.
func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return apperror.ErrInvalidNoteID
	}

	ownerID, err := parseOwnerID(userID)
	if err != nil {
		return err
	}

	if err := s.NoteRepo.DeleteNote(ctx, id, ownerID); err != nil {
		return err
	}

	utils.TrackNoteOperation("delete")
	return nil
}
