package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/apperror"
	"main/model"
	"main/utils"
)

const NotesCollection = "notes"

type NoteRepo struct {
	MongoCollection *mongo.Collection
}

func GetNoteRepo(client *mongo.Client, dbName string) *NoteRepo {
	return &NoteRepo{
		MongoCollection: client.Database(dbName).Collection(NotesCollection),
	}
}

// CreateNote inserts a new note and returns its generated ID.
func (r *NoteRepo) CreateNote(ctx context.Context, note *model.Note) (primitive.ObjectID, error) {
	timer := utils.TrackDBOperation("insert", NotesCollection)
	defer timer.ObserveDuration()

	if note.UserID.IsZero() {
		utils.TrackError("database", "missing_note_owner")
		return primitive.NilObjectID, errors.New("user ID is required")
	}

	result, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted ID type")
	}
	return id, nil
}

// GetUserNotes retrieves all notes owned by userID, newest created first.
func (r *NoteRepo) GetUserNotes(ctx context.Context, userID primitive.ObjectID) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", NotesCollection)
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "notes_list_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := make([]*model.Note, 0)
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote retrieves a single note scoped to its owner. A note owned by
// someone else is indistinguishable from an absent one.
func (r *NoteRepo) GetNote(ctx context.Context, noteID, userID primitive.ObjectID) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", NotesCollection)
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.ErrNoteNotFound
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces title, content and tags of the owner's note in a
// single document write. Last write wins for concurrent updates.
func (r *NoteRepo) UpdateNote(ctx context.Context, noteID, userID primitive.ObjectID, title, content string, tags []string, updatedAt time.Time) error {
	timer := utils.TrackDBOperation("update", NotesCollection)
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"title":      title,
			"content":    content,
			"tags":       tags,
			"updated_at": updatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		return apperror.ErrNoteNotFound
	}

	return nil
}

// DeleteNote removes the owner's note, under the same ownership condition
// as UpdateNote.
func (r *NoteRepo) DeleteNote(ctx context.Context, noteID, userID primitive.ObjectID) error {
	timer := utils.TrackDBOperation("delete", NotesCollection)
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		return apperror.ErrNoteNotFound
	}

	return nil
}
