package repository

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"main/apperror"
	"main/model"
	"main/utils"
)

const UsersCollection = "users"

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client, dbName string) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(dbName).Collection(UsersCollection),
	}
}

// AddUser inserts a new user and returns its generated ID. A duplicate
// email is rejected by the unique index and surfaced as ErrUserExists.
func (r *UserRepo) AddUser(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	timer := utils.TrackDBOperation("insert", UsersCollection)
	defer timer.ObserveDuration()

	if user.Email == "" || user.Password == "" {
		utils.TrackError("database", "invalid_user_data")
		return primitive.NilObjectID, errors.New("email and password required")
	}

	result, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.TrackError("database", "duplicate_email")
			return primitive.NilObjectID, apperror.ErrUserExists
		}
		utils.TrackError("database", "user_creation_failed")
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted ID type")
	}
	return id, nil
}

// FindUserByEmail returns the user with the given email, or nil when no
// user matches.
func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", UsersCollection)
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		log.Println("Error finding user:", err)
		return nil, err
	}

	return &user, nil
}

// FindUserByID returns the user with the given ID, or nil when absent.
func (r *UserRepo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	timer := utils.TrackDBOperation("find", UsersCollection)
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}
