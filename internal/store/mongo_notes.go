package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/models"
)

const (
	defaultMongoDatabase = "notesdb"
	notesCollection      = "notes"
)

// noteDocument is the BSON shape of a note.
type noteDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Title   string             `bson:"title"`
	Content string             `bson:"content"`
}

func (d noteDocument) toModel() models.Note {
	return models.Note{ID: d.ID.Hex(), Title: d.Title, Content: d.Content}
}

// mongoNoteStore is the MongoDB implementation of [NoteStore]. Documents
// live in the "notes" collection of the database named in the URL.
type mongoNoteStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewConnectMongo connects to the MongoDB deployment at uri and pings the
// primary.
func NewConnectMongo(ctx context.Context, uri string, log *logger.Logger) (NoteStore, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("invalid mongodb URL")
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}

	dbName := cs.Database
	if dbName == "" {
		dbName = defaultMongoDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", dbName).Msg("connected to database successfully")

	return newMongoNoteStore(client.Database(dbName).Collection(notesCollection), log), nil
}

func newMongoNoteStore(collection *mongo.Collection, log *logger.Logger) *mongoNoteStore {
	return &mongoNoteStore{
		client:     collection.Database().Client(),
		collection: collection,
		logger:     log,
	}
}

func (s *mongoNoteStore) List(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	cursor, err := s.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		log.Err(err).Str("func", "mongoNoteStore.List").Msg("failed to find notes")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	notes := make([]models.Note, 0, 16)
	for cursor.Next(ctx) {
		var doc noteDocument
		if err = cursor.Decode(&doc); err != nil {
			log.Err(err).Str("func", "mongoNoteStore.List").Msg("failed to decode note")
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		notes = append(notes, doc.toModel())
	}

	if err = cursor.Err(); err != nil {
		log.Err(err).Str("func", "mongoNoteStore.List").Msg("error occurred during cursor iteration")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return notes, nil
}

func (s *mongoNoteStore) Get(ctx context.Context, id string) (models.Note, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Note{}, ErrNoteNotFound
	}

	var doc noteDocument
	err = s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&doc)
	if err != nil {
		return models.Note{}, s.mapError(ctx, err, "mongoNoteStore.Get")
	}

	return doc.toModel(), nil
}

func (s *mongoNoteStore) Create(ctx context.Context, input models.NoteInput) (models.Note, error) {
	doc := noteDocument{ID: primitive.NewObjectID(), Title: input.Title, Content: input.Content}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return models.Note{}, s.mapError(ctx, err, "mongoNoteStore.Create")
	}

	return doc.toModel(), nil
}

func (s *mongoNoteStore) Update(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Note{}, ErrNoteNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: input.Title},
		{Key: "content", Value: input.Content},
	}}}

	var doc noteDocument
	err = s.collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: objectID}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return models.Note{}, s.mapError(ctx, err, "mongoNoteStore.Update")
	}

	return doc.toModel(), nil
}

func (s *mongoNoteStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoteNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	if err != nil {
		return s.mapError(ctx, err, "mongoNoteStore.Delete")
	}

	if result.DeletedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (s *mongoNoteStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *mongoNoteStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *mongoNoteStore) mapError(ctx context.Context, err error, fn string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoteNotFound
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Bool("network", mongo.IsNetworkError(err)).
		Bool("timeout", mongo.IsTimeout(err)).
		Msg("mongodb operation failed")

	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
