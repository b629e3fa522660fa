// Package mongostore implements the quote repository on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen/quotebook-service/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook-service/internal/domain"
	"github.com/jsamuelsen/quotebook-service/internal/ports"
)

// ServiceName identifies this adapter in health checks, metrics and errors.
const ServiceName = "mongodb"

const defaultConnectTimeout = 10 * time.Second

// Config holds the connection settings.
type Config struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// document is the stored shape of a quote.
type document struct {
	ID       primitive.ObjectID `bson:"_id"`
	Category string             `bson:"category"`
	Quote    string             `bson:"quote"`
	Author   string             `bson:"author"`
}

func (d document) toDomain() domain.Quote {
	return domain.Quote{
		ID:       d.ID.Hex(),
		Category: d.Category,
		Text:     d.Quote,
		Author:   d.Author,
	}
}

// Store is a ports.QuoteRepository backed by one MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ ports.QuoteRepository = (*Store)(nil)

// Open connects, pings and prepares the collection. Every failure wraps
// storage.ErrStartup.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("%w: mongo connection string is not set", storage.ErrStartup)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to mongodb: %w", storage.ErrStartup, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: pinging mongodb: %w", storage.ErrStartup, err)
	}

	store := New(client, client.Database(cfg.Database).Collection(cfg.Collection))

	if err := store.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: creating indexes: %w", storage.ErrStartup, err)
	}

	logger.Info("connected to quote store",
		slog.String("store", ServiceName),
		slog.String("database", cfg.Database),
		slog.String("collection", cfg.Collection),
	)

	return store, nil
}

// New wraps an already connected client and collection.
func New(client *mongo.Client, coll *mongo.Collection) *Store {
	return &Store{client: client, coll: coll}
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: domain.FieldCategory, Value: 1}},
	})

	return err
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return ServiceName }

// Check pings the primary.
func (s *Store) Check(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Insert implements ports.QuoteRepository.
func (s *Store) Insert(ctx context.Context, draft domain.QuoteDraft) (domain.Quote, error) {
	doc := document{
		ID:       primitive.NewObjectID(),
		Category: draft.Category,
		Quote:    draft.Text,
		Author:   draft.Author,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return domain.Quote{}, unavailable("insert", err)
	}

	return doc.toDomain(), nil
}

// DistinctCategories implements ports.QuoteRepository.
func (s *Store) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := s.coll.Distinct(ctx, domain.FieldCategory, bson.D{})
	if err != nil {
		return nil, unavailable("distinct", err)
	}

	categories := make([]string, 0, len(values))

	for _, v := range values {
		if c, ok := v.(string); ok {
			categories = append(categories, c)
		}
	}

	return categories, nil
}

// SampleByCategory implements ports.QuoteRepository using a server-side
// $match + $sample pipeline.
func (s *Store) SampleByCategory(ctx context.Context, category string) (domain.Quote, bool, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: domain.FieldCategory, Value: category}}}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.Quote{}, false, unavailable("sample", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return domain.Quote{}, false, unavailable("sample", err)
		}

		return domain.Quote{}, false, nil
	}

	var doc document
	if err := cursor.Decode(&doc); err != nil {
		return domain.Quote{}, false, unavailable("sample", err)
	}

	return doc.toDomain(), true, nil
}

// UpdateByID implements ports.QuoteRepository with a single FindOneAndUpdate.
func (s *Store) UpdateByID(ctx context.Context, id string, patch domain.QuotePatch) (domain.Quote, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Quote{}, domain.NewNotFoundError(domain.EntityQuote, id)
	}

	set := bson.D{}
	if patch.Category != nil {
		set = append(set, bson.E{Key: domain.FieldCategory, Value: *patch.Category})
	}

	if patch.Text != nil {
		set = append(set, bson.E{Key: domain.FieldQuote, Value: *patch.Text})
	}

	if patch.Author != nil {
		set = append(set, bson.E{Key: domain.FieldAuthor, Value: *patch.Author})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc document

	err = s.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&doc)
	if err != nil {
		return domain.Quote{}, mapSingleResult(id, "update", err)
	}

	return doc.toDomain(), nil
}

// DeleteByID implements ports.QuoteRepository with a single FindOneAndDelete.
func (s *Store) DeleteByID(ctx context.Context, id string) (domain.Quote, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Quote{}, domain.NewNotFoundError(domain.EntityQuote, id)
	}

	var doc document

	err = s.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		return domain.Quote{}, mapSingleResult(id, "delete", err)
	}

	return doc.toDomain(), nil
}

func mapSingleResult(id, op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.NewNotFoundError(domain.EntityQuote, id)
	}

	return unavailable(op, err)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w", op, domain.NewUnavailableError(ServiceName, err.Error()))
}
