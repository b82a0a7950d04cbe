package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Ronyah390/bitcointalk-dashboard/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore reads the scraper's document collections: "users",
// "campaigns" and "leaderboard". The document shapes mirror what the
// ingestion job writes.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// boardDoc is one live leaderboard document, holding a user's merit total
// for every window plus their display name.
type boardDoc struct {
	UserID    int64  `bson:"userId"`
	Username  string `bson:"username"`
	Merit7d   int    `bson:"merit7d"`
	Merit30d  int    `bson:"merit30d"`
	Merit90d  int    `bson:"merit90d"`
	Merit120d int    `bson:"merit120d"`
}

func (d boardDoc) meritFor(w models.Window) int {
	switch w {
	case models.Window7d:
		return d.Merit7d
	case models.Window30d:
		return d.Merit30d
	case models.Window90d:
		return d.Merit90d
	case models.Window120d:
		return d.Merit120d
	}
	return 0
}

// OpenMongo connects to the document store.
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	opts := options.Client().ApplyURI(uri).SetMaxPoolSize(20)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoStore{client: client, db: client.Database(database)}, nil
}

func (s *MongoStore) findUsers(ctx context.Context, filter bson.D, sort bson.D) ([]models.UserRecord, error) {
	cursor, err := s.db.Collection("users").Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	users := []models.UserRecord{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// ListUsers returns every user record, highest merit first.
func (s *MongoStore) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	return s.findUsers(ctx, bson.D{}, bson.D{{Key: "merit", Value: -1}})
}

// ListActiveSince returns users active at or after cutoff, most recent first.
func (s *MongoStore) ListActiveSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error) {
	filter := bson.D{{Key: "lastScrapedAt", Value: bson.D{{Key: "$gte", Value: cutoff}}}}
	return s.findUsers(ctx, filter, bson.D{{Key: "lastScrapedAt", Value: -1}})
}

// ListPromotedSince returns users promoted at or after cutoff, most recent first.
func (s *MongoStore) ListPromotedSince(ctx context.Context, cutoff time.Time) ([]models.UserRecord, error) {
	filter := bson.D{{Key: "promotedAt", Value: bson.D{{Key: "$gte", Value: cutoff}}}}
	return s.findUsers(ctx, filter, bson.D{{Key: "promotedAt", Value: -1}})
}

// ListCampaigns returns the tracked signature campaigns.
func (s *MongoStore) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	cursor, err := s.db.Collection("campaigns").Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	campaigns := []models.Campaign{}
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *MongoStore) boardDocs(ctx context.Context) ([]boardDoc, error) {
	cursor, err := s.db.Collection("leaderboard").Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	docs := []boardDoc{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	return docs, nil
}

// WindowMerits projects one window's merit feed out of the leaderboard
// documents.
func (s *MongoStore) WindowMerits(ctx context.Context, w models.Window) ([]models.MeritWindowEntry, error) {
	docs, err := s.boardDocs(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]models.MeritWindowEntry, len(docs))
	for i, d := range docs {
		entries[i] = models.MeritWindowEntry{UserID: d.UserID, Merit: d.meritFor(w)}
	}
	return entries, nil
}

// Usernames returns the user id to display name directory.
func (s *MongoStore) Usernames(ctx context.Context) (map[int64]string, error) {
	docs, err := s.boardDocs(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(docs))
	for _, d := range docs {
		if d.Username != "" {
			names[d.UserID] = d.Username
		}
	}
	return names, nil
}

// Ping checks the connection.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *MongoStore) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.client.Disconnect(ctx)
}
