package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ldmoreira/fuellog/internal/apperr"
)

// ConnectMongo connects to MongoDB and verifies the connection with a ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// record is the document shape of the records collection: one document per
// storage key. The payload is stored as JSON text, not BSON, so numeric
// values round-trip without loss.
type record struct {
	Key  string `bson:"_id"`
	Data string `bson:"data"`
}

// MongoRecordStore implements RecordStore on a MongoDB collection.
type MongoRecordStore struct {
	Collection *mongo.Collection
}

// NewMongoRecordStore wraps the "records" collection of the given database.
func NewMongoRecordStore(database *mongo.Database) *MongoRecordStore {
	return &MongoRecordStore{Collection: database.Collection("records")}
}

// Get decodes the value stored under key into out.
func (s *MongoRecordStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	if s.Collection == nil {
		return false, apperr.NewStorage("get", key, fmt.Errorf("mongo collection is nil"))
	}
	var rec record
	err := s.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, apperr.NewStorage("get", key, err)
	}
	if err := json.Unmarshal([]byte(rec.Data), out); err != nil {
		return false, apperr.NewStorage("get", key, err)
	}
	return true, nil
}

// Set stores value under key, replacing any previous value.
func (s *MongoRecordStore) Set(ctx context.Context, key string, value interface{}) error {
	if s.Collection == nil {
		return apperr.NewStorage("set", key, fmt.Errorf("mongo collection is nil"))
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return apperr.NewStorage("set", key, err)
	}
	opts := options.Replace().SetUpsert(true)
	_, err = s.Collection.ReplaceOne(ctx, bson.M{"_id": key}, record{Key: key, Data: string(raw)}, opts)
	if err != nil {
		return apperr.NewStorage("set", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *MongoRecordStore) Remove(ctx context.Context, key string) error {
	if s.Collection == nil {
		return apperr.NewStorage("remove", key, fmt.Errorf("mongo collection is nil"))
	}
	if _, err := s.Collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return apperr.NewStorage("remove", key, err)
	}
	return nil
}
