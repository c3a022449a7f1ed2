package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"sgf_keeper/internal/adapters"
	"sgf_keeper/internal/bootstrap"
	"sgf_keeper/internal/domain/record"
	sgferrors "sgf_keeper/internal/errors"
)

const sgfCachePrefix = "sgf:"

type RecordRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
	mongo *mongo.Database
}

func NewRecordRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client, mongo *mongo.Database) *RecordRepository {
	return &RecordRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
		mongo: mongo,
	}
}

func (r *RecordRepository) NewRecordID() string {
	return uuid.New().String()
}

func (r *RecordRepository) PutRecord(ctx context.Context, rec record.Record) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.mongo.Collection(adapters.RecordsCollection).InsertOne(ctx, rec)
	if err != nil {
		r.log.Errorf("failed to insert record %s: %v", rec.ID, err)
		return fmt.Errorf("insert record: %w", err)
	}

	r.log.Infof("record inserted with id: %s", rec.ID)
	return nil
}

func (r *RecordRepository) GetRecord(ctx context.Context, id string) (record.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var found record.Record
	err := r.mongo.Collection(adapters.RecordsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&found)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return record.Record{}, sgferrors.ErrRecordNotFound
	} else if err != nil {
		r.log.Error(err)
		return record.Record{}, fmt.Errorf("find record: %w", err)
	}

	return found, nil
}

// ListRecords returns one page of records, newest first, without their SGF
// text. A non-empty player matches either colour.
func (r *RecordRepository) ListRecords(ctx context.Context, player string, page, limit int) ([]record.Record, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection(adapters.RecordsCollection)

	filter := bson.M{}
	if player != "" {
		filter = bson.M{
			"$or": []bson.M{
				{"player_black": player},
				{"player_white": player},
			},
		}
	}

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		r.log.Error(err)
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"sgf": 0})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error(err)
		return nil, 0, fmt.Errorf("find records: %w", err)
	}
	defer cursor.Close(ctx)

	result := make([]record.Record, 0, limit)
	for cursor.Next(ctx) {
		var rec record.Record
		if err = cursor.Decode(&rec); err != nil {
			r.log.Error(err)
			return nil, 0, fmt.Errorf("decode record: %w", err)
		}
		result = append(result, rec)
	}
	if err = cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate records: %w", err)
	}

	return result, total, nil
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.mongo.Collection(adapters.RecordsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Errorf("failed to delete record %s: %v", id, err)
		return fmt.Errorf("delete record: %w", err)
	}
	if res.DeletedCount == 0 {
		return sgferrors.ErrRecordNotFound
	}
	return nil
}

func (r *RecordRepository) CacheSGF(ctx context.Context, id string, text string) error {
	ttl := time.Duration(r.cfg.CacheTTLSeconds) * time.Second
	return r.redis.Set(ctx, sgfCachePrefix+id, text, ttl).Err()
}

func (r *RecordRepository) LoadCachedSGF(ctx context.Context, id string) (string, error) {
	text, err := r.redis.Get(ctx, sgfCachePrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", sgferrors.ErrRecordNotFound
	}
	return text, err
}

func (r *RecordRepository) DropCachedSGF(ctx context.Context, id string) error {
	return r.redis.Del(ctx, sgfCachePrefix+id).Err()
}
