package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// getJSON loads a JSON value, mapping a missing key to notFound
func (s *Storage) getJSON(ctx context.Context, key string, v any, notFound error) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// Course operations

func (s *Storage) SaveCourse(ctx context.Context, course *model.Course) error {
	data, err := json.Marshal(course)
	if err != nil {
		return err
	}

	key := courseKey(course.ID)

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0) // No TTL
	pipe.SAdd(ctx, coursesIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	if err := s.getJSON(ctx, courseKey(id), &course, model.ErrCourseNotFound); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *Storage) ListCourses(ctx context.Context) ([]*model.Course, error) {
	keys, err := s.client.SMembers(ctx, coursesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Course{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	courses := make([]*model.Course, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // Course deleted since the index was read
		}
		var course model.Course
		if err := json.Unmarshal([]byte(str), &course); err != nil {
			continue // Skip invalid data
		}
		courses = append(courses, &course)
	}

	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *Storage) DeleteCourse(ctx context.Context, id string) error {
	key := courseKey(id)
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, coursesIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.RoundState) error {
	data, err := json.Marshal(round)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, roundKey(round.ID), data, s.cfg.RoundTTL).Err()
}

func (s *Storage) GetRound(ctx context.Context, id model.RoundID) (*model.RoundState, error) {
	var round model.RoundState
	if err := s.getJSON(ctx, roundKey(id), &round, model.ErrRoundNotFound); err != nil {
		return nil, err
	}
	return &round, nil
}

func (s *Storage) DeleteRound(ctx context.Context, id model.RoundID) error {
	return s.client.Del(ctx, roundKey(id)).Err()
}

func (s *Storage) RoundExists(ctx context.Context, id model.RoundID) (bool, error) {
	exists, err := s.client.Exists(ctx, roundKey(id)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Settlement operations

func (s *Storage) SaveSettlement(ctx context.Context, settlement *model.Settlement) error {
	data, err := json.Marshal(settlement)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, settlementKey(settlement.RoundID), data, s.cfg.SettlementTTL).Err()
}

func (s *Storage) GetSettlement(ctx context.Context, roundID model.RoundID) (*model.Settlement, error) {
	var settlement model.Settlement
	if err := s.getJSON(ctx, settlementKey(roundID), &settlement, model.ErrSettlementNotFound); err != nil {
		return nil, err
	}
	return &settlement, nil
}

func (s *Storage) DeleteSettlement(ctx context.Context, roundID model.RoundID) error {
	return s.client.Del(ctx, settlementKey(roundID)).Err()
}
