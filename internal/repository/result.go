package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

// ResultRepository keeps the rendered validation answers of each session, newest first.
type ResultRepository interface {
	Append(ctx context.Context, sessionID string, record *entity.ValidationRecord) error
	List(ctx context.Context, sessionID string, limit int64) ([]*entity.ValidationRecord, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type dbResult struct {
	client  *redis.Client
	maxSize int64
}

// NewResultRepository keeps at most maxSize records per session.
func NewResultRepository(client *redis.Client, maxSize int64) ResultRepository {
	return &dbResult{
		client:  client,
		maxSize: maxSize,
	}
}

func (that *dbResult) Append(ctx context.Context, sessionID string, record *entity.ValidationRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal validation record: %w", err)
	}

	resultsKey := "results:" + sessionID
	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, resultsKey, recordJSON)
		pipe.LTrim(ctx, resultsKey, 0, that.maxSize-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append validation record: %w", err)
	}

	return nil
}

func (that *dbResult) List(ctx context.Context, sessionID string, limit int64) ([]*entity.ValidationRecord, error) {
	resultsKey := "results:" + sessionID

	if limit <= 0 || limit > that.maxSize {
		limit = that.maxSize
	}

	response, err := that.client.LRange(ctx, resultsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list validation records: %w", err)
	}

	records := make([]*entity.ValidationRecord, 0, len(response))
	for _, item := range response {
		var record entity.ValidationRecord
		if err = json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal validation record: %w", err)
		}
		records = append(records, &record)
	}

	return records, nil
}

func (that *dbResult) DeleteBySession(ctx context.Context, sessionID string) error {
	resultsKey := "results:" + sessionID

	if err := that.client.Del(ctx, resultsKey).Err(); err != nil {
		return fmt.Errorf("failed to delete validation records: %w", err)
	}

	return nil
}
