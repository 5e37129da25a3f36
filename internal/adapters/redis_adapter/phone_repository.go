// internal/adapters/redis_adapter/phone_repository.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/core/ports"
	"github.com/ammerola/resell-phones/internal/pkg/config"
)

// PhoneRepository stores phones in Redis. Records live as JSON in a single
// hash keyed by phone id; a companion list keeps insertion order.
type PhoneRepository struct {
	client   *redis.Client
	hashKey  string
	orderKey string
	logger   *slog.Logger
}

// Statically assert that *PhoneRepository implements the PhoneRepository interface.
var _ ports.PhoneRepository = (*PhoneRepository)(nil)

// NewClient connects to Redis and verifies the connection
func NewClient(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	logger.Info("connecting to Redis",
		slog.String("host", cfg.Host),
		slog.String("port", cfg.Port),
		slog.Int("db", cfg.DB))

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// NewPhoneRepository creates a Redis-backed phone repository. All keys are
// namespaced under prefix.
func NewPhoneRepository(client *redis.Client, prefix string, logger *slog.Logger) *PhoneRepository {
	return &PhoneRepository{
		client:   client,
		hashKey:  BuildKey(prefix, "phones"),
		orderKey: BuildKey(prefix, "phones", "order"),
		logger:   logger.With(slog.String("component", "redis_repository")),
	}
}

// Save stores a new phone. The record and its order entry are written in
// one transaction; if the order entry fails the record is removed again.
func (r *PhoneRepository) Save(ctx context.Context, phone *domain.Phone) error {
	data, err := json.Marshal(phone)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, r.hashKey, phone.ID).Result()
		if err != nil {
			return fmt.Errorf("redis hexists error: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", domain.ErrPhoneExists, phone.ID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, r.hashKey, phone.ID, data)
			pipe.RPush(ctx, r.orderKey, phone.ID)
			return nil
		})
		if err != nil && !errors.Is(err, redis.TxFailedErr) {
			// Redis does not roll back a partially applied EXEC
			if delErr := r.client.HDel(ctx, r.hashKey, phone.ID).Err(); delErr != nil {
				r.logger.ErrorContext(ctx, "failed to remove orphaned phone",
					slog.String("phone_id", phone.ID),
					slog.String("error", delErr.Error()))
			}
			return fmt.Errorf("redis save error: %w", err)
		}
		return err
	}, r.hashKey)
	if err != nil {
		if !errors.Is(err, domain.ErrPhoneExists) {
			r.logger.ErrorContext(ctx, "failed to store phone",
				slog.String("phone_id", phone.ID),
				slog.String("error", err.Error()))
		}
		return err
	}

	r.logger.DebugContext(ctx, "phone stored", slog.String("phone_id", phone.ID))
	return nil
}

// Update replaces an existing phone. The write is aborted if the phone
// disappears between the existence check and the write.
func (r *PhoneRepository) Update(ctx context.Context, phone *domain.Phone) error {
	data, err := json.Marshal(phone)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, r.hashKey, phone.ID).Result()
		if err != nil {
			return fmt.Errorf("redis hexists error: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", domain.ErrPhoneNotFound, phone.ID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, r.hashKey, phone.ID, data)
			return nil
		})
		return err
	}, r.hashKey)
	if err != nil {
		if !errors.Is(err, domain.ErrPhoneNotFound) {
			r.logger.ErrorContext(ctx, "failed to update phone",
				slog.String("phone_id", phone.ID),
				slog.String("error", err.Error()))
		}
		return err
	}

	return nil
}

// FindByID retrieves a phone by id
func (r *PhoneRepository) FindByID(ctx context.Context, id string) (*domain.Phone, error) {
	data, err := r.client.HGet(ctx, r.hashKey, id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPhoneNotFound, id)
		}
		return nil, fmt.Errorf("redis hget error: %w", err)
	}

	var phone domain.Phone
	if err := json.Unmarshal(data, &phone); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}
	return &phone, nil
}

// FindAll returns every phone in insertion order
func (r *PhoneRepository) FindAll(ctx context.Context) ([]domain.Phone, error) {
	ids, err := r.client.LRange(ctx, r.orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange error: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Phone{}, nil
	}

	values, err := r.client.HMGet(ctx, r.hashKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hmget error: %w", err)
	}

	phones := make([]domain.Phone, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			r.logger.WarnContext(ctx, "phone listed in order but missing from store",
				slog.String("phone_id", ids[i]))
			continue
		}

		var phone domain.Phone
		if err := json.Unmarshal([]byte(raw), &phone); err != nil {
			return nil, fmt.Errorf("unmarshal error for %s: %w", ids[i], err)
		}
		phones = append(phones, phone)
	}

	return phones, nil
}

// Count returns the number of stored phones
func (r *PhoneRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.client.HLen(ctx, r.hashKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis hlen error: %w", err)
	}
	return n, nil
}

// Ping checks Redis connectivity
func (r *PhoneRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Reset removes every stored phone. Used at startup before reseeding so the
// store only lives as long as the process.
func (r *PhoneRepository) Reset(ctx context.Context) error {
	if err := r.client.Del(ctx, r.hashKey, r.orderKey).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	r.logger.InfoContext(ctx, "phone store reset")
	return nil
}

// BuildKey creates a key from a prefix and parts
func BuildKey(prefix string, parts ...string) string {
	key := prefix
	for _, part := range parts {
		if key == "" {
			key = part
			continue
		}
		key += ":" + part
	}
	return key
}
