package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

const keyPrefix = "booking_form:"

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisRepository хранилище форм в Redis (JSON, с TTL)
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository подключается к Redis и проверяет соединение
func NewRedisRepository(cfg RedisConfig) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrStorage, err)
	}

	return NewRedisRepositoryWithClient(client, cfg.TTL), nil
}

// NewRedisRepositoryWithClient создает хранилище поверх готового клиента
func NewRedisRepositoryWithClient(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{
		client: client,
		ttl:    ttl,
	}
}

// Create сохраняет новую форму, если формы с таким ID еще нет
func (r *RedisRepository) Create(ctx context.Context, form *domain.Form) error {
	data, err := json.Marshal(toRecord(form))
	if err != nil {
		return fmt.Errorf("%w: Create: %v", ErrEncode, err)
	}

	ok, err := r.client.SetNX(ctx, key(form.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: Create: %v", ErrStorage, err)
	}
	if !ok {
		return ErrFormExists
	}
	return nil
}

// Get возвращает форму по ID
func (r *RedisRepository) Get(ctx context.Context, id string) (*domain.Form, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("%w: Get: %v", ErrStorage, err)
	}

	var rec formRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: Get - decode: %v", ErrEncode, err)
	}

	return rec.toDomain(), nil
}

// Update перезаписывает существующую форму и продлевает TTL
func (r *RedisRepository) Update(ctx context.Context, form *domain.Form) error {
	data, err := json.Marshal(toRecord(form))
	if err != nil {
		return fmt.Errorf("%w: Update: %v", ErrEncode, err)
	}

	err = r.client.SetArgs(ctx, key(form.ID), data, redis.SetArgs{
		Mode: "XX",
		TTL:  r.ttl,
	}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrFormNotFound
		}
		return fmt.Errorf("%w: Update: %v", ErrStorage, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func key(id string) string {
	return keyPrefix + id
}
