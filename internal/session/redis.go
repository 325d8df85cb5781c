package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
)

const (
	redisTokenKey = "admin:session:token"
	redisUserKey  = "admin:session:user"
)

// RedisStore keeps the session under two keys, token and identity,
// written in one transaction so they cannot drift apart.
type RedisStore struct {
	client *redis.Client
	role   string
	now    func() time.Time
}

func NewRedisStore(addr, password string, db int, role string) (*RedisStore, error) {
	if addr == "" {
		return nil, errors.New("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client, role: role, now: time.Now}, nil
}

// NewRedisStoreWithClient is used by tests to inject a prepared client.
func NewRedisStoreWithClient(client *redis.Client, role string) *RedisStore {
	return &RedisStore{client: client, role: role, now: time.Now}
}

func (s *RedisStore) Load(ctx context.Context) (domain.Session, error) {
	values, err := s.client.MGet(ctx, redisTokenKey, redisUserKey).Result()
	if err != nil {
		return domain.Session{}, err
	}
	token, tokenOK := values[0].(string)
	rawUser, userOK := values[1].(string)
	if !tokenOK || !userOK {
		return domain.Session{}, domain.ErrNoSession
	}
	var identity domain.Identity
	if err := json.Unmarshal([]byte(rawUser), &identity); err != nil {
		_ = s.Clear(ctx)
		return domain.Session{}, domain.ErrNoSession
	}
	sess := domain.Session{Identity: identity, Token: token}
	if !validate(sess, s.role, s.now()) {
		_ = s.Clear(ctx)
		return domain.Session{}, domain.ErrNoSession
	}
	return sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess domain.Session) error {
	rawUser, err := json.Marshal(sess.Identity)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisTokenKey, sess.Token, 0)
		pipe.Set(ctx, redisUserKey, string(rawUser), 0)
		return nil
	})
	return err
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, redisTokenKey, redisUserKey).Err()
}
