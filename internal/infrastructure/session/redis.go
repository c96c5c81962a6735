package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMailbox implementa Mailbox sobre o Redis, usando GETDEL para
// garantir a semântica de leitura única mesmo com múltiplas réplicas
// da API.
type RedisMailbox struct {
	client *redis.Client
	prefix string
}

// NewRedisMailbox cria um novo RedisMailbox e testa a conexão
func NewRedisMailbox(addr, password string, db int) (*RedisMailbox, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
	}

	return &RedisMailbox{client: client, prefix: "sale:"}, nil
}

// Put implementa Mailbox.Put
func (m *RedisMailbox) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := m.client.Set(ctx, m.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar snapshot: %w", err)
	}
	return nil
}

// Take implementa Mailbox.Take
func (m *RedisMailbox) Take(ctx context.Context, key string) ([]byte, error) {
	value, err := m.client.GetDel(ctx, m.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao consumir snapshot: %w", err)
	}
	return value, nil
}

// Close fecha a conexão com o Redis
func (m *RedisMailbox) Close() error {
	return m.client.Close()
}
