// internal/ratelimit/store_redis.go
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore guarda as tentativas em sorted sets, com o timestamp em
// milissegundos como score. Alternativa ao Postgres quando REDIS_ADDR
// está configurado; o TTL do set faz a retenção sozinho.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func chaveTentativas(identificador string, acao Acao) string {
	return fmt.Sprintf("ratelimit:%s:%s", acao, identificador)
}

func (s *RedisStore) ContarDesde(ctx context.Context, identificador string, acao Acao, desde time.Time) (int64, error) {
	min := strconv.FormatInt(desde.UnixMilli(), 10)
	return s.Client.ZCount(ctx, chaveTentativas(identificador, acao), min, "+inf").Result()
}

func (s *RedisStore) MaisAntigaDesde(ctx context.Context, identificador string, acao Acao, desde time.Time) (time.Time, error) {
	min := strconv.FormatInt(desde.UnixMilli(), 10)
	res, err := s.Client.ZRangeByScoreWithScores(ctx, chaveTentativas(identificador, acao), &redis.ZRangeBy{
		Min:   min,
		Max:   "+inf",
		Count: 1,
	}).Result()
	if err != nil {
		return time.Time{}, err
	}
	if len(res) == 0 {
		return time.Time{}, redis.Nil
	}
	return time.UnixMilli(int64(res[0].Score)), nil
}

func (s *RedisStore) Registrar(ctx context.Context, identificador string, acao Acao, em time.Time) error {
	chave := chaveTentativas(identificador, acao)
	pipe := s.Client.TxPipeline()
	pipe.ZAdd(ctx, chave, redis.Z{
		Score:  float64(em.UnixMilli()),
		Member: strconv.FormatInt(em.UnixNano(), 10),
	})
	// Mantém a chave viva só o suficiente para cobrir a janela.
	pipe.Expire(ctx, chave, 2*Janela)
	_, err := pipe.Exec(ctx)
	return err
}
