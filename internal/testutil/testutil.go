// Package testutil provides testing utilities shared by the admin panel's packages.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// RedisURLEnv points tests at a Redis server, e.g. redis://:pw@localhost:6379.
	RedisURLEnv = "BAGBANK_TEST_REDIS_URL"
	// RedisDBEnv pins the logical database used by tests instead of claiming a free one.
	RedisDBEnv = "TEST_REDIS_DB"

	redisProbeTimeout = 2 * time.Second
	dbClaimTTL        = 30 * time.Minute
	dbClaimKey        = "bagbank:testutil:db_claim:%d"
)

// Addresses tried in order when neither RedisURLEnv nor REDIS_ADDR is set: a local
// server, the docker compose service and the port used by the local test stack.
var fallbackRedisAddrs = []string{"localhost:6379", "redis:6379", "localhost:56379"}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// requireRedis turns a missing server into a failure instead of a skip (CI).
func requireRedis() bool { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }

// redisCandidates lists the servers a test may use, most specific first.
func redisCandidates() ([]*redis.Options, error) {
	if raw := strings.TrimSpace(os.Getenv(RedisURLEnv)); raw != "" {
		opts, err := redis.ParseURL(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", RedisURLEnv, err)
		}
		return []*redis.Options{opts}, nil
	}
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		return []*redis.Options{{Addr: addr}}, nil
	}
	out := make([]*redis.Options, 0, len(fallbackRedisAddrs))
	for _, addr := range fallbackRedisAddrs {
		out = append(out, &redis.Options{Addr: addr})
	}
	return out, nil
}

func reachable(tb testing.TB, opts *redis.Options) bool {
	tb.Helper()
	c := redis.NewClient(opts)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		tb.Logf("redis not reachable at %s: %v", opts.Addr, err)
		return false
	}
	return true
}

// FindTestRedis returns connection options for the first reachable test server.
func FindTestRedis(tb testing.TB) (*redis.Options, bool) {
	tb.Helper()
	candidates, err := redisCandidates()
	if err != nil {
		tb.Fatalf("resolve test redis: %v", err)
	}
	for _, opts := range candidates {
		if reachable(tb, opts) {
			return opts, true
		}
	}
	return nil, false
}

// claimDB picks the logical database for this test. Claims live in DB 0 so flushing
// the claimed database never drops them; they are released on cleanup and expire on
// their own if a test binary dies.
func claimDB(tb testing.TB, opts *redis.Options) int {
	tb.Helper()
	if v := os.Getenv(RedisDBEnv); v != "" {
		if db, err := strconv.Atoi(v); err == nil && db >= 0 {
			return db
		}
		tb.Logf("ignoring invalid %s=%q", RedisDBEnv, v)
	}

	metaOpts := *opts
	metaOpts.DB = 0
	meta := redis.NewClient(&metaOpts)

	owner := fmt.Sprintf("%d:%d", os.Getpid(), time.Now().UnixNano())
	for db := 1; db <= 15; db++ {
		key := fmt.Sprintf(dbClaimKey, db)
		ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
		ok, err := meta.SetNX(ctx, key, owner, dbClaimTTL).Result()
		cancel()
		if err != nil || !ok {
			continue
		}
		tb.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
			defer cancel()
			if err := meta.Del(ctx, key).Err(); err != nil {
				tb.Logf("release redis db %d: %v", db, err)
			}
			_ = meta.Close()
		})
		return db
	}

	_ = meta.Close()
	tb.Logf("no free redis db, sharing db 1")
	return 1
}

// SetupTestRedis connects to an empty logical database of a test Redis server.
// The test is skipped when no server is reachable unless TEST_REQUIRE_REDIS is set.
// Callers close the client.
func SetupTestRedis(tb testing.TB) *redis.Client {
	tb.Helper()

	opts, ok := FindTestRedis(tb)
	if !ok {
		if requireRedis() {
			tb.Fatal("redis not available for testing")
		}
		tb.Skip("redis not available for testing")
	}

	clientOpts := *opts
	clientOpts.DB = claimDB(tb, opts)
	client := redis.NewClient(&clientOpts)

	ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		_ = client.Close()
		if requireRedis() {
			tb.Fatalf("prepare test redis db %d at %s: %v", clientOpts.DB, clientOpts.Addr, err)
		}
		tb.Skipf("prepare test redis db %d at %s: %v", clientOpts.DB, clientOpts.Addr, err)
	}
	tb.Logf("using redis db %d at %s", clientOpts.DB, clientOpts.Addr)
	return client
}
