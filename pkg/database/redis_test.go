package database

import (
	"context"
	"lms_backend/internal/config"
	"net"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func redisConfig(t *testing.T, addr string) *config.RedisConfig {
	t.Helper()
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		t.Fatalf("parse port: %v", err)
	}
	return &config.RedisConfig{Host: host, Port: p}
}

func TestInitRedisConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := InitRedis(context.Background(), redisConfig(t, mr.Addr()))
	if err != nil {
		t.Fatalf("InitRedis failed: %v", err)
	}
	defer rdb.Close()

	if err := rdb.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := mr.Get("k"); got != "v" {
		t.Fatalf("expected value in miniredis, got %q", got)
	}
}

func TestInitRedisUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	cfg := redisConfig(t, mr.Addr())
	mr.Close()

	rdb, err := InitRedis(context.Background(), cfg)
	if err == nil {
		rdb.Close()
		t.Fatalf("expected ping error for closed server")
	}
	if rdb != nil {
		t.Fatalf("expected nil client on failure")
	}
}

func TestInitRedisHonoursCallerContext(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := InitRedis(ctx, redisConfig(t, mr.Addr())); err == nil {
		t.Fatalf("expected error with cancelled context")
	}
}
