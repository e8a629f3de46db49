package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestRedisCache_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheFromClient(db, time.Hour, "")

	mock.ExpectGet("gosugg:k1").SetVal("v1")
	got, ok := c.Get("k1")
	if !ok || got != "v1" {
		t.Errorf("got %q, %v", got, ok)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRedisCache_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheFromClient(db, time.Hour, "")

	mock.ExpectGet("gosugg:missing").RedisNil()
	if _, ok := c.Get("missing"); ok {
		t.Error("hit for missing key")
	}
}

func TestRedisCache_GetErrorIsMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheFromClient(db, time.Hour, "")

	mock.ExpectGet("gosugg:k").SetErr(errors.New("connection reset"))
	if _, ok := c.Get("k"); ok {
		t.Error("backend error surfaced as a hit")
	}
}

func TestRedisCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheFromClient(db, time.Hour, "")

	mock.ExpectSet("gosugg:k1", "v1", time.Hour).SetVal("OK")
	if err := c.Set("k1", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRedisCache_CustomPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheFromClient(db, 0, "myapp:")

	mock.ExpectSet("myapp:k", "v", time.Duration(0)).SetVal("OK")
	if err := c.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestNewRedisCache_BadURL(t *testing.T) {
	if _, err := NewRedisCache(RedisConfig{URL: "not a url"}); err == nil {
		t.Error("expected error for malformed URL")
	}
}
