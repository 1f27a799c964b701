//go:build integration

package bucket_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"regform/internal/ratelimit/store/bucket"
	"regform/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *bucket.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = bucket.NewRedisStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestAllowUpToLimit() {
	ctx := context.Background()
	for i := range 3 {
		result, err := s.store.Allow(ctx, "ratelimit:test:a", 3, time.Minute)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(3-i-1, result.Remaining)
	}

	result, err := s.store.Allow(ctx, "ratelimit:test:a", 3, time.Minute)
	s.Require().NoError(err)
	s.False(result.Allowed)
	s.Equal(0, result.Remaining)
	s.GreaterOrEqual(result.RetryAfter, 1)
	s.LessOrEqual(result.RetryAfter, 60)
}

func (s *RedisStoreSuite) TestWindowExpires() {
	ctx := context.Background()
	result, err := s.store.Allow(ctx, "ratelimit:test:b", 1, 200*time.Millisecond)
	s.Require().NoError(err)
	s.True(result.Allowed)

	result, err = s.store.Allow(ctx, "ratelimit:test:b", 1, 200*time.Millisecond)
	s.Require().NoError(err)
	s.False(result.Allowed)

	time.Sleep(300 * time.Millisecond)
	result, err = s.store.Allow(ctx, "ratelimit:test:b", 1, 200*time.Millisecond)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

func (s *RedisStoreSuite) TestReset() {
	ctx := context.Background()
	_, err := s.store.Allow(ctx, "ratelimit:test:c", 1, time.Minute)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Reset(ctx, "ratelimit:test:c"))

	result, err := s.store.Allow(ctx, "ratelimit:test:c", 1, time.Minute)
	s.Require().NoError(err)
	s.True(result.Allowed)
}
