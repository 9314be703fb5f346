package profile

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/soberline/soberline/internal/models"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetProfile() {
	profile := &models.Profile{
		UserID:            "test-user-id",
		Sex:               models.SexFemale,
		WeightKg:          62,
		LegalLimitPercent: 0.05,
		UpdatedAt:         s.testNow,
	}

	err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{
		Profile: profile,
	})
	s.Require().NoError(err)

	output, err := s.repo.GetProfile(context.Background(), &GetProfileInput{
		UserID: "test-user-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Profile)

	s.Equal("test-user-id", output.Profile.UserID)
	s.Equal(models.SexFemale, output.Profile.Sex)
	s.Equal(62.0, output.Profile.WeightKg)
	s.Equal(0.05, output.Profile.LegalLimitPercent)
	s.True(s.testNow.Equal(output.Profile.UpdatedAt))
}

func (s *RedisRepositoryTestSuite) TestSaveProfileReplaces() {
	profile := &models.Profile{
		UserID:   "test-user-id",
		Sex:      models.SexMale,
		WeightKg: 80,
	}
	err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{Profile: profile})
	s.Require().NoError(err)

	profile.WeightKg = 78
	err = s.repo.SaveProfile(context.Background(), &SaveProfileInput{Profile: profile})
	s.Require().NoError(err)

	output, err := s.repo.GetProfile(context.Background(), &GetProfileInput{
		UserID: "test-user-id",
	})
	s.Require().NoError(err)
	s.Equal(78.0, output.Profile.WeightKg)
}

func (s *RedisRepositoryTestSuite) TestGetProfileNotFound() {
	_, err := s.repo.GetProfile(context.Background(), &GetProfileInput{
		UserID: "unknown-user-id",
	})
	s.ErrorIs(err, ErrProfileNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteProfile() {
	profile := &models.Profile{
		UserID:   "test-user-id",
		Sex:      models.SexMale,
		WeightKg: 80,
	}
	err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{Profile: profile})
	s.Require().NoError(err)

	err = s.repo.DeleteProfile(context.Background(), &DeleteProfileInput{
		UserID: "test-user-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetProfile(context.Background(), &GetProfileInput{
		UserID: "test-user-id",
	})
	s.ErrorIs(err, ErrProfileNotFound)
}
