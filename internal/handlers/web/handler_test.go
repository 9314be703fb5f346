package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/soberline/soberline/internal/models"
	"github.com/soberline/soberline/internal/services/tracker"
	trackerMocks "github.com/soberline/soberline/internal/services/tracker/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *trackerMocks.MockService
	server      *httptest.Server

	testTime time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = trackerMocks.NewMockService(s.mockCtrl)

	handler, err := New(&Config{
		TrackerService: s.mockService,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler.Router())
	s.testTime = time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestHealthz() {
	resp, err := http.Get(s.server.URL + "/healthz")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlerTestSuite) TestGetStatus() {
	s.mockService.EXPECT().
		GetStatus(gomock.Any(), &tracker.GetStatusInput{UserID: "test-user-id"}).
		Return(&tracker.GetStatusOutput{
			CurrentBAC:     0.062,
			TimeUntilLegal: 48 * time.Minute,
			TimeUntilSober: 4 * time.Hour,
			OverLimit:      true,
			DrinkCount:     2,
			Profile: &models.Profile{
				UserID:            "test-user-id",
				Sex:               models.SexMale,
				WeightKg:          75,
				LegalLimitPercent: 0.05,
			},
		}, nil)

	resp, err := http.Get(s.server.URL + "/v1/users/test-user-id/status")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/json", resp.Header.Get("Content-Type"))

	var body statusResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))

	s.Equal(0.062, body.CurrentBAC)
	s.Equal((48 * time.Minute).Milliseconds(), body.TimeUntilLegalMs)
	s.Equal((4 * time.Hour).Milliseconds(), body.TimeUntilSoberMs)
	s.True(body.OverLimit)
	s.Equal(2, body.DrinkCount)
	s.False(body.SessionCleared)
	s.Equal(0.05, body.LegalLimit)
}

func (s *HandlerTestSuite) TestGetStatusServiceError() {
	s.mockService.EXPECT().
		GetStatus(gomock.Any(), gomock.Any()).
		Return(nil, tracker.ErrMissingUserID)

	resp, err := http.Get(s.server.URL + "/v1/users/test-user-id/status")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body errorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(tracker.ErrMissingUserID.Error(), body.Error)
}

func (s *HandlerTestSuite) TestGetCurve() {
	samples := []models.Sample{
		{Time: s.testTime, Level: 0},
		{Time: s.testTime, Level: 0.039, IsPeak: true},
		{Time: s.testTime.Add(time.Hour), Level: 0.024},
	}

	s.mockService.EXPECT().
		GetCurve(gomock.Any(), &tracker.GetCurveInput{UserID: "test-user-id"}).
		Return(&tracker.GetCurveOutput{
			Samples: samples,
			Profile: &models.Profile{
				UserID:            "test-user-id",
				LegalLimitPercent: 0.05,
			},
		}, nil)

	resp, err := http.Get(s.server.URL + "/v1/users/test-user-id/curve")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body curveResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))

	s.Require().Len(body.Samples, 3)
	s.True(body.Samples[1].IsPeak)
	s.Equal(0.039, body.Samples[1].Level)
	s.Equal(0.05, body.LegalLimit)
}

func (s *HandlerTestSuite) TestGetCurveInternalError() {
	s.mockService.EXPECT().
		GetCurve(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis unavailable"))

	resp, err := http.Get(s.server.URL + "/v1/users/test-user-id/curve")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusInternalServerError, resp.StatusCode)
}
