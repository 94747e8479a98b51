//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"travel-core/internal/domain/offer"
	"travel-core/internal/handler/api"
	resdto "travel-core/internal/handler/dto/response"
	"travel-core/internal/infra/provider"
	"travel-core/internal/usecase"
	"travel-core/tests/common/httptest"
	usecasemock "travel-core/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockSearch *usecasemock.MockSearchUseCase
	mockScan   *usecasemock.MockScanUseCase
	handler    *api.SearchHandler
}

func (s *SearchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSearch = usecasemock.NewMockSearchUseCase(s.mockCtrl)
	s.mockScan = usecasemock.NewMockScanUseCase(s.mockCtrl)
	s.handler = api.NewSearchHandler(s.mockSearch, s.mockScan)

	s.router.GET("/search/flights", s.handler.SearchFlights)
	s.router.GET("/search/flights/cheap", s.handler.CheapFlights)
	s.router.GET("/search/hotels", s.handler.SearchHotels)
	s.router.GET("/search/cars", s.handler.SearchCars)
	s.router.GET("/search/geocode", s.handler.Geocode)
}

func (s *SearchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}

func sampleOffer() offer.Offer {
	depart := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	return offer.Offer{
		ID:   "f1",
		Kind: offer.KindFlight,
		Legs: []offer.Leg{{
			Origin:      "HAN",
			Destination: "SGN",
			DepartAt:    depart,
			ArriveAt:    depart.Add(2 * time.Hour),
			Stops:       0,
		}},
		Price: offer.Price{
			TotalMinor:        3000000,
			PerPassengerMinor: 1500000,
			Currency:          "VND",
		},
		CapacityHint: 2,
	}
}

func (s *SearchHandlerTestSuite) TestSearchFlights() {
	url := "/search/flights?origin=HAN&destination=SGN&departure_date=2025-07-10&passengers=2"

	s.Run("success: returns 200 with offers", func() {
		s.mockSearch.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
			Return([]offer.Offer{sampleOffer()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("f1", body[0].ID)
		s.Equal(int64(3000000), body[0].TotalMinor)
		s.Equal(2, body[0].CapacityHint)
	})

	s.Run("error: 400 Bad Request on missing parameters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/flights?origin=HAN", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search parameters")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			searchError    error
			expectedStatus int
		}{
			{name: "invalid query", searchError: usecase.ErrInvalidSearchQuery, expectedStatus: http.StatusBadRequest},
			{name: "rate limited", searchError: usecase.ErrProviderRateLimited, expectedStatus: http.StatusTooManyRequests},
			{name: "provider failed", searchError: usecase.ErrProviderFailed, expectedStatus: http.StatusBadGateway},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockSearch.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
					Return(nil, tc.searchError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *SearchHandlerTestSuite) TestCheapFlights() {
	s.Run("success: returns ranked deals, partial results included", func() {
		s.mockScan.EXPECT().CheapFlights(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]offer.Offer{sampleOffer()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/flights/cheap", nil, "")

		var body []resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: forwards origin hint coordinates", func() {
		s.mockScan.EXPECT().CheapFlights(gomock.Any(), gomock.Not(gomock.Nil()), gomock.Not(gomock.Nil())).
			Return([]offer.Offer{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/flights/cheap?lat=21.0&lng=105.8", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on out-of-range coordinates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/flights/cheap?lat=123&lng=105.8", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coordinates")
	})
}

func (s *SearchHandlerTestSuite) TestGeocode() {
	s.Run("success: returns matched places", func() {
		s.mockSearch.EXPECT().Geocode(gomock.Any(), "hanoi").
			Return([]provider.Place{{FullAddress: "Hanoi, Vietnam", CountryCode: "VN"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/geocode?q=hanoi", nil, "")

		var body []resdto.PlaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("VN", body[0].CountryCode)
	})

	s.Run("error: 400 Bad Request on short query", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search/geocode?q=ha", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at least 3 characters")
	})
}

func (s *SearchHandlerTestSuite) TestSearchCars() {
	s.Run("error: 400 Bad Request on unknown service type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/search/cars?service_type=boat&pickup=SGN&pickup_date=2025-07-10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search parameters")
	})
}
