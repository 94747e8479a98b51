package api

import (
	"errors"
	"net/http"

	reqdto "travel-core/internal/handler/dto/request"
	resdto "travel-core/internal/handler/dto/response"
	"travel-core/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUseCase usecase.SearchUseCase
	scanUseCase   usecase.ScanUseCase
}

func NewSearchHandler(searchUseCase usecase.SearchUseCase, scanUseCase usecase.ScanUseCase) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
		scanUseCase:   scanUseCase,
	}
}

// @Summary Search flights
// @Description Search flight offers between two airports
// @Tags search
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Param departure_date query string true "Departure date (YYYY-MM-DD)"
// @Param return_date query string false "Return date (YYYY-MM-DD)"
// @Param passengers query int false "Passenger count" default(1)
// @Param service_class query string false "Service class" default(economy)
// @Param trip_type query string false "one-way or round-trip" default(one-way)
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /search/flights [get]
func (h *SearchHandler) SearchFlights(c *gin.Context) {
	var req reqdto.FlightSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
		return
	}

	offers, err := h.searchUseCase.SearchFlights(c.Request.Context(), req)
	if err != nil {
		h.respondSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOffers(offers))
}

// @Summary Cheap flight deals
// @Description Ranked cheapest destinations over the next days, best price per destination
// @Tags search
// @Produce json
// @Param lat query number false "Origin latitude hint"
// @Param lng query number false "Origin longitude hint"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Router /search/flights/cheap [get]
func (h *SearchHandler) CheapFlights(c *gin.Context) {
	var req reqdto.CheapFlightScanRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coordinates",
		})
		return
	}

	// Rate-limit aborts inside the scan surface as partial results, so
	// only unexpected failures reach this branch.
	offers, err := h.scanUseCase.CheapFlights(c.Request.Context(), req.Lat, req.Lng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOffers(offers))
}

// @Summary Search hotels
// @Description Search hotel offers for a stay
// @Tags search
// @Produce json
// @Param location query string true "City code"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Guest count" default(1)
// @Param rooms query int false "Room count" default(1)
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /search/hotels [get]
func (h *SearchHandler) SearchHotels(c *gin.Context) {
	var req reqdto.HotelSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
		return
	}

	offers, err := h.searchUseCase.SearchHotels(c.Request.Context(), req)
	if err != nil {
		h.respondSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOffers(offers))
}

// @Summary Search cars
// @Description Search car rental or transfer offers
// @Tags search
// @Produce json
// @Param service_type query string true "rental or transfer"
// @Param pickup query string true "Pickup code or address"
// @Param dropoff query string false "Dropoff code or address"
// @Param pickup_date query string true "Pickup date (YYYY-MM-DD)"
// @Param dropoff_date query string false "Dropoff date (YYYY-MM-DD)"
// @Param passengers query int false "Passenger count" default(1)
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /search/cars [get]
func (h *SearchHandler) SearchCars(c *gin.Context) {
	var req reqdto.CarSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
		return
	}

	offers, err := h.searchUseCase.SearchCars(c.Request.Context(), req)
	if err != nil {
		h.respondSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOffers(offers))
}

// @Summary Geocode autocomplete
// @Description Resolve a free-text query to places
// @Tags search
// @Produce json
// @Param q query string true "Query (at least 3 characters)"
// @Success 200 {array} resdto.PlaceResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /search/geocode [get]
func (h *SearchHandler) Geocode(c *gin.Context) {
	var req reqdto.GeocodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query must be at least 3 characters",
		})
		return
	}

	places, err := h.searchUseCase.Geocode(c.Request.Context(), req.Query)
	if err != nil {
		h.respondSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlaces(places))
}

func (h *SearchHandler) respondSearchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidSearchQuery):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
	case errors.Is(err, usecase.ErrProviderRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Provider is throttling, retry later",
		})
	case errors.Is(err, usecase.ErrProviderFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Provider is unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
