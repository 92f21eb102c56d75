package handler

import (
	"net/http"
	"strconv"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/CodyBrat/PlayNxt/internal/core/query"
	"github.com/CodyBrat/PlayNxt/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	catalog  *services.CatalogService
	bookings *services.BookingService
	log      logrus.FieldLogger
}

func NewVenueHandler(catalog *services.CatalogService, bookings *services.BookingService, log logrus.FieldLogger) *VenueHandler {
	return &VenueHandler{catalog: catalog, bookings: bookings, log: log}
}

type venueRequest struct {
	Name           *string             `json:"name"`
	Location       *string             `json:"location"`
	ShortLocation  *string             `json:"shortLocation"`
	Sport          *string             `json:"sport"`
	Type           *string             `json:"type"`
	Price          *float64            `json:"price"`
	PriceUnit      *string             `json:"priceUnit"`
	Image          *string             `json:"image"`
	Images         []string            `json:"images"`
	About          *string             `json:"about"`
	Facilities     []string            `json:"facilities"`
	AvailableSlots map[string][]string `json:"availableSlots"`
	OpenHours      *string             `json:"openHours"`
	ContactPhone   *string             `json:"contactPhone"`
	IsActive       *bool               `json:"isActive"`
}

func (r venueRequest) fields() domain.VenueFields {
	return domain.VenueFields{
		Name:           r.Name,
		Location:       r.Location,
		ShortLocation:  r.ShortLocation,
		Sport:          r.Sport,
		Type:           r.Type,
		Price:          r.Price,
		PriceUnit:      r.PriceUnit,
		Image:          r.Image,
		Images:         r.Images,
		About:          r.About,
		Facilities:     r.Facilities,
		AvailableSlots: r.AvailableSlots,
		OpenHours:      r.OpenHours,
		ContactPhone:   r.ContactPhone,
		IsActive:       r.IsActive,
	}
}

// List returns active venues narrowed by the optional query parameters
// sport, q, minPrice, maxPrice and minRating.
func (h *VenueHandler) List(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	venues, err := h.catalog.SearchVenues(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

func filterFromQuery(c *gin.Context) (query.VenueFilter, error) {
	filter := query.DefaultVenueFilter()
	filter.Sport = c.Query("sport")
	filter.SearchQuery = c.Query("q")

	verr := domain.NewValidationError()
	parse := func(key string, dst *float64) {
		raw, ok := c.GetQuery(key)
		if !ok || raw == "" {
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			verr.Add(key, "must be a number")
			return
		}
		*dst = v
	}
	parse("minPrice", &filter.MinPrice)
	parse("maxPrice", &filter.MaxPrice)
	parse("minRating", &filter.MinRating)

	return filter, verr.OrNil()
}

func (h *VenueHandler) Get(c *gin.Context) {
	venue, err := h.catalog.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venue": venue})
}

func (h *VenueHandler) Availability(c *gin.Context) {
	slots, err := h.catalog.VenueAvailability(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *VenueHandler) ListOwned(c *gin.Context) {
	venues, err := h.catalog.ListOwnedVenues(c.Request.Context(), identity(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

func (h *VenueHandler) Create(c *gin.Context) {
	var req venueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	venue, err := h.catalog.CreateVenue(c.Request.Context(), identity(c), req.fields())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Venue created successfully", "venue": venue})
}

func (h *VenueHandler) Update(c *gin.Context) {
	var req venueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	venue, err := h.catalog.UpdateVenue(c.Request.Context(), identity(c), c.Param("id"), req.fields())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue updated successfully", "venue": venue})
}

func (h *VenueHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteVenue(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue deleted successfully"})
}

func (h *VenueHandler) Bookings(c *gin.Context) {
	bookings, err := h.bookings.ListBookingsForVenue(c.Request.Context(), identity(c), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
