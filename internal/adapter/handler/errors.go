package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var fieldNamesOnce sync.Once

type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
	Slot   *SlotDetail       `json:"slot,omitempty"`
}

type SlotDetail struct {
	VenueID string `json:"venueId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// classify maps the domain taxonomy onto HTTP. Order matters: the specific
// sentinels are checked before the classes they wrap.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInternal):
		return http.StatusInternalServerError, "INTERNAL"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrSlotConflict):
		return http.StatusConflict, "SLOT_CONFLICT"
	case errors.Is(err, domain.ErrAlreadyCancelled):
		return http.StatusConflict, "ALREADY_CANCELLED"
	case errors.Is(err, domain.ErrVenueHasUpcomingBookings):
		return http.StatusConflict, "VENUE_HAS_UPCOMING_BOOKINGS"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func writeError(c *gin.Context, log logrus.FieldLogger, err error) {
	status, code := classify(err)

	resp := ErrorResponse{Error: err.Error(), Code: code}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}

	var conflict *domain.SlotConflictError
	if errors.As(err, &conflict) {
		resp.Slot = &SlotDetail{VenueID: conflict.VenueID, Date: conflict.Date.String(), Time: conflict.Time}
		resp.Error = "This slot is already booked. Please choose a different time."
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		resp.Error = "internal server error"
	}

	c.AbortWithStatusJSON(status, resp)
}

// badRequest reports a body that failed to decode or failed its binding tags.
func badRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid json body", Code: "VALIDATION"})
		return
	}

	out := domain.NewValidationError()
	for _, fe := range verrs {
		out.Add(fe.Field(), describe(fe))
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: out.Error(), Code: "VALIDATION", Fields: out.Fields})
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

// useJSONFieldNames makes validator report fields by their json names.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}
