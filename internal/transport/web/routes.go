package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/elodie-boweren/MyBooking-sub000/internal/backend"
	"github.com/elodie-boweren/MyBooking-sub000/internal/booking"
	"github.com/elodie-boweren/MyBooking-sub000/internal/engine"
)

const dateLayout = "2006-01-02"

type quoteRequest struct {
	Room            engine.RoomOffer `json:"room"`
	CheckIn         string           `json:"checkIn"`
	CheckOut        string           `json:"checkOut"`
	PointsRequested int              `json:"pointsRequested"`
}

type bookingRequest struct {
	Room           engine.RoomOffer `json:"room"`
	CheckIn        string           `json:"checkIn"`
	CheckOut       string           `json:"checkOut"`
	NumberOfGuests int              `json:"numberOfGuests"`
	PointsUsed     int              `json:"pointsUsed"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func parseStay(checkIn, checkOut string) (engine.Stay, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return engine.Stay{}, fmt.Errorf("checkIn %q: use YYYY-MM-DD", checkIn)
	}

	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return engine.Stay{}, fmt.Errorf("checkOut %q: use YYYY-MM-DD", checkOut)
	}

	return engine.Stay{CheckIn: in, CheckOut: out}, nil
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

// writeError maps every failure kind to its own status and a
// human-readable body. Nothing fails silently.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	if inputErr := engine.IsInputError(err); inputErr != nil {
		s.respond(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	if errors.Is(err, engine.ErrInvalidDateRange) ||
		errors.Is(err, engine.ErrPastCheckIn) ||
		errors.Is(err, engine.ErrInsufficientPoints) {
		s.respond(w, http.StatusBadRequest, messageResponse{Message: err.Error()})

		return
	}

	if availabilityErr := booking.IsAvailabilityError(err); availabilityErr != nil {
		s.respond(w, http.StatusPreconditionFailed, availabilityErr.Fields())

		return
	}

	if submissionErr := booking.IsSubmissionError(err); submissionErr != nil {
		status := http.StatusBadGateway
		if submissionErr.StatusCode >= 400 {
			status = submissionErr.StatusCode
		}

		s.respond(w, status, messageResponse{Message: submissionErr.Message})

		return
	}

	if statusErr := backend.IsStatusError(err); statusErr != nil {
		status := http.StatusBadGateway
		if statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden {
			status = statusErr.StatusCode
		}

		s.respond(w, status, messageResponse{Message: statusErr.Error()})

		return
	}

	if malformedErr := backend.IsMalformedResponse(err); malformedErr != nil {
		s.l.LogErrorf("Backend sent a malformed response: %v", malformedErr.Error())
		s.respond(w, http.StatusBadGateway, messageResponse{Message: malformedErr.Error()})

		return
	}

	s.l.LogErrorf("Unhandled error: %v", err.Error())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (s *Server) searchRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.catalogue.ListRooms(r.Context())
	if err != nil {
		s.writeError(w, err)

		return
	}

	query := r.URL.Query()

	filter := engine.RoomFilter{
		Status:   engine.RoomStatus(query.Get("status")),
		RoomType: engine.RoomType(query.Get("type")),
	}

	if guests := query.Get("guests"); guests != "" {
		if _, err := fmt.Sscanf(guests, "%d", &filter.Guests); err != nil {
			s.respond(w, http.StatusBadRequest, messageResponse{Message: fmt.Sprintf("guests %q: provide a number", guests)})

			return
		}
	}

	if maxPrice := query.Get("maxPrice"); maxPrice != "" {
		var v float64
		if _, err := fmt.Sscanf(maxPrice, "%f", &v); err != nil {
			s.respond(w, http.StatusBadRequest, messageResponse{Message: fmt.Sprintf("maxPrice %q: provide a number", maxPrice)})

			return
		}

		filter.MaxPrice = engine.CentsFromAmount(v)
	}

	s.respond(w, http.StatusOK, engine.FilterRooms(rooms, filter))
}

func (s *Server) quoteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req quoteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, messageResponse{Message: "request body is not valid JSON"})

		return
	}

	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		s.respond(w, http.StatusBadRequest, messageResponse{Message: err.Error()})

		return
	}

	account, err := s.catalogue.LoyaltyAccount(ctx)
	if err != nil {
		s.writeError(w, err)

		return
	}

	quote, err := s.eng.Quote(req.Room, stay, req.PointsRequested, account)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.respond(w, http.StatusOK, quote)
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idempotencyKey := r.Header.Get("Idempotency-Key")
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
		s.l.LogWarnf("Booking request without Idempotency-Key, generated %v", idempotencyKey)
	}

	ctx = booking.NewContextWithIdempotencyKey(ctx, idempotencyKey)

	var req bookingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, messageResponse{Message: "request body is not valid JSON"})

		return
	}

	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		s.respond(w, http.StatusBadRequest, messageResponse{Message: err.Error()})

		return
	}

	account, err := s.catalogue.LoyaltyAccount(ctx)
	if err != nil {
		s.writeError(w, err)

		return
	}

	out, err := s.bookings.Book(ctx, &booking.BookInput{
		Room:           req.Room,
		Stay:           stay,
		NumberOfGuests: req.NumberOfGuests,
		PointsUsed:     req.PointsUsed,
		Account:        account,
	})
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.respond(w, http.StatusCreated, out)
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r chi.Router) {
	r.Use(s.loggerMiddleware())
	r.Use(s.recoverMiddleware())
	r.Use(s.sessionMiddleware())

	r.Route("/api", func(r chi.Router) {
		r.Get("/rooms/v1", s.searchRoomsHandler)
		r.Post("/quotes/v1", s.quoteHandler)
		r.Post("/bookings/v1", s.createBookingHandler)
	})

	r.Get(s.conf.LivenessEndpoint, s.livenessHandler)
}
