package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elodie-boweren/MyBooking-sub000/internal/booking"
	"github.com/elodie-boweren/MyBooking-sub000/internal/engine"
	"github.com/elodie-boweren/MyBooking-sub000/internal/logger"
)

// catalogue is the slice of the backend client the gateway reads from
// directly. Writes go through the booking manager instead.
type catalogue interface {
	ListRooms(ctx context.Context) ([]engine.RoomOffer, error)
	LoyaltyAccount(ctx context.Context) (engine.LoyaltyAccount, error)
}

type Server struct {
	srv       *http.Server
	router    chi.Router
	l         *logger.Logger
	conf      Conf
	eng       *engine.Engine
	bookings  *booking.Manager
	catalogue catalogue
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

func New(ctx context.Context, conf Conf, eng *engine.Engine, bookings *booking.Manager, catalogue catalogue) (*Server, error) {
	router := chi.NewRouter()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           router,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:       srv,
		router:    router,
		l:         conf.L,
		conf:      conf,
		eng:       eng,
		bookings:  bookings,
		catalogue: catalogue,
	}

	server.addRoutes(router)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
