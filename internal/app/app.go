package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/elodie-boweren/MyBooking-sub000/internal/backend"
	"github.com/elodie-boweren/MyBooking-sub000/internal/booking"
	"github.com/elodie-boweren/MyBooking-sub000/internal/config"
	"github.com/elodie-boweren/MyBooking-sub000/internal/engine"
	"github.com/elodie-boweren/MyBooking-sub000/internal/logger"
	"github.com/elodie-boweren/MyBooking-sub000/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf := config.Load(l)

	backendClient := backend.New(backend.Config{
		L:       l,
		BaseURL: conf.BackendBaseURL,
		Timeout: conf.BackendTimeout,
	})

	eng := engine.New(engine.PolicyFromConfig(conf.PointUnitValue, conf.TaxRate))
	bookManager := booking.New(l, eng, backendClient)

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		LivenessEndpoint:  conf.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, eng, bookManager, backendClient)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v, backend at %v...", webConf.Host, webConf.Port, conf.BackendBaseURL)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
