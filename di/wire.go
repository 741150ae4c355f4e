//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	authService "hotel/internal/domains/auth/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	hotelRepository "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	repairRepository "hotel/internal/domains/repair/repository"
	repairService "hotel/internal/domains/repair/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"
	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	hotelHandler "hotel/internal/handlers/hotel"
	repairHandler "hotel/internal/handlers/repair"
	roomHandler "hotel/internal/handlers/room"
	gRepo "hotel/shared/repository"
	"hotel/transport/cli"
	"hotel/transport/cli/console"
	"hotel/transport/cli/router"

	"github.com/google/wire"
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	gRepo.NewExecutor,
)

var terminal = wire.NewSet(
	console.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var repairDomain = wire.NewSet(
	repairRepository.New,
	repairService.New,
)

var domains = wire.NewSet(
	authDomain,
	hotelDomain,
	roomDomain,
	bookingDomain,
	repairDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	repairHandler.New,
	router.New,
)

// InitializeApp connects to the database and assembles the client. The
// cleanup closes the connection and flushes traces.
func InitializeApp(cfg *config.Config, streams console.Streams) (*cli.App, func(), error) {
	wire.Build(
		infrastructures,
		terminal,
		domains,
		routing,
		cli.New,
	)

	return &cli.App{}, nil, nil
}
