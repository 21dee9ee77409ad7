package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/adapter"
	"github.com/paulvitic/hotel-go/application"
	"github.com/paulvitic/hotel-go/domain"
)

func main() {
	serve := flag.Bool("serve", false, "serve the HTTP API instead of the console menu")
	flag.Parse()

	logger := hotel.NewLogger()
	_ = godotenv.Load()

	config := configuration(logger)
	h := domain.NewHotel(config.HotelName)
	board := adapter.InHouseBoard(h)
	billing := application.NewBilling(h, adapter.InvoiceRepo())

	appContext := application.NewContext("frontdesk")
	appContext.
		RegisterPolicy(domain.Invoicing()).
		RegisterView(board).
		RegisterCommandService(application.FrontDeskService(h, adapter.FileStore())).
		RegisterCommandService(billing.CommandService()).
		RegisterQueryService(application.DeskQueryService(h, board, appContext.EventLog())).
		RegisterQueryService(billing.QueryService()).
		RegisterCommandEndpoint(adapter.RoomsEndpoint()).
		RegisterCommandEndpoint(adapter.GuestsEndpoint()).
		RegisterCommandEndpoint(adapter.ReservationsEndpoint()).
		RegisterCommandEndpoint(adapter.CheckInEndpoint()).
		RegisterCommandEndpoint(adapter.CheckOutEndpoint()).
		RegisterCommandEndpoint(adapter.ServicesEndpoint()).
		RegisterQueryEndpoint(adapter.AvailabilityEndpoint()).
		RegisterQueryEndpoint(adapter.ReservationListEndpoint()).
		RegisterQueryEndpoint(adapter.ReservationEndpoint()).
		RegisterQueryEndpoint(adapter.InHouseEndpoint()).
		RegisterQueryEndpoint(adapter.InvoiceEndpoint()).
		RegisterQueryEndpoint(adapter.ActivityEndpoint())

	ctx := context.Background()
	seedSampleData(ctx, appContext, config.DataFile, logger)

	if *serve {
		server := application.NewServer(":" + config.HttpPort).WithContext(appContext)
		if err := server.Start(); err != nil {
			logger.Error("server stopped: %v", err)
			os.Exit(1)
		}
		return
	}

	console := adapter.NewConsole(appContext.CommandBus(), appContext.QueryBus(),
		h, os.Stdin, os.Stdout, config.DataFile)
	if err := console.Run(ctx); err != nil {
		logger.Error("console stopped: %v", err)
		os.Exit(1)
	}
}

func configuration(logger *hotel.Logger) *application.Configuration {
	config, err := hotel.Configuration[application.Configuration]()
	if err != nil {
		logger.Warn("using default configuration: %v", err)
		config = &application.Configuration{}
	}
	if config.HotelName == "" {
		config.HotelName = "Grand Hotel"
	}
	if config.HttpPort == "" {
		config.HttpPort = "8080"
	}
	if config.DataFile == "" {
		config.DataFile = "hotel_data.json"
	}
	return config
}

// seedSampleData fills an empty hotel with demonstration rooms and guests.
// Skipped when a data file from a previous run exists.
func seedSampleData(ctx context.Context, appContext *application.Context,
	dataFile string, logger *hotel.Logger) {
	if _, err := os.Stat(dataFile); err == nil {
		return
	}

	commands := []any{
		domain.AddRoom{RoomNumber: "101", RoomType: "Single", Rate: 99.99},
		domain.AddRoom{RoomNumber: "102", RoomType: "Double", Rate: 149.99},
		domain.AddRoom{RoomNumber: "201", RoomType: "Suite", Rate: 249.99},
		domain.AddRoom{RoomNumber: "202", RoomType: "Double", Rate: 149.99},
		domain.RegisterGuest{GuestID: "G001", Name: "John Doe",
			Email: "john@example.com", Phone: "555-0101"},
		domain.RegisterGuest{GuestID: "G002", Name: "Jane Smith",
			Email: "jane@example.com", Phone: "555-0102"},
	}
	for _, body := range commands {
		if err := appContext.CommandBus().Dispatch(ctx, hotel.NewCommand(body)); err != nil {
			logger.Warn("seeding sample data: %v", err)
		}
	}
}
