package adapter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	hotel "github.com/paulvitic/hotel-go"
	"github.com/paulvitic/hotel-go/domain"
)

// Console is the interactive front desk menu. Commands and queries go through
// the same buses the HTTP endpoints use; errors are printed and the loop
// continues.
type Console struct {
	commandBus hotel.CommandBus
	queryBus   hotel.QueryBus
	h          *domain.Hotel
	in         *bufio.Reader
	out        io.Writer
	dataFile   string
}

func NewConsole(commandBus hotel.CommandBus, queryBus hotel.QueryBus,
	h *domain.Hotel, in io.Reader, out io.Writer, dataFile string) *Console {
	if dataFile == "" {
		dataFile = "hotel_data.json"
	}
	return &Console{
		commandBus: commandBus,
		queryBus:   queryBus,
		h:          h,
		in:         bufio.NewReader(in),
		out:        out,
		dataFile:   dataFile,
	}
}

// Run loops over the menu until the operator exits or input runs out.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printMenu()
		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return nil
		}

		if choice == "14" {
			fmt.Fprintf(c.out, "Exiting %s front desk. Goodbye!\n", c.h.Name())
			return nil
		}
		if err := c.handle(ctx, choice); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintf(c.out, "\n%s Front Desk\n", c.h.Name())
	fmt.Fprintln(c.out, "1. Add Room")
	fmt.Fprintln(c.out, "2. Add Guest")
	fmt.Fprintln(c.out, "3. Make Reservation")
	fmt.Fprintln(c.out, "4. Check In")
	fmt.Fprintln(c.out, "5. Check Out")
	fmt.Fprintln(c.out, "6. View Available Rooms")
	fmt.Fprintln(c.out, "7. View All Reservations")
	fmt.Fprintln(c.out, "8. Add Service to Reservation")
	fmt.Fprintln(c.out, "9. Save Data")
	fmt.Fprintln(c.out, "10. Load Data")
	fmt.Fprintln(c.out, "11. View In-House Guests")
	fmt.Fprintln(c.out, "12. View Invoice")
	fmt.Fprintln(c.out, "13. Recent Activity")
	fmt.Fprintln(c.out, "14. Exit")
}

func (c *Console) handle(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return c.addRoom(ctx)
	case "2":
		return c.addGuest(ctx)
	case "3":
		return c.makeReservation(ctx)
	case "4":
		return c.checkIn(ctx)
	case "5":
		return c.checkOut(ctx)
	case "6":
		return c.availableRooms()
	case "7":
		return c.allReservations()
	case "8":
		return c.addService(ctx)
	case "9":
		return c.saveData(ctx)
	case "10":
		return c.loadData(ctx)
	case "11":
		return c.inHouseGuests(ctx)
	case "12":
		return c.invoice(ctx)
	case "13":
		return c.recentActivity(ctx)
	default:
		fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		return nil
	}
}

func (c *Console) addRoom(ctx context.Context) error {
	roomNumber, err := c.prompt("Enter room number: ")
	if err != nil {
		return err
	}
	roomType, err := c.prompt("Enter room type: ")
	if err != nil {
		return err
	}
	rate, err := c.promptFloat("Enter price per night: ")
	if err != nil {
		return err
	}

	cmd := domain.AddRoom{RoomNumber: roomNumber, RoomType: roomType, Rate: rate}
	if err := c.commandBus.Dispatch(ctx, hotel.NewCommand(cmd)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Room %s added successfully.\n", roomNumber)
	return nil
}

func (c *Console) addGuest(ctx context.Context) error {
	guestID, err := c.prompt("Enter guest ID: ")
	if err != nil {
		return err
	}
	name, err := c.prompt("Enter guest name: ")
	if err != nil {
		return err
	}
	email, err := c.prompt("Enter guest email: ")
	if err != nil {
		return err
	}
	phone, err := c.prompt("Enter guest phone: ")
	if err != nil {
		return err
	}

	cmd := domain.RegisterGuest{GuestID: guestID, Name: name, Email: email, Phone: phone}
	if err := c.commandBus.Dispatch(ctx, hotel.NewCommand(cmd)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Guest %s added successfully.\n", guestID)
	return nil
}

func (c *Console) makeReservation(ctx context.Context) error {
	guestID, err := c.prompt("Enter guest ID: ")
	if err != nil {
		return err
	}
	roomNumber, err := c.prompt("Enter room number: ")
	if err != nil {
		return err
	}
	checkIn, err := c.prompt("Enter check-in date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	checkOut, err := c.prompt("Enter check-out date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	cmd := domain.MakeReservation{
		GuestID:    guestID,
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}
	if err := c.commandBus.Dispatch(ctx, hotel.NewCommand(cmd)); err != nil {
		return err
	}

	reservations := c.h.Reservations()
	if len(reservations) > 0 {
		fmt.Fprintf(c.out, "Reservation created successfully:\n%s\n",
			reservations[len(reservations)-1])
	}
	return nil
}

func (c *Console) checkIn(ctx context.Context) error {
	reservationID, err := c.prompt("Enter reservation ID: ")
	if err != nil {
		return err
	}
	cmd := domain.CheckInGuest{ReservationID: reservationID}
	if err := c.commandBus.Dispatch(ctx, hotel.NewCommand(cmd)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Reservation %s checked in successfully.\n", reservationID)
	return nil
}

func (c *Console) checkOut(ctx context.Context) error {
	reservationID, err := c.prompt("Enter reservation ID: ")
	if err != nil {
		return err
	}
	cmd := domain.CheckOutGuest{ReservationID: reservationID}
	if err := c.commandBus.Dispatch(ctx, hotel.NewCommand(cmd)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Reservation %s checked out successfully.\n", reservationID)

	if reservation, err := c.h.Reservation(reservationID); err == nil {
		fmt.Fprintf(c.out, "Total charges: $%.2f\n", reservation.TotalCharges())
	}
	return nil
}

func (c *Console) availableRooms() error {
	checkIn, err := c.prompt("Enter check-in date (YYYY-MM-DD, leave empty for today): ")
	if err != nil {
		return err
	}
	checkOut, err := c.prompt("Enter check-out date (YYYY-MM-DD, leave empty for tomorrow): ")
	if err != nil {
		return err
	}

	if checkIn == "" {
		checkIn = time.Now().Format(domain.DateLayout)
	}
	if checkOut == "" {
		checkOut = time.Now().AddDate(0, 0, 1).Format(domain.DateLayout)
	}

	stay, err := domain.ParseStayPeriod(checkIn, checkOut)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "\nAvailable Rooms from %s to %s:\n", checkIn, checkOut)
	for _, room := range c.h.AvailableRooms(stay) {
		fmt.Fprintln(c.out, room)
	}
	return nil
}

func (c *Console) allReservations() error {
	fmt.Fprintln(c.out, "\nAll Reservations:")
	for _, reservation := range c.h.Reservations() {
		fmt.Fprintln(c.out, reservation)
		fmt.Fprintln(c.out, strings.Repeat("-", 50))
	}
	return nil
}

func (c *Console) addService(ctx context.Context) error {
	reservationID, err := c.prompt("Enter reservation ID: ")
	if err != nil {
		return err
	}
	service, err := c.prompt("Enter service name: ")
	if err != nil {
		return err
	}
	price, err := c.promptFloat("Enter service price: ")
	if err != nil {
		return err
	}

	cmd := domain.AddServiceCharge{ReservationID: reservationID, Service: service, Price: price}
	if err := c.commandBus.Dispatch(ctx, hotel.NewCommand(cmd)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Service '%s' added to reservation %s\n", service, reservationID)
	return nil
}

func (c *Console) saveData(ctx context.Context) error {
	path, err := c.promptDefault(
		fmt.Sprintf("Enter filename to save (default: %s): ", c.dataFile), c.dataFile)
	if err != nil {
		return err
	}
	if err := c.commandBus.Dispatch(ctx, hotel.NewCommand(domain.SaveState{Path: path})); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Data saved to %s\n", path)
	return nil
}

func (c *Console) loadData(ctx context.Context) error {
	path, err := c.promptDefault(
		fmt.Sprintf("Enter filename to load (default: %s): ", c.dataFile), c.dataFile)
	if err != nil {
		return err
	}
	if err := c.commandBus.Dispatch(ctx, hotel.NewCommand(domain.LoadState{Path: path})); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Data loaded from %s\n", path)
	return nil
}

func (c *Console) inHouseGuests(ctx context.Context) error {
	response, err := c.queryBus.Dispatch(ctx, hotel.NewQuery(domain.GuestsInHouse{}))
	if err != nil {
		return err
	}

	guests, ok := response.Items().([]domain.InHouseGuest)
	if !ok {
		return fmt.Errorf("unexpected in-house board response")
	}

	fmt.Fprintln(c.out, "\nGuests In House:")
	if len(guests) == 0 {
		fmt.Fprintln(c.out, "No guests are currently checked in.")
		return nil
	}
	for _, guest := range guests {
		fmt.Fprintf(c.out, "%s (%s) - Room %s, Reservation %s\n",
			guest.Name, guest.GuestID, guest.RoomNumber, guest.ReservationID)
	}
	return nil
}

func (c *Console) invoice(ctx context.Context) error {
	reservationID, err := c.prompt("Enter reservation ID: ")
	if err != nil {
		return err
	}

	response, err := c.queryBus.Dispatch(ctx,
		hotel.NewQuery(domain.InvoiceOf{ReservationID: reservationID}))
	if err != nil {
		return err
	}

	invoice, ok := response.Items().(domain.Invoice)
	if !ok {
		return fmt.Errorf("unexpected invoice response")
	}
	fmt.Fprintf(c.out, "\n%s\n", invoice)
	return nil
}

func (c *Console) recentActivity(ctx context.Context) error {
	response, err := c.queryBus.Dispatch(ctx, hotel.NewQuery(domain.RecentActivity{Limit: 10}))
	if err != nil {
		return err
	}

	lines, ok := response.Items().([]string)
	if !ok {
		return fmt.Errorf("unexpected activity response")
	}

	fmt.Fprintln(c.out, "\nRecent Activity:")
	if len(lines) == 0 {
		fmt.Fprintln(c.out, "No recent activity.")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
	return nil
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) promptDefault(label, fallback string) (string, error) {
	value, err := c.prompt(label)
	if err != nil {
		return "", err
	}
	if value == "" {
		return fallback, nil
	}
	return value, nil
}

func (c *Console) promptFloat(label string) (float64, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return value, nil
}
