package mappers

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"booking-backend/domain"
	"booking-backend/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func bookingRecord() models.Booking {
	property := propertyRecord()
	guest := models.User{ID: "1", Name: "João"}

	return models.Booking{
		ID:         "1",
		PropertyID: property.ID,
		Property:   &property,
		GuestID:    guest.ID,
		Guest:      &guest,
		StartDate:  datatypes.Date(date("2023-10-01")),
		EndDate:    datatypes.Date(date("2023-10-05")),
		GuestCount: 2,
		TotalPrice: 500,
		Status:     "CONFIRMED",
	}
}

func TestBookingToDomain(t *testing.T) {
	record := bookingRecord()

	booking, err := BookingToDomain(record)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if booking.ID() != record.ID {
		t.Errorf("Expected id %s, got %s", record.ID, booking.ID())
	}
	if booking.Property().ID() != record.Property.ID || booking.Property().Name() != record.Property.Name {
		t.Errorf("Unexpected property: %s %s", booking.Property().ID(), booking.Property().Name())
	}
	if booking.Property().Description() != record.Property.Description {
		t.Errorf("Unexpected property description: %s", booking.Property().Description())
	}
	if booking.Property().MaxGuests() != record.Property.MaxGuests {
		t.Errorf("Unexpected property maxGuests: %d", booking.Property().MaxGuests())
	}
	if booking.Guest().ID() != record.Guest.ID || booking.Guest().Name() != record.Guest.Name {
		t.Errorf("Unexpected guest: %s %s", booking.Guest().ID(), booking.Guest().Name())
	}
	if !booking.DateRange().StartDate().Equal(time.Time(record.StartDate)) {
		t.Errorf("Expected start %v, got %v", time.Time(record.StartDate), booking.DateRange().StartDate())
	}
	if !booking.DateRange().EndDate().Equal(time.Time(record.EndDate)) {
		t.Errorf("Expected end %v, got %v", time.Time(record.EndDate), booking.DateRange().EndDate())
	}
	if booking.GuestCount() != record.GuestCount {
		t.Errorf("Expected guest count %d, got %d", record.GuestCount, booking.GuestCount())
	}
	// the stored price wins over nights * rate
	if booking.TotalPrice() != record.TotalPrice {
		t.Errorf("Expected total price %v, got %v", record.TotalPrice, booking.TotalPrice())
	}
	if string(booking.Status()) != record.Status {
		t.Errorf("Expected status %s, got %s", record.Status, booking.Status())
	}
}

func TestBookingToDomain_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Booking)
		want   string
	}{
		{"missing id", func(r *models.Booking) { r.ID = "" }, "O ID da reserva é obrigatório"},
		{"missing property", func(r *models.Booking) { r.Property = nil }, "A propriedade da reserva é obrigatória"},
		{"missing guest", func(r *models.Booking) { r.Guest = nil }, "O hóspede da reserva é obrigatório"},
		{"missing start date", func(r *models.Booking) { r.StartDate = datatypes.Date{} }, "Data de início é obrigatória"},
		{"missing end date", func(r *models.Booking) { r.EndDate = datatypes.Date{} }, "Data de término é obrigatória"},
		{"missing guest count", func(r *models.Booking) { r.GuestCount = 0 }, "Número de hóspedes é obrigatório"},
		{"missing total price", func(r *models.Booking) { r.TotalPrice = 0 }, "Preço total é obrigatório"},
		{"missing status", func(r *models.Booking) { r.Status = "" }, "Status da reserva é obrigatório"},
		{"unknown status", func(r *models.Booking) { r.Status = "ARCHIVED" }, "Status da reserva inválido"},
		{"nested property price", func(r *models.Booking) { r.Property.BasePricePerNight = 0 }, "Preço base por noite é obrigatório"},
		{"nested guest name", func(r *models.Booking) { r.Guest.Name = "" }, "Nome do usuário é obrigatório"},
		{"property id mismatch", func(r *models.Booking) { r.PropertyID = "OTHER" }, "A propriedade da reserva não corresponde ao registro"},
		{"guest id mismatch", func(r *models.Booking) { r.GuestID = "OTHER" }, "O hóspede da reserva não corresponde ao registro"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := bookingRecord()
			tc.mutate(&record)

			booking, err := BookingToDomain(record)
			if booking != nil {
				t.Errorf("Expected nil booking, got %+v", booking)
			}
			expectValidation(t, err, tc.want)
		})
	}
}

func TestBookingToDomain_InvalidRangeInRecord(t *testing.T) {
	record := bookingRecord()
	record.EndDate = record.StartDate

	_, err := BookingToDomain(record)
	expectValidation(t, err, "A data de início deve ser anterior à data de término")
}

func newBooking(t *testing.T) *domain.Booking {
	t.Helper()
	property, _ := domain.NewProperty("1", "Apartamento", "Um apartamento confortável", 4, 100)
	user, _ := domain.NewUser("1", "João")
	dateRange, err := domain.NewDateRange(date("2023-10-01"), date("2023-10-05"))
	if err != nil {
		t.Fatal(err)
	}
	booking, err := domain.NewBooking("1", property, user, dateRange, 2)
	if err != nil {
		t.Fatal(err)
	}
	return booking
}

func TestBookingToPersistence(t *testing.T) {
	booking := newBooking(t)

	record := BookingToPersistence(booking)

	if record.ID != booking.ID() {
		t.Errorf("Expected id %s, got %s", booking.ID(), record.ID)
	}
	if record.Property == nil || record.Property.ID != "1" || record.Property.Name != "Apartamento" {
		t.Fatalf("Unexpected property sub-record: %+v", record.Property)
	}
	if record.Property.Description != "Um apartamento confortável" || record.Property.MaxGuests != 4 {
		t.Errorf("Unexpected property sub-record: %+v", record.Property)
	}
	if record.PropertyID != "1" || record.GuestID != "1" {
		t.Errorf("Expected foreign keys to be set, got property=%q guest=%q", record.PropertyID, record.GuestID)
	}
	if record.Guest == nil || record.Guest.ID != "1" || record.Guest.Name != "João" {
		t.Fatalf("Unexpected guest sub-record: %+v", record.Guest)
	}
	if !time.Time(record.StartDate).Equal(booking.DateRange().StartDate()) {
		t.Errorf("Expected start %v, got %v", booking.DateRange().StartDate(), time.Time(record.StartDate))
	}
	if !time.Time(record.EndDate).Equal(booking.DateRange().EndDate()) {
		t.Errorf("Expected end %v, got %v", booking.DateRange().EndDate(), time.Time(record.EndDate))
	}
	if record.GuestCount != 2 || record.TotalPrice != 400 || record.Status != "PENDING" {
		t.Errorf("Unexpected scalar fields: %+v", record)
	}
}

func TestBookingRoundTrip(t *testing.T) {
	t.Run("entity -> record -> entity", func(t *testing.T) {
		booking := newBooking(t)
		if err := booking.Confirm(); err != nil {
			t.Fatal(err)
		}

		back, err := BookingToDomain(BookingToPersistence(booking))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if back.ID() != booking.ID() || back.GuestCount() != booking.GuestCount() ||
			back.TotalPrice() != booking.TotalPrice() || back.Status() != booking.Status() {
			t.Errorf("Round trip changed the booking")
		}
		if !back.DateRange().Equal(booking.DateRange()) {
			t.Errorf("Round trip changed the date range")
		}
		if back.Property().ID() != booking.Property().ID() || back.Guest().ID() != booking.Guest().ID() {
			t.Errorf("Round trip changed the references")
		}
	})

	t.Run("record -> entity -> record", func(t *testing.T) {
		record := bookingRecord()

		booking, err := BookingToDomain(record)
		if err != nil {
			t.Fatal(err)
		}
		back := BookingToPersistence(booking)

		if back.ID != record.ID || back.PropertyID != record.PropertyID || back.GuestID != record.GuestID ||
			back.GuestCount != record.GuestCount || back.TotalPrice != record.TotalPrice || back.Status != record.Status {
			t.Errorf("Round trip changed the record: %+v -> %+v", record, back)
		}
		if !time.Time(back.StartDate).Equal(time.Time(record.StartDate)) || !time.Time(back.EndDate).Equal(time.Time(record.EndDate)) {
			t.Errorf("Round trip changed the dates")
		}
		if *back.Guest != *record.Guest {
			t.Errorf("Round trip changed the guest: %+v -> %+v", record.Guest, back.Guest)
		}
	})
}
