package domain

import "fmt"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// ParseBookingStatus accepts the stored form of a status.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(raw)
	if !s.Valid() {
		return "", NewValidationError("Status da reserva inválido")
	}
	return s, nil
}

// Booking is a guest's stay at a property. The price is fixed when the
// booking is created; only the status changes afterwards.
type Booking struct {
	id         string
	property   *Property
	guest      *User
	dateRange  DateRange
	guestCount int
	totalPrice float64
	status     BookingStatus
}

func NewBooking(id string, property *Property, guest *User, dateRange DateRange, guestCount int) (*Booking, error) {
	if err := validateBooking(property, guest, guestCount); err != nil {
		return nil, err
	}

	return &Booking{
		id:         id,
		property:   property,
		guest:      guest,
		dateRange:  dateRange,
		guestCount: guestCount,
		totalPrice: property.PriceFor(dateRange),
		status:     BookingPending,
	}, nil
}

// RestoreBooking rebuilds a booking that was already priced and stored.
func RestoreBooking(
	id string,
	property *Property,
	guest *User,
	dateRange DateRange,
	guestCount int,
	totalPrice float64,
	status BookingStatus,
) (*Booking, error) {
	if err := validateBooking(property, guest, guestCount); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, NewValidationError("Status da reserva inválido")
	}

	return &Booking{
		id:         id,
		property:   property,
		guest:      guest,
		dateRange:  dateRange,
		guestCount: guestCount,
		totalPrice: totalPrice,
		status:     status,
	}, nil
}

func validateBooking(property *Property, guest *User, guestCount int) error {
	if property == nil {
		return NewValidationError("A propriedade é obrigatória")
	}
	if guest == nil {
		return NewValidationError("O hóspede é obrigatório")
	}
	if guestCount < 1 {
		return NewValidationError("O número de hóspedes deve ser maior que zero")
	}
	if guestCount > property.MaxGuests() {
		return NewValidationError(fmt.Sprintf("Número máximo de hóspedes excedido. Máximo permitido: %d", property.MaxGuests()))
	}
	return nil
}

func (b *Booking) ID() string { return b.id }

func (b *Booking) Property() *Property { return b.property }

func (b *Booking) Guest() *User { return b.guest }

func (b *Booking) DateRange() DateRange { return b.dateRange }

func (b *Booking) GuestCount() int { return b.guestCount }

func (b *Booking) TotalPrice() float64 { return b.totalPrice }

func (b *Booking) Status() BookingStatus { return b.status }

// CheckTransition reports whether a booking stored as from may be saved as
// to. PENDING may be re-saved as is; CANCELLED is terminal.
func CheckTransition(from, to BookingStatus) error {
	switch to {
	case BookingPending:
		if from != BookingPending {
			return NewConflictError("A reserva não pode voltar a ficar pendente")
		}
	case BookingConfirmed:
		if from != BookingPending {
			return NewConflictError("Somente reservas pendentes podem ser confirmadas")
		}
	case BookingCancelled:
		if from == BookingCancelled {
			return NewConflictError("A reserva já está cancelada")
		}
	default:
		return NewValidationError("Status da reserva inválido")
	}
	return nil
}

// Confirm moves a pending booking to CONFIRMED.
func (b *Booking) Confirm() error {
	if err := CheckTransition(b.status, BookingConfirmed); err != nil {
		return err
	}
	b.status = BookingConfirmed
	return nil
}

// Cancel is allowed from PENDING and CONFIRMED. A second cancel is rejected
// instead of being ignored.
func (b *Booking) Cancel() error {
	if err := CheckTransition(b.status, BookingCancelled); err != nil {
		return err
	}
	b.status = BookingCancelled
	return nil
}

// Blocks reports whether this booking keeps any night of r occupied.
// Only confirmed bookings hold their nights.
func (b *Booking) Blocks(r DateRange) bool {
	return b.status == BookingConfirmed && b.dateRange.Overlaps(r)
}
