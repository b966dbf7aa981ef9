package reservations

import (
	"context"
	"fmt"

	"futbolya/internal/api"
	"futbolya/internal/domain"

	"github.com/rs/zerolog"
)

type Service struct {
	client *api.Client
	log    zerolog.Logger
}

func NewService(client *api.Client, log zerolog.Logger) *Service {
	return &Service{client: client, log: log}
}

// OccupiedSlots fetches the already-booked hours of a pitch. The endpoint
// answers 404 when nothing is booked; that is an empty list, not an error.
func (s *Service) OccupiedSlots(ctx context.Context, pitchID int64) ([]domain.OccupiedSlot, error) {
	return api.GetList[domain.OccupiedSlot](ctx, s.client,
		fmt.Sprintf("/api/reservations/findOccupiedSlotsByPitch/%d", pitchID))
}

// AvailabilityFor computes the selectable slots of one pitch for one date,
// against a fresh occupied list.
func (s *Service) AvailabilityFor(ctx context.Context, pitchID int64, business *domain.Business, date string) (*DayAvailability, error) {
	occupied, err := s.OccupiedSlots(ctx, pitchID)
	if err != nil {
		return nil, err
	}

	slots := GenerateSlots(business.OpeningAt, business.ClosingAt)
	av := Availability(date, slots, occupied)
	return &DayAvailability{
		Date:        date,
		Slots:       av,
		FullyBooked: FullyBooked(av),
	}, nil
}

// Create books a slot. Immediately before submitting it re-fetches the
// occupied list and re-validates the selection, so a slot lost to a
// concurrent booking fails here with ErrSlotTaken instead of a backend
// conflict. Best effort only; the backend stays the authority.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if req.Date == "" || req.Hour == "" {
		return nil, ErrMissingSelection
	}

	occupied, err := s.OccupiedSlots(ctx, req.PitchID)
	if err != nil {
		return nil, err
	}
	if IsOccupied(req.Date, req.Hour, occupied) {
		s.log.Info().
			Str("date", req.Date).
			Str("hour", req.Hour).
			Int64("pitch", req.PitchID).
			Msg("slot taken between selection and submit")
		return nil, ErrSlotTaken
	}

	body := createBody{
		ReservationDate: req.Date,
		ReservationTime: req.Hour,
		Pitch:           req.PitchID,
		User:            req.UserID,
		Status:          string(domain.StatusPending),
	}
	res, err := api.PostJSON[domain.Reservation](ctx, s.client, "/api/reservations/add", body)
	if err != nil {
		if api.IsConflict(err) {
			// The race window closed on the backend side instead.
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return &res, nil
}

// UpdateStatus moves a reservation through its lifecycle. The outbound
// status is translated to the backend label here, right before the body is
// built.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	body := updateStatusBody{Status: status.BackendLabel()}
	res, err := api.PutJSON[domain.Reservation](ctx, s.client,
		fmt.Sprintf("/api/reservations/update/%d", id), body)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Service) Cancel(ctx context.Context, id int64) error {
	return api.Delete(ctx, s.client, fmt.Sprintf("/api/reservations/cancel/%d", id))
}

func (s *Service) FindByBusiness(ctx context.Context, businessID int64) ([]domain.Reservation, error) {
	return api.GetList[domain.Reservation](ctx, s.client,
		fmt.Sprintf("/api/reservations/findByBusiness/%d", businessID))
}

func (s *Service) FindAllFromUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	return api.GetList[domain.Reservation](ctx, s.client,
		fmt.Sprintf("/api/reservations/findAllFromUser/%d", userID))
}
