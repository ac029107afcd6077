package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tutorgo/models"
	"tutorgo/utils"
)

// StartFlow opens a fresh booking flow against a tutor and returns it together
// with the tutor's open blocks for the block-selection step.
func (s *DefaultBookingService) StartFlow(ctx context.Context, studentID, tutorID string) (*BookingFlow, []models.AvailabilityBlock, error) {
	tutor, err := s.TutorRepo.GetByID(tutorID)
	if err != nil {
		return nil, nil, NewReservationError("Tutor not found.")
	}

	blocks, err := s.AvailabilityRepo.ListByTutor(tutorID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tutor availability: %w", err)
	}

	flow := NewBookingFlow(studentID, tutorID, tutor.HourlyRate)
	if err := s.Flows.Save(ctx, flow); err != nil {
		return nil, nil, err
	}
	return flow, blocks, nil
}

// GetFlow loads a flow and verifies it belongs to the caller.
func (s *DefaultBookingService) GetFlow(ctx context.Context, flowID, studentID string) (*BookingFlow, error) {
	flow, err := s.Flows.Get(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if flow == nil || flow.StudentID != studentID {
		return nil, NewReservationError("Booking flow not found or expired.")
	}
	return flow, nil
}

func (s *DefaultBookingService) FlowSelectBlock(ctx context.Context, flowID, studentID, blockID string) (*BookingFlow, error) {
	flow, err := s.GetFlow(ctx, flowID, studentID)
	if err != nil {
		return nil, err
	}

	block, err := s.AvailabilityRepo.GetByID(blockID)
	if err != nil {
		return nil, NewReservationError("Availability block not found.")
	}
	if block.TutorID != flow.TutorID {
		return nil, NewReservationError("Availability block does not belong to this tutor.")
	}

	if err := flow.SelectBlock(*block); err != nil {
		return nil, err
	}
	if err := s.Flows.Save(ctx, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

func (s *DefaultBookingService) FlowChooseStart(ctx context.Context, flowID, studentID, clock string) (*BookingFlow, error) {
	flow, err := s.GetFlow(ctx, flowID, studentID)
	if err != nil {
		return nil, err
	}

	minute, err := utils.ClockToMinutes(clock)
	if err != nil {
		return nil, ErrInvalidStartTime
	}
	if err := flow.ChooseStartTime(minute); err != nil {
		return nil, err
	}
	if err := s.Flows.Save(ctx, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

func (s *DefaultBookingService) FlowSetDuration(ctx context.Context, flowID, studentID string, hours int) (*BookingFlow, error) {
	flow, err := s.GetFlow(ctx, flowID, studentID)
	if err != nil {
		return nil, err
	}

	if err := flow.SetDuration(hours); err != nil {
		return nil, err
	}
	if err := s.Flows.Save(ctx, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// FlowSubmit performs the single reservation attempt for the flow. The flow is
// persisted in its in-flight state before the call so a concurrent submit is
// refused, and settled afterwards whichever way the attempt went. At most one
// reservation call is made per invocation; a failure leaves the flow ready for
// an explicit retry.
func (s *DefaultBookingService) FlowSubmit(ctx context.Context, flowID, studentID string) (*models.ReservationResponse, *BookingFlow, error) {
	logger := utils.GetLogger()

	flow, err := s.GetFlow(ctx, flowID, studentID)
	if err != nil {
		return nil, nil, err
	}

	if err := flow.BeginSubmit(); err != nil {
		return nil, flow, err
	}
	if err := s.Flows.Save(ctx, flow); err != nil {
		return nil, nil, err
	}

	// A span past midnight cannot fit any same-day block and its end time would
	// wrap on the wire, so settle it here with the availability message.
	if !flow.FitsWithinDay() {
		msg := "The tutor is not available at the selected date and time."
		flow.FailSubmit(msg)
		if saveErr := s.Flows.Save(ctx, flow); saveErr != nil {
			logger.Error("FlowSubmit: failed to persist failed flow", zap.Error(saveErr))
		}
		return &models.ReservationResponse{Success: false, Message: msg}, flow, nil
	}

	session, err := s.Reserve(studentID, flow.ReservationRequest())
	if err != nil {
		msg := reservationMessage(err)
		flow.FailSubmit(msg)
		if saveErr := s.Flows.Save(ctx, flow); saveErr != nil {
			logger.Error("FlowSubmit: failed to persist failed flow", zap.Error(saveErr))
		}
		return &models.ReservationResponse{Success: false, Message: msg}, flow, nil
	}

	flow.CompleteSubmit(session.ID)
	if err := s.Flows.Save(ctx, flow); err != nil {
		logger.Error("FlowSubmit: failed to persist reserved flow", zap.Error(err))
	}

	return &models.ReservationResponse{
		Success: true,
		Message: "Session reserved. Continue to checkout.",
		Data:    session,
	}, flow, nil
}
