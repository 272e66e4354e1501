package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"salon-booking/internal/model"
)

// TextGenerator produces marketing copy from a prompt. Satisfied by the
// genai client; tests substitute a stub.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ContentService wraps the generative-text calls used for optional marketing
// content. Every failure degrades to a deterministic static fallback; a
// broken AI service must never break the booking flow.
type ContentService struct {
	generator TextGenerator
	salonName string
	logger    *zap.Logger
}

// NewContentService creates a new content service
func NewContentService(generator TextGenerator, salonName string, logger *zap.Logger) *ContentService {
	return &ContentService{
		generator: generator,
		salonName: salonName,
		logger:    logger,
	}
}

// StyleSuggestion asks the virtual style consultant for a look suggestion.
func (s *ContentService) StyleSuggestion(ctx context.Context, occasion, personalStyle string) string {
	prompt := fmt.Sprintf(
		"Act as an expert hair stylist. A client is looking for look advice. "+
			"The occasion is %q and their personal style is %q. Give a detailed, "+
			"creative suggestion for a cut and color, explaining why it fits the "+
			"context. Be encouraging and professional.",
		occasion, personalStyle)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("style suggestion generation failed", zap.Error(err))
		return "We're sorry, the style consultant is unavailable right now. Please try again later."
	}
	return text
}

// ServiceDescription generates short marketing copy for a treatment.
func (s *ContentService) ServiceDescription(ctx context.Context, serviceName string) string {
	prompt := fmt.Sprintf(
		"Write a short, catchy and simple marketing description for the "+
			"following hair treatment: %q. Highlight the key benefits for the "+
			"client in 2-3 sentences.",
		serviceName)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("service description generation failed",
			zap.String("service", serviceName), zap.Error(err))
		return "The description could not be loaded."
	}
	return text
}

// BookingReminder generates a friendly appointment reminder for a booking.
func (s *ContentService) BookingReminder(ctx context.Context, booking *model.Booking) string {
	formattedDate := booking.Date
	if day, err := time.Parse("2006-01-02", booking.Date); err == nil {
		formattedDate = day.Format("Monday, January 2")
	}

	prompt := fmt.Sprintf(
		"Write a short, friendly and professional reminder message for a hair "+
			"salon appointment. The client's name is %s, the appointment is on "+
			"%s at %s at %q. Add a touch of enthusiasm.",
		booking.ClientName, formattedDate, booking.Time, s.salonName)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("reminder generation failed",
			zap.String("booking", booking.Reference), zap.Error(err))
		return fmt.Sprintf("Hi %s! This is a reminder of your appointment at %s on %s at %s. See you soon!",
			booking.ClientName, s.salonName, formattedDate, booking.Time)
	}
	return text
}
