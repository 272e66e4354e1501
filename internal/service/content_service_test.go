package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"salon-booking/internal/model"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func TestStyleSuggestionUsesGeneratedText(t *testing.T) {
	svc := NewContentService(&stubGenerator{text: "Go for a textured bob."}, "The Hair Stylist's Corner", zap.NewNop())

	got := svc.StyleSuggestion(context.Background(), "wedding", "classic")
	assert.Equal(t, "Go for a textured bob.", got)
}

func TestStyleSuggestionFallsBackOnError(t *testing.T) {
	svc := NewContentService(&stubGenerator{err: errors.New("boom")}, "The Hair Stylist's Corner", zap.NewNop())

	got := svc.StyleSuggestion(context.Background(), "wedding", "classic")
	assert.Contains(t, got, "try again later")
}

func TestServiceDescriptionFallsBackOnError(t *testing.T) {
	svc := NewContentService(&stubGenerator{err: errors.New("boom")}, "The Hair Stylist's Corner", zap.NewNop())

	got := svc.ServiceDescription(context.Background(), "Color")
	assert.Equal(t, "The description could not be loaded.", got)
}

func TestBookingReminderFallbackMentionsAppointment(t *testing.T) {
	svc := NewContentService(&stubGenerator{err: errors.New("boom")}, "The Hair Stylist's Corner", zap.NewNop())

	booking := &model.Booking{
		Reference:  "ref-1",
		ClientName: "Marco",
		Date:       "2026-08-28",
		Time:       "10:00",
	}
	got := svc.BookingReminder(context.Background(), booking)
	assert.Contains(t, got, "Marco")
	assert.Contains(t, got, "10:00")
	assert.Contains(t, got, "The Hair Stylist's Corner")
}
