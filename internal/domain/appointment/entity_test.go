package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clipperbook/booking-api/internal/httperr"
	"github.com/clipperbook/booking-api/internal/models"
)

func TestCancel(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}

	require.NoError(t, Cancel(ap, "client called in sick", now))
	require.Equal(t, string(StatusCancelled), ap.Status)
	require.Equal(t, "client called in sick", ap.CancelReason)
	require.NotNil(t, ap.CancelledAt)
	require.Equal(t, now, *ap.CancelledAt)

	// one-shot: a second cancel must fail
	err := Cancel(ap, "again", now)
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelDefaultReason(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	require.NoError(t, Cancel(ap, "", time.Now()))
	require.Equal(t, DefaultCancelReason, ap.CancelReason)
}

func TestCancelRejectsCompleted(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}

	err := Cancel(ap, "", time.Now())
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestComplete(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Complete(ap, now))
	require.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	err := Complete(ap, now)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}
