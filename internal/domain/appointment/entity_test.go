//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"weekend-booking/internal/domain/appointment"
	"weekend-booking/internal/domain/calendar"
	"weekend-booking/internal/domain/slot"
	"weekend-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	friday = calendar.MustParseDate("2025-06-13")
	now    = time.Date(2025, 6, 13, 20, 0, 0, 0, time.UTC)
)

type testCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	req    func(*appointment.Request)
	errIs  error
}

func build(tc testCase) (*appointment.Appointment, error) {
	b := builder.NewAppointmentBuilder()
	if tc.mutate != nil {
		b.With(tc.mutate)
	}
	dto := b.BuildCreateRequestDTO()
	req := dto.ToDomain()
	if tc.req != nil {
		tc.req(&req)
	}
	return appointment.NewAppointment(req, friday, now)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := build(tc)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
		})
	}
}

func TestNewAppointment(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		got, err := build(testCase{})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, got.ID())
		assert.Equal(t, appointment.StatusPending, got.Status())
		assert.Equal(t, "2025-06-14", got.Date().String())
		assert.Equal(t, slot.Morning, got.TimeSlot())
		assert.True(t, got.Occupies())
		assert.Equal(t, now, got.CreatedAt())
		assert.Equal(t, now, got.UpdatedAt())
	})

	t.Run("入力は整形される", func(t *testing.T) {
		got, err := build(testCase{req: func(r *appointment.Request) {
			r.Name = "  Sara Lee "
			r.Email = " Sara@Example.COM "
			r.Message = "  hi  "
		}})
		require.NoError(t, err)
		assert.Equal(t, "Sara Lee", got.Name())
		assert.Equal(t, "sara@example.com", got.Email())
		assert.Equal(t, "hi", got.Message())
	})

	t.Run("必須項目", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "名前が空NG", req: func(r *appointment.Request) { r.Name = "   " }, errIs: appointment.ErrMissingField},
			{name: "メールが空NG", req: func(r *appointment.Request) { r.Email = "" }, errIs: appointment.ErrMissingField},
			{name: "電話が空NG", req: func(r *appointment.Request) { r.Phone = "" }, errIs: appointment.ErrMissingField},
			{name: "日付が空NG", req: func(r *appointment.Request) { r.Date = "" }, errIs: appointment.ErrMissingField},
			{name: "時間帯が空NG", req: func(r *appointment.Request) { r.TimeSlot = "" }, errIs: appointment.ErrMissingField},
			{name: "時間帯が空白のみNG", req: func(r *appointment.Request) { r.TimeSlot = "   " }, errIs: appointment.ErrMissingField},
			{name: "メッセージは任意OK", req: func(r *appointment.Request) { r.Message = "" }},
		})
	})

	t.Run("検証順序", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:  "必須項目が時間帯より先",
				req:   func(r *appointment.Request) { r.Name = ""; r.TimeSlot = "noon" },
				errIs: appointment.ErrMissingField,
			},
			{
				name:  "時間帯が日付形式より先",
				req:   func(r *appointment.Request) { r.TimeSlot = "noon"; r.Date = "14/06/2025" },
				errIs: slot.ErrInvalidSlot,
			},
			{
				name:  "日付形式",
				req:   func(r *appointment.Request) { r.Date = "14/06/2025" },
				errIs: calendar.ErrInvalidDate,
			},
			{
				name:  "平日は過去判定より先",
				req:   func(r *appointment.Request) { r.Date = "2025-06-04" },
				errIs: calendar.ErrNotWeekend,
			},
			{
				name:   "過去の週末NG",
				mutate: func(b *builder.AppointmentBuilder) { b.Date = calendar.MustParseDate("2025-06-08") },
				errIs:  calendar.ErrPastDate,
			},
			{
				name:   "窓の外でも未来の週末OK",
				mutate: func(b *builder.AppointmentBuilder) { b.Date = calendar.MustParseDate("2026-01-03") },
			},
			{
				name:   "数年先の週末OK",
				mutate: func(b *builder.AppointmentBuilder) { b.Date = calendar.MustParseDate("2030-06-01") },
			},
		})
	})
}

func TestTransitionTo(t *testing.T) {
	tests := []struct {
		name        string
		from        appointment.Status
		to          appointment.Status
		wantChanged bool
		errIs       error
	}{
		{name: "pendingからconfirmed", from: appointment.StatusPending, to: appointment.StatusConfirmed, wantChanged: true},
		{name: "pendingからcancelled", from: appointment.StatusPending, to: appointment.StatusCancelled, wantChanged: true},
		{name: "confirmedからcompleted", from: appointment.StatusConfirmed, to: appointment.StatusCompleted, wantChanged: true},
		{name: "confirmedからcancelled", from: appointment.StatusConfirmed, to: appointment.StatusCancelled, wantChanged: true},
		{name: "同じステータスは何もしない", from: appointment.StatusConfirmed, to: appointment.StatusConfirmed},
		{name: "pendingから直接completedはNG", from: appointment.StatusPending, to: appointment.StatusCompleted, errIs: appointment.ErrInvalidTransition},
		{name: "completedは終端", from: appointment.StatusCompleted, to: appointment.StatusPending, errIs: appointment.ErrInvalidTransition},
		{name: "cancelledは終端", from: appointment.StatusCancelled, to: appointment.StatusConfirmed, errIs: appointment.ErrInvalidTransition},
		{name: "未知のステータスNG", from: appointment.StatusPending, to: "archived", errIs: appointment.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
				b.Status = tt.from
			}).BuildDomain()
			before := appt.UpdatedAt()
			later := before.Add(time.Hour)

			changed, err := appt.TransitionTo(tt.to, later)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.from, appt.Status())
				assert.Equal(t, before, appt.UpdatedAt())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.to, appt.Status())
			if tt.wantChanged {
				assert.Equal(t, later, appt.UpdatedAt())
			} else {
				assert.Equal(t, before, appt.UpdatedAt())
			}
		})
	}
}

func TestStatus(t *testing.T) {
	t.Run("占有するのはpendingとconfirmedだけ", func(t *testing.T) {
		for _, s := range appointment.AllStatuses() {
			want := s == appointment.StatusPending || s == appointment.StatusConfirmed
			assert.Equal(t, want, s.IsOccupying(), s)
		}
		assert.ElementsMatch(t, []appointment.Status{appointment.StatusPending, appointment.StatusConfirmed}, appointment.OccupyingStatuses())
	})

	t.Run("綴りはcancelled", func(t *testing.T) {
		_, err := appointment.ParseStatus("canceled")
		assert.ErrorIs(t, err, appointment.ErrInvalidStatus)

		s, err := appointment.ParseStatus("cancelled")
		require.NoError(t, err)
		assert.True(t, s.IsTerminal())
	})
}
