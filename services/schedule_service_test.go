package services_test

import (
	"testing"
	"time"

	"github.com/AV-automacoes/restaurante-bom-prato/services"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestScheduleStatus(t *testing.T) {
	cases := []struct {
		name    string
		at      time.Time
		open    bool
		message string
	}{
		{
			name:    "segunda de manhã",
			at:      time.Date(2025, 3, 3, 10, 0, 0, 0, time.Local),
			open:    true,
			message: "Estamos abertos!",
		},
		{
			name:    "segunda na abertura",
			at:      time.Date(2025, 3, 3, 6, 0, 0, 0, time.Local),
			open:    true,
			message: "Estamos abertos!",
		},
		{
			name:    "segunda às 13h já fechou",
			at:      time.Date(2025, 3, 3, 13, 0, 0, 0, time.Local),
			open:    false,
			message: "Estamos fechados. Abrimos amanhã às 6:00.",
		},
		{
			name:    "quarta de madrugada abre hoje",
			at:      time.Date(2025, 3, 5, 5, 30, 0, 0, time.Local),
			open:    false,
			message: "Estamos fechados. Abrimos hoje às 6:00.",
		},
		{
			name:    "sábado de manhã",
			at:      time.Date(2025, 3, 8, 9, 0, 0, 0, time.Local),
			open:    true,
			message: "Estamos abertos!",
		},
		{
			name:    "sábado à tarde reabre segunda",
			at:      time.Date(2025, 3, 8, 15, 0, 0, 0, time.Local),
			open:    false,
			message: "Estamos fechados. Abrimos segunda-feira às 6:00.",
		},
		{
			name:    "domingo fechado o dia todo",
			at:      time.Date(2025, 3, 2, 10, 0, 0, 0, time.Local),
			open:    false,
			message: "Estamos fechados. Abrimos segunda-feira às 6:00.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := services.NewScheduleService()
			s.Now = fixedClock(tc.at)

			got := s.Status()
			if got.IsOpen != tc.open {
				t.Fatalf("IsOpen = %v, want %v", got.IsOpen, tc.open)
			}
			if got.Message != tc.message {
				t.Fatalf("Message = %q, want %q", got.Message, tc.message)
			}
			if s.IsOpen() != tc.open {
				t.Fatalf("IsOpen() disagrees with Status()")
			}
		})
	}
}
