package services

import (
	"fmt"
	"time"
)

// Horário de funcionamento: segunda a sábado, das 6:00 às 12:59.
const (
	openHour  = 6
	closeHour = 13
)

var dayNames = []string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}

type RestaurantStatus struct {
	IsOpen  bool   `json:"isOpen"`
	Message string `json:"message"`
}

// ScheduleService calcula aberto/fechado a partir do relógio e da tabela
// semanal fixa. O relógio é injetável para os testes.
type ScheduleService struct {
	Now func() time.Time
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{Now: time.Now}
}

func (s *ScheduleService) Status() RestaurantStatus {
	now := s.Now()
	weekday := int(now.Weekday()) // 0 = domingo
	hour := now.Hour()

	openToday := weekday >= 1 && weekday <= 6
	withinHours := hour >= openHour && hour < closeHour

	if openToday && withinHours {
		return RestaurantStatus{IsOpen: true, Message: "Estamos abertos!"}
	}

	nextOpenDay := weekday + 1
	if weekday == 6 || weekday == 0 {
		nextOpenDay = 1 // sábado e domingo abrem de novo na segunda
	}

	nextOpenName := dayNames[nextOpenDay]
	switch {
	case openToday && hour < openHour:
		nextOpenName = "hoje"
	case weekday >= 1 && weekday <= 5 && hour >= closeHour:
		nextOpenName = "amanhã"
	}

	return RestaurantStatus{
		IsOpen:  false,
		Message: fmt.Sprintf("Estamos fechados. Abrimos %s às 6:00.", nextOpenName),
	}
}

// IsOpen é atalho para o checkout, que consulta o status na hora da chamada.
func (s *ScheduleService) IsOpen() bool {
	return s.Status().IsOpen
}
