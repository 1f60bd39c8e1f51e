package workout

import "fmt"

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Summary is an immutable snapshot of a computed workout
type Summary struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message returns the one-line human-readable summary
func (s Summary) Message() string {
	return fmt.Sprintf(messageFormat, s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}

func (s Summary) String() string {
	return s.Message()
}
