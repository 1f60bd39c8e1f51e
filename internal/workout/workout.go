package workout

import "math"

// Workout is implemented by every workout variant
type Workout interface {
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	Summary() Summary
}

// training holds the inputs shared by all variants; it has no calorie formula
type training struct {
	kind     Type
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func newTraining(kind Type, action int, duration, weight float64) (training, error) {
	if action < 0 {
		return training{}, ErrNegativeAction
	}
	// !(x > 0) also rejects NaN
	if !(duration > 0) {
		return training{}, ErrNonPositiveDuration
	}
	return training{
		kind:     kind,
		Action:   action,
		Duration: duration,
		Weight:   weight,
	}, nil
}

func (t training) coeffs() Coefficients {
	return CoefficientTable[t.kind]
}

// Distance returns the covered distance in km
func (t training) Distance() float64 {
	return float64(t.Action) * t.coeffs().StepLength / MetersInKm
}

// MeanSpeed returns the average speed in km/h
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

// summarize assembles a Summary from values computed by the concrete variant
func (t training) summarize(w Workout) Summary {
	return Summary{
		TrainingType: t.kind.Name(),
		Duration:     t.Duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}

// Running is a run tracked by step count
type Running struct {
	training
}

// NewRunning creates a Running workout
func NewRunning(action int, duration, weight float64) (*Running, error) {
	t, err := newTraining(TypeRunning, action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{training: t}, nil
}

// SpentCalories returns kcal burned while running
func (r *Running) SpentCalories() float64 {
	c := r.coeffs()
	return (c.Calorie1*r.MeanSpeed() - c.Calorie2) * r.Weight / MetersInKm * r.Duration * MinutesInHr
}

// Summary returns the formatted snapshot of the run
func (r *Running) Summary() Summary {
	return r.summarize(r)
}

// SportsWalking is a walk tracked by step count
type SportsWalking struct {
	training
	Height float64
}

// NewSportsWalking creates a SportsWalking workout
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	t, err := newTraining(TypeWalking, action, duration, weight)
	if err != nil {
		return nil, err
	}
	if !(height > 0) {
		return nil, ErrNonPositiveHeight
	}
	return &SportsWalking{training: t, Height: height}, nil
}

// SpentCalories returns kcal burned while walking
func (s *SportsWalking) SpentCalories() float64 {
	c := s.coeffs()
	speed := s.MeanSpeed()
	return (c.Calorie1*s.Weight + floorDiv(speed*speed, s.Height)*c.Calorie2*s.Weight) * s.Duration * MinutesInHr
}

// Summary returns the formatted snapshot of the walk
func (s *SportsWalking) Summary() Summary {
	return s.summarize(s)
}

// Swimming is a pool swim tracked by stroke count and laps
type Swimming struct {
	training
	CountPool  int
	LengthPool float64 // metres
}

// NewSwimming creates a Swimming workout
func NewSwimming(action int, duration, weight float64, countPool int, lengthPool float64) (*Swimming, error) {
	t, err := newTraining(TypeSwimming, action, duration, weight)
	if err != nil {
		return nil, err
	}
	if countPool < 0 {
		return nil, ErrNegativePoolCount
	}
	return &Swimming{training: t, CountPool: countPool, LengthPool: lengthPool}, nil
}

// MeanSpeed returns the average speed in km/h derived from pool laps
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MetersInKm / s.Duration
}

// SpentCalories returns kcal burned while swimming
func (s *Swimming) SpentCalories() float64 {
	c := s.coeffs()
	return (s.MeanSpeed() + c.Calorie1) * c.Calorie2 * s.Weight
}

// Summary returns the formatted snapshot of the swim
func (s *Swimming) Summary() Summary {
	return s.summarize(s)
}

// floorDiv floors x/y from the remainder, so floorDiv(1, 0.1) is 9 rather than 10
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	f := math.Floor(div)
	if div-f > 0.5 {
		f += 1
	}
	return f
}
