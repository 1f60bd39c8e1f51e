package workout

const (
	// Unit conversions
	MetersInKm  = 1000
	MinutesInHr = 60
)

// Type identifies a workout variant by its sensor package code
type Type string

const (
	TypeRunning  Type = "RUN"
	TypeWalking  Type = "WLK"
	TypeSwimming Type = "SWM"
)

// Name returns the variant name shown in summaries
func (t Type) Name() string {
	switch t {
	case TypeRunning:
		return "Running"
	case TypeWalking:
		return "SportsWalking"
	case TypeSwimming:
		return "Swimming"
	default:
		return string(t)
	}
}

// Coefficients holds the per-variant constants used by the calorie formulas
type Coefficients struct {
	StepLength float64 // km covered per step or stroke
	Calorie1   float64
	Calorie2   float64
}

// CoefficientTable maps each variant to its constants
var CoefficientTable = map[Type]Coefficients{
	TypeRunning:  {StepLength: 0.65, Calorie1: 18, Calorie2: 20},
	TypeWalking:  {StepLength: 0.65, Calorie1: 0.035, Calorie2: 0.029},
	TypeSwimming: {StepLength: 1.38, Calorie1: 1.1, Calorie2: 2},
}
