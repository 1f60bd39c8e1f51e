package workout

import (
	"fmt"
	"math"
)

// Package is one batch of raw sensor readings tagged with its workout code
type Package struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

type constructor struct {
	arity int
	build func(v []float64) (Workout, error)
}

var constructors = map[Type]constructor{
	TypeSwimming: {
		arity: 5,
		build: func(v []float64) (Workout, error) {
			action, err := wholeNumber("action", v[0])
			if err != nil {
				return nil, err
			}
			countPool, err := wholeNumber("count_pool", v[3])
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, v[1], v[2], countPool, v[4])
		},
	},
	TypeRunning: {
		arity: 3,
		build: func(v []float64) (Workout, error) {
			action, err := wholeNumber("action", v[0])
			if err != nil {
				return nil, err
			}
			return NewRunning(action, v[1], v[2])
		},
	},
	TypeWalking: {
		arity: 4,
		build: func(v []float64) (Workout, error) {
			action, err := wholeNumber("action", v[0])
			if err != nil {
				return nil, err
			}
			return NewSportsWalking(action, v[1], v[2], v[3])
		},
	},
}

// ReadPackage builds the workout named by code from its positional sensor values
func ReadPackage(code string, data []float64) (Workout, error) {
	kind := Type(code)
	ctor, ok := constructors[kind]
	if !ok {
		return nil, &UnsupportedTypeError{Code: code}
	}
	if len(data) != ctor.arity {
		return nil, &ArityError{Type: kind, Want: ctor.arity, Got: len(data)}
	}

	w, err := ctor.build(data)
	if err != nil {
		return nil, fmt.Errorf("building %s workout: %w", kind, err)
	}
	return w, nil
}

// Supported reports whether code names a known workout variant
func Supported(code string) bool {
	_, ok := constructors[Type(code)]
	return ok
}

// DemoPackages returns the sample sensor batch processed when no input is configured
func DemoPackages() []Package {
	return []Package{
		{Type: string(TypeSwimming), Data: []float64{720, 1, 80, 25, 40}},
		{Type: string(TypeRunning), Data: []float64{15000, 1, 75}},
		{Type: string(TypeWalking), Data: []float64{9000, 1, 75, 180}},
	}
}

func wholeNumber(name string, v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%s %v: %w", name, v, ErrNotInteger)
	}
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold
	if v < math.MinInt || v >= math.MaxInt {
		return 0, fmt.Errorf("%s %v: %w", name, v, ErrOutOfRange)
	}
	return int(v), nil
}
