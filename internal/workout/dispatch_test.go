package workout

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackage(t *testing.T) {
	tests := []struct {
		code string
		data []float64
		want any
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}, &Swimming{}},
		{"RUN", []float64{15000, 1, 75}, &Running{}},
		{"WLK", []float64{9000, 1, 75, 180}, &SportsWalking{}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w, err := ReadPackage(tt.code, tt.data)
			require.NoError(t, err)
			assert.IsType(t, tt.want, w)
		})
	}
}

func TestReadPackage_Unsupported(t *testing.T) {
	for _, code := range []string{"XYZ", "", "run", "SWIM"} {
		t.Run(code, func(t *testing.T) {
			w, err := ReadPackage(code, nil)
			assert.Nil(t, w)
			require.ErrorIs(t, err, ErrUnsupportedWorkoutType)

			var ute *UnsupportedTypeError
			require.True(t, errors.As(err, &ute))
			assert.Equal(t, code, ute.Code)
			assert.False(t, Supported(code))
		})
	}
}

func TestReadPackage_Arity(t *testing.T) {
	tests := []struct {
		code string
		data []float64
		want int
	}{
		{"RUN", []float64{15000, 1}, 3},
		{"RUN", []float64{15000, 1, 75, 180}, 3},
		{"WLK", []float64{9000, 1, 75}, 4},
		{"SWM", []float64{720, 1, 80, 25}, 5},
		{"SWM", nil, 5},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			_, err := ReadPackage(tt.code, tt.data)
			require.ErrorIs(t, err, ErrArity)

			var ae *ArityError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, tt.want, ae.Want)
			assert.Equal(t, len(tt.data), ae.Got)
		})
	}
}

func TestReadPackage_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		data    []float64
		wantErr error
	}{
		{"fractional steps", "RUN", []float64{15000.5, 1, 75}, ErrNotInteger},
		{"fractional laps", "SWM", []float64{720, 1, 80, 2.5, 40}, ErrNotInteger},
		{"NaN steps", "RUN", []float64{math.NaN(), 1, 75}, ErrNotInteger},
		{"huge steps", "RUN", []float64{1e300, 1, 75}, ErrOutOfRange},
		{"infinite steps", "WLK", []float64{math.Inf(1), 1, 75, 180}, ErrOutOfRange},
		{"huge laps", "SWM", []float64{720, 1, 80, -1e19, 40}, ErrOutOfRange},
		{"zero duration", "RUN", []float64{15000, 0, 75}, ErrNonPositiveDuration},
		{"zero height", "WLK", []float64{9000, 1, 75, 0}, ErrNonPositiveHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ReadPackage(tt.code, tt.data)
			assert.Nil(t, w)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunPackages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunPackages(&buf, DemoPackages()))

	want := strings.Join([]string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestRunPackages_FailFast(t *testing.T) {
	pkgs := []Package{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "XYZ"},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	var buf bytes.Buffer
	err := RunPackages(&buf, pkgs)
	require.ErrorIs(t, err, ErrUnsupportedWorkoutType)
	assert.Contains(t, err.Error(), "package 1")
	assert.Contains(t, err.Error(), "XYZ")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "only the first package should be printed")
}
