package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
)

func TestChecks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		check   func(float64, string) error
		value   float64
		wantErr string
	}{
		{name: "integer accepts whole numbers", check: Integer, value: 4},
		{name: "integer rejects fractions", check: Integer, value: 2.5, wantErr: "expected integer but found 2.5"},
		{name: "integer rejects infinity", check: Integer, value: math.Inf(1), wantErr: "expected integer"},
		{name: "non-negative accepts zero", check: NonNegative, value: 0},
		{name: "non-negative rejects negatives", check: NonNegative, value: -1, wantErr: "expected non-negative value but found -1"},
		{name: "positive rejects zero", check: Positive, value: 0, wantErr: "expected positive non-zero value but found 0"},
		{name: "positive accepts fractions", check: Positive, value: 0.1},
		{name: "percentage accepts bounds", check: Percentage, value: 1},
		{name: "percentage rejects above one", check: Percentage, value: 1.5, wantErr: "expected percentage value but found 1.5"},
		{name: "percentage rejects NaN", check: Percentage, value: math.NaN(), wantErr: "expected percentage value"},
		{name: "non-negative integer rejects fractions first", check: NonNegativeInteger, value: 2.5, wantErr: "expected integer"},
		{name: "non-negative integer rejects negatives", check: NonNegativeInteger, value: -1, wantErr: "non-negative"},
		{name: "positive integer rejects zero", check: PositiveInteger, value: 0, wantErr: "positive non-zero"},
		{name: "positive integer accepts one", check: PositiveInteger, value: 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.check(tc.value, "field")
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *spriteerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, "field", validationErr.Field)
			require.Contains(t, validationErr.Message, tc.wantErr)
		})
	}
}

func TestDimensionsNamesIndex(t *testing.T) {
	t.Parallel()

	require.NoError(t, Dimensions(7, 9, "dimensions"))

	err := Dimensions(7, 0, "dimensions")
	var validationErr *spriteerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "dimensions[1]", validationErr.Field)

	err = Dimensions(-3, 4, "dimensions")
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "dimensions[0]", validationErr.Field)
}
