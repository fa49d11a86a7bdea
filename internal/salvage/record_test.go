package salvage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardRecordString(t *testing.T) {
	tests := []struct {
		name string
		rec  RewardRecord
		want string
	}{
		{
			name: "single value counted",
			rec:  RewardRecord{Name: "SALV_Bolt", MinInitialValue: 10, MaxInitialValue: 10},
			want: "SALV_Bolt: 10 / ea",
		},
		{
			name: "range by mass",
			rec:  RewardRecord{Name: "SALV_Copper", MinInitialValue: 5, MaxInitialValue: 8, MassBasedValue: true},
			want: "SALV_Copper: 5 - 8 / kg",
		},
		{
			name: "inverted range is printed as is",
			rec:  RewardRecord{Name: "SALV_Odd", MinInitialValue: 8, MaxInitialValue: 5},
			want: "SALV_Odd: 8 - 5 / ea",
		},
		{
			name: "defaults",
			rec:  RewardRecord{Name: "SALV_Empty"},
			want: "SALV_Empty: 0 / ea",
		},
		{
			name: "fractions",
			rec:  RewardRecord{Name: "SALV_Dust", MinInitialValue: 0.1, MaxInitialValue: 2.5, MassBasedValue: true},
			want: "SALV_Dust: 0.1 - 2.5 / kg",
		},
		{
			name: "no exponent notation",
			rec:  RewardRecord{Name: "SALV_Big", MinInitialValue: 1e21, MaxInitialValue: 1e-7},
			want: "SALV_Big: 1000000000000000000000 - 0.0000001 / ea",
		},
		{
			name: "negative values",
			rec:  RewardRecord{Name: "SALV_Debt", MinInitialValue: -3, MaxInitialValue: -3},
			want: "SALV_Debt: -3 / ea",
		},
		{
			name: "infinities",
			rec:  RewardRecord{Name: "SALV_Inf", MinInitialValue: math.Inf(-1), MaxInitialValue: math.Inf(1)},
			want: "SALV_Inf: -inf - inf / ea",
		},
		{
			name: "NaN never equals itself",
			rec:  RewardRecord{Name: "SALV_NaN", MinInitialValue: math.NaN(), MaxInitialValue: math.NaN()},
			want: "SALV_NaN: NaN - NaN / ea",
		},
		{
			name: "negative zero equals zero",
			rec:  RewardRecord{Name: "SALV_Zero", MinInitialValue: math.Copysign(0, -1), MaxInitialValue: 0},
			want: "SALV_Zero: -0 / ea",
		},
		{
			name: "empty name",
			rec:  RewardRecord{MinInitialValue: 1, MaxInitialValue: 1, MassBasedValue: true},
			want: ": 1 / kg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.String())
		})
	}
}

func TestRewardRecordUnit(t *testing.T) {
	assert.Equal(t, "kg", RewardRecord{MassBasedValue: true}.Unit())
	assert.Equal(t, "ea", RewardRecord{}.Unit())
}
