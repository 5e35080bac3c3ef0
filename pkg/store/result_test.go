package store

import (
	"bytes"
	"testing"
)

func TestResult_Print(t *testing.T) {
	tests := []struct {
		name      string
		result    *Result
		wantCount int
		wantOut   string
	}{
		{
			name: "header then rows",
			result: &Result{
				Columns: []string{"productname", "numberofunits", "priceperunit"},
				Rows: [][]string{
					{"Milk", "12", "3"},
					{"Bread", "-4", NullText},
				},
			},
			wantCount: 2,
			wantOut:   "productname\tnumberofunits\tpriceperunit\nMilk\t12\t3\nBread\t-4\tnull\n",
		},
		{
			name:      "empty result prints nothing",
			result:    &Result{Columns: []string{"a", "b"}},
			wantCount: 0,
			wantOut:   "",
		},
		{
			name:      "nil result",
			result:    nil,
			wantCount: 0,
			wantOut:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := tt.result.Print(&buf); got != tt.wantCount {
				t.Errorf("Print() = %d, want %d", got, tt.wantCount)
			}
			if buf.String() != tt.wantOut {
				t.Errorf("Print() output = %q, want %q", buf.String(), tt.wantOut)
			}
		})
	}
}
