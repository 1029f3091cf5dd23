package billing

import (
	"encoding/json"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		rate         float64
		gst          float64
		wantSubtotal float64
		wantGST      float64
		wantTotal    float64
	}{
		{"standard gst", 2, 100, 18, 200, 36, 236},
		{"twelve percent", 1, 50, 12, 50, 6, 56},
		{"zero gst", 5, 20, 0, 100, 0, 100},
		{"zero rate", 3, 0, 18, 0, 0, 0},
		{"fractional rate", 3, 99.99, 5, 299.97, 14.9985, 314.9685},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := ComputeLine(tt.quantity, tt.rate, tt.gst)
			if err != nil {
				t.Fatalf("ComputeLine() error = %v", err)
			}
			if !almostEqual(line.ItemSubtotal, tt.wantSubtotal) {
				t.Errorf("ItemSubtotal = %v, want %v", line.ItemSubtotal, tt.wantSubtotal)
			}
			if !almostEqual(line.GSTAmount, tt.wantGST) {
				t.Errorf("GSTAmount = %v, want %v", line.GSTAmount, tt.wantGST)
			}
			if !almostEqual(line.LineTotal, tt.wantTotal) {
				t.Errorf("LineTotal = %v, want %v", line.LineTotal, tt.wantTotal)
			}
		})
	}
}

func TestComputeLineRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		rate     float64
		gst      float64
	}{
		{"zero quantity", 0, 100, 18},
		{"negative quantity", -1, 100, 18},
		{"negative rate", 1, -5, 18},
		{"negative gst", 1, 100, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeLine(tt.quantity, tt.rate, tt.gst); err == nil {
				t.Errorf("ComputeLine(%d, %v, %v) expected error, got nil", tt.quantity, tt.rate, tt.gst)
			}
		})
	}
}

func TestAggregateWorkedExample(t *testing.T) {
	// (2, 100, 18), (1, 50, 12), (5, 20, 0) -> subtotal 350, tax 42, total 392
	inputs := []struct {
		qty  int
		rate float64
		gst  float64
	}{
		{2, 100, 18},
		{1, 50, 12},
		{5, 20, 0},
	}

	lines := make([]Line, 0, len(inputs))
	for _, in := range inputs {
		line, err := ComputeLine(in.qty, in.rate, in.gst)
		if err != nil {
			t.Fatalf("ComputeLine() error = %v", err)
		}
		lines = append(lines, line)
	}

	totals := Aggregate(lines)
	if !almostEqual(totals.Subtotal, 350) {
		t.Errorf("Subtotal = %v, want 350", totals.Subtotal)
	}
	if !almostEqual(totals.TaxAmount, 42) {
		t.Errorf("TaxAmount = %v, want 42", totals.TaxAmount)
	}
	if !almostEqual(totals.TotalAmount, 392) {
		t.Errorf("TotalAmount = %v, want 392", totals.TotalAmount)
	}
}

func TestAggregateInvariants(t *testing.T) {
	lines := []Line{
		{ItemSubtotal: 123.456, GSTAmount: 22.22208, LineTotal: 145.67808},
		{ItemSubtotal: 0.1, GSTAmount: 0.012, LineTotal: 0.112},
		{ItemSubtotal: 9999.99, GSTAmount: 1799.9982, LineTotal: 11799.9882},
	}

	totals := Aggregate(lines)
	if !almostEqual(totals.TotalAmount, totals.Subtotal+totals.TaxAmount) {
		t.Errorf("TotalAmount %v != Subtotal %v + TaxAmount %v", totals.TotalAmount, totals.Subtotal, totals.TaxAmount)
	}

	// Recomputation yields identical totals
	again := Aggregate(lines)
	if again != totals {
		t.Errorf("Aggregate not idempotent: %+v vs %+v", again, totals)
	}
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	if totals.Subtotal != 0 || totals.TaxAmount != 0 || totals.TotalAmount != 0 {
		t.Errorf("Aggregate(nil) = %+v, want all zero", totals)
	}
}

func TestSplitGST(t *testing.T) {
	for _, tax := range []float64{0, 42, 0.01, 1234.567, 99999.99} {
		cgst, sgst := SplitGST(tax)
		if !almostEqual(cgst+sgst, tax) {
			t.Errorf("SplitGST(%v): cgst %v + sgst %v != tax", tax, cgst, sgst)
		}
		if !almostEqual(cgst, sgst) {
			t.Errorf("SplitGST(%v): halves unequal (%v, %v)", tax, cgst, sgst)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{42.424242, 42.42},
		{42.426, 42.43},
		{0.551, 0.55},
		{0, 0},
		{199.999, 200},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"number", `123.45`, 123.45, false},
		{"quoted", `"123.45"`, 123.45, false},
		{"integer", `392`, 392, false},
		{"quoted integer", `"392"`, 392, false},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"garbage", `"12abc"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.in), &a)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !almostEqual(a.Float(), tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, a.Float(), tt.want)
			}
		})
	}
}

func TestAmountMarshal(t *testing.T) {
	data, err := json.Marshal(Amount(123.456))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != "123.46" {
		t.Errorf("Marshal = %s, want 123.46", data)
	}
}
