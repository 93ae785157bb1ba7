package dataset

import (
	"math"
	"testing"
)

func numericCol(name string, values []float64, missing []bool) Column {
	return Column{Field: Field{Name: name, Kind: Numeric}, Floats: values, Missing: missing}
}

func categoricalCol(name string, values []string, missing []bool) Column {
	return Column{Field: Field{Name: name, Kind: Categorical}, Labels: values, Missing: missing}
}

func TestCleanIdentityWhenNoMissing(t *testing.T) {
	ds, err := New([]Column{
		numericCol("age", []float64{20, 30, 40}, make([]bool, 3)),
		categoricalCol("region", []string{"north", "south", "north"}, make([]bool, 3)),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, rep, err := Clean(ds)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if out != ds {
		t.Error("Clean() should return the identical dataset when nothing is missing")
	}
	if rep.ImputedNumeric != 0 || rep.ImputedCategorical != 0 || rep.DroppedRows != 0 {
		t.Errorf("Clean() report = %+v, want all zero", rep)
	}
}

func TestCleanNumericMeanImputation(t *testing.T) {
	// Observed values 10 and 30: mean 20 fills the gap.
	ds, err := New([]Column{
		numericCol("bmi", []float64{10, 0, 30}, []bool{false, true, false}),
		categoricalCol("smoker", []string{"no", "yes", "no"}, make([]bool, 3)),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, rep, err := Clean(ds)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	col, err := out.Column("bmi")
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if got := col.Floats[1]; math.Abs(got-20) > 1e-12 {
		t.Errorf("imputed value = %v, want 20", got)
	}
	if rep.ImputedNumeric != 1 {
		t.Errorf("ImputedNumeric = %d, want 1", rep.ImputedNumeric)
	}
	// Original dataset must stay untouched.
	orig, _ := ds.Column("bmi")
	if !orig.Missing[1] {
		t.Error("Clean() mutated its input")
	}
}

func TestCleanCategoricalForwardFill(t *testing.T) {
	ds, err := New([]Column{
		numericCol("age", []float64{20, 30, 40, 50}, make([]bool, 4)),
		categoricalCol("region", []string{"east", "", "", "west"}, []bool{false, true, true, false}),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, _, err := Clean(ds)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	col, _ := out.Column("region")
	want := []string{"east", "east", "east", "west"}
	for i, w := range want {
		if col.Labels[i] != w {
			t.Errorf("region[%d] = %q, want %q", i, col.Labels[i], w)
		}
	}
}

func TestCleanMeanComputedBeforeRowDrop(t *testing.T) {
	// Row 2 is entirely empty and gets dropped, but the mean of "age" must
	// come from the observed values only (10, 20 -> 15), unaffected by the
	// drop order.
	ds, err := New([]Column{
		numericCol("age", []float64{10, 20, 0, 0}, []bool{false, false, true, true}),
		categoricalCol("region", []string{"a", "b", "", "c"}, []bool{false, false, true, false}),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, rep, err := Clean(ds)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	// Forward fill repairs region[2], so no row is entirely empty here and
	// all four rows survive with age mean 15 in the gaps.
	if out.NumRows() != 4 {
		t.Fatalf("NumRows() = %d, want 4", out.NumRows())
	}
	col, _ := out.Column("age")
	if math.Abs(col.Floats[2]-15) > 1e-12 || math.Abs(col.Floats[3]-15) > 1e-12 {
		t.Errorf("imputed ages = %v, %v, want 15, 15", col.Floats[2], col.Floats[3])
	}
	if rep.DroppedRows != 0 {
		t.Errorf("DroppedRows = %d, want 0", rep.DroppedRows)
	}
}

func TestCleanDropsAllEmptyRow(t *testing.T) {
	// A dataset of only categorical fields: the leading row has no
	// preceding value, stays empty after forward fill, and is dropped.
	ds, err := New([]Column{
		categoricalCol("sex", []string{"", "male", "female"}, []bool{true, false, false}),
		categoricalCol("smoker", []string{"", "yes", "no"}, []bool{true, false, false}),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, rep, err := Clean(ds)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if out.NumRows() != 2 {
		t.Errorf("NumRows() = %d, want 2", out.NumRows())
	}
	if rep.DroppedRows != 1 {
		t.Errorf("DroppedRows = %d, want 1", rep.DroppedRows)
	}
	if out.HasMissing() {
		t.Error("cleaned dataset still has missing values")
	}
}

func TestCleanNoObservedValuesIsError(t *testing.T) {
	ds, err := New([]Column{
		numericCol("age", []float64{0, 0}, []bool{true, true}),
		categoricalCol("region", []string{"a", "b"}, make([]bool, 2)),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, _, err := Clean(ds); err == nil {
		t.Error("Clean() on an all-missing numeric column should fail")
	}
}
