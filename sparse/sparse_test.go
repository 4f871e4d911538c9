package sparse

import "testing"

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("M[2,3] = %d, expected 4711", v)
	}
	if v := M.Value(9, 9); v != M.NullValue() {
		t.Errorf("empty cell returned %d, expected the null value", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 stored value, got %d", M.ValueCount())
	}
}

func TestMatrixOverwrite(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(1, 1, 7)
	M.Set(1, 1, 8)
	if v := M.Value(1, 1); v != 8 {
		t.Errorf("M[1,1] = %d, expected 8", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("overwriting must not grow the matrix, got %d values", M.ValueCount())
	}
}

func TestMatrixEachOrder(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(3, 0, 30)
	M.Set(0, 2, 2)
	M.Set(3, 4, 34)
	M.Set(1, 1, 11)
	var got []int32
	M.Each(func(i, j int, value int32) {
		got = append(got, value)
	})
	want := []int32{2, 11, 30, 34}
	if len(got) != len(want) {
		t.Fatalf("Each visited %d values, expected %d", len(got), len(want))
	}
	for n := range want {
		if got[n] != want[n] {
			t.Errorf("Each order: got %v, expected %v", got, want)
			break
		}
	}
}

func TestMatrixDimensions(t *testing.T) {
	M := NewIntMatrix(7, 3, -1)
	if M.M() != 7 || M.N() != 3 {
		t.Errorf("dimensions = %dx%d, expected 7x3", M.M(), M.N())
	}
}
