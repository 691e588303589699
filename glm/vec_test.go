package glm

import (
	"errors"
	"math"
	"testing"
)

func TestCross(t *testing.T) {
	x, y := NewVec3[float32](1, 0, 0), NewVec3[float32](0, 1, 0)
	if got, want := x.Cross(y), NewVec3[float32](0, 0, 1); got != want {
		t.Errorf("Cross(%v, %v) = %v, want %v", x, y, got, want)
	}
	if got, want := Cross(y, x), NewVec3[float32](0, 0, -1); got != want {
		t.Errorf("Cross(%v, %v) = %v, want %v", y, x, got, want)
	}
	// Parallel inputs give the zero vector.
	a := NewVec3[int32](2, 4, 6)
	if got := a.Cross(a.MulScalar(3)); got != (Vec3[int32]{}) {
		t.Errorf("Cross of parallel vectors = %v, want zero", got)
	}
}

func TestDistance(t *testing.T) {
	a, b := NewVec2[float32](1, 2), NewVec2[float32](5, 6)
	if got := a.Distance(b); math.Abs(float64(got)-5.656854) > 1e-6 {
		t.Errorf("Distance(%v, %v) = %v, want 5.656854", a, b, got)
	}
	if got := NewVec3(3.0, 4.0, 12.0).Length(); got != 13 {
		t.Errorf("Length = %v, want 13", got)
	}
}

func TestNormalize(t *testing.T) {
	vs := []Vec3[float64]{
		{1, 2, 3},
		{-1e-150, 0, 1e-150},
		{1e150, 1e150, 0},
		{0, 0, -7},
	}
	for _, v := range vs[:3] {
		if l := v.Normalize().Length(); math.Abs(l-1) > 1e-15 {
			t.Errorf("Normalize(%v).Length() = %v, want 1", v, l)
		}
	}
	if got := vs[3].Normalize(); got != NewVec3[float64](0, 0, -1) {
		t.Errorf("Normalize(%v) = %v", vs[3], got)
	}

	for _, c := range (Vec4[float32]{}).Normalize() {
		if !math.IsNaN(float64(c)) {
			t.Fatalf("Normalize(zero) = %v, want all NaN", Vec4[float32]{}.Normalize())
		}
	}

	if got := NewVec2[int32](0, -5).Normalize(); got != NewVec2[int32](0, -1) {
		t.Errorf("Normalize(int32 {0, -5}) = %v, want {0, -1}", got)
	}
	t.Run("integer zero vector", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic for integer zero vector")
			}
		}()
		Vec2[int32]{}.Normalize()
	})
}

func TestVecArithmetic(t *testing.T) {
	a := NewVec3[int32](7, -8, 9)
	b := NewVec3[int32](2, 3, -4)

	tests := []struct {
		name      string
		got, want Vec3[int32]
	}{
		{"Add", a.Add(b), Vec3[int32]{9, -5, 5}},
		{"Sub", a.Sub(b), Vec3[int32]{5, -11, 13}},
		{"Mul", a.Mul(b), Vec3[int32]{14, -24, -36}},
		{"Div", a.Div(b), Vec3[int32]{3, -2, -2}},
		{"Mod", a.Mod(b), Vec3[int32]{1, -2, 1}},
		{"AddScalar", a.AddScalar(1), Vec3[int32]{8, -7, 10}},
		{"SubScalar", a.SubScalar(1), Vec3[int32]{6, -9, 8}},
		{"MulScalar", a.MulScalar(2), Vec3[int32]{14, -16, 18}},
		{"DivScalar", a.DivScalar(2), Vec3[int32]{3, -4, 4}},
		{"ModScalar", a.ModScalar(4), Vec3[int32]{3, 0, 1}},
		{"ScalarSub", a.ScalarSub(10), Vec3[int32]{3, 18, 1}},
		{"ScalarDiv", b.ScalarDiv(12), Vec3[int32]{6, 4, -3}},
		{"ScalarMod", b.ScalarMod(7), Vec3[int32]{1, 1, 3}},
		{"Neg", a.Neg(), Vec3[int32]{-7, 8, -9}},
		{"Inc", a.Inc(), Vec3[int32]{8, -7, 10}},
		{"Dec", a.Dec(), Vec3[int32]{6, -9, 8}},
		{"Min", a.Min(b), Vec3[int32]{2, -8, -4}},
		{"Max", a.Max(b), Vec3[int32]{7, 3, 9}},
		{"Abs", a.Abs(), Vec3[int32]{7, 8, 9}},
		{"Clamp", a.Clamp(SplatVec3[int32](-1), SplatVec3[int32](8)), Vec3[int32]{7, -1, 8}},
		{"Step", a.Step(SplatVec3[int32](0)), Vec3[int32]{1, 0, 1}},
		{"Floor", a.Floor(), a},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if got := a.Dot(b); got != 14-24-36 {
		t.Errorf("Dot = %v, want %v", got, 14-24-36)
	}
	if got := a.Sum(); got != 8 {
		t.Errorf("Sum = %v, want 8", got)
	}
}

func TestVecFloatOps(t *testing.T) {
	v := NewVec4(1.5, -1.5, 2.5, -0.25)

	tests := []struct {
		name      string
		got, want Vec4[float64]
	}{
		{"Floor", v.Floor(), Vec4[float64]{1, -2, 2, -1}},
		{"Ceil", v.Ceil(), Vec4[float64]{2, -1, 3, 0}},
		{"Round", v.Round(), Vec4[float64]{2, -2, 3, 0}},
		{"ModScalar", v.ModScalar(1), Vec4[float64]{0.5, 0.5, 0.5, 0.75}},
		{"DivScalar", v.DivScalar(0.5), Vec4[float64]{3, -3, 5, -0.5}},
		{"Lerp", v.Lerp(SplatVec4(0.5), 0.5), Vec4[float64]{1, -0.5, 1.5, 0.125}},
		{"Reflect", Vec4[float64]{1, -1, 0, 0}.Reflect(Vec4[float64]{0, 1, 0, 0}), Vec4[float64]{1, 1, 0, 0}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	a, b := NewVec2(1.0, -2.0), NewVec2(3.0, 0.5)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, want %v", got, b)
	}
}

func TestVecBitwise(t *testing.T) {
	a := NewVec2[uint8](0b1100, 0xF0)
	b := NewVec2[uint8](0b1010, 0x0F)

	tests := []struct {
		name      string
		got, want Vec2[uint8]
	}{
		{"And", a.And(b), Vec2[uint8]{0b1000, 0}},
		{"Or", a.Or(b), Vec2[uint8]{0b1110, 0xFF}},
		{"Xor", a.Xor(b), Vec2[uint8]{0b0110, 0xFF}},
		{"Not", a.Not(), Vec2[uint8]{0xF3, 0x0F}},
		{"AndScalar", a.AndScalar(0b0100), Vec2[uint8]{0b0100, 0}},
		{"OrScalar", a.OrScalar(1), Vec2[uint8]{0b1101, 0xF1}},
		{"XorScalar", a.XorScalar(0xFF), Vec2[uint8]{0xF3, 0x0F}},
		{"Shl", a.Shl(4), Vec2[uint8]{0xC0, 0}},
		{"Shr", a.Shr(2), Vec2[uint8]{0b11, 0x3C}},
		{"ShlVec", a.ShlVec(Vec2[uint8]{1, 0}), Vec2[uint8]{0b11000, 0xF0}},
		{"ShrVec", a.ShrVec(Vec2[uint8]{2, 4}), Vec2[uint8]{0b11, 0x0F}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// Signed shifts are arithmetic.
	s := NewVec3[int8](-8, 8, -1)
	if got, want := s.Shr(1), NewVec3[int8](-4, 4, -1); got != want {
		t.Errorf("Shr(1) on %v = %v, want %v", s, got, want)
	}
	if got, want := s.ShlVec(NewVec3[int8](-3, 1, 0)), NewVec3[int8](-8, 16, -1); got != want {
		t.Errorf("ShlVec with negative count = %v, want %v", got, want)
	}

	// Floats operate on the bit pattern: clearing the sign bit is Abs.
	f := NewVec2(1.5, -2.0)
	mask := math.Float64frombits(^uint64(1 << 63))
	if got, want := f.AndScalar(mask), NewVec2(1.5, 2.0); got != want {
		t.Errorf("AndScalar(sign mask) = %v, want %v", got, want)
	}
	if got := f.Xor(f); got != (Vec2[float64]{}) {
		t.Errorf("Xor(self) = %v, want zero", got)
	}
	if got := f.Not().Not(); got != f {
		t.Errorf("Not(Not(v)) = %v, want %v", got, f)
	}
}

func TestVecComparison(t *testing.T) {
	a := NewVec4[float32](1, 2, 3, 4)
	b := NewVec4[float32](4, 2, 1, 4)

	tests := []struct {
		name      string
		got, want BVec4
	}{
		{"Equal", a.Equal(b), BVec4{false, true, false, true}},
		{"NotEqual", a.NotEqual(b), BVec4{true, false, true, false}},
		{"LessThan", a.LessThan(b), BVec4{true, false, false, false}},
		{"LessEqual", a.LessEqual(b), BVec4{true, true, false, true}},
		{"GreaterThan", a.GreaterThan(b), BVec4{false, false, true, false}},
		{"GreaterEqual", a.GreaterEqual(b), BVec4{false, true, true, true}},
		{"EqualEpsilon", a.EqualEpsilon(b, 2), BVec4{false, true, true, true}},
		{"Bool", NewVec4[float32](0, 1, -1, 0).Bool(), BVec4{false, true, true, false}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if !a.LessEqual(b).Any() || a.LessEqual(b).All() {
		t.Error("Any/All on mixed result")
	}
	if !a.Equal(a).All() || a.NotEqual(a).Any() {
		t.Error("Any/All on identical vectors")
	}

	p, q := BVec2{true, false}, BVec2{true, true}
	if p.And(q) != (BVec2{true, false}) || p.Or(q) != (BVec2{true, true}) || p.Not() != (BVec2{false, true}) {
		t.Error("BVec2 logic")
	}
	if p.Equal(q) != (BVec2{true, false}) {
		t.Error("BVec2 Equal")
	}

	// Native equality is exact and componentwise.
	c := a
	if c != a || a == b || (a != b) != !(a == b) {
		t.Error("native == / != on vectors")
	}
	// Unsigned EqualEpsilon must not wrap around.
	u, w := NewVec2[uint8](3, 10), NewVec2[uint8](5, 1)
	if got := u.EqualEpsilon(w, 2); got != (BVec2{true, false}) {
		t.Errorf("EqualEpsilon on uint8 = %v", got)
	}
}

func TestVecAt(t *testing.T) {
	v := NewVec3[float64](1, 2, 3)
	for i := range 3 {
		c, err := v.At(i)
		if err != nil || c != v[i] {
			t.Errorf("At(%d) = %v, %v", i, c, err)
		}
	}

	for _, i := range []int{-1, 3, 100} {
		_, err := v.At(i)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrOutOfRange", i, err)
		}
		var ie *IndexError
		if !errors.As(err, &ie) || ie.Index != i || ie.Len != 3 || ie.Type != "Vec3d" {
			t.Errorf("At(%d) error = %#v", i, err)
		}
	}

	w, err := v.SetAt(1, 9)
	if err != nil || w != NewVec3[float64](1, 9, 3) || v[1] != 2 {
		t.Errorf("SetAt(1, 9) = %v, %v (original %v)", w, err, v)
	}
	if _, err := v.SetAt(3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetAt(3) error = %v", err)
	}

	if _, err := (BVec2{}).At(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("BVec2.At(2) error = %v", err)
	}
	if v.Len() != 3 || (Vec2[int8]{}).Len() != 2 || (Vec4[uint16]{}).Len() != 4 {
		t.Error("Len")
	}
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 || NewVec4[int16](1, 2, 3, 4).W() != 4 {
		t.Error("component accessors")
	}
}

func TestVecIteration(t *testing.T) {
	v := NewVec4[int32](10, 20, 30, 40)

	var idx []int
	var vals []int32
	for i, c := range v.All() {
		idx = append(idx, i)
		vals = append(vals, c)
	}
	for k := range 4 {
		if idx[k] != k || vals[k] != v[k] {
			t.Fatalf("All: got %v %v", idx, vals)
		}
	}

	idx = idx[:0]
	for i := range v.Backward() {
		idx = append(idx, i)
	}
	if len(idx) != 4 || idx[0] != 3 || idx[3] != 0 {
		t.Errorf("Backward indices = %v", idx)
	}

	n := 0
	for range v.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early break visited %d", n)
	}
}

func TestVecString(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{NewVec3[float32](1, 2, 3).String(), "Vec3f(1, 2, 3)"},
		{NewVec2(0.5, -1.0).String(), "Vec2d(0.5, -1)"},
		{NewVec4[int8](1, -2, 3, -4).String(), "Vec4i8(1, -2, 3, -4)"},
		{NewVec2[int16](7, 8).String(), "Vec2i16(7, 8)"},
		{NewVec3[int32](0, 0, 1).String(), "Vec3i32(0, 0, 1)"},
		{NewVec2[int64](-1, 1).String(), "Vec2i64(-1, 1)"},
		{NewVec3[uint8](255, 0, 1).String(), "Vec3u8(255, 0, 1)"},
		{NewVec2[uint16](1, 2).String(), "Vec2u16(1, 2)"},
		{NewVec4[uint32](1, 2, 3, 4).String(), "Vec4u32(1, 2, 3, 4)"},
		{NewVec2[uint64](1, 2).String(), "Vec2u64(1, 2)"},
		{BVec3{true, false, true}.String(), "Vec3b(true, false, true)"},
		{NewVec2(math.Inf(1), math.NaN()).String(), "Vec2d(+Inf, NaN)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestVecConversions(t *testing.T) {
	v2 := NewVec2[float32](1, 2)
	v3 := Vec3FromVec2(v2, 3)
	v4 := Vec4FromVec3(v3, 4)

	if v3 != NewVec3[float32](1, 2, 3) || v4 != NewVec4[float32](1, 2, 3, 4) {
		t.Errorf("composition: %v %v", v3, v4)
	}
	if Vec4FromVec2(v2, 3, 4) != v4 || Vec4FromVec2s(v2, NewVec2[float32](3, 4)) != v4 {
		t.Error("Vec4FromVec2")
	}
	if Vec2FromVec3(v3) != v2 || Vec2FromVec4(v4) != v2 || Vec3FromVec4(v4) != v3 {
		t.Error("truncation")
	}
	if SplatVec3[int8](5) != NewVec3[int8](5, 5, 5) {
		t.Error("SplatVec3")
	}

	f := NewVec3[float64](1.7, -2.2, 3)
	if got := ConvertVec3[int32](f); got != NewVec3[int32](1, -2, 3) {
		t.Errorf("ConvertVec3[int32](%v) = %v", f, got)
	}
	if got := ConvertVec2[float64](NewVec2[float32](0.5, 2)); got != NewVec2(0.5, 2.0) {
		t.Errorf("ConvertVec2[float64] = %v", got)
	}
	if got := ConvertVec4[uint8](NewVec4[int32](1, 2, 3, 256)); got != NewVec4[uint8](1, 2, 3, 0) {
		t.Errorf("ConvertVec4[uint8] = %v", got)
	}
	if got := ConvertBVec3[float32](BVec3{true, false, true}); got != NewVec3[float32](1, 0, 1) {
		t.Errorf("ConvertBVec3 = %v", got)
	}
	if got := ConvertBVec2[int8](BVec2{false, true}); got != NewVec2[int8](0, 1) {
		t.Errorf("ConvertBVec2 = %v", got)
	}
	if got := ConvertBVec4[uint64](BVec4{true, true, false, false}); got != NewVec4[uint64](1, 1, 0, 0) {
		t.Errorf("ConvertBVec4 = %v", got)
	}

	if got := NewVec3(1.0, 4.0, 9.0).Map(Sqrt[float64]); got != NewVec3(1.0, 2.0, 3.0) {
		t.Errorf("Map(Sqrt) = %v", got)
	}
}
