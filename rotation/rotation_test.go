package rotation

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestTickScenarios(t *testing.T) {
	cases := []struct {
		name    string
		rate    float64
		start   float64
		elapsed []float64
		want    float64
	}{
		{"one_second_default_rate", 5, 0, []float64{1}, 5},
		{"two_half_seconds", 5, 0, []float64{0.5, 0.5}, 5},
		{"negative_rate", -90, 10, []float64{0.2}, -8},
		{"zero_elapsed", 5, 42, []float64{0}, 42},
		{"zero_rate", 0, 12.5, []float64{1, 3.25, 100}, 12.5},
		{"unbounded_past_360", 90, 350, []float64{1}, 440},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := Euler{Y: c.start}
			for _, dt := range c.elapsed {
				o = Tick(o, dt, c.rate)
			}
			if !approx(o.Y, c.want) {
				t.Fatalf("expected yaw %v, got %v", c.want, o.Y)
			}
		})
	}
}

func TestTickLeavesPitchAndRoll(t *testing.T) {
	o := Tick(Euler{X: 12, Y: 3, Z: -7}, 0.75, 40)
	if o.X != 12 || o.Z != -7 {
		t.Fatalf("pitch/roll changed: %+v", o)
	}
	if !approx(o.Y, 33) {
		t.Fatalf("expected yaw 33, got %v", o.Y)
	}
}

func TestTickLinearity(t *testing.T) {
	rates := []float64{5, -90, 0.001, 720}
	splits := [][2]float64{{0.25, 0.75}, {1.5, 0.016}, {0, 2}}

	for _, r := range rates {
		for _, s := range splits {
			once := Tick(Euler{Y: 7}, s[0]+s[1], r)
			twice := Tick(Tick(Euler{Y: 7}, s[0], r), s[1], r)
			if math.Abs(once.Y-twice.Y) > 1e-6 {
				t.Fatalf("rate %v split %v: once=%v twice=%v", r, s, once.Y, twice.Y)
			}
		}
	}
}

func TestTickPropagatesNaN(t *testing.T) {
	o := Tick(Euler{Y: 1}, math.NaN(), 5)
	if !math.IsNaN(o.Y) {
		t.Fatalf("expected NaN yaw, got %v", o.Y)
	}
}

func TestStepWrap(t *testing.T) {
	cases := []struct {
		name    string
		mode    WrapMode
		start   float64
		rate    float64
		elapsed float64
		want    float64
	}{
		{"none_negative", WrapNone, 10, -90, 0.2, -8},
		{"360_negative", Wrap360, 10, -90, 0.2, 352},
		{"360_over", Wrap360, 350, 90, 1, 80},
		{"360_exact", Wrap360, 355, 5, 1, 0},
		{"360_many_turns", Wrap360, 0, 720, 2.5, 0},
		{"360_in_range", Wrap360, 0, 5, 1, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := Step(Euler{Y: c.start}, c.elapsed, c.rate, c.mode)
			if !approx(o.Y, c.want) {
				t.Fatalf("expected yaw %v, got %v", c.want, o.Y)
			}
		})
	}
}

func TestWrapApplyStaysInRange(t *testing.T) {
	for _, deg := range []float64{-1e-15, -720, -359.999, 0, 359.999, 1e6} {
		got := Wrap360.Apply(deg)
		if got < 0 || got >= 360 {
			t.Fatalf("Apply(%v) = %v, out of [0, 360)", deg, got)
		}
	}
}

func TestParseWrapMode(t *testing.T) {
	cases := []struct {
		in      string
		want    WrapMode
		wantErr bool
	}{
		{"", WrapNone, false},
		{"none", WrapNone, false},
		{" NONE ", WrapNone, false},
		{"360", Wrap360, false},
		{"wrap", Wrap360, false},
		{"radians", WrapNone, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseWrapMode(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestForwardFollowsYaw(t *testing.T) {
	cases := []struct {
		yaw   float64
		wantX float64
		wantZ float64
	}{
		{0, 0, 1},
		{90, 1, 0},
		{180, 0, -1},
		{-90, -1, 0},
	}

	for _, c := range cases {
		f := Euler{Y: c.yaw}.Forward()
		if math.Abs(f.X()-c.wantX) > 1e-9 || math.Abs(f.Y()) > 1e-9 || math.Abs(f.Z()-c.wantZ) > 1e-9 {
			t.Fatalf("yaw %v: expected (%v, 0, %v), got %v", c.yaw, c.wantX, c.wantZ, f)
		}
	}
}
