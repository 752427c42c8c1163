package dino

import (
	"testing"

	"github.com/vovakirdan/pocketdino/internal/config"
)

// seqRand returns queued values in order and records each bound it was asked for.
type seqRand struct {
	vals   []int
	bounds []int
}

func (r *seqRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

func TestSpawnerInitial(t *testing.T) {
	rng := &seqRand{}
	s := NewSpawner(config.DefaultDinoConfig(), rng)

	o := s.Initial()
	if o.Kind() != KindGround {
		t.Fatalf("initial obstacle should be ground, got %v", o.Kind())
	}
	if r := o.Rect(); r.X != 128 || r.Y != 44 || r.W != 8 || r.H != 16 {
		t.Errorf("unexpected initial rect %+v", r)
	}
	if len(rng.bounds) != 0 {
		t.Error("initial obstacle must not draw randomness")
	}
}

func TestSpawnBelowUnlockNeverDrawsKind(t *testing.T) {
	rng := &seqRand{vals: []int{37}}
	s := NewSpawner(config.DefaultDinoConfig(), rng)

	o := s.Spawn(14)
	if o.Kind() != KindGround {
		t.Errorf("expected ground below unlock, got %v", o.Kind())
	}
	if o.Rect().X != 128+37 {
		t.Errorf("x = %d, expected %d", o.Rect().X, 128+37)
	}
	if len(rng.bounds) != 1 || rng.bounds[0] != 100 {
		t.Errorf("expected a single jitter draw, got bounds %v", rng.bounds)
	}
}

func TestSpawnKindRoll(t *testing.T) {
	tests := []struct {
		name string
		roll int
		kind Kind
	}{
		{"below chance", 39, KindAerial},
		{"at chance", 40, KindGround},
		{"zero", 0, KindAerial},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := &seqRand{vals: []int{tc.roll, 5}}
			s := NewSpawner(config.DefaultDinoConfig(), rng)

			o := s.Spawn(15)
			if o.Kind() != tc.kind {
				t.Fatalf("kind = %v, expected %v", o.Kind(), tc.kind)
			}
			if o.Rect().X != 133 {
				t.Errorf("x = %d, expected 133", o.Rect().X)
			}
			if tc.kind == KindAerial {
				if r := o.Rect(); r.Y != 40 || r.W != 16 || r.H != 9 {
					t.Errorf("aerial rect %+v", r)
				}
			}
		})
	}
}

func TestAdvanceDespawnBoundaries(t *testing.T) {
	s := NewSpawner(config.DefaultDinoConfig(), &seqRand{})

	tests := []struct {
		name   string
		o      Obstacle
		x      int
		passed bool
	}{
		{"ground stays at boundary", s.ground(-6), -10, false},
		{"ground crosses boundary", s.ground(-7), -11, true},
		{"aerial stays at boundary", s.aerial(-15), -20, false},
		{"aerial crosses boundary", s.aerial(-16), -21, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			moved, passed := s.Advance(tc.o, 0)
			if moved.Rect().X != tc.x || passed != tc.passed {
				t.Errorf("got x=%d passed=%v, expected x=%d passed=%v", moved.Rect().X, passed, tc.x, tc.passed)
			}
			if moved.Kind() != tc.o.Kind() {
				t.Error("advance changed the kind")
			}
		})
	}
}

func TestSpeedIncludesBonus(t *testing.T) {
	s := NewSpawner(config.DefaultDinoConfig(), &seqRand{})

	if got := s.Speed(s.ground(0), 29); got != 4 {
		t.Errorf("ground speed at 29 = %d, expected 4", got)
	}
	if got := s.Speed(s.ground(0), 30); got != 5 {
		t.Errorf("ground speed at 30 = %d, expected 5", got)
	}
	if got := s.Speed(s.aerial(0), 50); got != 7 {
		t.Errorf("aerial speed at 50 = %d, expected 7", got)
	}
}
