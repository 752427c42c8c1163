package dino

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/pocketdino/internal/config"
	"github.com/vovakirdan/pocketdino/internal/core"
)

func newTestGame(seed int64) *Game {
	return New(config.DefaultDinoConfig(), rand.New(rand.NewSource(seed)))
}

// crashIdle steps without input until the run ends.
func crashIdle(t *testing.T, g *Game) StepResult {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if res := g.Step(core.Intents{}); res.Crashed {
			return res
		}
	}
	t.Fatal("idle player never crashed")
	return StepResult{}
}

func TestNewGameIsRunning(t *testing.T) {
	g := newTestGame(1)

	s := g.State()
	if s.Phase != PhaseRunning || s.Score != 0 || s.HighScore != 0 || s.Tick != 0 {
		t.Errorf("unexpected initial state %+v", s)
	}
	f := g.Frame()
	if f.Obstacle.Kind != KindGround || f.Obstacle.Rect.X != 128 {
		t.Errorf("unexpected initial obstacle %+v", f.Obstacle)
	}
	if f.Summary != nil {
		t.Error("summary should be nil while running")
	}
}

func TestIdlePlayerHitsFirstCactus(t *testing.T) {
	g := newTestGame(1)

	for i := 1; i <= 25; i++ {
		if res := g.Step(core.Intents{}); res.Crashed {
			t.Fatalf("crashed early at tick %d", i)
		}
	}

	res := g.Step(core.Intents{})
	if !res.Crashed || res.State.Phase != PhaseGameOver {
		t.Fatalf("expected crash on tick 26, got %+v", res)
	}
	if g.Frame().Obstacle.Rect.X != 24 {
		t.Errorf("obstacle x = %d, expected 24", g.Frame().Obstacle.Rect.X)
	}

	f := g.Frame()
	if f.Summary == nil || f.Summary.Score != 0 || f.Summary.Ticks != 26 || f.Summary.NewBest {
		t.Errorf("unexpected summary %+v", f.Summary)
	}
}

func TestGameOverIsInert(t *testing.T) {
	g := newTestGame(3)
	crashIdle(t, g)

	before := g.Frame()
	for i := 0; i < 50; i++ {
		res := g.Step(core.Intents{Jump: true, Crouch: true})
		if res.Restarted || res.Jumped || res.Scored || res.Crashed {
			t.Fatalf("tick %d: game over produced events %+v", i, res)
		}
	}
	if after := g.Frame(); !reflect.DeepEqual(before, after) {
		t.Errorf("game over state changed:\n%+v\n%+v", before, after)
	}
}

func TestResetGuardDropsEarlyRequests(t *testing.T) {
	g := newTestGame(3)
	crashIdle(t, g)

	for i := 0; i < 9; i++ {
		if res := g.Step(core.Intents{Reset: true}); res.Restarted {
			t.Fatalf("restart honored during guard on tick %d", i)
		}
	}

	res := g.Step(core.Intents{Reset: true})
	if !res.Restarted {
		t.Fatal("restart should be honored after the guard")
	}

	f := g.Frame()
	if f.Phase != PhaseRunning || f.Score != 0 || f.Tick != 0 {
		t.Errorf("restart left run state behind: %+v", f)
	}
	if f.Obstacle.Kind != KindGround || f.Obstacle.Rect.X != 128 {
		t.Errorf("restart obstacle %+v", f.Obstacle)
	}
	if f.Player.Rect.Y != 46 || f.Player.Airborne || f.Player.Posture != PostureStanding {
		t.Errorf("restart player %+v", f.Player)
	}
	if f.Summary != nil {
		t.Error("summary should be cleared on restart")
	}
}

func TestResetWithoutGuard(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	cfg.Timing.ResetGuardMS = 0
	g := New(cfg, rand.New(rand.NewSource(1)))
	crashIdle(t, g)

	if res := g.Step(core.Intents{Reset: true}); !res.Restarted {
		t.Error("restart should be immediate without a guard")
	}
}

func TestHighScoreIsKeptAcrossRuns(t *testing.T) {
	g := newTestGame(7)
	bot := NewAutopilot(rand.New(rand.NewSource(7)), 100)
	var sampler core.Sampler

	for i := 0; i < 2000 && g.State().Score < 5; i++ {
		if res := g.Step(sampler.Sample(bot.Decide(g.Frame()))); res.Crashed {
			t.Fatalf("autopilot crashed at score %d", res.State.Score)
		}
	}
	if g.State().Score < 5 {
		t.Fatal("autopilot did not reach score 5")
	}

	first := crashIdle(t, g)
	if first.State.HighScore != first.State.Score || first.State.HighScore < 5 {
		t.Fatalf("high score %d should equal final score %d", first.State.HighScore, first.State.Score)
	}
	if s := g.Frame().Summary; s == nil || !s.NewBest {
		t.Error("first run should be a new best")
	}

	for i := 0; i < 10; i++ {
		g.Step(core.Intents{Reset: true})
	}
	if g.State().Phase != PhaseRunning {
		t.Fatal("game did not restart")
	}
	if g.State().HighScore != first.State.HighScore {
		t.Error("high score must survive a restart")
	}

	second := crashIdle(t, g)
	if second.State.HighScore != first.State.HighScore {
		t.Errorf("high score changed from %d to %d on a worse run", first.State.HighScore, second.State.HighScore)
	}
	if s := g.Frame().Summary; s == nil || s.NewBest {
		t.Error("worse run should not be a new best")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []Frame {
		g := newTestGame(12345)
		bot := NewAutopilot(rand.New(rand.NewSource(99)), 80)
		var sampler core.Sampler

		frames := make([]Frame, 0, 2000)
		for i := 0; i < 2000; i++ {
			g.Step(sampler.Sample(bot.Decide(g.Frame())))
			frames = append(frames, g.Frame())
		}
		return frames
	}

	a, b := run(), run()
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Fatalf("runs diverged at tick %d:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestRunInvariants(t *testing.T) {
	g := newTestGame(2024)
	bot := NewAutopilot(rand.New(rand.NewSource(5)), 70)
	var sampler core.Sampler

	high := 0
	scored := 0
	for i := 0; i < 5000; i++ {
		res := g.Step(sampler.Sample(bot.Decide(g.Frame())))
		f := g.Frame()

		if f.Player.Rect.Bottom() > f.GroundY {
			t.Fatalf("tick %d: player below ground: %+v", i, f.Player.Rect)
		}
		if f.HighScore < high {
			t.Fatalf("tick %d: high score dropped from %d to %d", i, high, f.HighScore)
		}
		high = f.HighScore

		if res.Restarted {
			scored = 0
		}
		if res.Scored {
			scored++
		}
		if f.Score != scored {
			t.Fatalf("tick %d: score %d but %d obstacles passed", i, f.Score, scored)
		}
		if (f.Phase == PhaseGameOver) != (f.Summary != nil) {
			t.Fatalf("tick %d: summary presence does not match phase %v", i, f.Phase)
		}
	}
}
