package dino

import (
	"testing"

	"github.com/vovakirdan/pocketdino/internal/config"
)

func TestPlayerStartsOnGround(t *testing.T) {
	p := NewPlayer(config.DefaultDinoConfig())

	if p.Y != 46 || p.Height != 14 {
		t.Errorf("expected standing at y=46 h=14, got y=%d h=%d", p.Y, p.Height)
	}
	if !p.OnGround() || p.Airborne {
		t.Error("new player should be grounded")
	}
}

func TestPlayerJumpArc(t *testing.T) {
	p := NewPlayer(config.DefaultDinoConfig())

	expected := []int{38, 31, 25, 20, 16, 13, 11, 10, 10, 11, 13, 16, 20, 25, 31, 38, 46}

	if !p.Update(true, false) {
		t.Fatal("jump from rest should start")
	}
	for i, y := range expected {
		if i > 0 {
			if p.Update(true, false) {
				t.Fatalf("tick %d: jumped again while airborne", i)
			}
		}
		if p.Y != y {
			t.Fatalf("tick %d: y = %d, expected %d", i, p.Y, y)
		}
		if p.Y+p.Height > 60 {
			t.Fatalf("tick %d: feet below the ground line", i)
		}
	}

	if p.Airborne || p.VelY != 0 {
		t.Errorf("should land at rest, airborne=%v vel=%d", p.Airborne, p.VelY)
	}
}

func TestPlayerCrouch(t *testing.T) {
	p := NewPlayer(config.DefaultDinoConfig())

	p.Update(false, true)
	if p.Posture() != PostureCrouching || p.Height != 11 || p.Y != 49 {
		t.Errorf("crouch: posture=%v h=%d y=%d", p.Posture(), p.Height, p.Y)
	}

	if p.Update(true, true) {
		t.Error("jump must be ignored while crouching")
	}

	p.Update(false, false)
	if p.Posture() != PostureStanding || p.Y != 46 {
		t.Errorf("release: posture=%v y=%d", p.Posture(), p.Y)
	}
	if !p.OnGround() {
		t.Error("feet should stay anchored across posture changes")
	}
}

func TestPlayerCannotCrouchInAir(t *testing.T) {
	p := NewPlayer(config.DefaultDinoConfig())

	p.Update(true, false)
	p.Update(false, true)
	if p.Crouching || p.Height != 14 {
		t.Error("posture must not change while airborne")
	}
}

func TestPlayerMaxFallSpeed(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	cfg.Physics.MaxFallSpeed = 3
	p := NewPlayer(cfg)

	p.Update(true, false)
	for i := 0; i < 40 && p.Airborne; i++ {
		p.Update(false, false)
		if p.VelY > 3 {
			t.Fatalf("velocity %d exceeded the cap", p.VelY)
		}
	}
	if p.Airborne || !p.OnGround() {
		t.Error("player should have landed")
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer(config.DefaultDinoConfig())
	p.Update(true, false)
	p.Update(false, false)

	p.Reset()
	if p.Airborne || p.VelY != 0 || p.Y != 46 || p.Crouching {
		t.Errorf("reset left state behind: %+v", p)
	}
}
