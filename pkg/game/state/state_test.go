package state

import (
	"errors"
	"testing"

	"haex/pkg/engine/world"
	"haex/pkg/game/entities"
	"haex/pkg/game/programs"
)

// corridorLevel is a 2x1 maze: the player spawns at (0,0) and the exit is (1,0).
func corridorLevel() LevelSettings {
	return LevelSettings{
		Width: 2, Height: 1,
		Enemies:  EnemySettings{BasicCount: 1},
		Programs: programs.Settings{NopSlideCount: 1},
	}
}

func startGame(t *testing.T, levels []LevelSettings, loop bool) *Game {
	t.Helper()
	p, err := NewProgression(levels, loop)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(p, DefaultOptions())
	if g.Phase() != PhaseMenu {
		t.Fatalf("new game phase = %s, want menu", g.Phase())
	}
	if err := g.Start(42); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if g.Phase() != PhaseMain {
		t.Fatalf("phase after Start = %s", g.Phase())
	}
	return g
}

func walkToExit(t *testing.T, g *Game) {
	t.Helper()
	lvl := g.Level()
	if lvl.Start != world.C(0, 0) || lvl.Exit != world.C(1, 0) {
		t.Fatalf("start %s exit %s", lvl.Start, lvl.Exit)
	}
	if !g.Move(world.East) {
		t.Fatal("Move(East) failed")
	}
	if err := g.Update(g.Options().MoveTime); err != nil {
		t.Fatal(err)
	}
}

func TestGame_ExitLoadsNextLevel(t *testing.T) {
	g := startGame(t, []LevelSettings{corridorLevel(), corridorLevel()}, false)
	if len(g.Level().Enemies) != 0 {
		t.Errorf("spawned %d enemies next to the player", len(g.Level().Enemies))
	}

	walkToExit(t, g)
	if g.Phase() != PhaseMainToMain {
		t.Fatalf("phase = %s, want main-to-main", g.Phase())
	}
	if g.Move(world.West) {
		t.Error("moved during a transition")
	}

	if err := g.Update(MainToMainDuration); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != PhaseMain {
		t.Fatalf("phase = %s, want main", g.Phase())
	}
	lvl := g.Level()
	if lvl.Number != 2 {
		t.Errorf("level number = %d, want 2", lvl.Number)
	}
	if want := int64(42) ^ int64(g.Elapsed()); lvl.Seed != want {
		t.Errorf("seed = %d, want %d", lvl.Seed, want)
	}
}

func TestGame_BadEnding(t *testing.T) {
	g := startGame(t, []LevelSettings{corridorLevel()}, false)
	walkToExit(t, g)
	if g.Phase() != PhaseMainToBadEnd {
		t.Fatalf("phase = %s, want main-to-bad-end", g.Phase())
	}
	_ = g.Update(MainToBadEndDuration)
	if g.Phase() != PhaseBadEnd {
		t.Fatalf("phase = %s, want bad-end", g.Phase())
	}
	if !g.Key() || g.Phase() != PhaseMenu {
		t.Errorf("key at bad end left phase %s", g.Phase())
	}
	if g.Level() != nil {
		t.Error("level kept after returning to the menu")
	}
}

func TestGame_CaughtByEnemy(t *testing.T) {
	g := startGame(t, []LevelSettings{corridorLevel()}, false)
	lvl := g.Level()
	pos := lvl.Player.Position()
	lvl.Enemies = append(lvl.Enemies, entities.NewEnemy(pos.X, pos.Y))

	_ = g.Update(1)
	if g.Phase() != PhaseMainToBlack {
		t.Fatalf("phase = %s, want main-to-black", g.Phase())
	}
	_ = g.Update(MainToBlackDuration)
	if g.Phase() != PhaseBlack {
		t.Fatalf("phase = %s, want black", g.Phase())
	}
	if g.Key() {
		t.Error("key accepted before the minimum black time")
	}
	_ = g.Update(BlackMinimumDuration)
	if !g.Key() || g.Phase() != PhaseMenu {
		t.Errorf("phase = %s, want menu", g.Phase())
	}
}

func TestGame_ActivateProgram(t *testing.T) {
	p, _ := NewProgression([]LevelSettings{corridorLevel()}, false)
	g := NewGame(p, DefaultOptions())
	if err := g.ActivateProgram(programs.KindNopSlide); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("activate at menu: %v", err)
	}

	if err := g.Start(7); err != nil {
		t.Fatal(err)
	}
	if err := g.ActivateProgram(programs.KindNopSlide); err != nil {
		t.Fatalf("ActivateProgram: %v", err)
	}
	if g.Inventory().NopSlides != 0 {
		t.Error("charge not spent")
	}
	if g.Scheduler().Len() != 1 {
		t.Errorf("scheduled %d tasks, want 1", g.Scheduler().Len())
	}
	if err := g.ActivateProgram(programs.KindNopSlide); !errors.Is(err, programs.ErrNoCharges) {
		t.Errorf("second activation: %v", err)
	}
	if err := g.ActivateProgram(programs.KindNoClip); !errors.Is(err, programs.ErrNoCharges) {
		t.Errorf("NoClip without charges: %v", err)
	}
}

func TestGame_Messages(t *testing.T) {
	g := NewGame(nil, DefaultOptions())
	for i := 0; i < 8; i++ {
		g.AddMessage("MESSAGE_LEVEL_START")
	}
	if len(g.Messages) != 5 {
		t.Errorf("kept %d messages, want 5", len(g.Messages))
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Error("ClearMessages left messages")
	}
}

func TestNewProgression(t *testing.T) {
	if _, err := NewProgression(nil, false); !errors.Is(err, ErrNoLevels) {
		t.Errorf("empty levels: %v", err)
	}
	if _, err := NewProgression([]LevelSettings{{Width: 1, Height: 1}}, false); err == nil {
		t.Error("accepted a single-cell level")
	}

	loop, err := NewProgression(DefaultLevels(), true)
	if err != nil {
		t.Fatal(err)
	}
	if loop.Exit.Exit.Exit != loop {
		t.Error("looping progression does not return to the first level")
	}

	p := DefaultProgression()
	sizes := []int{5, 7, 10}
	for i, size := range sizes {
		if p.Type != ProgressionStandard || p.Level.Width != size || p.Level.Height != size {
			t.Errorf("step %d = %+v", i, p.Level)
		}
		p = p.Exit
	}
	if p.Type != ProgressionBadEnding || p.Exit != nil {
		t.Errorf("run ends with %+v, want the bad ending", p)
	}
}
