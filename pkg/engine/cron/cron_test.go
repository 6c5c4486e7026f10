package cron

import (
	"testing"
	"time"
)

type counter struct {
	every int
	after int
}

const tick = 100 * time.Millisecond

func TestEvery(t *testing.T) {
	c := New[*counter]()
	ctx := &counter{}
	c.Every(tick, TaskFunc[*counter](func(ctx *counter) ControlFlow {
		ctx.every++
		return Continue
	}))

	c.Update(50*time.Millisecond, ctx)
	if ctx.every != 0 {
		t.Fatalf("fired early: %d", ctx.every)
	}
	c.Update(50*time.Millisecond, ctx)
	if ctx.every != 1 {
		t.Fatalf("after one interval fired %d times", ctx.every)
	}
	for i := 0; i < 5; i++ {
		c.Update(tick, ctx)
	}
	if ctx.every != 6 {
		t.Errorf("after six intervals fired %d times", ctx.every)
	}
}

func TestEvery_CarriesRemainder(t *testing.T) {
	c := New[*counter]()
	ctx := &counter{}
	c.Every(tick, TaskFunc[*counter](func(ctx *counter) ControlFlow {
		ctx.every++
		return Continue
	}))
	c.Update(150*time.Millisecond, ctx)
	c.Update(50*time.Millisecond, ctx)
	if ctx.every != 2 {
		t.Errorf("fired %d times, want 2", ctx.every)
	}
}

func TestEvery_Stop(t *testing.T) {
	c := New[*counter]()
	ctx := &counter{}
	id := c.Every(tick, TaskFunc[*counter](func(ctx *counter) ControlFlow {
		ctx.every++
		if ctx.every == 3 {
			return Stop
		}
		return Continue
	}))
	for i := 0; i < 10; i++ {
		c.Update(tick, ctx)
	}
	if ctx.every != 3 {
		t.Errorf("fired %d times, want 3", ctx.every)
	}
	if c.Contains(id) {
		t.Error("stopped task is still scheduled")
	}
}

func TestAfter(t *testing.T) {
	c := New[*counter]()
	ctx := &counter{}
	id := c.After(3*tick, TaskFunc[*counter](func(ctx *counter) ControlFlow {
		ctx.after++
		return Continue
	}))
	c.Update(2*tick, ctx)
	if ctx.after != 0 || !c.Contains(id) {
		t.Fatalf("after fired early")
	}
	c.Update(tick, ctx)
	c.Update(tick, ctx)
	if ctx.after != 1 {
		t.Errorf("after fired %d times, want 1", ctx.after)
	}
	if c.Contains(id) || c.Len() != 0 {
		t.Error("after task still scheduled once run")
	}
}

func TestRemove(t *testing.T) {
	c := New[*counter]()
	ctx := &counter{}
	id := c.Every(tick, TaskFunc[*counter](func(ctx *counter) ControlFlow {
		ctx.every++
		return Continue
	}))
	if !c.Remove(id) {
		t.Fatal("Remove returned false for a live task")
	}
	if c.Remove(id) {
		t.Error("Remove returned true twice")
	}
	c.Update(tick, ctx)
	if ctx.every != 0 {
		t.Error("removed task ran")
	}
	if c.Remove(ID(999)) {
		t.Error("Remove of unknown ID returned true")
	}
}

func TestScheduleDuringUpdate(t *testing.T) {
	c := New[*counter]()
	ctx := &counter{}
	var child ID
	c.After(tick, TaskFunc[*counter](func(ctx *counter) ControlFlow {
		child = c.Every(tick, TaskFunc[*counter](func(ctx *counter) ControlFlow {
			ctx.every++
			return Continue
		}))
		return Continue
	}))

	c.Update(tick, ctx)
	if !c.Contains(child) {
		t.Fatal("task added during Update is missing")
	}
	if ctx.every != 0 {
		t.Error("task added during Update ran in the same Update")
	}
	c.Update(tick, ctx)
	if ctx.every != 1 {
		t.Errorf("child fired %d times, want 1", ctx.every)
	}
}

func TestRemoveDuringUpdate(t *testing.T) {
	c := New[*counter]()
	ctx := &counter{}
	var victim ID
	c.Every(tick, TaskFunc[*counter](func(ctx *counter) ControlFlow {
		c.Remove(victim)
		return Continue
	}))
	victim = c.Every(tick, TaskFunc[*counter](func(ctx *counter) ControlFlow {
		ctx.every++
		return Continue
	}))

	c.Update(tick, ctx)
	if ctx.every != 0 {
		t.Error("task removed earlier in the same Update still ran")
	}
	if c.Contains(victim) || c.Len() != 1 {
		t.Errorf("Len() = %d after removal", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := New[*counter]()
	c.Every(tick, TaskFunc[*counter](func(*counter) ControlFlow { return Continue }))
	c.After(tick, TaskFunc[*counter](func(*counter) ControlFlow { return Continue }))
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear", c.Len())
	}
	c.Update(tick, &counter{})
	if c.Elapsed() != tick {
		t.Errorf("Elapsed() = %v", c.Elapsed())
	}
}
