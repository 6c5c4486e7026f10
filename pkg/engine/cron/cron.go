// Package cron runs delayed and repeating tasks from a game loop.
//
// A Cron is pumped with the frame delta by its owner; it keeps no clock and
// starts no goroutines. Every task receives the context passed to Update, so
// tasks never need to capture mutable game state.
//
// Tasks may schedule or remove tasks while Update is running. New tasks are
// held aside and join the list after the current scan, removed ones are
// skipped for the rest of it.
package cron

import (
	"slices"
	"time"
)

// ControlFlow tells a repeating task whether to keep running
type ControlFlow int

const (
	Continue ControlFlow = iota
	Stop
)

// ID identifies a scheduled task
type ID uint64

// Task is a unit of scheduled work
type Task[T any] interface {
	Run(ctx T) ControlFlow
}

// TaskFunc adapts a function to the Task interface
type TaskFunc[T any] func(ctx T) ControlFlow

// Run calls f(ctx)
func (f TaskFunc[T]) Run(ctx T) ControlFlow {
	return f(ctx)
}

type entry[T any] struct {
	id       ID
	interval time.Duration
	running  time.Duration
	once     bool
	removed  bool
	task     Task[T]
}

// Cron is a list of scheduled tasks
type Cron[T any] struct {
	nextID   ID
	elapsed  time.Duration
	entries  []*entry[T]
	pending  []*entry[T]
	updating bool
}

// New creates an empty scheduler
func New[T any]() *Cron[T] {
	return &Cron[T]{}
}

// Every runs task each time interval elapses until it returns Stop or is removed.
// It fires at most once per Update and carries the remainder forward.
func (c *Cron[T]) Every(interval time.Duration, task Task[T]) ID {
	return c.add(&entry[T]{interval: interval, task: task})
}

// After runs task once, after delay has elapsed
func (c *Cron[T]) After(delay time.Duration, task Task[T]) ID {
	return c.add(&entry[T]{interval: delay, once: true, task: task})
}

func (c *Cron[T]) add(e *entry[T]) ID {
	e.id = c.nextID
	c.nextID++
	if c.updating {
		c.pending = append(c.pending, e)
	} else {
		c.entries = append(c.entries, e)
	}
	return e.id
}

// Remove cancels a task. It returns false if the task already finished or never existed.
func (c *Cron[T]) Remove(id ID) bool {
	if e := c.find(id); e != nil {
		e.removed = true
		if !c.updating {
			c.compact()
		}
		return true
	}
	return false
}

// Contains reports whether a task is still scheduled
func (c *Cron[T]) Contains(id ID) bool {
	return c.find(id) != nil
}

// Len returns the number of scheduled tasks
func (c *Cron[T]) Len() int {
	n := 0
	for _, e := range c.entries {
		if !e.removed {
			n++
		}
	}
	for _, e := range c.pending {
		if !e.removed {
			n++
		}
	}
	return n
}

// Elapsed returns the total time pumped through Update
func (c *Cron[T]) Elapsed() time.Duration {
	return c.elapsed
}

// Clear removes every task
func (c *Cron[T]) Clear() {
	for _, e := range c.entries {
		e.removed = true
	}
	for _, e := range c.pending {
		e.removed = true
	}
	if !c.updating {
		c.compact()
	}
}

// Update advances every task by dt and runs the ones that are due, in the
// order they were scheduled
func (c *Cron[T]) Update(dt time.Duration, ctx T) {
	c.elapsed += dt
	c.updating = true

	for _, e := range c.entries {
		if e.removed {
			continue
		}
		e.running += dt
		if e.running < e.interval {
			continue
		}
		if e.once {
			e.removed = true
			e.task.Run(ctx)
			continue
		}
		e.running -= e.interval
		if e.task.Run(ctx) == Stop {
			e.removed = true
		}
	}

	c.updating = false
	c.entries = append(c.entries, c.pending...)
	c.pending = nil
	c.compact()
}

func (c *Cron[T]) find(id ID) *entry[T] {
	for _, list := range [][]*entry[T]{c.entries, c.pending} {
		for _, e := range list {
			if e.id == id && !e.removed {
				return e
			}
		}
	}
	return nil
}

func (c *Cron[T]) compact() {
	c.entries = slices.DeleteFunc(c.entries, func(e *entry[T]) bool { return e.removed })
	c.pending = slices.DeleteFunc(c.pending, func(e *entry[T]) bool { return e.removed })
}
