package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/joho/godotenv"

	"github.com/Cytens-Night/Musical-Keyboard/internal/config"
	"github.com/Cytens-Night/Musical-Keyboard/internal/keyboard"
	"github.com/Cytens-Night/Musical-Keyboard/internal/music"
	"github.com/Cytens-Night/Musical-Keyboard/internal/synth"
	"github.com/Cytens-Night/Musical-Keyboard/internal/visual"
)

func initWindow() (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// Input-only window; rendering is someone else's job.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(visual.CanvasWidth, visual.CanvasHeight, "Musical Keyboard", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return window, nil
}

func main() {
	runtime.LockOSThread()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	cfg := config.Load()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	// Seed from config or clock.
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	engine := synth.NewEngine()
	if err := engine.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (will retry on first key): %v\n", err)
	}

	kb := keyboard.New(engine, music.NewRand(seed))
	kb.ApplySettings(keyboard.Settings{
		Volume: cfg.Volume,
		Scale:  cfg.Scale,
		Reverb: cfg.Reverb,
		Delay:  cfg.Delay,
	})

	// Visual layer: consumes note/chord events, produces particle data a
	// renderer can pick up.
	vis := visual.NewSystem(0)
	vrng := music.NewRand(seed ^ 0xB15)
	kb.Bus().Subscribe(keyboard.EventNotePlayed, func(e keyboard.Event) {
		vis.SpawnKey(visual.KeyEvent{
			Char:     e.Char,
			Class:    e.Class,
			Pitch:    e.Note.Pitch,
			Velocity: e.Velocity,
		}, vrng)
	})
	kb.Bus().Subscribe(keyboard.EventChordPlayed, func(e keyboard.Event) {
		vis.SpawnChord(e.Note.Pitch)
	})

	window.SetCharCallback(func(_ *glfw.Window, ch rune) {
		kb.HandleKey(ch)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyUp:
			kb.OctaveUp()
		case glfw.KeyDown:
			kb.OctaveDown()
		}
	})

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		now := glfw.GetTime()
		vis.Update(now - last)
		last = now
		time.Sleep(10 * time.Millisecond)
	}
}
