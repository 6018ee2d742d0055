// Example demonstrates windowed scrolling of a 100,000-row list in a GLFW
// window: only the rows intersecting the viewport are materialized and
// drawn as colored quads.
//
// Prerequisites:
//
//	OpenGL 4.1 and GLFW development headers
//	go run ./example/
//
// Scroll with the mouse wheel; press Home/End to jump to the first/last
// row, C to center a random row.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/virtkit/virtkit"
	"github.com/virtkit/virtkit/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "virtkit example"

	rowCount = 100_000
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rowHeight gives every tenth row a taller header-like extent.
func rowHeight(i int) float32 {
	if i%10 == 0 {
		return 48
	}
	return 28
}

// rowColor shades rows by index; headers are brighter.
func rowColor(i int, scrolling bool) uint32 {
	shade := uint8(40 + (i%2)*12)
	if i%10 == 0 {
		shade = 90
	}
	alpha := uint8(255)
	if scrolling {
		// Dim while the wheel is moving so the is-scrolling hint is visible.
		alpha = 200
	}
	return opengl.RGBA(shade, shade, shade+30, alpha)
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("quad renderer: %w", err)
	}
	defer renderer.Delete()

	// Wire the window into the windowing core.
	surface := opengl.NewWindowSurface(window)
	v := virtkit.New(rowCount, virtkit.VariableHeight(rowHeight),
		virtkit.Overscan(4))
	v.Attach(surface)
	defer v.Close()

	// The surface clamps wheel scrolling against the content extent.
	surface.SetContentExtent(v.TotalHeight())

	window.SetKeyCallback(func(w *glfw.Window, k glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch k {
		case glfw.KeyHome:
			v.ScrollToIndex(0, virtkit.AlignStart)
		case glfw.KeyEnd:
			v.ScrollToIndex(rowCount-1, virtkit.AlignEnd)
		case glfw.KeyC:
			v.ScrollToIndex(rand.Intn(rowCount), virtkit.AlignCenter)
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	quads := make([]opengl.Quad, 0, 64)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(w, h)

		scrolling := v.IsScrolling()
		top := v.ScrollTop()

		quads = quads[:0]
		for _, item := range v.Items() {
			quads = append(quads, opengl.Quad{
				X:     8,
				Y:     item.Start - top,
				W:     float32(w) - 16,
				H:     item.Size - 2,
				Color: rowColor(item.Index, scrolling),
			})
		}

		if err := renderer.Render(quads); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
