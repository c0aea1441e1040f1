package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel"
	"github.com/oomph-ac/voxel/game"
	"github.com/oomph-ac/voxel/player"
	"github.com/oomph-ac/voxel/render"
	"github.com/oomph-ac/voxel/settings"
	"github.com/sirupsen/logrus"
)

const (
	tickRate    = time.Second / 20
	flightSpeed = 12
)

// The following program flies a viewer across the world without a window, placing and breaking blocks
// on the way, and logs the state of the world every second.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ./bin <settings_path> [seconds]")
		return
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if os.Getenv("DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	s, err := loadSettings(os.Args[1], logger)
	if err != nil {
		logger.Fatal(err)
	}
	duration := 30 * time.Second
	if len(os.Args) > 2 {
		if duration, err = time.ParseDuration(os.Args[2] + "s"); err != nil {
			logger.Fatalf("invalid duration: %v", err)
		}
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	level := slog.LevelInfo
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		level = slog.LevelDebug
	}
	w := logger.Writer()
	defer w.Close()

	input := &scriptedInput{}
	eng, err := voxel.New(s, voxel.Options{
		Content: render.NewMemoryContent(&render.Texture{Name: s.Atlas.Texture, Width: 16 * s.Atlas.Cells, Height: 16 * s.Atlas.Cells}),
		Input:   input,
		Logger:  slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	})
	if err != nil {
		logger.Fatalf("unable to start engine: %v", err)
	}

	eye := eng.Viewer()
	t := eye.Transform()
	t.Rotation = game.LookRotation(-90, 60)
	eye.SetTransform(t)

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()
	deadline := time.After(duration)
	report := time.NewTicker(time.Second)
	defer report.Stop()

	logger.Infof("flying for %v with a render distance of %d chunks", duration, s.Streamer.RenderDistance)
	for {
		select {
		case <-ticker.C:
			input.tick()
			eye.SetPosition(eye.Position().Add(mgl32.Vec3{flightSpeed * float32(tickRate.Seconds()), 0, 0}))
			eng.Tick(tickRate)
		case <-report.C:
			st := eng.World().Stats()
			logger.WithFields(logrus.Fields{
				"live":      st.Live,
				"queued":    st.Queued,
				"pending":   st.Generating,
				"cached":    st.Cached,
				"cache_kb":  st.CacheBytes / 1024,
				"created":   st.Created,
				"dropped":   st.Dropped,
				"avg_inst":  st.AverageInstantiation,
				"placed":    eng.Placer().Placed(),
				"broken":    eng.Placer().Broken(),
				"selection": eng.Placer().Selected().Name,
			}).Info("world stats")
		case <-deadline:
			if err := eng.Close(); err != nil {
				logger.Errorf("error closing engine: %v", err)
			}
			logger.Info("done")
			return
		}
	}
}

// loadSettings loads the settings file at path, creating it with the default settings first if it
// does not exist.
func loadSettings(path string, logger *logrus.Logger) (settings.Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
		logger.Infof("created default settings at %v", path)
	}
	return settings.Load(path)
}

// scriptedInput presses the right button every second and the left button every third second,
// scrolling to the next block type after each placement.
type scriptedInput struct {
	ticks  int
	scroll int
}

func (s *scriptedInput) tick() {
	s.ticks++
	if s.ticks%20 == 1 {
		s.scroll = 1
	}
}

// ButtonDown ...
func (s *scriptedInput) ButtonDown(b player.MouseButton) bool {
	switch b {
	case player.ButtonRight:
		return s.ticks%20 == 0
	case player.ButtonLeft:
		return s.ticks%60 == 30
	}
	return false
}

// ScrollDelta ...
func (s *scriptedInput) ScrollDelta() int {
	d := s.scroll
	s.scroll = 0
	return d
}

// Active ...
func (s *scriptedInput) Active() bool {
	return true
}
