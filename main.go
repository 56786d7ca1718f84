package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/scenes"
	"github.com/automoto/batbounce/shared/leveldata"
	"github.com/automoto/batbounce/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(level *leveldata.LevelData, tuning *config.TuningWatcher) *Game {
	g := &Game{}
	g.scene = scenes.NewSandboxScene(g, level, tuning)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// loadLevel reads a TMX file from disk, or returns the built-in room when
// path is empty.
func loadLevel(path string) (*leveldata.LevelData, error) {
	if path == "" {
		return leveldata.DefaultRoom(), nil
	}
	return leveldata.LoadLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func main() {
	levelPath := flag.String("level", "", "TMX level to load (default: built-in test room)")
	tuningPath := flag.String("tuning", "", "YAML tuning overrides")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	debug := flag.Bool("debug", false, "outline collision objects")
	flag.Parse()

	// Initialize persistence and fall back to the last session's choices
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	if saved == nil {
		saved = &systems.SavedSettings{}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			saved.LastLevel = *levelPath
		case "tuning":
			saved.TuningPath = *tuningPath
		case "watch":
			saved.WatchTune = *watch
		case "debug":
			saved.Debug = *debug
		}
	})
	config.Debug.Enabled = saved.Debug
	if err := config.RebindKeys(saved.Keys); err != nil {
		log.Printf("Warning: Could not apply saved key bindings: %v", err)
	}

	if saved.TuningPath != "" {
		if err := config.LoadTuning(saved.TuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	level, err := loadLevel(saved.LastLevel)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var tuning *config.TuningWatcher
	if saved.WatchTune && saved.TuningPath != "" {
		tuning, err = config.WatchTuning(saved.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer tuning.Close()
		}
	}

	if err := systems.SaveSettings(saved); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("batbounce")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(level, tuning)); err != nil {
		log.Fatal(err)
	}
}
