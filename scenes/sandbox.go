package scenes

import (
	"log"
	"sync"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/shared/leveldata"
	"github.com/automoto/batbounce/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SandboxScene runs one World from keyboard and gamepad input.
type SandboxScene struct {
	sceneChanger SceneChanger
	level        *leveldata.LevelData
	tuning       *cfg.TuningWatcher

	world *World
	input components.InputData
	once  sync.Once
}

// NewSandboxScene creates a scene for level. tuning may be nil.
func NewSandboxScene(sc SceneChanger, level *leveldata.LevelData, tuning *cfg.TuningWatcher) *SandboxScene {
	return &SandboxScene{sceneChanger: sc, level: level, tuning: tuning}
}

func (s *SandboxScene) configure() {
	s.world = NewWorld(s.level)
}

func (s *SandboxScene) restart() interface{} {
	return NewSandboxScene(s.sceneChanger, s.level, s.tuning)
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.reloadTuning()

	systems.PollInput(&s.input)
	if systems.GetAction(&s.input, cfg.ActionRestart).JustPressed {
		s.sceneChanger.ChangeScene(s.restart())
		return
	}

	s.world.Step(systems.IntentFromInput(&s.input))

	if s.world.Defeated() {
		s.sceneChanger.ChangeScene(NewGameOverScene(s.sceneChanger, s.restart))
	}
}

// reloadTuning applies pending tuning file changes between ticks.
func (s *SandboxScene) reloadTuning() {
	if s.tuning == nil {
		return
	}
	for {
		select {
		case path := <-s.tuning.Events:
			if err := cfg.LoadTuning(path); err != nil {
				log.Printf("Warning: Could not reload tuning: %v", err)
			} else {
				log.Printf("Reloaded tuning from %s", path)
			}
		case err := <-s.tuning.Errors:
			log.Printf("Warning: Tuning watcher: %v", err)
		default:
			return
		}
	}
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	if s.world == nil {
		return
	}
	s.world.Draw(screen)
}
