package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/samurai-duel/internal/application/game"
	"github.com/younwookim/samurai-duel/internal/application/match"
	"github.com/younwookim/samurai-duel/internal/application/replay"
	"github.com/younwookim/samurai-duel/internal/application/system"
	"github.com/younwookim/samurai-duel/internal/domain/clock"
	"github.com/younwookim/samurai-duel/internal/infrastructure/config"
	"github.com/younwookim/samurai-duel/internal/infrastructure/keyboard"
	"github.com/younwookim/samurai-duel/internal/infrastructure/render"
	"github.com/younwookim/samurai-duel/internal/infrastructure/settings"
)

const appName = "samurai-duel"

//go:embed configs/*.toml
var configFS embed.FS

// loadConfig reads configs from dir, or the embedded ones when dir is empty.
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// applyCamera overrides the camera mode and revalidates.
func applyCamera(cfg *config.GameConfig, mode string) error {
	if mode == "" {
		return nil
	}
	prev := cfg.Match.Camera.Mode
	cfg.Match.Camera.Mode = mode
	if err := cfg.Match.Validate(); err != nil {
		cfg.Match.Camera.Mode = prev
		return err
	}
	return nil
}

func main() {
	configDir := flag.String("config", "", "Load configs from a directory instead of the embedded ones")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording without a window and print the result")
	cameraFlag := flag.String("camera", "", "Camera mode: follow or none")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := applyCamera(cfg, *cameraFlag); err != nil {
		log.Fatalf("Invalid -camera: %v", err)
	}

	if *replayFlag != "" {
		result, err := runReplay(*replayFlag, cfg, log.Default())
		if err != nil {
			log.Fatalf("Failed to replay %s: %v", *replayFlag, err)
		}
		fmt.Println(result)
		return
	}

	if err := runWindow(cfg, *recordFlag, *cameraFlag != ""); err != nil {
		log.Fatal(err)
	}
}

func runWindow(cfg *config.GameConfig, recordFilename string, cameraPinned bool) error {
	store, err := settings.Open(appName, log.Default())
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	prefs := store.Load(settings.Settings{
		Camera:     cfg.Match.Camera.Mode,
		Fullscreen: cfg.Match.Display.Fullscreen,
	})
	if !cameraPinned {
		if err := applyCamera(cfg, prefs.Camera); err != nil {
			log.Printf("Warning: ignoring saved camera: %v", err)
		}
	}

	keymap, err := keyboard.NewKeymap(cfg.Match.Keys.Bindings())
	if err != nil {
		return fmt.Errorf("failed to bind keys: %w", err)
	}
	mc, err := system.LoadMatch(cfg, render.NewProvider())
	if err != nil {
		return fmt.Errorf("failed to load match: %w", err)
	}
	mc.ShowAreas = prefs.ShowAreas

	w, h := cfg.Match.Arena.Width, cfg.Match.Arena.Height
	surface := render.NewSurface(w, h)
	hud, err := render.NewHUD(cfg.Match.Title, startHint(cfg.Match.Keys), w, h)
	if err != nil {
		return fmt.Errorf("failed to load HUD font: %w", err)
	}

	frameClock := clock.NewFrame(clock.System{})
	session, err := game.NewSession(game.SessionDeps{
		Clock:   frameClock,
		Surface: surface,
		Elements: match.Elements{
			Indicators:   &hud.Indicators,
			StartScreen:  &hud.StartScreen,
			Timer:        &hud.Timer,
			Result:       &hud.Result,
			PlayerHealth: &hud.PlayerHealth,
			EnemyHealth:  &hud.EnemyHealth,
		},
		Logger: log.Default(),
		OnDebugToggle: func(show bool) {
			prefs.ShowAreas = show
			if err := store.Save(prefs); err == nil && store != nil {
				log.Printf("settings saved: show areas %v", show)
			}
		},
	}, mc)
	if err != nil {
		return err
	}
	defer session.Close()

	opts := game.Options{
		Clock:   frameClock,
		Session: session,
		Input:   keymap,
		Canvas:  surface,
		HUD:     hud,
		ScreenW: w,
		ScreenH: h,
	}
	var recorder *replay.Recorder
	if recordFilename != "" {
		recorder = replay.NewRecorder(frameClock)
		opts.Recorder = recorder
		log.Printf("Recording enabled: %s", recordFilename)
	}
	g, err := game.New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(w*cfg.Match.Display.Scale, h*cfg.Match.Display.Scale)
	ebiten.SetWindowTitle(cfg.Match.Title)
	ebiten.SetTPS(cfg.Match.Display.TPS)
	ebiten.SetFullscreen(prefs.Fullscreen)

	runErr := ebiten.RunGame(g)
	if recorder != nil {
		saveRecording(recorder, recordFilename)
	}
	return runErr
}

// saveRecording saves the current recording to file
func saveRecording(r *replay.Recorder, filename string) {
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := r.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", filename, r.FrameCount())
}

func startHint(keys config.KeysConfig) string {
	if len(keys.Start) == 0 {
		return ""
	}
	return fmt.Sprintf("Press %s to start", keys.Start[0])
}
