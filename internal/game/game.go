package game

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ambient-scenes/internal/camera"
	"github.com/iburimskiy/ambient-scenes/internal/carousel"
	"github.com/iburimskiy/ambient-scenes/internal/config"
	"github.com/iburimskiy/ambient-scenes/internal/frameloop"
	"github.com/iburimskiy/ambient-scenes/internal/logs"
	"github.com/iburimskiy/ambient-scenes/internal/orbit"
	"github.com/iburimskiy/ambient-scenes/internal/particles"
	"github.com/iburimskiy/ambient-scenes/internal/render"
	"github.com/iburimskiy/ambient-scenes/internal/soundtrack"
	"github.com/iburimskiy/ambient-scenes/internal/starfield"
)

type Game struct {
	opts  config.Options
	loop  *frameloop.Loop
	clock *frameloop.Clock

	// dance scene
	danceCam  *camera.Perspective
	orbit     *orbit.Controls
	field     *particles.Field
	stars     *starfield.Stars
	danceView *render.Dance

	// carousel
	carouselCam  *camera.Perspective
	carousel     *carousel.Carousel
	carouselView *render.Carousel
	textures     *render.Textures
	panel        image.Rectangle

	music      *soundtrack.Player
	background color.NRGBA

	// input
	panelPressed bool

	lastErr error
}

func New(opts config.Options) (*Game, error) {
	g := &Game{
		opts:  opts,
		loop:  frameloop.New(),
		clock: frameloop.NewClock(),
		music: soundtrack.NewPlayer(),
		panel: panelRect(opts.Scene, opts.Width, opts.Height),
	}

	bg, err := render.ParseColorString(config.DanceBackground)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	g.background = bg

	if hasDance(opts.Scene) {
		if err := g.initDance(); err != nil {
			return nil, err
		}
	}
	if hasCarousel(opts.Scene) {
		if err := g.initCarousel(); err != nil {
			return nil, err
		}
	}

	if opts.Music != "" {
		if err := g.music.Play(opts.Music); err != nil {
			logs.ErrorLogger.Printf("music: %v", err)
			g.lastErr = err
		}
	}
	return g, nil
}

func (g *Game) initDance() error {
	seed := g.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	field, err := particles.NewField(particles.DefaultParams(seed))
	if err != nil {
		return err
	}
	g.field = field
	g.stars = starfield.New(starfield.DefaultParams())
	g.danceCam = camera.New(config.DanceFov, mgl64.Vec3{0, 0, config.DanceCameraZ})
	g.orbit = orbit.New(g.danceCam.Position, g.danceCam.Target)

	view, err := render.NewDance(g.danceCam, config.DanceBackground)
	if err != nil {
		return fmt.Errorf("dance background: %w", err)
	}
	g.danceView = view

	g.field.Mount(g.loop)
	g.stars.Mount(g.loop)
	g.orbit.Mount(g.loop, g.danceCam)
	logs.InfoLogger.Printf("particle field: %d points, seed %d", g.field.Buffer().Len(), seed)
	return nil
}

func (g *Game) initCarousel() error {
	g.carouselCam = camera.New(config.CarouselFov, mgl64.Vec3{0, 0, config.CarouselCameraZ})
	g.textures = render.NewTextures(nil)
	view, err := render.NewCarousel(g.carouselCam, g.textures)
	if err != nil {
		return fmt.Errorf("carousel shader: %w", err)
	}
	g.carouselView = view
	g.carousel = carousel.New(g.opts.Images)
	g.carousel.Mount(g.loop, view.Viewport(g.panel))
	logs.InfoLogger.Printf("carousel: %d images", g.carousel.Len())
	return nil
}

// Close releases the speaker and unmounts the scenes.
func (g *Game) Close() {
	g.music.Stop()
	g.loop.Dispose()
}

func (g *Game) Update() error {
	if err := g.handleKeys(); err != nil {
		return err
	}
	g.handlePointer()
	g.loop.Advance(g.clock.Tick())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.opts.Scene {
	case config.SceneDance:
		g.danceView.Draw(screen, g.field, g.stars)
	case config.SceneCarousel:
		screen.Fill(g.background)
		g.drawCarousel(screen)
	case config.ScenePage:
		g.danceView.Draw(screen, g.field, g.stars)
		g.drawPanel(screen)
		g.drawCarousel(screen)
	}

	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) drawCarousel(screen *ebiten.Image) {
	dst := screen.SubImage(g.panel).(*ebiten.Image)
	g.carouselView.Draw(dst, g.carousel)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	if g.carousel.Len() == 0 {
		return
	}
	x, y := float32(g.panel.Min.X), float32(g.panel.Min.Y)
	w, h := float32(g.panel.Dx()), float32(g.panel.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 15, G: 23, B: 42, A: 160}, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 100, G: 116, B: 139, A: 200}, false)
}

func (g *Game) status() string {
	status := ""
	switch g.opts.Scene {
	case config.SceneDance:
		status = "Drag to orbit | M: music, Space: pause, Esc/Q: quit"
	case config.SceneCarousel:
		status = "Click to advance | O: open images, Esc/Q: quit"
	case config.ScenePage:
		status = "Drag to orbit, click the panel to advance | O: images, M: music, Esc/Q: quit"
	}
	if hasCarousel(g.opts.Scene) && g.carousel.Len() == 0 {
		status += " | no images"
	}
	if s := g.music.Status(); s != "" {
		status += " | " + s
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}
