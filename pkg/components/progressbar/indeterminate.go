package progressbar

import (
	"log/slog"
	"sync"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/logging"
	"github.com/go-drift/spark/pkg/theme"
)

// IndeterminateConfig configures an [IndeterminateViewModel].
type IndeterminateConfig struct {
	Theme  *theme.Theme
	Intent theme.Intent
	Shape  components.Shape

	// IsAnimating starts the bar in PhaseEaseIn with full opacity.
	IsAnimating bool

	// Geometry defaults to DefaultGeometry.
	Geometry GeometryUseCase

	// Logger defaults to logging.Default().
	Logger *slog.Logger
}

// IndeterminateViewModel steps the indeterminate animation loop. It owns
// no timer: the host listens to Status, runs a periodic task between Start
// and Stop, and calls AnimationStepIsDone on every tick (see [Animator]).
type IndeterminateViewModel struct {
	mu          sync.Mutex
	th          *theme.Theme
	intent      theme.Intent
	shape       components.Shape
	isAnimating bool
	phase       AnimationPhase
	trackWidth  float64
	geometry    GeometryUseCase
	logger      *slog.Logger

	colors       *core.Observable[Colors]
	cornerRadius *core.Observable[float64]
	animPhase    *core.Observable[AnimationPhase]
	animGeometry *core.Observable[AnimatedGeometry]
	opacity      *core.Observable[float64]
	status       *core.Signal[AnimationStatus]
}

// NewIndeterminateViewModel creates a view model from cfg. A nil theme
// uses the default light theme.
func NewIndeterminateViewModel(cfg IndeterminateConfig) *IndeterminateViewModel {
	if cfg.Theme == nil {
		cfg.Theme = theme.DefaultLight()
	}
	if cfg.Geometry == nil {
		cfg.Geometry = DefaultGeometry
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}

	phase, opacity := PhaseNone, 0.0
	if cfg.IsAnimating {
		phase, opacity = PhaseEaseIn, 1
	}
	return &IndeterminateViewModel{
		th:           cfg.Theme,
		intent:       cfg.Intent,
		shape:        cfg.Shape,
		isAnimating:  cfg.IsAnimating,
		phase:        phase,
		geometry:     cfg.Geometry,
		logger:       cfg.Logger.With("component", "progressbar.indeterminate"),
		colors:       core.NewObservable(GetColors(cfg.Intent, cfg.Theme)),
		cornerRadius: core.NewObservable(components.CornerRadius(cfg.Shape, cfg.Theme)),
		animPhase:    core.NewObservable(phase),
		animGeometry: core.NewObservable(AnimatedGeometry{}),
		opacity:      core.NewObservable(opacity),
		status:       core.NewSignal[AnimationStatus](),
	}
}

// Colors publishes the track and indicator colors.
func (vm *IndeterminateViewModel) Colors() *core.Observable[Colors] { return vm.colors }

// CornerRadius publishes the radius of the track and indicator.
func (vm *IndeterminateViewModel) CornerRadius() *core.Observable[float64] { return vm.cornerRadius }

// Phase publishes the current animation phase.
func (vm *IndeterminateViewModel) Phase() *core.Observable[AnimationPhase] { return vm.animPhase }

// Geometry publishes the indicator geometry for the current phase.
func (vm *IndeterminateViewModel) Geometry() *core.Observable[AnimatedGeometry] {
	return vm.animGeometry
}

// Opacity publishes the indicator opacity: 1 while animating, 0 otherwise.
func (vm *IndeterminateViewModel) Opacity() *core.Observable[float64] { return vm.opacity }

// Status emits Start and Stop requests for the host's periodic task.
func (vm *IndeterminateViewModel) Status() *core.Signal[AnimationStatus] { return vm.status }

// IsAnimating reports the animation flag.
func (vm *IndeterminateViewModel) IsAnimating() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.isAnimating
}

// SetIsAnimating starts or stops the loop. Writing the current value does
// nothing.
func (vm *IndeterminateViewModel) SetIsAnimating(animating bool) {
	vm.mu.Lock()
	if vm.isAnimating == animating {
		vm.mu.Unlock()
		return
	}
	vm.isAnimating = animating
	if animating {
		vm.phase = PhaseEaseIn
	} else {
		vm.phase = PhaseNone
	}
	width := vm.trackWidth
	vm.mu.Unlock()

	if animating {
		vm.logger.Debug("animation start", "trackWidth", width)
		vm.status.Emit(AnimationStart)
		vm.animPhase.Set(PhaseEaseIn)
		vm.animGeometry.Set(vm.geometry.Geometry(PhaseEaseIn, width))
		vm.opacity.Set(1)
		return
	}
	vm.logger.Debug("animation stop")
	vm.status.Emit(AnimationStop)
	vm.animPhase.Set(PhaseNone)
	vm.opacity.Set(0)
}

// AnimationStepIsDone is called by the host on every tick. While animating
// it advances the phase and publishes the new geometry; once the flag is
// off it emits Stop instead so a missed stop still disarms the host task.
func (vm *IndeterminateViewModel) AnimationStepIsDone() {
	vm.mu.Lock()
	if !vm.isAnimating {
		vm.mu.Unlock()
		vm.logger.Debug("tick after stop")
		vm.status.Emit(AnimationStop)
		return
	}
	vm.phase = vm.phase.Next()
	phase, width := vm.phase, vm.trackWidth
	vm.mu.Unlock()

	vm.animPhase.Set(phase)
	vm.animGeometry.Set(vm.geometry.Geometry(phase, width))
}

// UpdateAnimatedData records the track width and publishes the geometry of
// the current phase for it. Views call it when their layout changes.
func (vm *IndeterminateViewModel) UpdateAnimatedData(trackWidth float64) {
	vm.mu.Lock()
	vm.trackWidth = trackWidth
	phase := vm.phase
	vm.mu.Unlock()

	vm.animGeometry.Set(vm.geometry.Geometry(phase, trackWidth))
}

// SetTheme republishes every themed value.
func (vm *IndeterminateViewModel) SetTheme(th *theme.Theme) {
	vm.mu.Lock()
	vm.th = th
	intent, shape := vm.intent, vm.shape
	vm.mu.Unlock()

	vm.colors.Set(GetColors(intent, th))
	vm.cornerRadius.Set(components.CornerRadius(shape, th))
}

// SetIntent republishes the colors for intent.
func (vm *IndeterminateViewModel) SetIntent(intent theme.Intent) {
	vm.mu.Lock()
	vm.intent = intent
	th := vm.th
	vm.mu.Unlock()

	vm.colors.Set(GetColors(intent, th))
}

// SetShape republishes the corner radius for shape.
func (vm *IndeterminateViewModel) SetShape(shape components.Shape) {
	vm.mu.Lock()
	vm.shape = shape
	th := vm.th
	vm.mu.Unlock()

	vm.cornerRadius.Set(components.CornerRadius(shape, th))
}
