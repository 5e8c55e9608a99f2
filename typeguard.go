package typeguard

import (
	"log/slog"
	"sync"

	"github.com/aretw0/typeguard/internal/logging"
	"github.com/aretw0/typeguard/pkg/match"
	"github.com/aretw0/typeguard/pkg/registry"
	"github.com/aretw0/typeguard/pkg/schema"
	"github.com/aretw0/typeguard/pkg/types"
)

// Version is the library version, reported by the CLI and the HTTP server.
const Version = "0.1.0"

// Engine is the high-level entry point for the typeguard library. It bundles
// one type registry, the single-value matcher resolving names through it,
// and the structural checker, behind a simplified API for consumers.
//
// Engines do not share registries: mutations through one engine are never
// visible to another unless the caller injects the same registry on purpose.
type Engine struct {
	registry *registry.Registry
	matcher  *match.Matcher
	checker  *schema.Checker
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	registry *registry.Registry
}

// WithLogger sets the logger used for non-fatal diagnostics (import
// warnings). Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithRegistry injects a caller-owned registry. The engine then performs no
// seeding of its own; the caller decides which validators exist.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *config) { c.registry = reg }
}

// New creates an engine. Unless a registry is injected, a fresh one is
// seeded with the built-in type set and the extended predicates.
func New(opts ...Option) (*Engine, error) {
	cfg := config{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := cfg.registry
	if reg == nil {
		reg = registry.New(cfg.logger)
		if err := types.RegisterBuiltins(reg); err != nil {
			return nil, err
		}
		if err := types.RegisterExtended(reg); err != nil {
			return nil, err
		}
	}

	matcher := match.New(reg)
	return &Engine{
		registry: reg,
		matcher:  matcher,
		checker:  schema.NewChecker(matcher),
		logger:   cfg.logger,
	}, nil
}

// Registry exposes the engine's registry for advanced composition.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Is reports whether value satisfies at least one of the given type names
// or "|"-delimited type expressions. A mismatch is a false return, never an
// error; the error return fires only when an expression names an
// unregistered type.
func (e *Engine) Is(value any, typeExprs ...string) (bool, error) {
	return e.matcher.Matches(value, typeExprs...)
}

// IsType validates value against the given type expressions and returns the
// accepted (possibly narrowed) value from the first validator that accepts
// it. When every candidate rejects, the returned error is a
// *match.MismatchError carrying each candidate's reason.
func (e *Engine) IsType(value any, typeExprs ...string) (any, error) {
	return e.matcher.Validate(value, typeExprs...)
}

// CheckStructure validates value against a structural schema, collecting
// every violation with its path. It never fails for data problems; see
// schema.Checker.Check.
func (e *Engine) CheckStructure(sc any, value any, opts ...schema.CheckOption) schema.Result {
	return e.checker.Check(sc, value, opts...)
}

// RegisterType adds a custom validator under name.
func (e *Engine) RegisterType(name string, v registry.Validator, override bool) error {
	return e.registry.Register(name, v, override)
}

// RegisterTypeFunc adds a custom validator function under name.
func (e *Engine) RegisterTypeFunc(name string, fn registry.ValidatorFunc, override bool) error {
	return e.registry.Register(name, fn, override)
}

// UnregisterType removes the validator registered under name.
func (e *Engine) UnregisterType(name string) error {
	return e.registry.Unregister(name)
}

// ListTypes returns all registered type names.
func (e *Engine) ListTypes() []string {
	return e.registry.List()
}

// ExportTypes serializes the registered name set to a JSON array.
func (e *Engine) ExportTypes() (string, error) {
	return e.registry.Export()
}

// ImportTypes parses an exported name set, warning about names that have no
// local validator. Validators themselves never travel.
func (e *Engine) ImportTypes(payload string) error {
	return e.registry.Import(payload)
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the shared package-level engine, created on first use.
func Default() *Engine {
	defaultOnce.Do(func() {
		eng, err := New()
		if err != nil {
			// Seeding a fresh registry cannot collide; reaching this is a
			// bug in the built-in set itself.
			panic(err)
		}
		defaultEngine = eng
	})
	return defaultEngine
}

// Is tests value against type expressions using the default engine.
func Is(value any, typeExprs ...string) (bool, error) {
	return Default().Is(value, typeExprs...)
}

// IsType validates value using the default engine.
func IsType(value any, typeExprs ...string) (any, error) {
	return Default().IsType(value, typeExprs...)
}

// CheckStructure validates value against a schema using the default engine.
func CheckStructure(sc any, value any, opts ...schema.CheckOption) schema.Result {
	return Default().CheckStructure(sc, value, opts...)
}

// RegisterType adds a custom validator to the default engine.
func RegisterType(name string, v registry.Validator, override bool) error {
	return Default().RegisterType(name, v, override)
}

// UnregisterType removes a validator from the default engine.
func UnregisterType(name string) error {
	return Default().UnregisterType(name)
}

// ListTypes lists the default engine's registered names.
func ListTypes() []string {
	return Default().ListTypes()
}

// ExportTypes exports the default engine's name set.
func ExportTypes() (string, error) {
	return Default().ExportTypes()
}

// ImportTypes imports a name set into the default engine.
func ImportTypes(payload string) error {
	return Default().ImportTypes(payload)
}
