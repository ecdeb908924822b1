package loader

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Okanegahoshi/GDevelop/errors"
	"github.com/Okanegahoshi/GDevelop/extension"
	"github.com/Okanegahoshi/GDevelop/metric"
)

// Provider populates one extension registry with declarations. Concrete
// extensions implement Provider and are handed to a Loader; Describe is
// called exactly once, during Load.
type Provider interface {
	// Name returns the extension name the provider will declare. It is used
	// for diagnostics before Describe runs; the authoritative name is the one
	// set through SetExtensionInformation.
	Name() string

	// Describe declares the extension's contributions into ext
	Describe(ext *extension.Extension) error
}

// Option configures a Loader
type Option func(*Loader)

// WithLogger attaches a load-phase logger
func WithLogger(log *Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// WithMetrics attaches a metrics registry. It is also propagated to every
// extension the loader creates.
func WithMetrics(metrics *metric.MetricsRegistry) Option {
	return func(l *Loader) {
		l.metrics = metrics
	}
}

// WithExtensionOptions sets options applied to every extension the loader
// creates (e.g. extension.WithDuplicatePolicy)
func WithExtensionOptions(opts ...extension.Option) Option {
	return func(l *Loader) {
		l.extOpts = opts
	}
}

// Loader orchestrates the sequential extension loading phase. Providers are
// added first; Load then runs them one after another, runs the strip pass
// once per extension, and freezes the loader. After Load returns the
// registered extensions are treated as read-only.
type Loader struct {
	mu         sync.Mutex
	providers  []Provider
	extensions map[string]*extension.Extension
	loadOrder  []string
	loaded     bool

	log     *Logger
	metrics *metric.MetricsRegistry
	extOpts []extension.Option
}

// New creates an empty loader
func New(opts ...Option) *Loader {
	l := &Loader{
		extensions: make(map[string]*extension.Extension),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Register adds a provider to run during Load. Returns an error if the load
// phase already completed.
func (l *Loader) Register(provider Provider) error {
	if provider == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Loader", "Register", "provider validation")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return errors.WrapFatal(errors.ErrAlreadyLoaded, "Loader", "Register", "load phase check")
	}

	l.providers = append(l.providers, provider)
	return nil
}

// Load runs every registered provider sequentially, strips unimplemented
// instructions and expressions from each resulting extension, and marks the
// loader as loaded. A second call fails with ErrAlreadyLoaded.
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return errors.WrapFatal(errors.ErrAlreadyLoaded, "Loader", "Load", "load phase check")
	}

	for _, provider := range l.providers {
		if err := ctx.Err(); err != nil {
			return errors.WrapTransient(err, "Loader", "Load", "context check")
		}

		if err := l.loadOne(ctx, provider); err != nil {
			return err
		}
	}

	// All declarations are in; prune documentation stubs once
	for _, name := range l.loadOrder {
		l.extensions[name].StripUnimplementedInstructionsAndExpressions()
	}

	if l.metrics != nil {
		l.metrics.Metrics.ExtensionsLoaded.Set(float64(len(l.extensions)))
	}

	l.loaded = true
	return nil
}

// loadOne runs a single provider and registers the resulting extension.
// Callers must hold l.mu.
func (l *Loader) loadOne(ctx context.Context, provider Provider) error {
	opts := slices.Clone(l.extOpts)
	if l.metrics != nil {
		opts = append(opts, extension.WithMetrics(l.metrics))
	}

	ext := extension.New(opts...)
	if err := provider.Describe(ext); err != nil {
		wrapped := errors.WrapInvalid(err, "Loader", "Load",
			fmt.Sprintf("extension %q registration", provider.Name()))
		if l.log != nil {
			l.log.Error(ctx, provider.Name(), "Extension registration failed", err)
		}
		return wrapped
	}

	name := ext.GetName()
	if name == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: provider %q declared no extension information",
				errors.ErrInvalidName, provider.Name()),
			"Loader", "Load", "extension identity validation")
	}

	if _, exists := l.extensions[name]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("extension %q is already loaded", name),
			"Loader", "Load", "duplicate extension check")
	}

	l.extensions[name] = ext
	l.loadOrder = append(l.loadOrder, name)

	if l.log != nil {
		l.log.Info(ctx, name, "Extension registered")
		for _, declErr := range ext.LoadErrors() {
			l.log.Warn(ctx, name, fmt.Sprintf("Declaration problem: %v", declErr))
		}
	}

	return nil
}

// IsLoaded reports whether the load phase has completed
func (l *Loader) IsLoaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Extension returns a loaded extension by name
func (l *Loader) Extension(name string) (*extension.Extension, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ext, ok := l.extensions[name]
	return ext, ok
}

// Extensions returns all loaded extensions in load order
func (l *Loader) Extensions() []*extension.Extension {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]*extension.Extension, 0, len(l.loadOrder))
	for _, name := range l.loadOrder {
		result = append(result, l.extensions[name])
	}
	return result
}

// FindObjectMetadata searches every loaded extension for an object type.
// Returns the shared sentinel record if no extension declares it.
func (l *Loader) FindObjectMetadata(objectType string) *extension.ObjectMetadata {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, name := range l.loadOrder {
		if m := l.extensions[name].GetObjectMetadata(objectType); m != extension.BadObjectMetadata() {
			return m
		}
	}
	return extension.BadObjectMetadata()
}

// FindBehaviorMetadata searches every loaded extension for a behavior type.
// Returns the shared sentinel record if no extension declares it.
func (l *Loader) FindBehaviorMetadata(behaviorType string) *extension.BehaviorMetadata {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, name := range l.loadOrder {
		if m := l.extensions[name].GetBehaviorMetadata(behaviorType); m != extension.BadBehaviorMetadata() {
			return m
		}
	}
	return extension.BadBehaviorMetadata()
}
