package loader

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Okanegahoshi/GDevelop/errors"
	"github.com/Okanegahoshi/GDevelop/extension"
	"github.com/Okanegahoshi/GDevelop/metric"
)

// fakeProvider is a test double standing in for a concrete extension
type fakeProvider struct {
	name     string
	describe func(ext *extension.Extension) error
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Describe(ext *extension.Extension) error {
	if p.describe != nil {
		return p.describe(ext)
	}
	ext.SetExtensionInformation(p.name, p.name, "Test extension", "Tester", "MIT")
	return nil
}

type LoaderSuite struct {
	suite.Suite
	loader *Loader
	ctx    context.Context
}

func (s *LoaderSuite) SetupTest() {
	s.loader = New()
	s.ctx = context.Background()
}

func (s *LoaderSuite) TestLoadRegistersExtensionsInOrder() {
	require.NoError(s.T(), s.loader.Register(&fakeProvider{name: "Physics"}))
	require.NoError(s.T(), s.loader.Register(&fakeProvider{name: "Audio"}))

	require.NoError(s.T(), s.loader.Load(s.ctx))
	assert.True(s.T(), s.loader.IsLoaded())

	physics, ok := s.loader.Extension("Physics")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "Physics::", physics.GetNameSpace())

	all := s.loader.Extensions()
	require.Len(s.T(), all, 2)
	assert.Equal(s.T(), "Physics", all[0].GetName())
	assert.Equal(s.T(), "Audio", all[1].GetName())
}

func (s *LoaderSuite) TestRegisterNilProvider() {
	err := s.loader.Register(nil)
	require.Error(s.T(), err)
	assert.True(s.T(), errors.IsInvalid(err))
}

func (s *LoaderSuite) TestRegisterAfterLoadFails() {
	require.NoError(s.T(), s.loader.Register(&fakeProvider{name: "Physics"}))
	require.NoError(s.T(), s.loader.Load(s.ctx))

	err := s.loader.Register(&fakeProvider{name: "Audio"})
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, errors.ErrAlreadyLoaded)
}

func (s *LoaderSuite) TestLoadTwiceFails() {
	require.NoError(s.T(), s.loader.Load(s.ctx))

	err := s.loader.Load(s.ctx)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, errors.ErrAlreadyLoaded)
	assert.True(s.T(), errors.IsFatal(err))
}

func (s *LoaderSuite) TestProviderFailureAbortsLoad() {
	boom := fmt.Errorf("declaration exploded")
	require.NoError(s.T(), s.loader.Register(&fakeProvider{
		name:     "Broken",
		describe: func(*extension.Extension) error { return boom },
	}))

	err := s.loader.Load(s.ctx)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, boom)
	assert.True(s.T(), errors.IsInvalid(err))
	assert.False(s.T(), s.loader.IsLoaded())
}

func (s *LoaderSuite) TestProviderWithoutIdentityFails() {
	require.NoError(s.T(), s.loader.Register(&fakeProvider{
		name:     "Anonymous",
		describe: func(*extension.Extension) error { return nil },
	}))

	err := s.loader.Load(s.ctx)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, errors.ErrInvalidName)
}

func (s *LoaderSuite) TestDuplicateExtensionNameFails() {
	require.NoError(s.T(), s.loader.Register(&fakeProvider{name: "Physics"}))
	require.NoError(s.T(), s.loader.Register(&fakeProvider{name: "Physics"}))

	err := s.loader.Load(s.ctx)
	require.Error(s.T(), err)
	assert.True(s.T(), errors.IsInvalid(err))
}

func (s *LoaderSuite) TestLoadStripsUnimplementedDeclarations() {
	require.NoError(s.T(), s.loader.Register(&fakeProvider{
		name: "Physics",
		describe: func(ext *extension.Extension) error {
			ext.SetExtensionInformation("Physics", "Physics", "d", "a", "l")
			ext.AddAction("ApplyForce", "Apply force", "d", "s", "g", "i", "si").
				SetFunctionName("applyForce")
			ext.AddAction("Documented", "Documented only", "d", "s", "g", "i", "si")
			return nil
		},
	}))

	require.NoError(s.T(), s.loader.Load(s.ctx))

	physics, ok := s.loader.Extension("Physics")
	require.True(s.T(), ok)

	actions := physics.GetAllActions()
	assert.Len(s.T(), actions, 1)
	assert.Contains(s.T(), actions, "Physics::ApplyForce")
}

func (s *LoaderSuite) TestCanceledContextIsTransient() {
	require.NoError(s.T(), s.loader.Register(&fakeProvider{name: "Physics"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.loader.Load(ctx)
	require.Error(s.T(), err)
	assert.True(s.T(), errors.IsTransient(err))
	assert.False(s.T(), s.loader.IsLoaded())
}

func (s *LoaderSuite) TestExtensionLookupBeforeLoad() {
	_, ok := s.loader.Extension("Physics")
	assert.False(s.T(), ok)
	assert.Empty(s.T(), s.loader.Extensions())
	assert.False(s.T(), s.loader.IsLoaded())
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

func TestLoader_FindMetadataAcrossExtensions(t *testing.T) {
	loader := New()

	require.NoError(t, loader.Register(&fakeProvider{
		name: "Physics",
		describe: func(ext *extension.Extension) error {
			ext.SetExtensionInformation("Physics", "Physics", "d", "a", "l")
			ext.AddObject("Body", "Physics body", "d", "icon", nil)
			return nil
		},
	}))
	require.NoError(t, loader.Register(&fakeProvider{
		name: "Sprites",
		describe: func(ext *extension.Extension) error {
			ext.SetExtensionInformation("Sprites", "Sprites", "d", "a", "l")
			ext.AddObject("Sprite", "Animated sprite", "d", "icon", nil)
			return nil
		},
	}))
	require.NoError(t, loader.Load(context.Background()))

	body := loader.FindObjectMetadata("Physics::Body")
	assert.NotSame(t, extension.BadObjectMetadata(), body)
	assert.Equal(t, "Physics::Body", body.Type())

	sprite := loader.FindObjectMetadata("Sprites::Sprite")
	assert.Equal(t, "Sprites::Sprite", sprite.Type())

	assert.Same(t, extension.BadObjectMetadata(), loader.FindObjectMetadata("Nowhere::Thing"))
	assert.Same(t, extension.BadBehaviorMetadata(), loader.FindBehaviorMetadata("Nowhere::Thing"))
}

func TestLoader_WithMetrics(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	loader := New(WithMetrics(registry))

	require.NoError(t, loader.Register(&fakeProvider{name: "Physics"}))
	require.NoError(t, loader.Register(&fakeProvider{name: "Audio"}))
	require.NoError(t, loader.Load(context.Background()))

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	var loaded float64
	for _, family := range families {
		if family.GetName() == "platform_loader_extensions_loaded" {
			loaded = family.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, float64(2), loaded)
}

func TestLoader_WithExtensionOptions(t *testing.T) {
	loader := New(WithExtensionOptions(
		extension.WithDuplicatePolicy(extension.RejectDuplicates),
	))

	require.NoError(t, loader.Register(&fakeProvider{
		name: "Physics",
		describe: func(ext *extension.Extension) error {
			ext.SetExtensionInformation("Physics", "Physics", "d", "a", "l")
			ext.AddAction("Jump", "Jump", "d", "s", "g", "i", "si").SetFunctionName("jump")
			ext.AddAction("Jump", "Jump again", "d", "s", "g", "i", "si").SetFunctionName("jump2")
			return nil
		},
	}))
	require.NoError(t, loader.Load(context.Background()))

	physics, ok := loader.Extension("Physics")
	require.True(t, ok)

	// The second declaration is rejected, the first survives
	assert.Equal(t, "Jump", physics.GetActionMetadata("Physics::Jump").DisplayName())

	loadErrs := physics.LoadErrors()
	require.NotEmpty(t, loadErrs)
	assert.ErrorIs(t, loadErrs[0], errors.ErrDuplicateDeclaration)
}
