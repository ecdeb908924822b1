// Package loader orchestrates the extension loading phase of the platform.
//
// Extensions register their contributions once, at startup, and the
// registries are read-only afterwards. The Loader makes that lifecycle
// explicit: providers are registered first, Load runs them sequentially,
// prunes unimplemented declarations once, and freezes. Registering a
// provider or calling Load again after the phase completed is an error.
//
//	ld := loader.New(
//	    loader.WithLogger(loader.NewLogger(nil, slog.Default())),
//	    loader.WithMetrics(metrics),
//	)
//	_ = ld.Register(physicsProvider)
//	_ = ld.Register(audioProvider)
//	if err := ld.Load(ctx); err != nil {
//	    // a provider failed; the platform cannot start
//	}
//
// Load diagnostics go through Logger, which wraps log/slog and optionally
// publishes structured entries to NATS so platform tooling can stream the
// load progress; without a NATS connection it logs locally only.
//
// Cross-extension lookups (FindObjectMetadata, FindBehaviorMetadata) follow
// the same sentinel-on-miss policy as the per-extension registries.
package loader
