// Package observability exports singleton lifecycle metrics through
// OpenTelemetry.
//
// Metrics implements singleton.Recorder on top of an otel meter,
// recording constructions, construction failures, construction
// duration, and releases per provider. InitMeter wires up an OTLP HTTP
// meter provider and registers its shutdown with the teardown
// registry so export stops cleanly at process exit.
//
// # Usage
//
//	mp, _ := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	metrics := observability.NewMetrics(mp.Meter("singlekit"))
//
//	pool := singleton.NewLazy(newPool, singleton.WithRecorder(metrics))
package observability
