// SPDX-License-Identifier: MIT

// Package worker runs powergeom pipelines, either synchronously through
// Execute or on a dedicated background goroutine through Worker.
//
// A Request names a Mode and carries that mode's inputs:
//
//	ModePolyhedron        incidence table, then face lattice, for Points
//	ModeIntersection      common normals of several Polyhedra
//	ModeCone              fundamental rays of Inequalities
//	ModeDeterminant       Matrix minor with SkipRow/SkipCol removed
//	ModeInverse           Matrix inverse
//	ModeUnimodularAlpha   unimodular alpha of Matrix
//	ModeLastRowMinorGCD   last-row minors of Matrix and their gcd
//
// Worker semantics:
//
//	One goroutine drains a bounded queue and runs one job at a time. Submit
//	never blocks: a full queue returns ErrQueueFull. Each Job has its own
//	context; Job.Cancel aborts it at the next cone-solver checkpoint. A
//	job's Result is published only when the job has finished, never in
//	part.
//
// Observability:
//
//	Every pipeline runs inside an OpenTelemetry span named after its mode;
//	with Config.TraceSteps each cone step is added as a span event. A Worker
//	exports Prometheus metrics (jobs_total, job_duration_seconds,
//	queue_depth) to the Registerer given with WithRegisterer. Job
//	lifecycle is logged through klog at verbosity 1.
//
// Configuration:
//
//	cfg, err := worker.ParseConfig(yamlBytes) // queue_size, parallelism,
//	                                          // metrics_namespace, trace_steps
//	w, err := worker.New(cfg, worker.WithRegisterer(reg))
//	defer w.Close()
//	job, err := w.Submit(ctx, req)
//	res, err := job.Wait(ctx)
package worker
