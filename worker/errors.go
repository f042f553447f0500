// SPDX-License-Identifier: MIT

package worker

import "github.com/pkg/errors"

var (
	// ErrUnknownMode is returned for a Mode value or name that names no pipeline.
	ErrUnknownMode = errors.New("worker: unknown mode")

	// ErrInvalidRequest is returned when a Request lacks its mode's inputs.
	ErrInvalidRequest = errors.New("worker: invalid request")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("worker: invalid config")

	// ErrQueueFull is returned by Submit when the job queue is at capacity.
	ErrQueueFull = errors.New("worker: queue full")

	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("worker: closed")
)
