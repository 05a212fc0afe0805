package ports

import (
	"context"

	"github.com/conspect/conspect/internal/core/domain"
)

// Probe detects concrete values for the recognized settings axes on the
// running host. Values are advisory defaults for fingerprinting; the probe
// never rejects a value, that is the external package manager's job.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type Probe interface {
	// Detect returns a value for every recognized axis.
	Detect(ctx context.Context) (domain.AxisValues, error)
}
