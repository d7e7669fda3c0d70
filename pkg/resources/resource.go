// Package resources holds the minimal named-resource model the accounting
// layer consumes. Richer resource metadata (roles, reservations, disk
// volumes) lives with the callers that need it.
package resources

import (
	"fmt"

	"github.com/zagrev/mesos/pkg/values"
)

// Resource is a named amount of a single resource on an agent, e.g.
// {Name: "cpus", Kind: SCALAR, Scalar: 4}.
type Resource struct {
	Name   string
	Kind   values.Type
	Scalar values.Scalar
}

// NewScalar returns a scalar-kind resource with the given name and amount.
func NewScalar(name string, value float64) Resource {
	return Resource{Name: name, Kind: values.SCALAR, Scalar: values.NewScalar(value)}
}

func (r Resource) String() string {
	return fmt.Sprintf("%s:%s", r.Name, r.Scalar)
}
