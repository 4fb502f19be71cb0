package inventorymock

import (
	"context"

	domain "dealership-ops-api/internal/domain/inventory"
)

// Ensure compile-time compliance
var _ domain.Creator = (*Creator)(nil)

// Creator is a function-backed mock for the promotion port. It also counts
// invocations so tests can assert exactly-once promotion.
type Creator struct {
	CreateFn func(ctx context.Context, v *domain.Vehicle) error
	Calls    int
	Last     *domain.Vehicle
}

func (m *Creator) Create(ctx context.Context, v *domain.Vehicle) error {
	m.Calls++
	m.Last = v
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}
