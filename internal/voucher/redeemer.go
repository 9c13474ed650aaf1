package voucher

import (
	"context"
)

// Redeemer consumes the voucher an owner applied to their cart once the
// corresponding order is placed: the usage counter goes up and the voucher
// is detached from the owner.
type Redeemer struct {
	svc     Service
	applied *AppliedStore
}

func NewRedeemer(svc Service, applied *AppliedStore) *Redeemer {
	return &Redeemer{svc: svc, applied: applied}
}

// Consume redeems the owner's applied voucher, if any. Owners without an
// applied voucher are a no-op, not an error.
func (r *Redeemer) Consume(ctx context.Context, owner string) error {
	v, err := r.applied.Applied(ctx, owner)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}

	if err := r.svc.MarkUsed(ctx, v.ID); err != nil {
		return err
	}
	return r.applied.Remove(ctx, owner)
}
