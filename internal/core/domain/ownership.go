package domain

// EnforceOwnership is the single ownership rule for customer-scoped
// resources: a caller may only act on resources whose owner id equals their
// own. Every document and case route goes through this check.
func EnforceOwnership(caller *User, resourceOwnerID string) error {
	if caller == nil || caller.ID != resourceOwnerID {
		return ErrForbidden
	}
	return nil
}
