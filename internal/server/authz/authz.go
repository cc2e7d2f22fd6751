// Package authz decides whether an authenticated identity may mutate an
// owned resource. There is a single role in the system: the identity that
// created a resource owns it, and only the owner may update or delete it.
package authz

import "github.com/dvelasco/recetario/internal/common"

// Owned is any resource carrying a fixed creator identity. Recipes and
// comments both satisfy it; the authorizer depends on nothing else about
// the concrete type.
type Owned interface {
	OwnerID() string
}

// CanModify reports whether requester owns the resource. Pure comparison,
// never fails, same answer for the same inputs.
func CanModify(resource Owned, requester string) bool {
	return resource.OwnerID() == requester
}

// AuthorizeMutation returns common.ErrForbidden when requester is not the
// owner. Callers must check resource existence first: not-found takes
// precedence over forbidden.
func AuthorizeMutation(resource Owned, requester string) error {
	if !CanModify(resource, requester) {
		return common.ErrForbidden
	}
	return nil
}
