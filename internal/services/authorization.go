package services

import "github.com/rafabene/kitanda-backend/internal/domain/ports"

// CanMutate decide se a identidade pode alterar um recurso do dono informado:
// o próprio dono ou um ADMIN.
func CanMutate(identity ports.Claims, ownerID string) bool {
	if identity.IsAdmin() {
		return true
	}
	return identity.UserID != "" && identity.UserID == ownerID
}
