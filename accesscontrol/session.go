package accesscontrol

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/shared"
)

type session struct {
	claim shared.Claim
}

var _ shared.AuthSession = session{}

// NoSession is set for requests without a verified claim. Its role is
// empty, so every permission check denies it.
var NoSession = session{}

func NewSession(claim shared.Claim) shared.AuthSession {
	return session{claim: claim}
}

func (s session) GetUserID() uuid.UUID {
	return s.claim.ID
}

func (s session) GetRole() shared.Role {
	return s.claim.Role
}

func (s session) GetClaim() shared.Claim {
	return s.claim
}

func (s session) IsAuthenticated() bool {
	return s.claim.ID != uuid.Nil
}
