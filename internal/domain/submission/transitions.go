package submission

// transitionRule is one row of the review transition table.
type transitionRule struct {
	next  Stage
	roles []Role
}

// transitions is the single authority on which role may perform which action
// at which stage, and what stage results. Call sites must not re-check role
// lists on their own.
var transitions = map[Stage]map[Action]transitionRule{
	StagePendingSupervisor: {
		ActionApprove: {next: StagePendingManager, roles: []Role{RoleSupervisor, RoleManager, RoleAdmin}},
		ActionReject:  {next: StageRejected, roles: []Role{RoleSupervisor, RoleManager, RoleAdmin}},
	},
	StagePendingManager: {
		ActionApprove:  {next: StageApproved, roles: []Role{RoleManager, RoleAdmin}},
		ActionUpload:   {next: StageUploaded, roles: []Role{RoleManager, RoleAdmin}},
		ActionSendBack: {next: StagePendingSupervisor, roles: []Role{RoleManager, RoleAdmin}},
		ActionReject:   {next: StageRejected, roles: []Role{RoleManager, RoleAdmin}},
	},
	// Re-edit cycle: the original author may resubmit a rejected record.
	// Author identity is checked by the engine; the table only gates the role.
	StageRejected: {
		ActionResubmit: {next: StagePendingSupervisor, roles: []Role{RoleScraper}},
	},
}

// CanTransition reports whether role may perform action on a submission
// currently at stage.
func CanTransition(role Role, stage Stage, action Action) bool {
	rule, ok := transitions[stage][action]
	if !ok {
		return false
	}
	for _, r := range rule.roles {
		if r == role {
			return true
		}
	}
	return false
}

// NextStage returns the stage resulting from action at stage, if the pair is
// in the transition table at all (regardless of role).
func NextStage(stage Stage, action Action) (Stage, bool) {
	rule, ok := transitions[stage][action]
	if !ok {
		return "", false
	}
	return rule.next, true
}
