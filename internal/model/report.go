package model

import "time"

// Outcome is the result code of an eligibility check.
type Outcome int

const (
	// OutcomeOK means the group may be salvaged.
	OutcomeOK Outcome = iota
	// OutcomeOffline means the feature is disabled.
	OutcomeOffline
	// OutcomeNoPlayer means a player is required but absent.
	OutcomeNoPlayer
	// OutcomeGroupNotFound means no structure group matched the target.
	OutcomeGroupNotFound
	// OutcomeNotOwner means the actor does not own every structure in the group.
	OutcomeNotOwner
	// OutcomeInSafeZone means a structure lies inside a protected zone.
	OutcomeInSafeZone
	// OutcomeProjected means a structure has no physics body.
	OutcomeProjected
	// OutcomeTooFar means the group centroid is beyond the configured distance.
	OutcomeTooFar
	// OutcomeTooManyStructures means the group has several structures and was not forced.
	OutcomeTooManyStructures
	// OutcomeTooManyItems means the group holds more items than allowed and was not forced.
	OutcomeTooManyItems
)

var outcomeNames = map[Outcome]string{
	OutcomeOK:                "OK",
	OutcomeOffline:           "OFFLINE",
	OutcomeNoPlayer:          "NO_PLAYER",
	OutcomeGroupNotFound:     "GROUP_NOT_FOUND",
	OutcomeNotOwner:          "NOT_OWNER",
	OutcomeInSafeZone:        "IN_SAFE_ZONE",
	OutcomeProjected:         "PROJECTED",
	OutcomeTooFar:            "TOO_FAR",
	OutcomeTooManyStructures: "TOO_MANY_STRUCTURES",
	OutcomeTooManyItems:      "TOO_MANY_ITEMS",
}

var outcomeMessages = map[Outcome]string{
	OutcomeOK:                "Grid accepted.",
	OutcomeOffline:           "Plugin is offline",
	OutcomeNoPlayer:          "Player must be in game!",
	OutcomeGroupNotFound:     "Grid not found",
	OutcomeNotOwner:          "Grid seems to be owned by a different player.\nOr you dont own connected grid!",
	OutcomeInSafeZone:        "Grid in SafeZone!",
	OutcomeProjected:         "Cant grind Projected Grid! turn off/remove projectors.",
	OutcomeTooFar:            "Grid is too far from you!",
	OutcomeTooManyStructures: "Found multiple Grids, add true to command to force grind.",
	OutcomeTooManyItems:      "Too many items in cargo, remove them",
}

// String returns the outcome code.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}

	return "UNKNOWN"
}

// Message returns the player-facing response for the outcome.
func (o Outcome) Message() string {
	return outcomeMessages[o]
}

// Verdict is an outcome plus diagnostic text (usually a structure name).
type Verdict struct {
	Outcome Outcome
	Detail  string
}

// Accepted reports whether the verdict allows salvaging.
func (v Verdict) Accepted() bool {
	return v.Outcome == OutcomeOK
}

// Progress classifies a finished salvage pass for the actor.
type Progress int

const (
	// ProgressContinue means items moved and another pass is needed to disassemble.
	ProgressContinue Progress = iota
	// ProgressInventoryFull means the destination ran out of headroom; re-run after emptying it.
	ProgressInventoryFull
	// ProgressAwaitingSpace means the source is empty but the destination is too
	// full for disassembly to start.
	ProgressAwaitingSpace
	// ProgressComplete means no parts are left.
	ProgressComplete
)

// TransferSummary reports what a single salvage pass did.
type TransferSummary struct {
	ItemsMoved               bool
	SourceFullyEmptied       bool
	StructureWasDisassembled bool
	StructureCount           int
	PartCount                int

	Moved               int64
	Discarded           int64
	PartsRemoved        int
	RemainingParts      int
	PoweredDown         int
	Stalled             bool
	DisassemblyDeferred bool
}

// Progress derives the actor-facing state of the pass.
func (s TransferSummary) Progress() Progress {
	switch {
	case s.Stalled:
		return ProgressInventoryFull
	case s.RemainingParts == 0:
		return ProgressComplete
	case s.DisassemblyDeferred:
		return ProgressAwaitingSpace
	default:
		return ProgressContinue
	}
}

// TelemetryEvent is one salvage execution recorded for reporting.
type TelemetryEvent struct {
	ID             string
	ActorID        string
	ActorName      string
	ExecCount      int
	StructureCount int
	PartCount      int
	At             time.Time
}

// GroupInfo describes a structure group for listings.
type GroupInfo struct {
	Names     []string
	Owners    []string
	Parts     int
	Items     int
	Projected bool
	Centroid  Vector
}

// CheckReport is the verdict of a dry-run eligibility check for one group.
type CheckReport struct {
	Group   []string
	Verdict Verdict
}

var progressMessages = map[Progress]string{
	ProgressContinue:      "Items collected, run the command again to grind the grid.",
	ProgressInventoryFull: "Inventory full, empty it and run the command again.",
	ProgressAwaitingSpace: "Grid is empty, clear your inventory so disassembly can start.",
	ProgressComplete:      "Finished grinding grid.",
}

// Message returns the player-facing hint for the progress state.
func (p Progress) Message() string {
	return progressMessages[p]
}

// Setting is a resolved configuration key and its value.
type Setting struct {
	Key   string
	Value string
}
