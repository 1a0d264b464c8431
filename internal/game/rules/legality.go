package rules

// ReasonCode classifies why an action was allowed or denied. Every
// rule violation maps to exactly one code so adapters can react
// without parsing the human-readable reason.
type ReasonCode string

const (
	ReasonOK ReasonCode = "OK"

	// Lifecycle gates
	ReasonSetupIncomplete ReasonCode = "SETUP_INCOMPLETE"
	ReasonSetupOver       ReasonCode = "SETUP_OVER"
	ReasonGameOver        ReasonCode = "GAME_OVER"
	ReasonNotYourTurn     ReasonCode = "NOT_YOUR_TURN"

	// Reference and coordinate validation
	ReasonFigureNotFound ReasonCode = "FIGURE_NOT_FOUND"
	ReasonFigureDead     ReasonCode = "FIGURE_DEAD"
	ReasonOutOfBounds    ReasonCode = "OUT_OF_BOUNDS"

	// Action economy and status locks
	ReasonAlreadyMoved ReasonCode = "ALREADY_MOVED"
	ReasonAlreadyActed ReasonCode = "ALREADY_ACTED"
	ReasonContained    ReasonCode = "CONTAINED"

	// Geometry and occupancy
	ReasonTerrain     ReasonCode = "TERRAIN"
	ReasonOccupied    ReasonCode = "OCCUPIED"
	ReasonOutOfRange  ReasonCode = "OUT_OF_RANGE"
	ReasonPathBlocked ReasonCode = "PATH_BLOCKED"
	ReasonNoLanding   ReasonCode = "NO_LANDING"

	// Targeting
	ReasonNoTarget         ReasonCode = "NO_TARGET"
	ReasonFriendlyTarget   ReasonCode = "FRIENDLY_TARGET"
	ReasonTargetTooHealthy ReasonCode = "TARGET_TOO_HEALTHY"
	ReasonWrongArchetype   ReasonCode = "WRONG_ARCHETYPE"
	ReasonInvalidDirection ReasonCode = "INVALID_DIRECTION"
	ReasonDuplicateFigure  ReasonCode = "DUPLICATE_FIGURE"
	ReasonOutsideStartZone ReasonCode = "OUTSIDE_START_ZONE"

	// Resources
	ReasonAbilityExhausted ReasonCode = "ABILITY_EXHAUSTED"
	ReasonInvalidCost      ReasonCode = "INVALID_COST"
	ReasonNotInDeadPool    ReasonCode = "NOT_IN_DEAD_POOL"
	ReasonCasterDied       ReasonCode = "CASTER_DIED"
)

// Result reports the outcome of a single action call. Rule violations
// are results, never errors: a denied result leaves game state
// unchanged.
type Result struct {
	OK     bool
	Code   ReasonCode
	Reason string
}

// Allowed builds a successful result with a human-readable summary.
func Allowed(reason string) Result {
	return Result{OK: true, Code: ReasonOK, Reason: reason}
}

// Denied builds a failed result carrying the violation code.
func Denied(code ReasonCode, reason string) Result {
	return Result{OK: false, Code: code, Reason: reason}
}
