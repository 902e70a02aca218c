package lootsplit

// PlayerSession is one party member's block of a Party Hunt report.
type PlayerSession struct {
	Name     string `json:"name" yaml:"name"`
	IsLeader bool   `json:"is_leader" yaml:"is_leader"`
	Loot     int64  `json:"loot" yaml:"loot"`
	Supplies int64  `json:"supplies" yaml:"supplies"`
	Balance  int64  `json:"balance" yaml:"balance"`
	Damage   int64  `json:"damage" yaml:"damage"`
	Healing  int64  `json:"healing" yaml:"healing"`
}

// SessionData is the whole report. Timestamps and labels are kept as the
// game client printed them.
type SessionData struct {
	StartTime     string          `json:"start_time" yaml:"start_time"`
	EndTime       string          `json:"end_time" yaml:"end_time"`
	Duration      string          `json:"duration" yaml:"duration"`
	LootType      string          `json:"loot_type" yaml:"loot_type"`
	TotalLoot     int64           `json:"total_loot" yaml:"total_loot"`
	TotalSupplies int64           `json:"total_supplies" yaml:"total_supplies"`
	TotalBalance  int64           `json:"total_balance" yaml:"total_balance"`
	Players       []PlayerSession `json:"players" yaml:"players"`
}

// Transfer tells From to send Amount gold to To.
type Transfer struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Amount int64  `json:"amount" yaml:"amount"`
}

type SplitResult struct {
	Session           SessionData `json:"session" yaml:"session"`
	IndividualBalance int64       `json:"individual_balance" yaml:"individual_balance"`
	Transfers         []Transfer  `json:"transfers" yaml:"transfers"`
}
