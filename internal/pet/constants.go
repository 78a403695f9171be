package pet

// Player-facing messages
const (
	MsgNotRaising       = "You are not raising a pet yet."
	MsgFinalForm        = "Final evolution reached! Your pet cannot grow any further."
	MsgNoFoodFormat     = "You have no %s food!"
	MsgExpGainedFormat  = "EXP +%d! (EXP: %d/%d)"
	MsgLevelUpFormat    = "Level up!!! (Level %d)"
	MsgMultiLevelFormat = "%d levels up!!! (Lv.%d -> Lv.%d)"
	MsgEvolvedFormat    = "Final evolution! Evolved into type %d!!! (Lv.%d -> Lv.%d)"

	MsgTaskDoneFormat  = "Task complete! Earned %d coins! (Coins: %d)"
	MsgPetDied         = "Your pet has died..."
	MsgLevelDownFormat = "Missed it... lost %d level(s), now level %d!"

	MsgStarted       = "Raising started! Complete your plans to earn food!"
	MsgRevivedFormat = "Restarted from an egg! You still have %d food."
	MsgReset         = "Reset complete. Start again from an egg!"
	MsgBoughtFormat  = "Bought %d x %s food!"
	MsgCoinsFormat   = "Earned %d coins! (Coins: %d)"
	MsgGoalFormat    = "Monthly goal achieved! Earned %d coins! (Coins: %d)"
)

// Buying limits per request
const (
	MinBuyQuantity = 1
	MaxBuyQuantity = 99
)

// Lock key prefixes for per-user serialisation.
const (
	lockPrefix       = "pet:"
	ledgerLockPrefix = "ledger:"
)

// Log messages
const (
	LogMsgLedgerWriteFailed = "Pet saved but ledger update failed"
)
