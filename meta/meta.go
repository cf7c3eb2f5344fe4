// meta/meta.go
package meta

import "time"

// MAX_TRY defines the number of MCTS iterations per search.
const MAX_TRY = 4000

// FRAME_INTERVAL defines the cadence of the interactive loop.
const FRAME_INTERVAL = 16 * time.Millisecond

// WORKERS defines how many experiment games run at once.
const WORKERS = 8

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 20
