package playback

import "expvar"

var (
	metricScriptedTicks = expvar.NewInt("playback_scripted_ticks_total")
	metricHandoffs      = expvar.NewInt("playback_handoff_total")
	metricHandoffErrors = expvar.NewInt("playback_handoff_errors_total")
	metricAdvances      = expvar.NewInt("playback_advance_total")
	metricAdvanceErrors = expvar.NewInt("playback_advance_errors_total")
	metricStaleDropped  = expvar.NewInt("playback_stale_responses_dropped_total")
)
