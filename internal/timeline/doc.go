// Package timeline distils temporal cues from free-form text and summarises
// the date window an existing plan already spans.
//
// Nothing here produces structured dates for the caller. The output is
// signal text handed to the suggestion generator so that the dates it
// proposes stay near the user's intent and the current schedule.
package timeline
