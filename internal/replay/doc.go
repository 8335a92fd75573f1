// Package replay drives a strip.Strip from a YAML gesture script and reports
// the strip state after every step.
//
// A script names the items, the strip width and its tuning, then lists
// steps. Each step performs exactly one action:
//
//	items: [Inbox, Drafts, Sent, Archive, Spam]
//	width: 90
//	steps:
//	  - pan: began
//	    x: 70
//	  - pan: changed
//	    x: 40
//	    t: 16
//	  - pan: ended
//	    x: 40
//	    t: 32
//	    expect: {offset: 30, selected: 0}
//	  - pan: began
//	    x: 75
//	  - pan: ended
//	    x: 75
//	    expect: {selected: 3, notified: [3]}
//
// Times (t) are milliseconds from the start of the script and are optional;
// without them the strip sees no pointer velocity. Expectations make a script
// self-checking: Run stops at the first step whose expectation fails and
// returns a *StepError wrapping ErrExpectation.
package replay
