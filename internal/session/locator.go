// Package session maps logical session names onto tmux panes and keeps
// that mapping alive across invocations.
package session

import (
	"fmt"
	"strconv"
	"strings"
)

// PaneLocator identifies a specific tmux pane: the addressable
// session/window/pane coordinates plus the pane's stable id. The
// coordinates can shift when windows are moved or renumbered, so the
// id is what liveness checks trust.
type PaneLocator struct {
	Session string
	Window  int
	Pane    int
	PaneID  string // tmux pane id, e.g. "%7"
}

// ParseError reports a locator string that does not match the
// <session>:<window>.<pane>$<pane-id> wire form.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed pane locator %q: %s", e.Input, e.Reason)
}

// ParseLocator parses the wire form produced by String and by the tmux
// client's creation format. Malformed input is a *ParseError, never a
// panic: stored locators come from mutable external state and may have
// been corrupted by anything sharing the tmux environment.
func ParseLocator(s string) (PaneLocator, error) {
	dollar := strings.LastIndexByte(s, '$')
	if dollar < 0 {
		return PaneLocator{}, &ParseError{Input: s, Reason: "missing pane id separator"}
	}
	target, paneID := s[:dollar], s[dollar+1:]
	if !strings.HasPrefix(paneID, "%") {
		return PaneLocator{}, &ParseError{Input: s, Reason: "pane id must start with %"}
	}
	if _, err := strconv.Atoi(paneID[1:]); err != nil {
		return PaneLocator{}, &ParseError{Input: s, Reason: "pane id must be % followed by digits"}
	}

	colon := strings.LastIndexByte(target, ':')
	if colon <= 0 {
		return PaneLocator{}, &ParseError{Input: s, Reason: "missing session name"}
	}
	sessionName, coords := target[:colon], target[colon+1:]

	dot := strings.IndexByte(coords, '.')
	if dot < 0 {
		return PaneLocator{}, &ParseError{Input: s, Reason: "missing pane index"}
	}
	window, err := strconv.Atoi(coords[:dot])
	if err != nil {
		return PaneLocator{}, &ParseError{Input: s, Reason: "window index is not a number"}
	}
	pane, err := strconv.Atoi(coords[dot+1:])
	if err != nil {
		return PaneLocator{}, &ParseError{Input: s, Reason: "pane index is not a number"}
	}

	return PaneLocator{
		Session: sessionName,
		Window:  window,
		Pane:    pane,
		PaneID:  paneID,
	}, nil
}

// String formats the locator in its wire form.
func (l PaneLocator) String() string {
	return fmt.Sprintf("%s$%s", l.Target(), l.PaneID)
}

// Target returns the session:window.pane address accepted by send-keys
// and select-pane.
func (l PaneLocator) Target() string {
	return fmt.Sprintf("%s:%d.%d", l.Session, l.Window, l.Pane)
}
