// Package mention implements "@" mention support for the input surface:
// detecting an open "@key" fragment before the caret, and the popup that
// fetches candidate members for the key, tracks the highlighted row and
// hands the chosen candidate back to the host.
//
// The popup is a Bubble Tea sub-model. Debounces are tea.Tick messages
// tagged with a sequence number; a message whose number is no longer the
// latest is dropped, so rapid calls coalesce to the last one and stale
// candidate responses never overwrite newer state.
package mention
