// Package keys classifies raw key events into the semantic actions of the
// mention input: submit, break line, start mention tracking, popup
// navigation, or plain (let default handling proceed).
//
// Classification is a pure function of the event, the shortcut
// configuration and whether the mention popup is open.
package keys
