package flow

import "strings"

// codeLength is the number of digits in a one-time code.
const codeLength = 4

// CodeEntry is the ephemeral four-slot digit entry of the verification
// screen. It lives only while that screen does: navigating away discards it,
// and a resend clears it. It never touches the session store.
type CodeEntry struct {
	digits     [codeLength]string
	activeSlot int
}

// NewCodeEntry creates an empty entry with the first slot active.
func NewCodeEntry() *CodeEntry {
	return &CodeEntry{}
}

// Input puts a decimal digit into the active slot and advances to the next
// slot. Anything that is not a single decimal digit is ignored, mirroring
// the screen's per-slot input filter.
func (e *CodeEntry) Input(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	e.digits[e.activeSlot] = string(r)

	if e.activeSlot < codeLength-1 {
		e.activeSlot++
	}

	return true
}

// Backspace clears the active slot if it holds a digit,
// otherwise it moves one slot left.
func (e *CodeEntry) Backspace() {
	if e.digits[e.activeSlot] != "" {
		e.digits[e.activeSlot] = ""
		return
	}

	if e.activeSlot > 0 {
		e.activeSlot--
	}
}

// Left moves the active slot one position left.
func (e *CodeEntry) Left() {
	if e.activeSlot > 0 {
		e.activeSlot--
	}
}

// Right moves the active slot one position right.
func (e *CodeEntry) Right() {
	if e.activeSlot < codeLength-1 {
		e.activeSlot++
	}
}

// ActiveSlot returns the index of the currently active slot.
func (e *CodeEntry) ActiveSlot() int {
	return e.activeSlot
}

// String joins the entered digits; incomplete entries yield fewer than four characters.
func (e *CodeEntry) String() string {
	return strings.Join(e.digits[:], "")
}

// IsComplete reports whether all four slots hold a digit.
func (e *CodeEntry) IsComplete() bool {
	for _, digit := range e.digits {
		if digit == "" {
			return false
		}
	}

	return true
}

// Clear empties all slots and returns to the first one.
func (e *CodeEntry) Clear() {
	e.digits = [codeLength]string{}
	e.activeSlot = 0
}

// ValidCode reports whether a code is exactly four decimal digits.
func ValidCode(code string) bool {
	if len(code) != codeLength {
		return false
	}

	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
