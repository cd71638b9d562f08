package linenoir

import "io"

// Control codes dispatched by the edit loop.
const (
	keyCtrlA     = 1
	keyCtrlB     = 2
	keyCtrlC     = 3
	keyCtrlD     = 4
	keyCtrlE     = 5
	keyCtrlF     = 6
	keyCtrlH     = 8
	keyTab       = 9
	keyLineFeed  = 10
	keyCtrlK     = 11
	keyCtrlL     = 12
	keyEnter     = 13
	keyCtrlN     = 14
	keyCtrlP     = 16
	keyCtrlT     = 20
	keyCtrlU     = 21
	keyCtrlW     = 23
	keyEsc       = 27
	keyBackspace = 127
)

// action is a logical editing command decoded from an escape sequence.
type action int

const (
	actionNone action = iota
	actionHistoryPrev
	actionHistoryNext
	actionMoveLeft
	actionMoveRight
	actionMoveHome
	actionMoveEnd
	actionMoveWordStart
	actionMoveWordEnd
	actionDeleteForward
	actionDeleteNextWord
)

// Escape decoder states. The initial ESC byte has already been consumed
// when the decoder starts, so escSeen is the entry state.
type escState int

const (
	escStart escState = iota
	escSeen
	escBracketSeen
	escBracketDigitSeen
	escOSeen
)

// decodeEscape runs the escape-sequence state machine over single-byte
// reads from r. End of input or a read error aborts the sequence and
// yields actionNone, as does any unrecognized sequence: malformed input is
// absorbed with no buffer effect, never an error.
func decodeEscape(r io.Reader) action {
	state := escSeen
	var digit byte
	var b [1]byte

	for {
		if n, err := r.Read(b[:]); n != 1 || err != nil {
			return actionNone
		}
		c := b[0]

		switch state {
		case escSeen:
			switch c {
			case '[':
				state = escBracketSeen
			case 'O':
				state = escOSeen
			case 'f':
				return actionMoveWordEnd
			case 'b':
				return actionMoveWordStart
			case 'd':
				return actionDeleteNextWord
			default:
				return actionNone
			}

		case escBracketSeen:
			if c >= '0' && c <= '9' {
				digit = c
				state = escBracketDigitSeen
				continue
			}
			switch c {
			case 'A':
				return actionHistoryPrev
			case 'B':
				return actionHistoryNext
			case 'C':
				return actionMoveRight
			case 'D':
				return actionMoveLeft
			case 'H':
				return actionMoveHome
			case 'F':
				return actionMoveEnd
			case 'd':
				return actionDeleteNextWord
			default:
				return actionNone
			}

		case escBracketDigitSeen:
			if c == '~' {
				if digit == '3' {
					return actionDeleteForward
				}
				return actionNone
			}
			// Some terminals send ESC [ 1 / ESC [ 4 for Home/End
			// without the tilde.
			switch digit {
			case '1':
				return actionMoveHome
			case '4':
				return actionMoveEnd
			}
			return actionNone

		case escOSeen:
			switch c {
			case 'H':
				return actionMoveHome
			case 'F':
				return actionMoveEnd
			}
			return actionNone

		default:
			return actionNone
		}
	}
}
