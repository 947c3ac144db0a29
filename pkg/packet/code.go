package packet

import "fmt"

// Code represents a CHAP packet code as defined in RFC 1994 section 4
type Code uint8

// CHAP packet codes as defined in RFC 1994
const (
	// Challenge packets (RFC 1994 section 4.1)
	CodeChallenge Code = 1
	// Response packets (RFC 1994 section 4.1)
	CodeResponse Code = 2
	// Success packets (RFC 1994 section 4.2)
	CodeSuccess Code = 3
	// Failure packets (RFC 1994 section 4.2)
	CodeFailure Code = 4
)

// String returns the string representation of the packet code
func (c Code) String() string {
	switch c {
	case CodeChallenge:
		return "Challenge"
	case CodeResponse:
		return "Response"
	case CodeSuccess:
		return "Success"
	case CodeFailure:
		return "Failure"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// IsValid checks if the packet code is valid
func (c Code) IsValid() bool {
	switch c {
	case CodeChallenge, CodeResponse, CodeSuccess, CodeFailure:
		return true
	default:
		return false
	}
}

// HasValue returns true if the code carries a Value-Size framed value
// (Challenge and Response packets)
func (c Code) HasValue() bool {
	return c == CodeChallenge || c == CodeResponse
}

// IsResult returns true if the code terminates an exchange
func (c Code) IsResult() bool {
	return c == CodeSuccess || c == CodeFailure
}

// ExpectedResponseCodes returns the codes a peer may answer with
func (c Code) ExpectedResponseCodes() []Code {
	switch c {
	case CodeChallenge:
		return []Code{CodeResponse}
	case CodeResponse:
		return []Code{CodeSuccess, CodeFailure}
	default:
		return nil
	}
}
