// Package packet implements the CHAP packet format defined in RFC 1994
// section 4: a four-byte header (Code, Identifier, Length) followed by
// either a Value-Size framed value plus name, or a free-form message.
package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// HeaderLength is the length of the CHAP packet header
	// (Code + Identifier + Length)
	HeaderLength = 4
	// MaxPacketLength bounds an encoded CHAP packet, matching the PPP
	// information field limit commonly configured for CHAP
	MaxPacketLength = 4096
	// MaxValueLength is the largest challenge or response value
	// representable in the one-byte Value-Size field
	MaxValueLength = 255
)

var (
	// ErrInvalidCode indicates a code outside RFC 1994's four packet types.
	ErrInvalidCode = errors.New("packet: invalid CHAP code")
	// ErrPacketTooShort indicates fewer bytes than a CHAP header.
	ErrPacketTooShort = errors.New("packet: too short")
	// ErrPacketTooLong indicates an encode exceeding MaxPacketLength.
	ErrPacketTooLong = errors.New("packet: too long")
	// ErrLengthMismatch indicates a header Length field inconsistent
	// with the available bytes.
	ErrLengthMismatch = errors.New("packet: length field mismatch")
	// ErrValueTruncated indicates a Value-Size field that overruns the
	// packet body.
	ErrValueTruncated = errors.New("packet: value truncated")
	// ErrValueTooLong indicates a value exceeding MaxValueLength.
	ErrValueTooLong = errors.New("packet: value too long")
)

// Packet represents a CHAP packet as defined in RFC 1994
type Packet struct {
	Code       Code
	Identifier uint8

	// Value holds the challenge or response value on Challenge and
	// Response packets.
	Value []byte

	// Name identifies the transmitting system on Challenge and
	// Response packets.
	Name []byte

	// Message is the optional human-readable text on Success and
	// Failure packets.
	Message []byte
}

// NewChallenge creates a Challenge packet carrying value and the
// challenger's name
func NewChallenge(identifier uint8, value, name []byte) *Packet {
	return &Packet{
		Code:       CodeChallenge,
		Identifier: identifier,
		Value:      value,
		Name:       name,
	}
}

// NewResponse creates a Response packet carrying the computed response
// value and the responder's name
func NewResponse(identifier uint8, value, name []byte) *Packet {
	return &Packet{
		Code:       CodeResponse,
		Identifier: identifier,
		Value:      value,
		Name:       name,
	}
}

// NewSuccess creates a Success packet with an optional message
func NewSuccess(identifier uint8, message string) *Packet {
	return &Packet{
		Code:       CodeSuccess,
		Identifier: identifier,
		Message:    []byte(message),
	}
}

// NewFailure creates a Failure packet with an optional message
func NewFailure(identifier uint8, message string) *Packet {
	return &Packet{
		Code:       CodeFailure,
		Identifier: identifier,
		Message:    []byte(message),
	}
}

// Encode serializes the packet to wire format
func (p *Packet) Encode() ([]byte, error) {
	if !p.Code.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCode, uint8(p.Code))
	}

	var data []byte
	if p.Code.HasValue() {
		if len(p.Value) > MaxValueLength {
			return nil, fmt.Errorf("%w: %d bytes", ErrValueTooLong, len(p.Value))
		}

		data = make([]byte, 0, 1+len(p.Value)+len(p.Name))
		data = append(data, byte(len(p.Value)))
		data = append(data, p.Value...)
		data = append(data, p.Name...)
	} else {
		data = p.Message
	}

	total := HeaderLength + len(data)
	if total > MaxPacketLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrPacketTooLong, total)
	}

	out := make([]byte, HeaderLength, total)
	out[0] = byte(p.Code)
	out[1] = p.Identifier
	binary.BigEndian.PutUint16(out[2:4], uint16(total))

	return append(out, data...), nil
}

// Decode parses a CHAP packet from wire format. Trailing bytes beyond
// the header Length field are ignored, as RFC 1994 requires.
func Decode(data []byte) (*Packet, error) {
	if len(data) < HeaderLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrPacketTooShort, len(data))
	}

	code := Code(data[0])
	if !code.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCode, data[0])
	}

	length := int(binary.BigEndian.Uint16(data[2:4]))
	if length < HeaderLength || length > len(data) {
		return nil, fmt.Errorf("%w: header says %d, have %d", ErrLengthMismatch, length, len(data))
	}

	p := &Packet{
		Code:       code,
		Identifier: data[1],
	}

	body := data[HeaderLength:length]
	if code.HasValue() {
		if len(body) < 1 {
			return nil, fmt.Errorf("%w: missing value size", ErrValueTruncated)
		}

		valueSize := int(body[0])
		if len(body)-1 < valueSize {
			return nil, fmt.Errorf("%w: value size %d, have %d", ErrValueTruncated, valueSize, len(body)-1)
		}

		p.Value = append([]byte(nil), body[1:1+valueSize]...)
		p.Name = append([]byte(nil), body[1+valueSize:]...)
	} else {
		p.Message = append([]byte(nil), body...)
	}

	return p, nil
}
