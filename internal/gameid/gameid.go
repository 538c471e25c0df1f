// Package gameid generates sortable identifiers for play sessions.
package gameid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// Crockford's base32, as used by TypeID
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an ID.
const Length = 26

// RandSource is satisfied by *math/rand/v2.Rand.
type RandSource interface {
	Uint64() uint64
}

// Generator creates session IDs. A nil RandSource uses crypto/rand.
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a new generator with optional RandSource
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// Generate creates an ID for a session started at now.
func Generate(now time.Time) string {
	return NewGenerator(nil).Generate(now)
}

// Generate encodes a UUIDv7 for now as a 26-character base32 string. IDs
// sort by creation time.
func (g *Generator) Generate(now time.Time) string {
	hi, lo := g.uuidv7(now)
	return encode(hi, lo)
}

// uuidv7 returns the 128-bit UUID as two big-endian halves.
func (g *Generator) uuidv7(now time.Time) (uint64, uint64) {
	var random [10]byte
	if g.randSource != nil {
		binary.BigEndian.PutUint64(random[:8], g.randSource.Uint64())
		binary.BigEndian.PutUint16(random[8:], uint16(g.randSource.Uint64()))
	} else if _, err := rand.Read(random[:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	ms := uint64(now.UnixMilli()) & (1<<48 - 1)
	randA := uint64(binary.BigEndian.Uint16(random[0:2])) & 0x0fff
	hi := ms<<16 | 0x7<<12 | randA

	lo := binary.BigEndian.Uint64(random[2:10])
	lo = lo&(1<<62-1) | 1<<63 // variant 10
	return hi, lo
}

// encode writes 130 bits (two zero bits then the 128-bit value) as 26
// five-bit groups, most significant first.
func encode(hi, lo uint64) string {
	var out [Length]byte
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Timestamp returns the creation time encoded in id.
func Timestamp(id string) (time.Time, error) {
	if err := Validate(id); err != nil {
		return time.Time{}, err
	}
	var hi, lo uint64
	for i := 0; i < Length; i++ {
		v := uint64(strings.IndexByte(alphabet, id[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}
	return time.UnixMilli(int64(hi >> 16)), nil
}

// Validate checks if an ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}
	// The leading group carries only three significant bits.
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
