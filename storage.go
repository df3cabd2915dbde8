// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package eviltwin

import (
	"encoding/binary"
	"hash/adler32"
)

const (
	storageHeader = "EVILTWIN"
	headerSize    = 8
	countSize     = 4
	extraByte     = 0xFF
	footerSize    = 2
	storageFooter = 0x7000
	checksumMask  = 0x0FFF

	// StorageOverhead is the number of framing bytes around a stored stream
	StorageOverhead = headerSize + countSize + 1 + footerSize
)

// store16 stores a 16-bit value in little-endian format
func store16(p []byte, u uint16) {
	binary.LittleEndian.PutUint16(p, u)
}

// load16 loads a 16-bit value from little-endian format
func load16(p []byte) uint16 {
	return binary.LittleEndian.Uint16(p)
}

// checksum12 is the 12-bit checksum stored in the footer
func checksum12(shares []byte) uint16 {
	return uint16(adler32.Checksum(shares) & checksumMask)
}

// IsStorage reports whether data starts with the storage header
func IsStorage(data []byte) bool {
	return len(data) >= headerSize && string(data[:headerSize]) == storageHeader
}

// StoreShare frames one share stream for storage. The layout is
// platform-independent:
//
//	"EVILTWIN" | count (uint32) | count shares (uint64 each) | 0xFF | 0x7000|checksum (uint16)
func StoreShare(shares []byte) ([]byte, error) {
	if len(shares)%ShareSize != 0 {
		return nil, StatusErrLength
	}
	count := len(shares) / ShareSize
	if uint64(count) > uint64(^uint32(0)) {
		return nil, StatusErrLength
	}

	out := make([]byte, StorageOverhead+len(shares))
	pos := 0

	// Header
	copy(out[pos:], storageHeader)
	pos += headerSize

	// Count
	binary.LittleEndian.PutUint32(out[pos:], uint32(count))
	pos += countSize

	// Shares
	copy(out[pos:], shares)
	pos += len(shares)

	// Extra byte
	out[pos] = extraByte
	pos++

	// Footer and checksum
	store16(out[pos:], storageFooter|checksum12(shares))

	return out, nil
}

// LoadShare parses a stream framed by StoreShare
func LoadShare(data []byte) ([]byte, error) {
	if len(data) < StorageOverhead {
		return nil, StatusErrFormat
	}
	pos := 0

	// Check header
	if !IsStorage(data) {
		return nil, StatusErrFormat
	}
	pos += headerSize

	// Load count
	count := binary.LittleEndian.Uint32(data[pos:])
	pos += countSize
	if uint64(len(data)-StorageOverhead) != uint64(count)*ShareSize {
		return nil, StatusErrFormat
	}

	// Load shares
	shares := make([]byte, int(count)*ShareSize)
	copy(shares, data[pos:pos+len(shares)])
	pos += len(shares)

	// Check extra byte
	if data[pos] != extraByte {
		return nil, StatusErrFormat
	}
	pos++

	// Check footer and checksum
	v := load16(data[pos:])
	if v&^checksumMask != storageFooter || v&checksumMask != checksum12(shares) {
		return nil, StatusErrFormat
	}

	return shares, nil
}
