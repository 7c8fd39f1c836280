package engine

import "encoding/binary"

// fnvOffset64 and fnvPrime64 are the FNV-1a-64 constants.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

func fnv1aMix(h uint64, data []byte) uint64 {
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime64
	}
	return h
}

// HashSink folds every event Book emits into a single running FNV-1a-64
// digest, in call order. Two runs that see the same event sequence in
// the same order always produce the same hash regardless of process,
// host, or language — this is the cross-implementation determinism
// check named in the design notes: replaying the same order stream
// against independently written engines and comparing hashes proves
// they agree without comparing full event logs.
//
// Field encoding mirrors the struct layout it is ported from: each tag
// byte is followed by its event's fields in declaration order, integers
// as fixed-width little-endian, strings as a little-endian uint64
// length prefix followed by the raw bytes.
type HashSink struct {
	H     uint64
	Count uint64
}

// NewHashSink returns a HashSink primed with the FNV-1a-64 offset basis.
func NewHashSink() *HashSink {
	return &HashSink{H: fnvOffset64}
}

func (s *HashSink) mixByte(b byte) {
	s.H = fnv1aMix(s.H, []byte{b})
}

func (s *HashSink) mixUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	s.H = fnv1aMix(s.H, buf[:])
}

func (s *HashSink) mixInt32(v int32) { s.mixUint32(uint32(v)) }

func (s *HashSink) mixInt64(v int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	s.H = fnv1aMix(s.H, buf[:])
}

func (s *HashSink) mixUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	s.H = fnv1aMix(s.H, buf[:])
}

func (s *HashSink) mixString(str string) {
	s.mixUint64(uint64(len(str)))
	s.H = fnv1aMix(s.H, []byte(str))
}

func (s *HashSink) OnAckAdd(e AckAddEvent) {
	s.mixByte(1)
	s.mixUint32(e.OrderID)
	s.Count++
}

func (s *HashSink) OnRejectAdd(e RejectAddEvent) {
	s.mixByte(2)
	s.mixUint32(e.OrderID)
	s.mixString(e.Reason)
	s.Count++
}

func (s *HashSink) OnAckCancel(e AckCancelEvent) {
	s.mixByte(3)
	s.mixUint32(e.OrderID)
	s.Count++
}

func (s *HashSink) OnRejectCancel(e RejectCancelEvent) {
	s.mixByte(4)
	s.mixUint32(e.OrderID)
	s.mixString(e.Reason)
	s.Count++
}

func (s *HashSink) OnTrade(e TradeEvent) {
	s.mixByte(5)
	s.mixUint32(e.RestingID)
	s.mixUint32(e.IncomingID)
	s.mixInt32(e.Price)
	s.mixInt64(e.Qty)
	s.Count++
}

func (s *HashSink) OnDone(e DoneEvent) {
	s.mixByte(6)
	s.mixUint32(e.OrderID)
	s.Count++
}
