package engine

// recordingSink captures every event Book emits, in call order, for
// assertions in table-driven tests.
type recordingSink struct {
	acks          []AckAddEvent
	rejects       []RejectAddEvent
	ackCancels    []AckCancelEvent
	rejectCancels []RejectCancelEvent
	trades        []TradeEvent
	dones         []DoneEvent
}

func (s *recordingSink) OnAckAdd(e AckAddEvent)             { s.acks = append(s.acks, e) }
func (s *recordingSink) OnRejectAdd(e RejectAddEvent)       { s.rejects = append(s.rejects, e) }
func (s *recordingSink) OnAckCancel(e AckCancelEvent)       { s.ackCancels = append(s.ackCancels, e) }
func (s *recordingSink) OnRejectCancel(e RejectCancelEvent) { s.rejectCancels = append(s.rejectCancels, e) }
func (s *recordingSink) OnTrade(e TradeEvent)               { s.trades = append(s.trades, e) }
func (s *recordingSink) OnDone(e DoneEvent)                 { s.dones = append(s.dones, e) }
