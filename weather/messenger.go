package weather

import (
	"errors"
	"sync"
)

// ErrSendFailed is returned by Loopback when it is configured to fail.
var ErrSendFailed = errors.New("outbox send failed")

// Messenger delivers outbound dictionaries to the companion. Replies arrive
// asynchronously through the host's inbox callback, not through Send.
type Messenger interface {
	Send(Dict) error
}

// Loopback is an in-process Messenger that answers every request with a
// fixed Report. It stands in for the phone companion when none is attached.
//
// Replies are handed to Deliver synchronously from Send, so Deliver must not
// call back into whoever is sending while it holds a lock.
type Loopback struct {
	Report  Report
	Deliver func(Dict)

	lock sync.Mutex
	sent []Dict
	fail error
}

// Send records d and, unless a failure has been configured, delivers the
// configured Report as a reply.
func (l *Loopback) Send(d Dict) error {
	l.lock.Lock()
	l.sent = append(l.sent, d)
	fail, deliver, report := l.fail, l.Deliver, l.Report
	l.lock.Unlock()

	if nil != fail {
		return fail
	}
	if nil != deliver {
		deliver(Dict{
			KeyTemperature: String(report.Temperature),
			KeyConditions:  String(report.Conditions),
		})
	}
	return nil
}

// Fail makes subsequent sends return err. A nil err restores normal delivery.
func (l *Loopback) Fail(err error) {
	l.lock.Lock()
	l.fail = err
	l.lock.Unlock()
}

// Sent returns a copy of every dictionary passed to Send so far.
func (l *Loopback) Sent() []Dict {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]Dict(nil), l.sent...)
}
