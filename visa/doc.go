// Package visa provides a connection-oriented session abstraction for controlling
// laboratory instruments that speak a text-based command/response protocol
// (SCPI-style ASCII commands) over an instrumentation bus.
//
// A Session owns exactly one connection to one instrument, addressed by a
// VISA-style resource string such as "TCPIP::192.168.0.10::5025::SOCKET" or
// "ASRL::/dev/ttyUSB0::9600::INSTR". The raw byte transport behind a Session is
// pluggable through the Transport and Dialer interfaces; TCP sockets and serial
// ports are built in, and additional bus transports can be registered with
// RegisterDialer.
//
// Error Taxonomy:
// Every failure surfaced by this module is classified into one of four kinds:
//   - KindConnection: session not connected, resource not found or unreachable,
//     connection lost.
//   - KindCommand: malformed command, transport write/read failure, response
//     parse failure.
//   - KindTimeout: the transport explicitly reported a timeout; always
//     distinguished from KindCommand so callers can apply a different retry
//     policy.
//   - KindInstrument: the instrument's own error queue reported a pending error
//     after a command.
//
// Concurrency:
// A Session is NOT internally synchronized. Overlapping operations against the
// same Session race on the same transport handle, and no ordering guarantee
// exists across concurrent calls. The caller owning the Session is responsible
// for ensuring only one logical operation is in flight at a time, for example by
// serializing all access through a single goroutine or by taking an explicit
// lock around each write/read cycle. This is the single most important contract
// of the package.
package visa
