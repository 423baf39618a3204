// Package drivers provides instrument drivers built on the scpi execution
// engine.
//
// A driver holds (not is) a session and an engine: Instrument composes the two
// and implements the IEEE-488.2 common command set, and the concrete drivers
// (PowerSupply, Agilent66xxA, ThermalAirTA5000) embed it and add their own
// per-instance command catalogs. Because drivers depend only on the scpi.Session
// interface, they can be tested against a fake session without any bus.
package drivers
