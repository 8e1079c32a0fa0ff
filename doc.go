// Package dbc is an in-memory model and bit-level codec for Vector DBC CAN
// database files. It parses and serializes the DBC text format (via the
// dbcfile subpackage) and decodes/encodes CAN frame payloads against the
// signals defined by a Document.
//
// The package performs no CAN bus I/O, no transmission scheduling, and no
// higher-layer protocol handling (J1939, ISO-TP, UDS); it consumes raw
// id + payload + extended-flag and produces or accepts physical signal
// values.
package dbc
