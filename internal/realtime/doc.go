// Package realtime carries row-change events from the services that write
// them to the streams that display them.
//
// A [Broker] moves [models.ChangeEvent] values between processes (in memory
// or over Redis pub/sub on the server, over Server-Sent Events on the
// client). A [Hub] sits on top of a broker and keeps exactly one broker
// subscription per topic, shared by every local listener and released when
// the last listener closes.
package realtime
