// Package recstore provides a client for record stores reached through a
// driver. Records are plain structs registered in a [record.Registry]; the
// store converts them to wire records, sends request envelopes through the
// configured [driver.Driver] and decodes the responses back into the
// structs.
//
// A missing record is not an error: Load, Remove and Contains report it
// with a false result. Any other failure reported by the store is returned
// as a [wire.OperationError].
//
// See the [github.com/tarantool/go-recstore/predicate] package for building
// search filters and [github.com/tarantool/go-recstore/sqlpred] for
// rendering them as parameterized SQL.
package recstore
