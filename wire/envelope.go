// Package wire defines the request and response envelopes exchanged with
// the store, and the ordered record they carry.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// QueryType is the kind of a request.
type QueryType int

const (
	// QueryLoad fetches a record by primary key.
	QueryLoad QueryType = iota
	// QuerySave writes a record, replacing an existing one.
	QuerySave
	// QueryInsert writes a record that must not exist yet.
	QueryInsert
	// QueryRemove deletes a record by primary key.
	QueryRemove
	// QueryContains checks whether a primary key exists.
	QueryContains
	// QuerySelectAll lists the primary keys of a table.
	QuerySelectAll
	// QuerySearch lists the primary keys of records matching a predicate.
	QuerySearch
)

//nolint: gochecknoglobals
var queryCodes = map[QueryType]string{
	QueryLoad:      "LOAD",
	QuerySave:      "SAVE",
	QueryInsert:    "INSERT",
	QueryRemove:    "REMOVE",
	QueryContains:  "CONTAINS",
	QuerySelectAll: "SELECT-ALL",
	QuerySearch:    "SEARCH",
}

var (
	// ErrUnknownQueryType is returned for unknown query codes.
	ErrUnknownQueryType = errors.New("unknown query type")
	// ErrMissingPrimaryKey is returned when a keyed request has no primary key.
	ErrMissingPrimaryKey = errors.New("request has no primary key")
	// ErrMissingPayload is returned when a write request has no record.
	ErrMissingPayload = errors.New("request has no payload")
	// ErrMissingTable is returned when a request names no table.
	ErrMissingTable = errors.New("request has no table")
)

var (
	_ msgpack.CustomEncoder = QueryType(0)
	_ msgpack.CustomDecoder = (*QueryType)(nil)
)

func (q QueryType) String() string {
	if code, ok := queryCodes[q]; ok {
		return code
	}

	return "UNKNOWN"
}

// ParseQueryType returns the query type for a wire code.
func ParseQueryType(code string) (QueryType, error) {
	for q, c := range queryCodes {
		if c == code {
			return q, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownQueryType, code)
}

// MarshalText implements encoding.TextMarshaler.
func (q QueryType) MarshalText() ([]byte, error) {
	code, ok := queryCodes[q]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownQueryType, int(q))
	}

	return []byte(code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *QueryType) UnmarshalText(text []byte) error {
	parsed, err := ParseQueryType(string(text))
	if err != nil {
		return err
	}

	*q = parsed

	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (q QueryType) EncodeMsgpack(encoder *msgpack.Encoder) error {
	code, err := q.MarshalText()
	if err != nil {
		return err
	}

	return encoder.EncodeString(string(code)) //nolint:wrapcheck
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (q *QueryType) DecodeMsgpack(decoder *msgpack.Decoder) error {
	code, err := decoder.DecodeString()
	if err != nil {
		return err //nolint:wrapcheck
	}

	return q.UnmarshalText([]byte(code))
}

// Request is a single operation sent to the store.
type Request struct {
	// App and Key are the application credentials.
	App string `json:"app" msgpack:"app"`
	Key string `json:"key" msgpack:"key"`
	// Table is the type id of the record.
	Table string    `json:"t" msgpack:"t"`
	Query QueryType `json:"q" msgpack:"q"`
	// PrimaryKey is set for LOAD, REMOVE and CONTAINS.
	PrimaryKey any `json:"pk,omitempty" msgpack:"pk,omitempty"`
	// Payload is set for SAVE and INSERT.
	Payload *Record `json:"p,omitempty" msgpack:"p,omitempty"`
	// Where and Order are set for SEARCH.
	Where []any               `json:"where,omitempty" msgpack:"where,omitempty"`
	Order []map[string]string `json:"order,omitempty" msgpack:"order,omitempty"`
}

// Validate checks that the fields required by the query type are set.
func (r Request) Validate() error {
	if r.Table == "" {
		return ErrMissingTable
	}

	switch r.Query {
	case QueryLoad, QueryRemove, QueryContains:
		if r.PrimaryKey == nil {
			return fmt.Errorf("%s: %w", r.Query, ErrMissingPrimaryKey)
		}
	case QuerySave, QueryInsert:
		if r.Payload == nil {
			return fmt.Errorf("%s: %w", r.Query, ErrMissingPayload)
		}
	case QuerySelectAll, QuerySearch:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownQueryType, int(r.Query))
	}

	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Numbers in the primary key and
// the where list keep their integer precision.
func (r *Request) UnmarshalJSON(data []byte) error {
	type plain Request

	var raw plain

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		return err //nolint:wrapcheck
	}

	raw.PrimaryKey = NormalizeNumbers(raw.PrimaryKey)
	for i := range raw.Where {
		raw.Where[i] = NormalizeNumbers(raw.Where[i])
	}

	*r = Request(raw)

	return nil
}

const (
	// AckOK marks a successful response.
	AckOK = "1"
	// AckFailed marks a failed response.
	AckFailed = "0"
	// NotFoundCode is the failure code of a missing record.
	NotFoundCode = "DB200"
	// DuplicateKeyCode is the failure code of an insert over an existing
	// record.
	DuplicateKeyCode = "DB201"
	// InvalidRequestCode is the failure code of a malformed request.
	InvalidRequestCode = "DB400"
	// UnsupportedCode is the failure code of a query the store cannot run.
	UnsupportedCode = "DB501"
)

// Response is the store's answer to a request.
type Response struct {
	Ack   string `json:"ack" msgpack:"ack"`
	Code  string `json:"code,omitempty" msgpack:"code,omitempty"`
	Cause string `json:"cause,omitempty" msgpack:"cause,omitempty"`
	// Payload is the loaded record for LOAD and the result for CONTAINS.
	Payload any `json:"p,omitempty" msgpack:"p,omitempty"`
	// Keys are the primary keys for SELECT-ALL and SEARCH.
	Keys []any `json:"pk,omitempty" msgpack:"pk,omitempty"`
}

// Ack returns a successful response carrying payload.
func Ack(payload any) Response {
	return Response{Ack: AckOK, Code: "", Cause: "", Payload: payload, Keys: nil}
}

// AckKeys returns a successful response carrying primary keys.
func AckKeys(keys []any) Response {
	if keys == nil {
		keys = []any{}
	}

	return Response{Ack: AckOK, Code: "", Cause: "", Payload: nil, Keys: keys}
}

// Nack returns a failed response.
func Nack(code, cause string) Response {
	return Response{Ack: AckFailed, Code: code, Cause: cause, Payload: nil, Keys: nil}
}

// NotFoundResponse returns the failed response of a missing record.
func NotFoundResponse() Response {
	return Nack(NotFoundCode, "record not found")
}

// Acked reports whether the operation succeeded.
func (r Response) Acked() bool {
	return r.Ack == AckOK
}

// NotFound reports whether the operation failed because the record does not
// exist.
func (r Response) NotFound() bool {
	return !r.Acked() && r.Code == NotFoundCode
}

// Err returns an OperationError for a failed response.
func (r Response) Err() error {
	if r.Acked() {
		return nil
	}

	return OperationError{Code: r.Code, Cause: r.Cause}
}

// Record returns the payload as a record.
func (r Response) Record() (*Record, bool) {
	switch p := r.Payload.(type) {
	case *Record:
		return p, p != nil
	case Record:
		return &p, true
	case map[string]any:
		return RecordFromMap(p), true
	default:
		return nil, false
	}
}

// Bool returns the payload as a boolean.
func (r Response) Bool() (bool, bool) {
	b, ok := r.Payload.(bool)
	return b, ok
}

// UnmarshalJSON implements json.Unmarshaler. An object payload is decoded
// into a *Record keeping field order.
func (r *Response) UnmarshalJSON(data []byte) error {
	type plain Response

	var raw struct {
		plain

		Payload json.RawMessage `json:"p,omitempty"`
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		return err //nolint:wrapcheck
	}

	*r = Response(raw.plain)
	r.Payload = nil

	for i := range r.Keys {
		r.Keys[i] = NormalizeNumbers(r.Keys[i])
	}

	payload := bytes.TrimSpace(raw.Payload)

	switch {
	case len(payload) == 0 || bytes.Equal(payload, []byte("null")):
	case payload[0] == '{':
		rec := NewRecord()
		if err := rec.UnmarshalJSON(payload); err != nil {
			return err
		}

		r.Payload = rec
	default:
		dec := json.NewDecoder(bytes.NewReader(payload))
		dec.UseNumber()

		if err := dec.Decode(&r.Payload); err != nil {
			return err //nolint:wrapcheck
		}

		r.Payload = NormalizeNumbers(r.Payload)
	}

	return nil
}

// OperationError is a failure reported by the store.
type OperationError struct {
	Code  string
	Cause string
}

// Error returns a string representation of the error.
func (e OperationError) Error() string {
	if e.Cause == "" {
		return "operation failed with code " + e.Code
	}

	return fmt.Sprintf("operation failed with code %s: %s", e.Code, e.Cause)
}
