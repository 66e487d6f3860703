// Package store archives the event stream to PostgreSQL for offline
// inspection. The journal stays the recovery source of truth; the archive
// is queryable history.
package store

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/yanun0323/errors"

	"main/internal/codec"
	"main/internal/schema"
	"main/pkg/conn"
	"main/pkg/exception"
)

// EventRecord is the archived row form of one event.
type EventRecord struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Seq       uint64 `gorm:"index"`
	Type      string `gorm:"size:64;index"`
	ObjectID  string `gorm:"size:128;index"`
	TsEvent   int64
	TsInit    int64
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// TableName fixes the archive table name.
func (EventRecord) TableName() string { return "event_records" }

// Archive persists events through a PostgreSQL client.
type Archive struct {
	client *conn.Client
}

// NewArchive creates the archive and migrates its table.
func NewArchive(client *conn.Client) (*Archive, error) {
	if client == nil || client.DB() == nil {
		return nil, exception.ErrStoreNilClient
	}
	if err := client.DB().AutoMigrate(&EventRecord{}); err != nil {
		return nil, errors.Wrap(err, "migrate event records")
	}
	return &Archive{client: client}, nil
}

// Append archives one event under the given journal sequence.
func (a *Archive) Append(seq uint64, ev schema.Event) error {
	rec, err := codec.Encode(ev)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}
	payload, err := sonic.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshal record")
	}
	objectID, err := objectOf(ev)
	if err != nil {
		return err
	}

	row := EventRecord{
		Seq:      seq,
		Type:     ev.Type().String(),
		ObjectID: objectID,
		TsEvent:  ev.EventTime(),
		TsInit:   ev.InitTime(),
		Payload:  payload,
	}
	if err := a.client.DB().Create(&row).Error; err != nil {
		return errors.Wrap(err, "insert event record").With("type", row.Type).With("object", objectID)
	}
	return nil
}

// EventsByObject loads the archived events of one order or trader in
// sequence order.
func (a *Archive) EventsByObject(objectID string, limit int) ([]schema.Event, error) {
	var rows []EventRecord
	q := a.client.DB().
		Where("object_id = ?", objectID).
		Order("seq asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "query event records").With("object", objectID)
	}

	out := make([]schema.Event, 0, len(rows))
	for _, row := range rows {
		rec := codec.Record{}
		if err := sonic.Unmarshal(row.Payload, &rec); err != nil {
			return nil, errors.Wrap(err, "unmarshal record").With("id", row.ID)
		}
		ev, err := codec.Decode(rec)
		if err != nil {
			return nil, errors.Wrap(err, "decode record").With("id", row.ID)
		}
		out = append(out, ev)
	}
	return out, nil
}

// Count returns the number of archived events.
func (a *Archive) Count() (int64, error) {
	var n int64
	if err := a.client.DB().Model(&EventRecord{}).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count event records")
	}
	return n, nil
}

// objectOf picks the identity an event is archived under.
func objectOf(ev schema.Event) (string, error) {
	switch v := ev.(type) {
	case schema.TradingStateChanged:
		return string(v.TraderID), nil
	default:
		if oe, ok := ev.(schema.OrderEvent); ok {
			return string(oe.OrderID()), nil
		}
		return "", exception.ErrStoreInvalidRecord
	}
}
