package database

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/BicaMarius/digital-portofolio-sub001/errs"
)

// Capabilities is the declared capability set of a resource. Capabilities
// are stated once at registration and dispatched on explicitly; nothing in
// the generic path probes model fields at call time.
type Capabilities struct {
	HasUpdatedAt bool
	SoftDeletes  bool
}

// Resource is a registered, table-backed entity type exposed through the
// generic CRUD dispatcher. One implementation serves every resource kind;
// adding a resource means adding one registry entry, not a new handler.
type Resource interface {
	Name() string
	Singular() string
	Capabilities() Capabilities

	List() (any, error)
	ListTrashed() (any, error)
	Get(id int64) (any, error)
	Create(body []byte) (any, error)
	Update(id int64, body []byte) (any, error)
	Delete(id int64) error
	SoftDelete(id int64) (any, error)
	Restore(id int64) (any, error)
	EmptyTrash() (int, error)
}

// fields assigned by the server, never writable through a request body
var protectedFields = []string{"id", "createdAt", "updatedAt", "deletedAt"}

type touchable interface {
	Touch(now time.Time)
}

type resource[T any] struct {
	db       *gorm.DB
	valid    *validator.Validate
	name     string
	singular string
	caps     Capabilities
}

func newResource[T any](db *gorm.DB, valid *validator.Validate, name, singular string, caps Capabilities) *resource[T] {
	return &resource[T]{
		db:       db,
		valid:    valid,
		name:     name,
		singular: singular,
		caps:     caps,
	}
}

func (r *resource[T]) Name() string               { return r.name }
func (r *resource[T]) Singular() string           { return r.singular }
func (r *resource[T]) Capabilities() Capabilities { return r.caps }

// List returns all live rows. For soft-deletable resources trashed rows
// are excluded.
func (r *resource[T]) List() (any, error) {
	rows := make([]T, 0)
	q := r.db
	if r.caps.SoftDeletes {
		q = q.Where("deleted_at IS NULL")
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListTrashed returns only soft-deleted rows.
func (r *resource[T]) ListTrashed() (any, error) {
	if !r.caps.SoftDeletes {
		return nil, errs.BadRequest(r.name + " does not support trash")
	}
	rows := make([]T, 0)
	if err := r.db.Where("deleted_at IS NOT NULL").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *resource[T]) Get(id int64) (any, error) {
	var row T
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Create validates the body against the resource's insert rules and
// inserts a new row. Server-assigned fields in the body are ignored.
func (r *resource[T]) Create(body []byte) (any, error) {
	var row T
	if err := decodeInto(body, &row); err != nil {
		return nil, err
	}
	if err := r.validateRow(&row); err != nil {
		return nil, err
	}
	if err := r.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update merges the partial body over the existing row, re-validates the
// merged result, and saves it. Untouched fields keep their stored values;
// updatedAt is stamped only when the resource declares the capability.
func (r *resource[T]) Update(id int64, body []byte) (any, error) {
	var row T
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, err
	}
	if err := decodeInto(body, &row); err != nil {
		return nil, err
	}
	if r.caps.HasUpdatedAt {
		if t, ok := any(&row).(touchable); ok {
			t.Touch(time.Now().UTC())
		}
	}
	if err := r.validateRow(&row); err != nil {
		return nil, err
	}
	if err := r.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete hard-deletes the row. For soft-deletable resources this is the
// purge operation.
func (r *resource[T]) Delete(id int64) error {
	res := r.db.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete marks the row trashed. The row stays in the table and is only
// reachable through the trash view until restored or purged. UpdateColumn
// keeps gorm from stamping updated_at; trashing is not an edit.
func (r *resource[T]) SoftDelete(id int64) (any, error) {
	if !r.caps.SoftDeletes {
		return nil, errs.BadRequest(r.name + " does not support trash")
	}
	res := r.db.Model(new(T)).Where("id = ?", id).UpdateColumn("deleted_at", time.Now().UTC())
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(id)
}

// Restore clears the trash marker.
func (r *resource[T]) Restore(id int64) (any, error) {
	if !r.caps.SoftDeletes {
		return nil, errs.BadRequest(r.name + " does not support trash")
	}
	res := r.db.Model(new(T)).Where("id = ?", id).UpdateColumn("deleted_at", nil)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(id)
}

// EmptyTrash purges every trashed row with independent deletes. A failed
// purge does not stop the loop; the count of purged rows and the collected
// failures are both returned.
func (r *resource[T]) EmptyTrash() (int, error) {
	if !r.caps.SoftDeletes {
		return 0, errs.BadRequest(r.name + " does not support trash")
	}

	var ids []int64
	if err := r.db.Model(new(T)).Where("deleted_at IS NOT NULL").Pluck("id", &ids).Error; err != nil {
		return 0, err
	}

	purged := 0
	var failures []error
	for _, id := range ids {
		if err := r.Delete(id); err != nil {
			failures = append(failures, fmt.Errorf("purge %s %d: %w", r.singular, id, err))
			continue
		}
		purged++
	}
	return purged, errors.Join(failures...)
}

func (r *resource[T]) validateRow(row *T) error {
	err := r.valid.Struct(row)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
		}
		return errs.NewValidationError(issues)
	}
	return err
}

// decodeInto merges a JSON body into dst. Bodies may arrive double-encoded
// (a JSON string containing JSON); both forms are accepted. Server-assigned
// fields are stripped before merging.
func decodeInto(body []byte, dst any) error {
	body = normalizeBody(body)

	var patch map[string]json.RawMessage
	if err := json.Unmarshal(body, &patch); err != nil {
		return errs.Malformed("request body")
	}
	for _, field := range protectedFields {
		delete(patch, field)
	}

	cleaned, err := json.Marshal(patch)
	if err != nil {
		return errs.Malformed("request body")
	}
	if err := json.Unmarshal(cleaned, dst); err != nil {
		return errs.Malformed("request body")
	}
	return nil
}

func normalizeBody(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err == nil {
			return []byte(inner)
		}
	}
	return trimmed
}
