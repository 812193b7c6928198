package supabase

import (
	"context"
	"encoding/json"
	"fmt"
)

type insertCall struct {
	Table  string
	Values map[string]any
}

// fakeDB is an in-memory Connection and RecordWriter
type fakeDB struct {
	tables    map[string][]map[string]any
	selectErr map[string]error
	insertErr error
	inserted  []insertCall

	user    *AuthUser
	authErr error

	calls int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		tables:    make(map[string][]map[string]any),
		selectErr: make(map[string]error),
	}
}

func (f *fakeDB) seed(table string, rows ...map[string]any) *fakeDB {
	f.tables[table] = append(f.tables[table], rows...)
	return f
}

func (f *fakeDB) SignInWithPassword(ctx context.Context, email, password string) (*AuthUser, error) {
	f.calls++
	return f.user, f.authErr
}

func (f *fakeDB) match(q Query) ([]map[string]any, error) {
	f.calls++
	if err := f.selectErr[q.Table]; err != nil {
		return nil, err
	}
	var out []map[string]any
	for _, row := range f.tables[q.Table] {
		ok := true
		for _, flt := range q.Filters {
			if fmt.Sprint(row[flt.Column]) != flt.Value {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, row)
		}
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeDB) SelectOne(ctx context.Context, q Query, dst any) (bool, error) {
	q.Limit = 1
	rows, err := f.match(q)
	if err != nil || len(rows) == 0 {
		return false, err
	}
	raw, _ := json.Marshal(rows[0])
	return true, json.Unmarshal(raw, dst)
}

func (f *fakeDB) SelectMany(ctx context.Context, q Query, dst any) error {
	rows, err := f.match(q)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	raw, _ := json.Marshal(rows)
	return json.Unmarshal(raw, dst)
}

func (f *fakeDB) Insert(ctx context.Context, table string, values map[string]any) error {
	f.calls++
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, insertCall{Table: table, Values: values})
	f.tables[table] = append(f.tables[table], values)
	return nil
}

// readOnlyDB exposes a fakeDB without the write capability
type readOnlyDB struct {
	inner *fakeDB
}

func (r readOnlyDB) SignInWithPassword(ctx context.Context, email, password string) (*AuthUser, error) {
	return r.inner.SignInWithPassword(ctx, email, password)
}

func (r readOnlyDB) SelectOne(ctx context.Context, q Query, dst any) (bool, error) {
	return r.inner.SelectOne(ctx, q, dst)
}

func (r readOnlyDB) SelectMany(ctx context.Context, q Query, dst any) error {
	return r.inner.SelectMany(ctx, q, dst)
}
